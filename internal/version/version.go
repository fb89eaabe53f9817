// Package version holds build information for the csitables CLI.
package version

// Version is the current release of the csitables tool.
const Version = "0.1.0"
