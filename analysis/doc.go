// Package analysis drives the vendor's analysis engine for the open model.
// The surface is deliberately small; everything beyond running the analysis
// is reachable through the raw model handle.
package analysis
