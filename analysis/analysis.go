package analysis

import "errors"

// ErrNilDispatcher is returned when no dispatcher was provided.
var ErrNilDispatcher = errors.New("dispatcher cannot be nil")

// Dispatcher is the subset of vendor automation operations used to drive
// the analysis engine.
type Dispatcher interface {
	// RunAnalysis runs the vendor's analysis for the open model.
	RunAnalysis() error
}

// Config controls how a Client talks to the vendor application.
type Config struct {
	// Dispatcher issues the underlying automation calls. Required.
	Dispatcher Dispatcher
}

// Client exposes analysis operations on the connected application.
type Client struct {
	d Dispatcher
}

// New creates an analysis client for the given dispatcher.
func New(config Config) (*Client, error) {
	if config.Dispatcher == nil {
		return nil, ErrNilDispatcher
	}
	return &Client{d: config.Dispatcher}, nil
}

// Run executes the vendor's analysis and blocks until it returns.
func (c *Client) Run() error {
	return c.d.RunAnalysis()
}
