package model

import (
	"errors"
	"fmt"
)

// Units is the vendor's eUnits enumeration. The numeric values are passed
// through to the application verbatim.
type Units int

const (
	LbInF  Units = 1
	LbFtF  Units = 2
	KipInF Units = 3
	KipFtF Units = 4
	KNmmC  Units = 5
	KNmC   Units = 6
	KgfmmC Units = 7
	KgfmC  Units = 8
	NmmC   Units = 9
	NmC    Units = 10
	TonmmC Units = 11
	TonmC  Units = 12
	KNcmC  Units = 13
	KgfcmC Units = 14
	NcmC   Units = 15
	ToncmC Units = 16
)

// DefaultUnits is used when no explicit units are provided.
const DefaultUnits = KNmC

var (
	// ErrNilDispatcher is returned when no dispatcher was provided.
	ErrNilDispatcher = errors.New("dispatcher cannot be nil")

	// ErrInvalidPath indicates an empty model file path.
	ErrInvalidPath = errors.New("file path is invalid")
)

// Dispatcher is the subset of vendor automation operations used for model
// file handling.
type Dispatcher interface {
	// ModelFilename reports the file name of the open model.
	ModelFilename() (string, error)

	// InitializeNewModel resets the application to a blank model.
	InitializeNewModel(units int) error

	// OpenFile opens a model file in the application.
	OpenFile(path string) error

	// SetPresentUnits changes the application's active units.
	SetPresentUnits(units int) error
}

// Config controls how a Client talks to the vendor application.
type Config struct {
	// Dispatcher issues the underlying automation calls. Required.
	Dispatcher Dispatcher
}

// Client exposes model-file operations on the connected application.
type Client struct {
	d Dispatcher
}

// New creates a model client for the given dispatcher.
func New(config Config) (*Client, error) {
	if config.Dispatcher == nil {
		return nil, ErrNilDispatcher
	}
	return &Client{d: config.Dispatcher}, nil
}

// Filename returns the file name of the currently open model. A model that
// has never been saved yields an empty name.
func (c *Client) Filename() (string, error) {
	return c.d.ModelFilename()
}

// NewModel initializes a blank model in the requested units.
func (c *Client) NewModel(units Units) error {
	if units == 0 {
		units = DefaultUnits
	}
	return c.d.InitializeNewModel(int(units))
}

// OpenFile opens a model file and switches the application to the requested
// units, overriding whatever the file carries. The vendor accepts edb, sdb,
// $2k, s2k, xlsx, xls and mdb files; it is authoritative on validity.
func (c *Client) OpenFile(path string, units Units) error {
	if path == "" {
		return ErrInvalidPath
	}
	if units == 0 {
		units = DefaultUnits
	}

	// The vendor requires a blank model before a file can be opened.
	if err := c.d.InitializeNewModel(int(units)); err != nil {
		return fmt.Errorf("failed to initialize model before opening %q: %w", path, err)
	}
	if err := c.d.OpenFile(path); err != nil {
		return fmt.Errorf("failed to open file %q: %w", path, err)
	}
	if err := c.d.SetPresentUnits(int(units)); err != nil {
		return fmt.Errorf("failed to set units for file %q: %w", path, err)
	}
	return nil
}
