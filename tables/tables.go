package tables

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Table keys used by the convenience accessors. The strings are the vendor's
// own table identifiers and are identical for ETABS and SAP2000.
const (
	KeyElementForcesFrames = "Element Forces - Frames"
	KeyElementForcesBeams  = "Element Forces - Beams"
	KeyJointDisplacements  = "Joint Displacements"
	KeyBaseReactions       = "Base Reactions"
)

var (
	// ErrNilDispatcher is returned when no dispatcher was provided.
	ErrNilDispatcher = errors.New("dispatcher cannot be nil")

	// ErrInvalidTableKey indicates an empty table key.
	ErrInvalidTableKey = errors.New("table key is invalid")

	// ErrNoTables means the open model exposes no tables at all.
	ErrNoTables = errors.New("no tables were found in the open model")

	// ErrTableUnknown means the requested key is not amongst the tables the
	// model exposes.
	ErrTableUnknown = errors.New("table key not found")

	// ErrMalformedTable signals a vendor payload whose flat data length does
	// not divide evenly into the reported fields.
	ErrMalformedTable = errors.New("table data does not match field count")
)

// Dispatcher is the subset of vendor automation operations the table client
// issues. The connection package provides the real implementation; tests
// inject a scripted one.
type Dispatcher interface {
	// AvailableTables enumerates the table keys the open model exposes.
	AvailableTables() (count int, keys []string, err error)

	// TableForDisplayArray retrieves a table as field names, a record count
	// and a flat row-major data sequence.
	TableForDisplayArray(tableKey, groupName string) (fields []string, records int, data []string, err error)

	// SelectLoadCasesForDisplay marks the named load cases for output.
	SelectLoadCasesForDisplay(cases []string) error

	// SelectLoadCombinationsForDisplay marks the named combinations for output.
	SelectLoadCombinationsForDisplay(combos []string) error

	// DeselectAllCasesAndCombos clears the current output selection.
	DeselectAllCasesAndCombos() error
}

// Config controls how a Client talks to the vendor application.
type Config struct {
	// Dispatcher issues the underlying automation calls. Required.
	Dispatcher Dispatcher

	// Logger receives debug output for each retrieval. Optional; silent
	// when unset.
	Logger *logrus.Logger
}

// Client retrieves vendor database tables and reshapes them into Tables.
type Client struct {
	d   Dispatcher
	log *logrus.Logger
}

// New creates a table client for the given dispatcher.
func New(config Config) (*Client, error) {
	if config.Dispatcher == nil {
		return nil, ErrNilDispatcher
	}

	log := config.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}

	return &Client{d: config.Dispatcher, log: log}, nil
}

// RetrievalError reports a failed table retrieval. Known carries the number
// of tables the model exposed when the key was not found.
type RetrievalError struct {
	TableKey string
	Known    int
	Err      error
}

func (e *RetrievalError) Error() string {
	if errors.Is(e.Err, ErrTableUnknown) {
		return fmt.Sprintf("failed to retrieve %q: not found amongst the %d available tables", e.TableKey, e.Known)
	}
	return fmt.Sprintf("failed to retrieve %q: %v", e.TableKey, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// Option adjusts a single retrieval.
type Option func(*options)

type options struct {
	group  string
	cases  []string
	combos []string
}

// WithGroup filters the table to the named vendor group.
func WithGroup(name string) Option {
	return func(o *options) { o.group = name }
}

// WithLoadCases selects the named load cases for output before retrieval.
// Omitting the option means whatever is currently selected stays selected.
func WithLoadCases(cases ...string) Option {
	return func(o *options) { o.cases = append(o.cases, cases...) }
}

// WithLoadCombinations selects the named load combinations for output before
// retrieval. Omitting the option keeps the current selection.
func WithLoadCombinations(combos ...string) Option {
	return func(o *options) { o.combos = append(o.combos, combos...) }
}

// Available enumerates the table keys the open model exposes, along with
// their count.
func (c *Client) Available() (int, []string, error) {
	return c.d.AvailableTables()
}

// Get retrieves a table by its vendor key. The key is validated against the
// model's available tables first, selection options are applied, and the
// flat vendor payload is reshaped into a Table. A record count of zero or
// less yields an empty Table with no columns.
func (c *Client) Get(tableKey string, opts ...Option) (Table, error) {
	if tableKey == "" {
		return Table{}, ErrInvalidTableKey
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	count, keys, err := c.d.AvailableTables()
	if err != nil {
		return Table{}, &RetrievalError{TableKey: tableKey, Err: err}
	}
	if count == 0 {
		return Table{}, &RetrievalError{TableKey: tableKey, Err: ErrNoTables}
	}
	if !contains(keys, tableKey) {
		return Table{}, &RetrievalError{TableKey: tableKey, Known: count, Err: ErrTableUnknown}
	}

	if len(o.cases) > 0 || len(o.combos) > 0 {
		if err := c.applySelection(o); err != nil {
			return Table{}, &RetrievalError{TableKey: tableKey, Err: err}
		}
	}

	fields, records, data, err := c.d.TableForDisplayArray(tableKey, o.group)
	if err != nil {
		return Table{}, &RetrievalError{TableKey: tableKey, Err: err}
	}

	if records <= 0 {
		c.log.WithField("table", tableKey).Debug("table has no records")
		return Table{}, nil
	}

	table, err := reshape(fields, records, data)
	if err != nil {
		return Table{}, &RetrievalError{TableKey: tableKey, Err: err}
	}

	c.log.WithFields(logrus.Fields{
		"table":   tableKey,
		"rows":    table.NumRows(),
		"columns": table.NumColumns(),
	}).Debug("table retrieved")

	return table, nil
}

// ElementForcesFrames retrieves the frame element force table. Typical
// numeric columns are P, V2, V3, T, M2 and M3.
func (c *Client) ElementForcesFrames(opts ...Option) (Table, error) {
	return c.Get(KeyElementForcesFrames, opts...)
}

// ElementForcesBeams retrieves the beam element force table.
func (c *Client) ElementForcesBeams(opts ...Option) (Table, error) {
	return c.Get(KeyElementForcesBeams, opts...)
}

// JointDisplacements retrieves the joint displacement table. Typical numeric
// columns are U1, U2, U3, R1, R2 and R3.
func (c *Client) JointDisplacements(opts ...Option) (Table, error) {
	return c.Get(KeyJointDisplacements, opts...)
}

// BaseReactions retrieves the base reaction table. Typical numeric columns
// are FX, FY, FZ, MX, MY and MZ.
func (c *Client) BaseReactions(opts ...Option) (Table, error) {
	return c.Get(KeyBaseReactions, opts...)
}

func (c *Client) applySelection(o options) error {
	if err := c.d.DeselectAllCasesAndCombos(); err != nil {
		return err
	}
	if len(o.cases) > 0 {
		if err := c.d.SelectLoadCasesForDisplay(o.cases); err != nil {
			return err
		}
	}
	if len(o.combos) > 0 {
		if err := c.d.SelectLoadCombinationsForDisplay(o.combos); err != nil {
			return err
		}
	}
	return nil
}

// reshape splits the flat row-major vendor sequence into records rows of
// len(fields) each.
func reshape(fields []string, records int, data []string) (Table, error) {
	width := len(fields)
	if width == 0 || len(data) != records*width {
		return Table{}, fmt.Errorf("%w: %d values across %d fields for %d records",
			ErrMalformedTable, len(data), width, records)
	}

	rows := make([][]string, records)
	for i := 0; i < records; i++ {
		rows[i] = data[i*width : (i+1)*width]
	}

	return Table{Columns: fields, Rows: rows}, nil
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
