package modelmock

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedTableKey is returned when a retrieval asks for a key the
	// mock was not configured to expect.
	ErrUnexpectedTableKey = errors.New("unexpected table key")

	// ErrUnexpectedGroup is returned when the group filter is not as expected.
	ErrUnexpectedGroup = errors.New("unexpected group name")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Mock simulates the vendor model dispatcher with validation and
// configurable responses. It records the selection calls it receives so
// tests can assert on filter behaviour.
type Mock struct {
	// AvailableKeys are the table keys the pretend model exposes.
	AvailableKeys []string

	// ExpectedTableKey, when set, is enforced on every retrieval.
	ExpectedTableKey string

	// ExpectedGroup, when set, is enforced on every retrieval.
	ExpectedGroup string

	// Fields, Records and Data form the canned table response.
	Fields  []string
	Records int
	Data    []string

	// Filename is returned by ModelFilename.
	Filename string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// Fail indicates whether the mock should return an error from every call.
	Fail bool

	// Recorded state, populated as calls arrive.
	SelectedCases    []string
	SelectedCombos   []string
	DeselectCalls    int
	OpenedPaths      []string
	InitializedUnits []int
	PresentUnits     []int
	AnalysisRuns     int
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// AvailableKeys are the table keys the pretend model exposes.
	AvailableKeys []string

	// ExpectedTableKey, when set, is enforced on every retrieval.
	ExpectedTableKey string

	// ExpectedGroup, when set, is enforced on every retrieval.
	ExpectedGroup string

	// Fields, Records and Data form the canned table response.
	Fields  []string
	Records int
	Data    []string

	// Filename is returned by ModelFilename.
	Filename string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// Fail indicates whether the mock should return an error from every call.
	Fail bool
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{
		AvailableKeys:    config.AvailableKeys,
		ExpectedTableKey: config.ExpectedTableKey,
		ExpectedGroup:    config.ExpectedGroup,
		Fields:           config.Fields,
		Records:          config.Records,
		Data:             config.Data,
		Filename:         config.Filename,
		Error:            config.Error,
		Fail:             config.Fail,
	}, nil
}

func (m *Mock) failErr() error {
	if m.Fail && m.Error != nil {
		return m.Error
	}
	if m.Fail {
		return ErrOperationFailed
	}
	return nil
}

// AvailableTables returns the configured key set.
func (m *Mock) AvailableTables() (int, []string, error) {
	if err := m.failErr(); err != nil {
		return 0, nil, err
	}
	return len(m.AvailableKeys), m.AvailableKeys, nil
}

// TableForDisplayArray validates the requested key and group against the
// expectations and returns the canned response.
func (m *Mock) TableForDisplayArray(tableKey, groupName string) ([]string, int, []string, error) {
	if err := m.failErr(); err != nil {
		return nil, 0, nil, err
	}
	if m.ExpectedTableKey != "" && m.ExpectedTableKey != tableKey {
		return nil, 0, nil, fmt.Errorf("%w: expected %s, got %s", ErrUnexpectedTableKey, m.ExpectedTableKey, tableKey)
	}
	if m.ExpectedGroup != "" && m.ExpectedGroup != groupName {
		return nil, 0, nil, fmt.Errorf("%w: expected %s, got %s", ErrUnexpectedGroup, m.ExpectedGroup, groupName)
	}
	return m.Fields, m.Records, m.Data, nil
}

// SelectLoadCasesForDisplay records the requested cases.
func (m *Mock) SelectLoadCasesForDisplay(cases []string) error {
	if err := m.failErr(); err != nil {
		return err
	}
	m.SelectedCases = append(m.SelectedCases, cases...)
	return nil
}

// SelectLoadCombinationsForDisplay records the requested combinations.
func (m *Mock) SelectLoadCombinationsForDisplay(combos []string) error {
	if err := m.failErr(); err != nil {
		return err
	}
	m.SelectedCombos = append(m.SelectedCombos, combos...)
	return nil
}

// DeselectAllCasesAndCombos counts deselection calls.
func (m *Mock) DeselectAllCasesAndCombos() error {
	if err := m.failErr(); err != nil {
		return err
	}
	m.DeselectCalls++
	return nil
}

// ModelFilename returns the configured filename.
func (m *Mock) ModelFilename() (string, error) {
	if err := m.failErr(); err != nil {
		return "", err
	}
	return m.Filename, nil
}

// InitializeNewModel records the requested units.
func (m *Mock) InitializeNewModel(units int) error {
	if err := m.failErr(); err != nil {
		return err
	}
	m.InitializedUnits = append(m.InitializedUnits, units)
	return nil
}

// OpenFile records the opened path.
func (m *Mock) OpenFile(path string) error {
	if err := m.failErr(); err != nil {
		return err
	}
	m.OpenedPaths = append(m.OpenedPaths, path)
	return nil
}

// SetPresentUnits records the requested units.
func (m *Mock) SetPresentUnits(units int) error {
	if err := m.failErr(); err != nil {
		return err
	}
	m.PresentUnits = append(m.PresentUnits, units)
	return nil
}

// RunAnalysis counts analysis runs.
func (m *Mock) RunAnalysis() error {
	if err := m.failErr(); err != nil {
		return err
	}
	m.AnalysisRuns++
	return nil
}
