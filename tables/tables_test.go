package tables

import (
	"errors"
	"testing"

	"github.com/viktor-platform/etabs-sap-wrapper/modelmock"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("Nil Dispatcher", func(t *testing.T) {
		_, err := New(Config{})
		if !errors.Is(err, ErrNilDispatcher) {
			t.Fatalf("expected ErrNilDispatcher, got %v", err)
		}
	})

	t.Run("Valid Config", func(t *testing.T) {
		mock, _ := modelmock.New(modelmock.Config{})
		client, err := New(Config{Dispatcher: mock})
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		if client == nil {
			t.Fatal("New returned nil client")
		}
	})
}

func TestGet_HappyPath(t *testing.T) {
	t.Parallel()

	mock, err := modelmock.New(modelmock.Config{
		AvailableKeys:    []string{KeyBaseReactions, KeyJointDisplacements},
		ExpectedTableKey: KeyBaseReactions,
		Fields:           []string{"OutputCase", "FX", "FY", "FZ"},
		Records:          2,
		Data: []string{
			"DEAD", "0.0", "-3.5", "120.75",
			"LIVE", "1.25", "0.0", "80.5",
		},
	})
	if err != nil {
		t.Fatalf("modelmock: %v", err)
	}

	client, err := New(Config{Dispatcher: mock})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	table, err := client.Get(KeyBaseReactions)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	if table.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.NumRows())
	}
	if table.NumColumns() != 4 {
		t.Fatalf("expected 4 columns, got %d", table.NumColumns())
	}
	if table.Rows[1][0] != "LIVE" {
		t.Errorf("expected row 1 OutputCase LIVE, got %q", table.Rows[1][0])
	}
	if mock.DeselectCalls != 0 {
		t.Errorf("expected no deselect calls without filters, got %d", mock.DeselectCalls)
	}
}

func TestGet_Reshape(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		fields  []string
		records int
	}{
		{name: "Single Row", fields: []string{"A", "B", "C"}, records: 1},
		{name: "Single Column", fields: []string{"A"}, records: 7},
		{name: "Wide", fields: []string{"A", "B", "C", "D", "E", "F"}, records: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := make([]string, tc.records*len(tc.fields))
			for i := range data {
				data[i] = "x"
			}

			mock, _ := modelmock.New(modelmock.Config{
				AvailableKeys: []string{"Some Table"},
				Fields:        tc.fields,
				Records:       tc.records,
				Data:          data,
			})
			client, _ := New(Config{Dispatcher: mock})

			table, err := client.Get("Some Table")
			if err != nil {
				t.Fatalf("Get returned error: %v", err)
			}
			if table.NumRows() != tc.records {
				t.Fatalf("expected %d rows, got %d", tc.records, table.NumRows())
			}
			for i, row := range table.Rows {
				if len(row) != len(tc.fields) {
					t.Fatalf("row %d has %d entries, expected %d", i, len(row), len(tc.fields))
				}
			}
		})
	}
}

func TestGet_EmptyTable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		records int
	}{
		{name: "Zero Records", records: 0},
		{name: "Negative Records", records: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock, _ := modelmock.New(modelmock.Config{
				AvailableKeys: []string{KeyJointDisplacements},
				Fields:        []string{"Joint", "U1"},
				Records:       tc.records,
				// Leftover payload must not leak into the result.
				Data: []string{"stale", "stale"},
			})
			client, _ := New(Config{Dispatcher: mock})

			table, err := client.Get(KeyJointDisplacements)
			if err != nil {
				t.Fatalf("Get returned error: %v", err)
			}
			if !table.IsEmpty() {
				t.Fatalf("expected empty table, got %d rows", table.NumRows())
			}
			if table.NumColumns() != 0 {
				t.Fatalf("expected no inferred columns, got %v", table.Columns)
			}
		})
	}
}

func TestGet_UnknownTable(t *testing.T) {
	t.Parallel()

	mock, _ := modelmock.New(modelmock.Config{
		AvailableKeys: []string{"Base Reactions", "Joint Displacements", "Modal Periods And Frequencies"},
	})
	client, _ := New(Config{Dispatcher: mock})

	_, err := client.Get("Element Forces - Shells")
	if !errors.Is(err, ErrTableUnknown) {
		t.Fatalf("expected ErrTableUnknown, got %v", err)
	}

	var rerr *RetrievalError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *RetrievalError, got %T", err)
	}
	if rerr.TableKey != "Element Forces - Shells" {
		t.Errorf("error does not carry the table key: %+v", rerr)
	}
	if rerr.Known != 3 {
		t.Errorf("expected 3 known tables, got %d", rerr.Known)
	}
}

func TestGet_NoTables(t *testing.T) {
	t.Parallel()

	mock, _ := modelmock.New(modelmock.Config{})
	client, _ := New(Config{Dispatcher: mock})

	_, err := client.Get("Base Reactions")
	if !errors.Is(err, ErrNoTables) {
		t.Fatalf("expected ErrNoTables, got %v", err)
	}
}

func TestGet_InvalidKey(t *testing.T) {
	t.Parallel()

	mock, _ := modelmock.New(modelmock.Config{})
	client, _ := New(Config{Dispatcher: mock})

	_, err := client.Get("")
	if !errors.Is(err, ErrInvalidTableKey) {
		t.Fatalf("expected ErrInvalidTableKey, got %v", err)
	}
}

func TestGet_MalformedPayload(t *testing.T) {
	t.Parallel()

	mock, _ := modelmock.New(modelmock.Config{
		AvailableKeys: []string{"Base Reactions"},
		Fields:        []string{"OutputCase", "FX"},
		Records:       3,
		Data:          []string{"DEAD", "1.0", "LIVE"},
	})
	client, _ := New(Config{Dispatcher: mock})

	_, err := client.Get("Base Reactions")
	if !errors.Is(err, ErrMalformedTable) {
		t.Fatalf("expected ErrMalformedTable, got %v", err)
	}
}

func TestGet_DispatchFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("automation call failed")
	mock, _ := modelmock.New(modelmock.Config{Fail: true, Error: boom})
	client, _ := New(Config{Dispatcher: mock})

	_, err := client.Get("Base Reactions")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped dispatcher error, got %v", err)
	}

	var rerr *RetrievalError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *RetrievalError, got %T", err)
	}
}

func TestGet_Selection(t *testing.T) {
	t.Parallel()

	t.Run("Cases And Combos", func(t *testing.T) {
		mock, _ := modelmock.New(modelmock.Config{
			AvailableKeys: []string{KeyElementForcesFrames},
			Fields:        []string{"Frame", "P"},
			Records:       1,
			Data:          []string{"12", "-50.5"},
		})
		client, _ := New(Config{Dispatcher: mock})

		_, err := client.ElementForcesFrames(
			WithLoadCases("DEAD", "LIVE"),
			WithLoadCombinations("COMB1"),
		)
		if err != nil {
			t.Fatalf("ElementForcesFrames returned error: %v", err)
		}

		if mock.DeselectCalls != 1 {
			t.Errorf("expected 1 deselect call, got %d", mock.DeselectCalls)
		}
		if len(mock.SelectedCases) != 2 || mock.SelectedCases[0] != "DEAD" || mock.SelectedCases[1] != "LIVE" {
			t.Errorf("unexpected selected cases: %v", mock.SelectedCases)
		}
		if len(mock.SelectedCombos) != 1 || mock.SelectedCombos[0] != "COMB1" {
			t.Errorf("unexpected selected combos: %v", mock.SelectedCombos)
		}
	})

	t.Run("No Filters Keeps Selection", func(t *testing.T) {
		mock, _ := modelmock.New(modelmock.Config{
			AvailableKeys: []string{KeyJointDisplacements},
			Fields:        []string{"Joint", "U1"},
			Records:       1,
			Data:          []string{"1", "0.002"},
		})
		client, _ := New(Config{Dispatcher: mock})

		if _, err := client.JointDisplacements(); err != nil {
			t.Fatalf("JointDisplacements returned error: %v", err)
		}
		if mock.DeselectCalls != 0 {
			t.Errorf("omitting filters must not touch the selection, got %d deselects", mock.DeselectCalls)
		}
	})
}

func TestGet_GroupFilter(t *testing.T) {
	t.Parallel()

	mock, _ := modelmock.New(modelmock.Config{
		AvailableKeys:    []string{KeyElementForcesBeams},
		ExpectedTableKey: KeyElementForcesBeams,
		ExpectedGroup:    "Columns",
		Fields:           []string{"Beam", "V2"},
		Records:          1,
		Data:             []string{"B12", "14.2"},
	})
	client, _ := New(Config{Dispatcher: mock})

	if _, err := client.ElementForcesBeams(WithGroup("Columns")); err != nil {
		t.Fatalf("ElementForcesBeams returned error: %v", err)
	}
}
