package model

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
		if _, err := New(Config{Dispatcher: mock}); err != nil {
			t.Fatalf("New returned error: %v", err)
		}
	})
}

func TestFilename(t *testing.T) {
	t.Parallel()

	mock, _ := modelmock.New(modelmock.Config{Filename: `C:\Models\tower.edb`})
	client, _ := New(Config{Dispatcher: mock})

	name, err := client.Filename()
	if err != nil {
		t.Fatalf("Filename returned error: %v", err)
	}
	if name != `C:\Models\tower.edb` {
		t.Fatalf("unexpected filename %q", name)
	}
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	t.Run("Happy Path", func(t *testing.T) {
		mock, _ := modelmock.New(modelmock.Config{})
		client, _ := New(Config{Dispatcher: mock})

		if err := client.OpenFile(`C:\Models\bridge.sdb`, KipFtF); err != nil {
			t.Fatalf("OpenFile returned error: %v", err)
		}

		if len(mock.InitializedUnits) != 1 || mock.InitializedUnits[0] != int(KipFtF) {
			t.Errorf("expected one InitializeNewModel call in kip-ft-F, got %v", mock.InitializedUnits)
		}
		if len(mock.OpenedPaths) != 1 || mock.OpenedPaths[0] != `C:\Models\bridge.sdb` {
			t.Errorf("unexpected opened paths: %v", mock.OpenedPaths)
		}
		if len(mock.PresentUnits) != 1 || mock.PresentUnits[0] != int(KipFtF) {
			t.Errorf("units must be re-applied after opening, got %v", mock.PresentUnits)
		}
	})

	t.Run("Default Units", func(t *testing.T) {
		mock, _ := modelmock.New(modelmock.Config{})
		client, _ := New(Config{Dispatcher: mock})

		if err := client.OpenFile(`C:\Models\bridge.sdb`, 0); err != nil {
			t.Fatalf("OpenFile returned error: %v", err)
		}
		if mock.PresentUnits[0] != int(DefaultUnits) {
			t.Errorf("expected default units %d, got %d", DefaultUnits, mock.PresentUnits[0])
		}
	})

	t.Run("Empty Path", func(t *testing.T) {
		mock, _ := modelmock.New(modelmock.Config{})
		client, _ := New(Config{Dispatcher: mock})

		if err := client.OpenFile("", KNmC); !errors.Is(err, ErrInvalidPath) {
			t.Fatalf("expected ErrInvalidPath, got %v", err)
		}
	})

	t.Run("Dispatch Failure", func(t *testing.T) {
		boom := errors.New("automation call failed")
		mock, _ := modelmock.New(modelmock.Config{Fail: true, Error: boom})
		client, _ := New(Config{Dispatcher: mock})

		if err := client.OpenFile(`C:\Models\bridge.sdb`, KNmC); !errors.Is(err, boom) {
			t.Fatalf("expected wrapped dispatcher error, got %v", err)
		}
	})
}

func TestNewModel(t *testing.T) {
	t.Parallel()

	mock, _ := modelmock.New(modelmock.Config{})
	client, _ := New(Config{Dispatcher: mock})

	if err := client.NewModel(0); err != nil {
		t.Fatalf("NewModel returned error: %v", err)
	}
	if len(mock.InitializedUnits) != 1 || mock.InitializedUnits[0] != int(DefaultUnits) {
		t.Fatalf("expected default units, got %v", mock.InitializedUnits)
	}
}
