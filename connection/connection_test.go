package connection

import (
	"errors"
	"testing"
)

func TestApplication_String(t *testing.T) {
	t.Parallel()

	if ETABS.String() != "ETABS" {
		t.Errorf("unexpected name %q", ETABS.String())
	}
	if SAP2000.String() != "SAP2000" {
		t.Errorf("unexpected name %q", SAP2000.String())
	}
}

func TestConnectError(t *testing.T) {
	t.Parallel()

	cause := errors.New("class not registered")
	err := &ConnectError{App: ETABS, Reason: "could not connect to a running instance", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("ConnectError must unwrap to its cause")
	}
	if got := err.Error(); got != "ETABS: could not connect to a running instance: class not registered" {
		t.Errorf("unexpected message %q", got)
	}

	bare := &ConnectError{App: SAP2000, Reason: "no reachable instance"}
	if got := bare.Error(); got != "SAP2000: no reachable instance" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	err := &StatusError{Op: "OpenFile", Code: 1}
	if !errors.Is(err, ErrVendorStatus) {
		t.Error("StatusError must match ErrVendorStatus")
	}
	if got := err.Error(); got != "OpenFile returned status 1" {
		t.Errorf("unexpected message %q", got)
	}
}

// Connect must fail fast when no vendor instance is reachable, which is the
// situation on every test host. If an instance happens to be running the
// check is skipped.
func TestConnect_NoInstance(t *testing.T) {
	h, err := Connect(ETABS)
	if err == nil {
		h.Release()
		t.Skip("a running ETABS instance is reachable; skipping negative check")
	}

	var cerr *ConnectError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConnectError, got %T: %v", err, err)
	}
	if cerr.App.Name != "ETABS" {
		t.Errorf("error must name the application, got %q", cerr.App.Name)
	}
}
