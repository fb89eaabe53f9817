package connection

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// Application identifies one of the CSI products reachable over the COM
// automation interface.
type Application struct {
	// Name is the human readable product name.
	Name string

	// HelperProgID is the ProgID of the product's API helper object.
	HelperProgID string

	// ObjectProgID is the ProgID of the product's top-level API object.
	ObjectProgID string
}

func (a Application) String() string { return a.Name }

var (
	// ETABS targets a CSI ETABS installation.
	ETABS = Application{
		Name:         "ETABS",
		HelperProgID: "ETABSv1.Helper",
		ObjectProgID: "CSI.ETABS.API.ETABSObject",
	}

	// SAP2000 targets a CSI SAP2000 installation.
	SAP2000 = Application{
		Name:         "SAP2000",
		HelperProgID: "SAP2000v1.Helper",
		ObjectProgID: "CSI.SAP2000.API.SapObject",
	}
)

var (
	// ErrNilObject is the error used when the helper hands back a nil
	// application object even though the call itself succeeded.
	ErrNilObject = errors.New("vendor helper returned a nil application object")

	lock sync.Mutex
)

// S_FALSE is returned by CoInitializeEx if it was already called on this thread.
const S_FALSE = 0x00000001

// ConnectError reports a failed attempt to reach or control a vendor
// application instance.
type ConnectError struct {
	// App is the application that could not be reached.
	App Application

	// Reason is a short human explanation of the likely cause.
	Reason string

	// Err is the underlying automation error, when one exists.
	Err error
}

func (e *ConnectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.App.Name, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.App.Name, e.Reason)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// Connect attaches to an already running instance of the application and
// returns a handle to its model object. A single attempt is made; when no
// instance is reachable the call fails immediately with a ConnectError.
func Connect(app Application) (*Handle, error) {
	lock.Lock()
	defer lock.Unlock()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cleanup, err := initCOM()
	if err != nil {
		return nil, &ConnectError{App: app, Reason: "could not initialize COM", Err: err}
	}

	helper, err := createHelper(app)
	if err != nil {
		cleanup()
		return nil, err
	}
	defer helper.Release()

	objVar, err := oleutil.CallMethod(helper, "GetObject", app.ObjectProgID)
	if err != nil {
		cleanup()
		return nil, &ConnectError{
			App:    app,
			Reason: fmt.Sprintf("could not connect to a running instance; ensure %s is running and a model is open", app.Name),
			Err:    err,
		}
	}

	object := objVar.ToIDispatch()
	if object == nil {
		cleanup()
		return nil, &ConnectError{
			App:    app,
			Reason: fmt.Sprintf("no reachable instance; %s may not be running or no model is open", app.Name),
		}
	}

	return newHandle(app, object, cleanup)
}

// Start launches a new instance of the application and returns a handle to
// its model object.
func Start(app Application) (*Handle, error) {
	lock.Lock()
	defer lock.Unlock()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cleanup, err := initCOM()
	if err != nil {
		return nil, &ConnectError{App: app, Reason: "could not initialize COM", Err: err}
	}

	helper, err := createHelper(app)
	if err != nil {
		cleanup()
		return nil, err
	}
	defer helper.Release()

	objVar, err := oleutil.CallMethod(helper, "CreateObjectProgID", app.ObjectProgID)
	if err != nil {
		cleanup()
		return nil, &ConnectError{App: app, Reason: "could not create a new instance", Err: err}
	}

	object := objVar.ToIDispatch()
	if object == nil {
		cleanup()
		return nil, &ConnectError{App: app, Reason: "could not create a new instance", Err: ErrNilObject}
	}

	if _, err := oleutil.CallMethod(object, "ApplicationStart"); err != nil {
		object.Release()
		cleanup()
		return nil, &ConnectError{App: app, Reason: "could not start the application", Err: err}
	}

	return newHandle(app, object, cleanup)
}

// Close attaches to a running instance and asks it to exit without saving.
func Close(app Application) error {
	h, err := Connect(app)
	if err != nil {
		return err
	}
	defer h.Release()

	return h.Exit()
}

// initCOM initializes the COM runtime for this thread. The returned cleanup
// undoes the initialization when this call was the one that performed it.
func initCOM() (func(), error) {
	err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED)
	if err != nil {
		var oleErr *ole.OleError
		if errors.As(err, &oleErr) {
			oleCode := oleErr.Code()
			if oleCode == ole.S_OK || oleCode == S_FALSE {
				// Already initialized on this thread; nothing to undo.
				return func() {}, nil
			}
		}
		return nil, err
	}
	return ole.CoUninitialize, nil
}

// createHelper instantiates the vendor's API helper object.
func createHelper(app Application) (*ole.IDispatch, error) {
	unknown, err := oleutil.CreateObject(app.HelperProgID)
	if err != nil {
		return nil, &ConnectError{App: app, Reason: "failed to create the API helper object", Err: err}
	}
	if unknown == nil {
		return nil, &ConnectError{App: app, Reason: "failed to create the API helper object", Err: ErrNilObject}
	}
	defer unknown.Release()

	helper, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return nil, &ConnectError{App: app, Reason: "helper object does not expose IDispatch", Err: err}
	}
	return helper, nil
}
