package connection

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// ErrVendorStatus is matched by errors.Is for any nonzero status code the
// vendor returned from an automation call.
var ErrVendorStatus = errors.New("vendor returned a nonzero status")

// StatusError reports an automation call that completed but returned a
// nonzero vendor status code.
type StatusError struct {
	// Op is the vendor method that reported the status.
	Op string

	// Code is the vendor status code.
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Op, e.Code)
}

func (e *StatusError) Is(target error) bool { return target == ErrVendorStatus }

// Handle is a live session with a vendor application instance. It owns the
// COM references to the top-level API object and its model, and implements
// the dispatcher interfaces of the tables, model and analysis packages.
//
// The vendor process itself owns all state; the handle merely borrows it.
// Handles are not safe for concurrent use.
type Handle struct {
	app     Application
	object  *ole.IDispatch
	model   *ole.IDispatch
	cleanup func()
	once    sync.Once
}

func newHandle(app Application, object *ole.IDispatch, cleanup func()) (*Handle, error) {
	modelVar, err := oleutil.GetProperty(object, "SapModel")
	if err != nil {
		object.Release()
		cleanup()
		return nil, &ConnectError{App: app, Reason: "could not obtain the model object", Err: err}
	}

	model := modelVar.ToIDispatch()
	if model == nil {
		object.Release()
		cleanup()
		return nil, &ConnectError{App: app, Reason: "application exposed no model object", Err: ErrNilObject}
	}

	return &Handle{app: app, object: object, model: model, cleanup: cleanup}, nil
}

// Application reports which vendor product the handle is attached to.
func (h *Handle) Application() Application { return h.app }

// Raw exposes the underlying model IDispatch for automation calls this
// package does not wrap.
func (h *Handle) Raw() any { return h.model }

// Release drops the COM references held by the handle. The vendor process
// keeps running; use Exit to shut it down first.
func (h *Handle) Release() {
	h.once.Do(func() {
		if h.model != nil {
			h.model.Release()
		}
		if h.object != nil {
			h.object.Release()
		}
		if h.cleanup != nil {
			h.cleanup()
		}
	})
}

// Exit asks the application to terminate without saving the open model.
// The handle is unusable afterwards apart from Release.
func (h *Handle) Exit() error {
	res, err := oleutil.CallMethod(h.object, "ApplicationExit", false)
	if err != nil {
		return &ConnectError{App: h.app, Reason: "could not exit the application", Err: err}
	}
	if code := variantInt(res); code != 0 {
		return &StatusError{Op: "ApplicationExit", Code: code}
	}
	return nil
}

// AvailableTables enumerates the table keys the open model exposes.
func (h *Handle) AvailableTables() (int, []string, error) {
	db, err := h.child("DatabaseTables")
	if err != nil {
		return 0, nil, err
	}
	defer db.Release()

	var count, keys, importTypes ole.VARIANT
	defer clearVariants(&count, &keys, &importTypes)

	res, err := oleutil.CallMethod(db, "GetAvailableTables", &count, &keys, &importTypes)
	if err != nil {
		return 0, nil, fmt.Errorf("GetAvailableTables: %w", err)
	}
	if code := variantInt(res); code != 0 {
		return 0, nil, &StatusError{Op: "GetAvailableTables", Code: code}
	}

	return variantInt(&count), variantStrings(&keys), nil
}

// TableForDisplayArray retrieves a table as field names, a record count and
// a flat row-major data sequence.
func (h *Handle) TableForDisplayArray(tableKey, groupName string) ([]string, int, []string, error) {
	db, err := h.child("DatabaseTables")
	if err != nil {
		return nil, 0, nil, err
	}
	defer db.Release()

	var fieldKeyList, version, fields, records, data ole.VARIANT
	defer clearVariants(&fieldKeyList, &version, &fields, &records, &data)

	res, err := oleutil.CallMethod(db, "GetTableForDisplayArray",
		tableKey, &fieldKeyList, groupName, &version, &fields, &records, &data)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("GetTableForDisplayArray: %w", err)
	}
	if code := variantInt(res); code != 0 {
		return nil, 0, nil, &StatusError{Op: "GetTableForDisplayArray", Code: code}
	}

	return variantStrings(&fields), variantInt(&records), variantStrings(&data), nil
}

// SelectLoadCasesForDisplay marks the named load cases for output.
func (h *Handle) SelectLoadCasesForDisplay(cases []string) error {
	return h.selectForOutput("SetCaseSelectedForOutput", cases)
}

// SelectLoadCombinationsForDisplay marks the named combinations for output.
func (h *Handle) SelectLoadCombinationsForDisplay(combos []string) error {
	return h.selectForOutput("SetComboSelectedForOutput", combos)
}

// DeselectAllCasesAndCombos clears the current output selection.
func (h *Handle) DeselectAllCasesAndCombos() error {
	setup, err := h.child("Results", "Setup")
	if err != nil {
		return err
	}
	defer setup.Release()

	res, err := oleutil.CallMethod(setup, "DeselectAllCasesAndCombosForOutput")
	if err != nil {
		return fmt.Errorf("DeselectAllCasesAndCombosForOutput: %w", err)
	}
	if code := variantInt(res); code != 0 {
		return &StatusError{Op: "DeselectAllCasesAndCombosForOutput", Code: code}
	}
	return nil
}

// ModelFilename reports the file name of the open model, including its path.
func (h *Handle) ModelFilename() (string, error) {
	res, err := oleutil.CallMethod(h.model, "GetModelFilename", true)
	if err != nil {
		return "", fmt.Errorf("GetModelFilename: %w", err)
	}
	defer clearVariants(res)
	return res.ToString(), nil
}

// InitializeNewModel resets the application to a blank model.
func (h *Handle) InitializeNewModel(units int) error {
	res, err := oleutil.CallMethod(h.model, "InitializeNewModel", units)
	if err != nil {
		return fmt.Errorf("InitializeNewModel: %w", err)
	}
	if code := variantInt(res); code != 0 {
		return &StatusError{Op: "InitializeNewModel", Code: code}
	}
	return nil
}

// OpenFile opens a model file in the application.
func (h *Handle) OpenFile(path string) error {
	file, err := h.child("File")
	if err != nil {
		return err
	}
	defer file.Release()

	res, err := oleutil.CallMethod(file, "OpenFile", path)
	if err != nil {
		return fmt.Errorf("OpenFile: %w", err)
	}
	if code := variantInt(res); code != 0 {
		return &StatusError{Op: "OpenFile", Code: code}
	}
	return nil
}

// SetPresentUnits changes the application's active units.
func (h *Handle) SetPresentUnits(units int) error {
	res, err := oleutil.CallMethod(h.model, "SetPresentUnits", units)
	if err != nil {
		return fmt.Errorf("SetPresentUnits: %w", err)
	}
	if code := variantInt(res); code != 0 {
		return &StatusError{Op: "SetPresentUnits", Code: code}
	}
	return nil
}

// RunAnalysis runs the vendor's analysis for the open model and blocks
// until it finishes.
func (h *Handle) RunAnalysis() error {
	analyze, err := h.child("Analyze")
	if err != nil {
		return err
	}
	defer analyze.Release()

	res, err := oleutil.CallMethod(analyze, "RunAnalysis")
	if err != nil {
		return fmt.Errorf("RunAnalysis: %w", err)
	}
	if code := variantInt(res); code != 0 {
		return &StatusError{Op: "RunAnalysis", Code: code}
	}
	return nil
}

func (h *Handle) selectForOutput(method string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	setup, err := h.child("Results", "Setup")
	if err != nil {
		return err
	}
	defer setup.Release()

	for _, name := range names {
		res, err := oleutil.CallMethod(setup, method, name)
		if err != nil {
			return fmt.Errorf("%s(%q): %w", method, name, err)
		}
		if code := variantInt(res); code != 0 {
			return &StatusError{Op: fmt.Sprintf("%s(%q)", method, name), Code: code}
		}
	}
	return nil
}

// child walks a chain of dispatch properties starting at the model object.
// The caller releases the returned dispatch.
func (h *Handle) child(path ...string) (*ole.IDispatch, error) {
	current := h.model
	owned := false

	for _, name := range path {
		prop, err := oleutil.GetProperty(current, name)
		if owned {
			current.Release()
		}
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", name, err)
		}

		next := prop.ToIDispatch()
		if next == nil {
			return nil, fmt.Errorf("property %s: %w", name, ErrNilObject)
		}
		current = next
		owned = true
	}

	return current, nil
}

// variantInt coerces a variant to an int, defaulting to zero for anything
// that is not numeric.
func variantInt(v *ole.VARIANT) int {
	if v == nil {
		return 0
	}
	switch n := v.Value().(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// variantStrings flattens a variant holding a safe array into strings. The
// vendor returns string arrays, but variant arrays appear for some tables,
// so values are rendered individually.
func variantStrings(v *ole.VARIANT) []string {
	if v == nil {
		return nil
	}
	arr := v.ToArray()
	if arr == nil {
		return nil
	}

	vals := arr.ToValueArray()
	out := make([]string, len(vals))
	for i, val := range vals {
		if val == nil {
			continue
		}
		out[i] = fmt.Sprint(val)
	}
	return out
}

func clearVariants(vs ...*ole.VARIANT) {
	for _, v := range vs {
		_ = v.Clear()
	}
}
