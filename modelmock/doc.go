/*
Package modelmock provides a friendly pretend vendor model for automation
calls.

It's designed for SDK development and tests where you want to validate
exactly what a component asks of the ETABS or SAP2000 object model—without a
running vendor application. No structural models were harmed in the making
of these tests.

Why use modelmock?

  - Validate routing: ensure retrievals use the expected table key and group
    filter when you set them.
  - Script responses: hand back canned field lists, record counts and flat
    data, or simulate failures.
  - Assert selection behaviour: the mock records load-case and combination
    selections and deselect calls.

Quick start

	m, _ := modelmock.New(modelmock.Config{
	  AvailableKeys: []string{"Base Reactions"},
	  Fields:        []string{"OutputCase", "FX"},
	  Records:       1,
	  Data:          []string{"DEAD", "-12.5"},
	})

	// Inject into a component under test
	client, _ := tables.New(tables.Config{Dispatcher: m})

Behavior

  - If Fail is true and Error is set, every call returns that error.
  - If Fail is true and Error is nil, every call returns ErrOperationFailed.
  - Otherwise calls enforce the expectations you set and return the canned
    response. Leave fields blank when you want a wildcard—modelmock only
    enforces values you set.
*/
package modelmock
