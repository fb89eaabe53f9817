package csi

import "errors"

var (
	// ErrNilDispatcher is returned when a Client is created without a
	// dispatcher.
	ErrNilDispatcher = errors.New("dispatcher cannot be nil")
)
