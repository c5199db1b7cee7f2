package verify

import "errors"

var (
	// ErrNilNetwork is returned when the network argument is nil.
	ErrNilNetwork = errors.New("verify: nil network")

	// ErrNilMapping is returned when the mapping argument is nil.
	ErrNilMapping = errors.New("verify: nil mapping")

	// ErrInputMismatch is returned when the network and the mapping do not
	// have the same number of primary inputs.
	ErrInputMismatch = errors.New("verify: input counts differ")

	// ErrMismatch reports a disagreeing input assignment; the wrapped
	// message carries the assignment and both output values.
	ErrMismatch = errors.New("verify: network and mapping disagree")

	// ErrTooManyInputs guards Exhaustive against exponential blowup; use
	// Equivalent for wider networks.
	ErrTooManyInputs = errors.New("verify: too many inputs for exhaustive check")
)
