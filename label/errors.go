package label

import "errors"

// ErrNilNetwork is returned when Compute receives a nil network.
var ErrNilNetwork = errors.New("label: nil network")

// ErrInvalidK is returned when Options.K is less than 1.
var ErrInvalidK = errors.New("label: K must be at least 1")

// ErrInfeasible is returned when no K-feasible cut exists for some gate.
// With K >= 2 every gate admits its fan-in cut, so this only fires for
// K = 1 on a gate with two distinct fan-ins.
var ErrInfeasible = errors.New("label: no K-feasible cut exists")

// ErrDisconnected is returned when the output cone contains no primary
// input, i.e. the output is not driven by any input signal.
var ErrDisconnected = errors.New("label: output disconnected from primary inputs")
