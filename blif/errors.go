package blif

import "errors"

var (
	// ErrParse reports text outside the accepted BLIF subset. The wrapped
	// message carries the offending line number.
	ErrParse = errors.New("blif: malformed input")

	// ErrNilNetwork is returned by Write when the network is nil.
	ErrNilNetwork = errors.New("blif: nil network")

	// ErrNilMapping is returned by WriteMapping when the mapping is nil.
	ErrNilMapping = errors.New("blif: nil mapping")
)
