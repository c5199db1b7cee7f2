package cover

import "errors"

// ErrNilNetwork is returned when Emit receives a nil network.
var ErrNilNetwork = errors.New("cover: nil network")

// ErrNilLabels is returned when Emit receives a nil labeling result.
var ErrNilLabels = errors.New("cover: nil labeling result")

// ErrLabelMismatch is returned when the labeling result was computed for
// a different network than the one being covered.
var ErrLabelMismatch = errors.New("cover: labeling does not match network")

// ErrNilMapping is returned when Recover receives a nil mapping.
var ErrNilMapping = errors.New("cover: nil mapping")

// ErrWideLUT is returned when the LUT width exceeds the truth-table
// limit, netlist.MaxTruthInputs.
var ErrWideLUT = errors.New("cover: LUT width exceeds truth-table limit")
