// Package blif reads and writes networks in a strict subset of the
// Berkeley Logic Interchange Format.
//
// The accepted grammar is one combinational model:
//
//	.model <name>
//	.inputs <signal> ...
//	.outputs <signal>
//	.names <a> <b> <y>
//	<pattern> 1
//	.end
//
// Comments run from '#' to end of line and a trailing backslash joins a
// line with the next. Every .names table drives one signal from exactly
// two inputs; rows list the ON-set as two-character patterns over
// {0,1,-}, so unlisted input combinations evaluate to 0. A .names block
// with no rows is the constant-0 function.
//
// Read enforces only the grammar; structural rules (undefined signals,
// duplicate names, cycles, dead logic) are left to netlist.Build, whose
// sentinel errors pass through unchanged. Write and WriteMapping emit
// text that Read accepts, except that WriteMapping tables grow to K
// inputs and only round-trip through Read when K is 2.
package blif
