// Package assetid parses and expands asset tag identifiers.
//
// An asset ID pairs a three-digit group with a three-digit sequence
// ("004-012"). Range expansion is pure: it walks the linearized numbering
// (group*1000 + sequence) so sequence overflow carries into the group exactly
// the way the physical tags are numbered.
package assetid
