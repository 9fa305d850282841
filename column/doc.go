// Package column defines the extension-array contract shared by all
// columnar containers in textspan.
//
// Every container (character spans, token spans, tensors) implements the
// Column interface so a generic table engine can index, slice, concatenate,
// and gather over columns without special-casing span or tensor semantics.
// The helpers in this package (ResolveSelection, ResolveTake, CheckIndex)
// centralize index handling so error-vs-success behavior is identical
// across container kinds; downstream row selection, join, and merge code
// depends on that uniformity.
package column
