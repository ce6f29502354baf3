// Package layout enumerates the eight spatial arrangements a resume template
// can use and describes each one as a tree of regions holding section slots.
//
// Each Arrangement has exactly one composition function, registered in a
// lookup table indexed by the arrangement value. Renderers walk the returned
// Composition; they never branch on the arrangement themselves.
package layout
