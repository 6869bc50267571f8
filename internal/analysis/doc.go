// Package analysis extracts cross-sections from a deformed surface and
// renders them as terminal or PNG charts.
//
//   - [Slice]: heights along one grid row
//   - [Chart]: asciigraph rendering of a profile
//   - [SavePNG]: gonum/plot line chart of one or more profiles
//
// A typical use after advancing a simulation:
//
//	p := analysis.Slice(surf.Samples(), surf.Spec(), pos.Z)
//	fmt.Println(analysis.Chart(p, 60, 12))
package analysis
