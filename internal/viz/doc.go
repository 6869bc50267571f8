// Package viz renders a terminal preview of the simulation with Bubble Tea.
//
//   - [Canvas]: braille dot canvas, two by four dots per cell
//   - [Projector]: maps world points to canvas dots through the same
//     view and projection matrices the GPU renderer uses
//   - [Model]: the interactive preview program
//
// # Key Bindings
//
//	Space - Pause/Resume
//	I     - Print the body diagnostic
//	←/→   - Orbit the view
//	↑/↓   - Raise or lower the view
//	+/-   - Zoom
//	T     - Cycle color themes
//	Q     - Quit
package viz
