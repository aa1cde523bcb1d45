// Package viz renders reactor trajectories in the terminal.
//
//   - [Chart]: asciigraph line chart of C1, C2, C3 over a shared vertical range
//   - [Canvas]: Braille-based pixel canvas; [PlotTrajectory] draws all three
//     series onto one axis pair
//   - lipgloss styles shared with the interactive form
//
// Series colours follow the classic plot: C1 blue, C2 red, C3 yellow.
package viz
