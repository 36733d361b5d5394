// Package tui provides immediate-mode drawing primitives over a cell
// buffer: regions, text rendering, layout splitting, scroll math, and
// box drawing. No retained widget state; callers re-render every frame
// and flush the buffer through the terminal package.
package tui
