// Package viz draws trees in the terminal.
//
//   - [Canvas]: Braille dot canvas with a text label overlay; it satisfies
//     render.Surface, so [DrawTree] can lay a tree out on it directly
//   - [Theme] and [Styles]: lipgloss color schemes shared by the CLI and
//     the interactive session
//
// Each Braille cell holds a 2x4 block of dots, so a canvas of W x H cells has
// a drawing area of 2W x 4H dots. Node labels occupy a whole cell and hide
// whatever dots were drawn beneath them.
package viz
