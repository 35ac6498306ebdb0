// Package viz renders polynomials for the terminal.
//
//   - [Highlight]: lipgloss colouring of a canonical expression
//   - [Spectrum]: asciigraph chart of coefficients by exponent
//   - three built-in themes, see [ThemeByName]
package viz
