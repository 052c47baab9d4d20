// Package tui runs the interactive session: an input line, an output panel
// and a Braille drawing of the current tree, driven by session.Session.
//
// # Key Bindings
//
//	Enter - Dispatch the input line
//	Tab   - Cycle through command identifiers
//	Esc   - Quit
//
// Input that is neither a command nor a valid encoding ends the session, and
// Run reports it to the caller.
package tui
