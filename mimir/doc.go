// Package mimir implements the lexical scanner for the Mimir expression
// language. The language currently recognises:
//   - Unsigned integer literals made of any Unicode numeric runes.
//   - The addition operator `+`.
//
// Whitespace between tokens is skipped. Unrecognised runes are reported
// in-band as Error tokens and scanning resumes at the next rune, so callers
// decide whether a bad character should stop them.
package mimir
