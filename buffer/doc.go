// Package buffer implements the rune-accurate text store behind the edit area.
//
// A Buffer is an ordered list of lines plus exactly one caret. Coordinates are
// 0-based (X, Y) in runes; the caret column may equal, but never exceed, the
// rune count of its line.
package buffer
