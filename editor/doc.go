// Package editor implements the edit area: a viewport over an editable
// buffer plus a centered, non-scrolling welcome buffer.
//
// The package turns caret move requests into buffer positions, keeps the
// scroll offset reconciled so the caret stays visible, and exposes the
// visible text slice and screen cursor location. Drawing is left to the host.
package editor
