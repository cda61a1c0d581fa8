// Package buffer holds the open documents of an editor session.
//
// A Buffer pairs a text.Text with its origin path, display title and
// modification state. A Manager owns the ordered set of buffers and the
// identity of the current one; it is never empty.
package buffer
