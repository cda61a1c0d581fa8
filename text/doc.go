// Package text implements the line-indexed document storage used by fluxion
// buffers.
//
// Coordinates are 0-based (Row, Col) in runes. Offsets are rune offsets into
// the whole document where each line break counts as a single rune. A line's
// length never includes its line break.
package text
