// Package buffer is a line-oriented, grapheme-accurate document model that
// satisfies the host buffer contract of package hint.
//
// Rows and columns are 0-based; columns count grapheme clusters. Every
// mutation bumps Edits, so callers can assert how many writes an operation
// made.
package buffer
