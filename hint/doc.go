// Package hint draws transient, multi-line hints (such as function signatures)
// straight into a host buffer above the cursor and takes them away again.
//
// A Manager overwrites the rows above the cursor with padded, decorated hint
// text and keeps the original lines so Hide can put them back exactly. Duck
// and Unduck suspend and resume an overlay without losing it, and a Registry
// keeps one Manager per buffer.
//
// Everything runs synchronously on the caller's goroutine. Out of range rows
// are skipped rather than reported: running out of room near the top of the
// buffer is expected.
package hint
