// Package memory holds the in-process stores that are the source of truth for
// reads: the order table, the user directory and the chat log. All stores are
// safe for concurrent use and copy values in and out so callers never share
// state with the table.
package memory
