// Package commands contains the operations that change system state.
//
// Every command is built through its constructor, which validates the input, and
// is executed by a handler. Handlers that mutate an order take the per-order lock
// for the whole read-modify-write sequence and publish the resulting events
// before releasing it, so the events of one order are emitted in commit order.
package commands
