// Package queries holds the read side: each query is a validated value built by
// its constructor and answered by a handler reading through the ports.
// Handlers never modify state and never publish events.
package queries
