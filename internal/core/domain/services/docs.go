// Package services holds domain logic that spans aggregates: choosing a delivery
// person for an order, dispatching it, and deciding who may move an order along
// its lifecycle.
package services
