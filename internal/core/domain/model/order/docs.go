// Package order provides the Order aggregate root and its status state machine.
//
// The package includes:
//   - Order: identity, ordered items, fixed total, delivery address, assignee and timestamps
//   - Item: a line of the order with its unit price and quantity
//   - Assignee: the delivery person an order was dispatched to
//   - Status: the forward-only lifecycle pending -> assigned -> picked_up -> in_transit -> delivered
//
// Key business rules:
//   - The total is computed from the items at creation and never changes afterwards
//   - A status may only advance to its immediate successor; cancelled is reachable
//     from any non-terminal status; delivered and cancelled are terminal
//   - assigned and every later status require an assignee, pending requires none
//   - updatedAt strictly increases on every mutation
//   - Orders are never deleted
package order
