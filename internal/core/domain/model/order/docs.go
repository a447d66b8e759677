// Package order implements the Order aggregate of the café: an order header
// owned by a login, its line items, and the per-item fulfillment status.
//
// The package includes:
//   - Order: the aggregate root guarding payment, ownership and totals
//   - Item: a line item with its captured price and status
//   - Status: the NotStarted -> Started -> Finished state machine
//   - DomainEvent implementations recorded by Order mutations
//
// Key business rules:
//   - An order's total is the sum of its line item prices and is re-summed
//     after every item replacement
//   - A paid order's items cannot be replaced
//   - Only NotStarted items can be replaced; replacement keeps the status
//   - Status moves forward one step at a time, except a forced finish
package order
