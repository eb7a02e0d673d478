// Package order provides domain entities and business logic for orders
// entering the orchestration engine. It implements the Order aggregate root
// with a fixed fulfillment lifecycle.
//
// The package includes:
//   - Order: The aggregate root carrying lines, route, payment and weight data
//   - OrderLine: An immutable (SKU, quantity) line item
//   - OrderType: The service level (STANDARD, EXPRESS, PRIORITY) sold to the customer
//   - PaymentMode: PREPAID or COD, affecting courier rate calculation
//   - Stage: The closed ten-stage fulfillment lifecycle state machine
//
// Key business rules:
//   - Orders must have a valid identifier, route pincodes, positive weight,
//     and at least one line
//   - COD orders must carry a positive collectible amount
//   - Lines are immutable once the order is accepted
//   - Stage transitions follow the explicit lifecycle table; the engine
//     itself only populates the first three stages
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
