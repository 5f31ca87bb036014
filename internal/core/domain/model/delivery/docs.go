// Package delivery implements the delivery aggregate: a record of goods
// physically delivered against a purchase order. A delivery has its own
// lifecycle; only deliveries that reach the Delivered state feed the order
// reconciliation computation.
package delivery
