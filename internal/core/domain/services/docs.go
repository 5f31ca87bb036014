// Package services contains domain services: stateless operations over
// aggregates that do not naturally belong to a single aggregate.
//
// The Reconciler computes an order's fulfillment from the deliveries recorded
// against it. It is a pure computation; loading the aggregates and persisting
// the outcome are application-layer concerns.
package services
