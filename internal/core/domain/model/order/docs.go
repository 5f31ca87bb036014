// Package order implements the purchase order aggregate for the procurement
// domain. An order carries the line items awaiting fulfillment, the approval
// workflow state, and the fulfillment status derived by reconciliation
// against delivered deliveries.
//
// The aggregate deliberately tracks two independent state machines with
// distinct names: ApprovalState (the approve/reject workflow) and
// FulfillmentStatus (derived from delivered quantities). Keeping the two
// state machines separate prevents the vocabulary overlap that arises when
// both are persisted under a single "status" column.
package order
