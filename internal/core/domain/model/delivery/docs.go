// Package delivery contains the Delivery aggregate root and its lifecycle
// state machine. A delivery is handed from a dispatcher to a courier and
// moves through the states Pending, PickedUp and finally Delivered or
// Cancelled.
//
// The status is never stored on its own: it is derived deterministically
// from the three lifecycle timestamps (picked up, delivered, cancelled), so
// it cannot drift out of sync with them. Every mutation validates the
// transition against the current derived status and rejects illegal or
// repeated requests with typed errors, leaving the aggregate untouched on
// failure.
package delivery
