// Package services provides domain services that implement business rules
// spanning more than a single aggregate in the dispatch system.
//
// The package includes:
//   - WithdrawalAdmission: the gate deciding whether a courier may withdraw
//     a package, based on the time of day and the courier's daily quota
//
// Domain services hold no mutable state of their own; callers supply the
// aggregates and counts they operate on, which keeps them trivially
// testable and free of infrastructure concerns.
package services
