// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, locking, transaction
// management and persistence, with notification events published only after
// a successful commit.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ProblemRepoFactory provides access to the problem repository within a transaction.
	ProblemRepoFactory interface {
		ProblemRepository() ports.ProblemRepository
	}

	// CourierRepoFactory provides access to the courier directory within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// RecipientRepoFactory provides access to the recipient directory within a transaction.
	RecipientRepoFactory interface {
		RecipientRepository() ports.RecipientRepository
	}

	// CourierUoW manages transactions for courier-directory-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// RecipientUoW manages transactions for recipient-directory-only operations.
	RecipientUoW interface {
		TxManager
		RecipientRepoFactory
	}

	// RecipientUoWFactory creates new recipient unit of work instances.
	RecipientUoWFactory interface {
		Create() RecipientUoW
	}

	// WithdrawalUoW manages transactions for the withdrawal admission flow,
	// which reads the courier directory and writes the delivery aggregate.
	WithdrawalUoW interface {
		TxManager
		DeliveryRepoFactory
		CourierRepoFactory
	}

	// WithdrawalUoWFactory creates new withdrawal unit of work instances.
	WithdrawalUoWFactory interface {
		Create() WithdrawalUoW
	}

	// ProblemUoW manages transactions for problem reporting, which checks the
	// delivery and writes the problem report.
	ProblemUoW interface {
		TxManager
		DeliveryRepoFactory
		ProblemRepoFactory
	}

	// ProblemUoWFactory creates new problem unit of work instances.
	ProblemUoWFactory interface {
		Create() ProblemUoW
	}

	// UoW manages transactions across all aggregates. Used by commands that
	// mutate a delivery and denormalize courier/recipient context into the
	// resulting notification event.
	UoW interface {
		TxManager
		DeliveryRepoFactory
		ProblemRepoFactory
		CourierRepoFactory
		RecipientRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
