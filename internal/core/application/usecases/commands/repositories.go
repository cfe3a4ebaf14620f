// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management where local state changes, and calls to the remote
// backends where the server is authoritative.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers over the client-local stores (cart and checkpoint ledger).
// Remote backends sit outside these transactions; the ledger exists exactly
// because order creation cannot share a transaction with local state.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// CheckpointRepoFactory provides access to the checkpoint ledger within a transaction.
	CheckpointRepoFactory interface {
		CheckpointRepository() ports.CheckpointRepository
	}

	// CartUoW manages transactions for cart-only operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages transactions spanning the cart and the ledger.
	// Used by the sequencer to read both, append checkpoints one at a time,
	// and clear both atomically once every group has been submitted.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		CheckpointRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	// Each sequencing step runs in its own short transaction so that a
	// committed checkpoint survives a crash in a later step.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
