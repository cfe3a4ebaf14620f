// Package postgres provides GORM-based implementation of the Unit of Work
// pattern over the client-local stores: the cart and the checkout checkpoint
// ledger.
//
// Key Features:
//   - Transaction management across both local repositories
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Usage:
//
//	factory := NewGormCheckoutUoWFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.CartRepository().Clear(ctx, userID); err != nil {
//	    return err
//	}
//	if err := uow.CheckpointRepository().Clear(ctx, userID); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"ordering/internal/adapters/out/postgres/cartrepo"
	"ordering/internal/adapters/out/postgres/checkpointrepo"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// GormCheckoutUoWFactory creates unit of work instances spanning the cart
// and the checkpoint ledger. Each business operation gets a fresh instance
// with its own transaction state.
type GormCheckoutUoWFactory struct {
	db *gorm.DB
}

// NewGormCheckoutUoWFactory creates a factory bound to one database
// connection.
func NewGormCheckoutUoWFactory(db *gorm.DB) *GormCheckoutUoWFactory {
	return &GormCheckoutUoWFactory{db: db}
}

// Create produces a new unit of work ready for one business transaction.
func (f *GormCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return &GormUnitOfWork{db: f.db}
}

// GormCartUoWFactory creates unit of work instances for cart-only
// operations.
type GormCartUoWFactory struct {
	db *gorm.DB
}

// NewGormCartUoWFactory creates a factory bound to one database connection.
func NewGormCartUoWFactory(db *gorm.DB) *GormCartUoWFactory {
	return &GormCartUoWFactory{db: db}
}

// Create produces a new unit of work ready for one business transaction.
func (f *GormCartUoWFactory) Create() commands.CartUoW {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction over the cart and
// checkpoint repositories. Repository operations execute within the current
// transaction if one is active, otherwise directly on the main connection.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction. Multiple calls on the same
// instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CartRepository provides cart persistence bound to the current transaction.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return cartrepo.NewGormCartRepository(db)
}

// CheckpointRepository provides ledger persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) CheckpointRepository() ports.CheckpointRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return checkpointrepo.NewGormCheckpointRepository(db)
}
