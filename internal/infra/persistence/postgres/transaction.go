// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewVendorRepository() repository.VendorRepository {
	return NewVendorRepository(f.tx)
}

func (f *gormRepositoryFactory) NewSubscriptionRepository() repository.SubscriptionRepository {
	return NewSubscriptionRepository(f.tx)
}

func (f *gormRepositoryFactory) NewSubscriptionRequestRepository() repository.SubscriptionRequestRepository {
	return NewSubscriptionRequestRepository(f.tx)
}

func (f *gormRepositoryFactory) NewCustomerRepository() repository.CustomerRepository {
	return NewCustomerRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPaymentRepository() repository.PaymentRepository {
	return NewPaymentRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a single database transaction. A returned error or a
// panic rolls the transaction back.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(tx.Error.Error()), "begin")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(err.Error()), "commit")
	}

	return nil
}
