package unitofwork

import (
	"context"

	"brokeria-dashboard-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RecordRepository() contract.RecordRepository
}
