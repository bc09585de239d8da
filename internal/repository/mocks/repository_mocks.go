// Package mocks provides testify doubles for the repository contracts.
package mocks

import (
	"context"
	"time"

	"brokeria-dashboard-be/internal/entity"
	"brokeria-dashboard-be/internal/repository/contract"
	"brokeria-dashboard-be/internal/repository/specification"
	"brokeria-dashboard-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	args := m.Called(ctx, specs)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userId int64, hash string) error {
	args := m.Called(ctx, userId, hash)
	return args.Error(0)
}

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Record, error) {
	args := m.Called(ctx, specs)
	rec, _ := args.Get(0).(*entity.Record)
	return rec, args.Error(1)
}

func (m *MockRecordRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Record, error) {
	args := m.Called(ctx, specs)
	recs, _ := args.Get(0).([]*entity.Record)
	return recs, args.Error(1)
}

func (m *MockRecordRepository) FindSummaries(ctx context.Context, specs ...specification.Specification) ([]*entity.RecordSummary, error) {
	args := m.Called(ctx, specs)
	rows, _ := args.Get(0).([]*entity.RecordSummary)
	return rows, args.Error(1)
}

func (m *MockRecordRepository) GetStats(ctx context.Context, specs ...specification.Specification) (*entity.RecordStats, error) {
	args := m.Called(ctx, specs)
	stats, _ := args.Get(0).(*entity.RecordStats)
	return stats, args.Error(1)
}

func (m *MockRecordRepository) CountByType(ctx context.Context, specs ...specification.Specification) ([]*entity.TypeBreakdown, error) {
	args := m.Called(ctx, specs)
	rows, _ := args.Get(0).([]*entity.TypeBreakdown)
	return rows, args.Error(1)
}

func (m *MockRecordRepository) CountByStage(ctx context.Context, specs ...specification.Specification) ([]*entity.StageBreakdown, error) {
	args := m.Called(ctx, specs)
	rows, _ := args.Get(0).([]*entity.StageBreakdown)
	return rows, args.Error(1)
}

func (m *MockRecordRepository) CountByDay(ctx context.Context, specs ...specification.Specification) ([]*entity.DailyVolume, error) {
	args := m.Called(ctx, specs)
	rows, _ := args.Get(0).([]*entity.DailyVolume)
	return rows, args.Error(1)
}

type MockTokenDenylist struct {
	mock.Mock
}

func (m *MockTokenDenylist) Revoke(ctx context.Context, tokenId string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenId, expiresAt)
	return args.Error(0)
}

func (m *MockTokenDenylist) IsRevoked(ctx context.Context, tokenId string) (bool, error) {
	args := m.Called(ctx, tokenId)
	return args.Bool(0), args.Error(1)
}

// FakeUnitOfWork hands out the configured doubles and records transaction calls.
type FakeUnitOfWork struct {
	Users   contract.UserRepository
	Records contract.RecordRepository

	Began, Committed, RolledBack int
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) error { u.Began++; return nil }
func (u *FakeUnitOfWork) Commit() error                   { u.Committed++; return nil }
func (u *FakeUnitOfWork) Rollback() error                 { u.RolledBack++; return nil }

func (u *FakeUnitOfWork) UserRepository() contract.UserRepository     { return u.Users }
func (u *FakeUnitOfWork) RecordRepository() contract.RecordRepository { return u.Records }

type FakeRepositoryFactory struct {
	UoW *FakeUnitOfWork
}

func (f *FakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.UoW
}

// NewFactory wires the given doubles into a factory; nil arguments stay nil.
func NewFactory(users contract.UserRepository, records contract.RecordRepository) *FakeRepositoryFactory {
	return &FakeRepositoryFactory{UoW: &FakeUnitOfWork{Users: users, Records: records}}
}
