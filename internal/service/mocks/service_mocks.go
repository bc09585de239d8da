// Package mocks provides testify doubles for the service interfaces.
package mocks

import (
	"context"

	"brokeria-dashboard-be/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.LoginResponse)
	return res, args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, caller *dto.TokenClaims, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	args := m.Called(ctx, caller, req)
	res, _ := args.Get(0).(*dto.RegisterResponse)
	return res, args.Error(1)
}

func (m *MockAuthService) Verify(ctx context.Context, token string) (*dto.TokenClaims, error) {
	args := m.Called(ctx, token)
	res, _ := args.Get(0).(*dto.TokenClaims)
	return res, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *dto.TokenClaims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockAuthService) Me(ctx context.Context, claims *dto.TokenClaims) (*dto.UserSummary, error) {
	args := m.Called(ctx, claims)
	res, _ := args.Get(0).(*dto.UserSummary)
	return res, args.Error(1)
}

func (m *MockAuthService) EnsureDefaultAdmin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*dto.DashboardStatsResponse)
	return res, args.Error(1)
}

func (m *MockRecordService) Recent(ctx context.Context, limit int) ([]*dto.RecordSummaryResponse, error) {
	args := m.Called(ctx, limit)
	res, _ := args.Get(0).([]*dto.RecordSummaryResponse)
	return res, args.Error(1)
}

func (m *MockRecordService) ByType(ctx context.Context) ([]*dto.TypeBreakdownResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]*dto.TypeBreakdownResponse)
	return res, args.Error(1)
}

func (m *MockRecordService) ByStage(ctx context.Context) ([]*dto.StageBreakdownResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]*dto.StageBreakdownResponse)
	return res, args.Error(1)
}

func (m *MockRecordService) ByDay(ctx context.Context) ([]*dto.DailyVolumeResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]*dto.DailyVolumeResponse)
	return res, args.Error(1)
}

func (m *MockRecordService) GetById(ctx context.Context, id int64) (*dto.RecordDetailResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.RecordDetailResponse)
	return res, args.Error(1)
}

func (m *MockRecordService) GetByPhone(ctx context.Context, phone string) ([]*dto.RecordDetailResponse, error) {
	args := m.Called(ctx, phone)
	res, _ := args.Get(0).([]*dto.RecordDetailResponse)
	return res, args.Error(1)
}

func (m *MockRecordService) Filter(ctx context.Context, req *dto.RecordFilterRequest) ([]*dto.RecordSummaryResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).([]*dto.RecordSummaryResponse)
	return res, args.Error(1)
}
