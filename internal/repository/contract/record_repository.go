package contract

import (
	"context"

	"brokeria-dashboard-be/internal/entity"
	"brokeria-dashboard-be/internal/repository/specification"
)

// RecordRepository is read-only; records are written by the chatbot flow upstream.
type RecordRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Record, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Record, error)
	FindSummaries(ctx context.Context, specs ...specification.Specification) ([]*entity.RecordSummary, error)

	// Aggregates. The specs narrow the window (typically specification.ContactedSince).
	GetStats(ctx context.Context, specs ...specification.Specification) (*entity.RecordStats, error)
	CountByType(ctx context.Context, specs ...specification.Specification) ([]*entity.TypeBreakdown, error)
	CountByStage(ctx context.Context, specs ...specification.Specification) ([]*entity.StageBreakdown, error)
	CountByDay(ctx context.Context, specs ...specification.Specification) ([]*entity.DailyVolume, error)
}
