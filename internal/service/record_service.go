package service

import (
	"context"
	"fmt"
	"time"

	"brokeria-dashboard-be/internal/dto"
	"brokeria-dashboard-be/internal/entity"
	"brokeria-dashboard-be/internal/pkg/apperror"
	"brokeria-dashboard-be/internal/repository/specification"
	"brokeria-dashboard-be/internal/repository/unitofwork"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 500
	FilterResultLimit  = 100

	// Aggregates only look at records contacted within this window.
	ReportingWindow = 30 * 24 * time.Hour

	excerptLength = 150
	dateLayout    = "2006-01-02"
)

type IRecordService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	Recent(ctx context.Context, limit int) ([]*dto.RecordSummaryResponse, error)
	ByType(ctx context.Context) ([]*dto.TypeBreakdownResponse, error)
	ByStage(ctx context.Context) ([]*dto.StageBreakdownResponse, error)
	ByDay(ctx context.Context) ([]*dto.DailyVolumeResponse, error)
	GetById(ctx context.Context, id int64) (*dto.RecordDetailResponse, error)
	GetByPhone(ctx context.Context, phone string) ([]*dto.RecordDetailResponse, error)
	Filter(ctx context.Context, req *dto.RecordFilterRequest) ([]*dto.RecordSummaryResponse, error)
}

type recordService struct {
	uowFactory unitofwork.RepositoryFactory
	now        func() time.Time
}

func NewRecordService(uowFactory unitofwork.RepositoryFactory) IRecordService {
	return &recordService{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (s *recordService) window() specification.ContactedSince {
	return specification.ContactedSince{Since: s.now().Add(-ReportingWindow)}
}

func (s *recordService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := uow.RecordRepository().GetStats(ctx, s.window())
	if err != nil {
		return nil, apperror.Upstream("dashboard stats", err)
	}
	return &dto.DashboardStatsResponse{
		TotalRegistros: stats.Total,
		Pendentes:      stats.Pending,
		EmAtendimento:  stats.InProgress,
		Concluidos:     stats.Completed,
		ClientesUnicos: stats.UniqueClients,
		Hoje:           stats.Today,
	}, nil
}

// ClampRecentLimit keeps a requested page size within [1, MaxRecentLimit].
func ClampRecentLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxRecentLimit {
		return MaxRecentLimit
	}
	return limit
}

func (s *recordService) Recent(ctx context.Context, limit int) ([]*dto.RecordSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.RecordRepository().FindSummaries(ctx,
		specification.NewestCreatedFirst(),
		specification.Limit{N: ClampRecentLimit(limit)},
	)
	if err != nil {
		return nil, apperror.Upstream("recent records", err)
	}
	return toSummaryResponses(rows), nil
}

func (s *recordService) ByType(ctx context.Context) ([]*dto.TypeBreakdownResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.RecordRepository().CountByType(ctx, s.window())
	if err != nil {
		return nil, apperror.Upstream("records by type", err)
	}

	res := make([]*dto.TypeBreakdownResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, &dto.TypeBreakdownResponse{TipoSeguro: r.InsuranceType, Total: r.Total, Pendentes: r.Pending})
	}
	return res, nil
}

func (s *recordService) ByStage(ctx context.Context) ([]*dto.StageBreakdownResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.RecordRepository().CountByStage(ctx, s.window())
	if err != nil {
		return nil, apperror.Upstream("records by stage", err)
	}

	res := make([]*dto.StageBreakdownResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, &dto.StageBreakdownResponse{EtapaFunil: r.FunnelStage, Total: r.Total, MediaMensagens: r.AvgMessages})
	}
	return res, nil
}

func (s *recordService) ByDay(ctx context.Context) ([]*dto.DailyVolumeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.RecordRepository().CountByDay(ctx, s.window())
	if err != nil {
		return nil, apperror.Upstream("records by day", err)
	}

	res := make([]*dto.DailyVolumeResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, &dto.DailyVolumeResponse{
			Data:           r.Date.Format(dateLayout),
			TotalRegistros: r.Total,
			ClientesUnicos: r.UniqueClients,
		})
	}
	return res, nil
}

func (s *recordService) GetById(ctx context.Context, id int64) (*dto.RecordDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rec, err := uow.RecordRepository().FindOne(ctx, specification.ByRecordID{ID: id})
	if err != nil {
		return nil, apperror.Upstream("record by id", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("record %d: %w", id, apperror.ErrNotFound)
	}
	return toDetailResponse(rec), nil
}

func (s *recordService) GetByPhone(ctx context.Context, phone string) ([]*dto.RecordDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	recs, err := uow.RecordRepository().FindAll(ctx,
		specification.ByPhone{Phone: phone},
		specification.NewestCreatedFirst(),
	)
	if err != nil {
		return nil, apperror.Upstream("records by phone", err)
	}

	res := make([]*dto.RecordDetailResponse, 0, len(recs))
	for _, r := range recs {
		res = append(res, toDetailResponse(r))
	}
	return res, nil
}

func (s *recordService) Filter(ctx context.Context, req *dto.RecordFilterRequest) ([]*dto.RecordSummaryResponse, error) {
	predicates, err := BuildFilterPredicates(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.RecordRepository().FindSummaries(ctx,
		predicates,
		specification.NewestContactedFirst(),
		specification.Limit{N: FilterResultLimit},
	)
	if err != nil {
		return nil, apperror.Upstream("filter records", err)
	}
	return toSummaryResponses(rows), nil
}

// BuildFilterPredicates turns the non-empty filter parameters into a
// conjunction. A date-only end bound covers the whole day.
func BuildFilterPredicates(req *dto.RecordFilterRequest) (specification.Predicates, error) {
	predicates := specification.Predicates{}
	if req == nil {
		return predicates, nil
	}

	if req.Status != "" {
		if !entity.RecordStatus(req.Status).Valid() {
			return nil, apperror.Validation("unknown status %q", req.Status)
		}
		predicates = append(predicates, specification.Eq(specification.FieldStatus, req.Status))
	}
	if req.Tipo != "" {
		predicates = append(predicates, specification.Eq(specification.FieldRequestType, req.Tipo))
	}
	if req.Etapa != "" {
		predicates = append(predicates, specification.Eq(specification.FieldFunnelStage, req.Etapa))
	}
	if req.Seguro != "" {
		if !entity.InsuranceType(req.Seguro).Valid() {
			return nil, apperror.Validation("unknown insurance type %q", req.Seguro)
		}
		predicates = append(predicates, specification.Eq(specification.FieldInsuranceType, req.Seguro))
	}

	var from, to time.Time
	if req.DataInicio != "" {
		d, err := time.Parse(dateLayout, req.DataInicio)
		if err != nil {
			return nil, apperror.Validation("dataInicio must be YYYY-MM-DD")
		}
		from = d
		predicates = append(predicates, specification.Predicate{
			Field: specification.FieldContactedAt, Op: specification.OpGte, Value: d,
		})
	}
	if req.DataFim != "" {
		d, err := time.Parse(dateLayout, req.DataFim)
		if err != nil {
			return nil, apperror.Validation("dataFim must be YYYY-MM-DD")
		}
		to = d
		predicates = append(predicates, specification.Predicate{
			Field: specification.FieldContactedAt, Op: specification.OpLt, Value: d.AddDate(0, 0, 1),
		})
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, apperror.Validation("dataFim is before dataInicio")
	}

	return predicates, nil
}

func toSummaryResponses(rows []*entity.RecordSummary) []*dto.RecordSummaryResponse {
	res := make([]*dto.RecordSummaryResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, &dto.RecordSummaryResponse{
			Id:              r.Id,
			Telefone:        r.Phone,
			NomeWhatsapp:    r.Name,
			TipoSolicitacao: r.RequestType,
			TipoSeguro:      r.InsuranceType,
			Status:          string(r.Status),
			QtdeMensagens:   r.MessageCount,
			EtapaFunil:      r.FunnelStage,
			DataContato:     r.ContactedAt,
			MensagemResumo:  r.Excerpt,
		})
	}
	return res
}

func toDetailResponse(r *entity.Record) *dto.RecordDetailResponse {
	return &dto.RecordDetailResponse{
		RecordSummaryResponse: dto.RecordSummaryResponse{
			Id:              r.Id,
			Telefone:        r.Phone,
			NomeWhatsapp:    r.Name,
			TipoSolicitacao: r.RequestType,
			TipoSeguro:      r.InsuranceType,
			Status:          string(r.Status),
			QtdeMensagens:   r.MessageCount,
			EtapaFunil:      r.FunnelStage,
			DataContato:     r.ContactedAt,
			MensagemResumo:  excerpt(r.Transcript),
		},
		DataCriacao:     r.CreatedAt,
		RecebeuArquivos: r.ReceivedFiles,
		TiposDocumentos: r.DocumentTypes,
		SessionId:       r.SessionId,
		Origem:          r.LeadOrigin,
		MensagemInicial: r.Transcript,
	}
}

// excerpt mirrors LEFT(resumo_conversa, 150): characters, not bytes.
func excerpt(transcript *string) *string {
	if transcript == nil {
		return nil
	}
	runes := []rune(*transcript)
	if len(runes) <= excerptLength {
		return transcript
	}
	out := string(runes[:excerptLength])
	return &out
}
