package implementation

import (
	"context"
	"errors"

	"brokeria-dashboard-be/internal/entity"
	"brokeria-dashboard-be/internal/mapper"
	"brokeria-dashboard-be/internal/model"
	"brokeria-dashboard-be/internal/repository/contract"
	"brokeria-dashboard-be/internal/repository/specification"

	"gorm.io/gorm"
)

// Length of the transcript excerpt carried by list projections.
const SummaryExcerptLength = 150

const summaryColumns = `id_atendimento, telefone, nome_cliente, tipo_seguro, tipo_solicitacao,
	status_atendimento, qtde_mensagens, etapa_funil, data_atendimento,
	LEFT(resumo_conversa, ?) AS mensagem_resumo`

const statsColumns = `COUNT(*) AS total_registros,
	COUNT(*) FILTER (WHERE status_atendimento = ?) AS pendentes,
	COUNT(*) FILTER (WHERE status_atendimento = ?) AS em_atendimento,
	COUNT(*) FILTER (WHERE status_atendimento = ?) AS concluidos,
	COUNT(DISTINCT telefone) AS clientes_unicos,
	COUNT(*) FILTER (WHERE data_atendimento::date = CURRENT_DATE) AS hoje`

type RecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecordMapper
}

func NewRecordRepository(db *gorm.DB) contract.RecordRepository {
	return &RecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecordMapper(),
	}
}

func (r *RecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecordRepositoryImpl) records(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Record{})
}

func (r *RecordRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Record, error) {
	var m model.Record
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Record, error) {
	var models []*model.Record
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RecordRepositoryImpl) FindSummaries(ctx context.Context, specs ...specification.Specification) ([]*entity.RecordSummary, error) {
	var rows []*model.RecordSummary
	query := r.applySpecifications(r.records(ctx).Select(summaryColumns, SummaryExcerptLength), specs...)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.SummariesToEntities(rows), nil
}

func (r *RecordRepositoryImpl) GetStats(ctx context.Context, specs ...specification.Specification) (*entity.RecordStats, error) {
	var row model.RecordStats
	query := r.records(ctx).Select(statsColumns,
		string(entity.RecordStatusPendente),
		string(entity.RecordStatusEmAtendimento),
		string(entity.RecordStatusConcluido),
	)
	query = r.applySpecifications(query, specs...)

	if err := query.Scan(&row).Error; err != nil {
		return nil, err
	}
	return r.mapper.StatsToEntity(&row), nil
}

func (r *RecordRepositoryImpl) CountByType(ctx context.Context, specs ...specification.Specification) ([]*entity.TypeBreakdown, error) {
	var rows []*model.TypeBreakdown
	query := r.records(ctx).Select(`tipo_seguro, COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status_atendimento = ?) AS pendentes`, string(entity.RecordStatusPendente))
	query = r.applySpecifications(query, specs...).
		Group("tipo_seguro").
		Order("total DESC")

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.TypeBreakdownsToEntities(rows), nil
}

func (r *RecordRepositoryImpl) CountByStage(ctx context.Context, specs ...specification.Specification) ([]*entity.StageBreakdown, error) {
	var rows []*model.StageBreakdown
	query := r.records(ctx).Select(`etapa_funil, COUNT(*) AS total,
		COALESCE(AVG(qtde_mensagens), 0)::float8 AS media_mensagens`)
	query = r.applySpecifications(query, specs...).
		Group("etapa_funil").
		Order("total DESC")

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.StageBreakdownsToEntities(rows), nil
}

func (r *RecordRepositoryImpl) CountByDay(ctx context.Context, specs ...specification.Specification) ([]*entity.DailyVolume, error) {
	var rows []*model.DailyVolume
	query := r.records(ctx).Select(`data_atendimento::date AS data, COUNT(*) AS total_registros,
		COUNT(DISTINCT telefone) AS clientes_unicos`)
	query = r.applySpecifications(query, specs...).
		Group("data_atendimento::date").
		Order("data ASC")

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.DailyVolumesToEntities(rows), nil
}
