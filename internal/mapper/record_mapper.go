package mapper

import (
	"time"

	"brokeria-dashboard-be/internal/entity"
	"brokeria-dashboard-be/internal/model"
)

type RecordMapper struct{}

func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

func (m *RecordMapper) ToEntity(r *model.Record) *entity.Record {
	if r == nil {
		return nil
	}
	return &entity.Record{
		Id:            r.IdAtendimento,
		Phone:         r.Telefone,
		Name:          r.NomeCliente,
		InsuranceType: r.TipoSeguro,
		RequestType:   r.TipoSolicitacao,
		Status:        entity.RecordStatus(r.StatusAtendimento),
		FunnelStage:   r.EtapaFunil,
		MessageCount:  r.QtdeMensagens,
		ContactedAt:   r.DataAtendimento,
		CreatedAt:     r.DataCriacaoRegistro,
		ReceivedFiles: r.RecebeuArquivos,
		DocumentTypes: r.TiposDocumentos,
		SessionId:     r.IdConversaWhatsapp,
		LeadOrigin:    r.OrigemLead,
		Transcript:    r.ResumoConversa,
	}
}

// ToModel is used by the seeding tool; the service itself never writes records.
func (m *RecordMapper) ToModel(r *entity.Record) *model.Record {
	if r == nil {
		return nil
	}
	return &model.Record{
		IdAtendimento:       r.Id,
		Telefone:            r.Phone,
		NomeCliente:         r.Name,
		TipoSeguro:          r.InsuranceType,
		TipoSolicitacao:     r.RequestType,
		StatusAtendimento:   string(r.Status),
		EtapaFunil:          r.FunnelStage,
		QtdeMensagens:       r.MessageCount,
		DataAtendimento:     r.ContactedAt,
		DataCriacaoRegistro: r.CreatedAt,
		RecebeuArquivos:     r.ReceivedFiles,
		TiposDocumentos:     r.DocumentTypes,
		IdConversaWhatsapp:  r.SessionId,
		OrigemLead:          r.LeadOrigin,
		ResumoConversa:      r.Transcript,
	}
}

func (m *RecordMapper) ToEntities(records []*model.Record) []*entity.Record {
	entities := make([]*entity.Record, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *RecordMapper) SummaryToEntity(s *model.RecordSummary) *entity.RecordSummary {
	if s == nil {
		return nil
	}
	return &entity.RecordSummary{
		Id:            s.IdAtendimento,
		Phone:         s.Telefone,
		Name:          s.NomeCliente,
		InsuranceType: s.TipoSeguro,
		RequestType:   s.TipoSolicitacao,
		Status:        entity.RecordStatus(s.StatusAtendimento),
		MessageCount:  s.QtdeMensagens,
		FunnelStage:   s.EtapaFunil,
		ContactedAt:   s.DataAtendimento,
		Excerpt:       s.MensagemResumo,
	}
}

func (m *RecordMapper) SummariesToEntities(summaries []*model.RecordSummary) []*entity.RecordSummary {
	entities := make([]*entity.RecordSummary, len(summaries))
	for i, s := range summaries {
		entities[i] = m.SummaryToEntity(s)
	}
	return entities
}

func (m *RecordMapper) StatsToEntity(s *model.RecordStats) *entity.RecordStats {
	return &entity.RecordStats{
		Total:         s.TotalRegistros,
		Pending:       s.Pendentes,
		InProgress:    s.EmAtendimento,
		Completed:     s.Concluidos,
		UniqueClients: s.ClientesUnicos,
		Today:         s.Hoje,
	}
}

func (m *RecordMapper) TypeBreakdownsToEntities(rows []*model.TypeBreakdown) []*entity.TypeBreakdown {
	out := make([]*entity.TypeBreakdown, len(rows))
	for i, r := range rows {
		out[i] = &entity.TypeBreakdown{InsuranceType: r.TipoSeguro, Total: r.Total, Pending: r.Pendentes}
	}
	return out
}

func (m *RecordMapper) StageBreakdownsToEntities(rows []*model.StageBreakdown) []*entity.StageBreakdown {
	out := make([]*entity.StageBreakdown, len(rows))
	for i, r := range rows {
		out[i] = &entity.StageBreakdown{FunnelStage: r.EtapaFunil, Total: r.Total, AvgMessages: r.MediaMensagens}
	}
	return out
}

func (m *RecordMapper) DailyVolumesToEntities(rows []*model.DailyVolume) []*entity.DailyVolume {
	out := make([]*entity.DailyVolume, len(rows))
	for i, r := range rows {
		out[i] = &entity.DailyVolume{Date: time.Time(r.Data), Total: r.TotalRegistros, UniqueClients: r.ClientesUnicos}
	}
	return out
}
