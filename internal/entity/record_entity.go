package entity

import "time"

type RecordStatus string

const (
	RecordStatusPendente      RecordStatus = "PENDENTE"
	RecordStatusEmAtendimento RecordStatus = "EM_ATENDIMENTO"
	RecordStatusConcluido     RecordStatus = "CONCLUIDO"
	RecordStatusCancelado     RecordStatus = "CANCELADO"
)

func (s RecordStatus) Valid() bool {
	switch s {
	case RecordStatusPendente, RecordStatusEmAtendimento, RecordStatusConcluido, RecordStatusCancelado:
		return true
	}
	return false
}

type InsuranceType string

const (
	InsuranceAutomovel   InsuranceType = "AUTOMOVEL"
	InsuranceResidencial InsuranceType = "RESIDENCIAL"
	InsuranceVida        InsuranceType = "VIDA"
	InsuranceSaude       InsuranceType = "SAUDE"
	InsuranceEmpresarial InsuranceType = "EMPRESARIAL"
)

func (t InsuranceType) Valid() bool {
	switch t {
	case InsuranceAutomovel, InsuranceResidencial, InsuranceVida, InsuranceSaude, InsuranceEmpresarial:
		return true
	}
	return false
}

// Record is a chatbot interaction. Status values come from the upstream
// producer and are passed through unvalidated.
type Record struct {
	Id            int64
	Phone         string
	Name          *string
	InsuranceType *string
	RequestType   *string
	Status        RecordStatus
	FunnelStage   *string
	MessageCount  int
	ContactedAt   *time.Time
	CreatedAt     time.Time
	ReceivedFiles bool
	DocumentTypes *string
	SessionId     *string
	LeadOrigin    *string
	Transcript    *string
}

type RecordSummary struct {
	Id            int64
	Phone         string
	Name          *string
	InsuranceType *string
	RequestType   *string
	Status        RecordStatus
	MessageCount  int
	FunnelStage   *string
	ContactedAt   *time.Time
	Excerpt       *string
}

type RecordStats struct {
	Total         int64
	Pending       int64
	InProgress    int64
	Completed     int64
	UniqueClients int64
	Today         int64
}

type TypeBreakdown struct {
	InsuranceType *string
	Total         int64
	Pending       int64
}

type StageBreakdown struct {
	FunnelStage *string
	Total       int64
	AvgMessages float64
}

type DailyVolume struct {
	Date          time.Time
	Total         int64
	UniqueClients int64
}
