package dto

import "time"

type DashboardStatsResponse struct {
	TotalRegistros int64 `json:"total_registros"`
	Pendentes      int64 `json:"pendentes"`
	EmAtendimento  int64 `json:"em_atendimento"`
	Concluidos     int64 `json:"concluidos"`
	ClientesUnicos int64 `json:"clientes_unicos"`
	Hoje           int64 `json:"hoje"`
}

type RecordSummaryResponse struct {
	Id              int64      `json:"id_atendimento"`
	Telefone        string     `json:"telefone"`
	NomeWhatsapp    *string    `json:"nome_whatsapp"`
	TipoSolicitacao *string    `json:"tipo_solicitacao"`
	TipoSeguro      *string    `json:"tipo_seguro"`
	Status          string     `json:"status_atendimento"`
	QtdeMensagens   int        `json:"qtde_mensagens"`
	EtapaFunil      *string    `json:"etapa_funil"`
	DataContato     *time.Time `json:"data_contato"`
	MensagemResumo  *string    `json:"mensagem_resumo"`
}

type RecordDetailResponse struct {
	RecordSummaryResponse
	DataCriacao     time.Time `json:"data_criacao_registro"`
	RecebeuArquivos bool      `json:"recebeu_arquivos"`
	TiposDocumentos *string   `json:"tipos_documentos"`
	SessionId       *string   `json:"session_id"`
	Origem          *string   `json:"origem"`
	MensagemInicial *string   `json:"mensagem_inicial"`
}

type TypeBreakdownResponse struct {
	TipoSeguro *string `json:"tipo_seguro"`
	Total      int64   `json:"total"`
	Pendentes  int64   `json:"pendentes"`
}

type StageBreakdownResponse struct {
	EtapaFunil     *string `json:"etapa_funil"`
	Total          int64   `json:"total"`
	MediaMensagens float64 `json:"media_mensagens"`
}

type DailyVolumeResponse struct {
	Data           string `json:"data"` // YYYY-MM-DD
	TotalRegistros int64  `json:"total_registros"`
	ClientesUnicos int64  `json:"clientes_unicos"`
}

// RecordFilterRequest is bound from the /filtrar query string. Empty fields
// impose no constraint.
type RecordFilterRequest struct {
	Status     string `query:"status" validate:"omitempty,oneof=PENDENTE EM_ATENDIMENTO CONCLUIDO CANCELADO"`
	Tipo       string `query:"tipo" validate:"max=255"`
	Etapa      string `query:"etapa" validate:"max=255"`
	Seguro     string `query:"seguro" validate:"omitempty,oneof=AUTOMOVEL RESIDENCIAL VIDA SAUDE EMPRESARIAL"`
	DataInicio string `query:"dataInicio" validate:"omitempty,datetime=2006-01-02"`
	DataFim    string `query:"dataFim" validate:"omitempty,datetime=2006-01-02"`
}
