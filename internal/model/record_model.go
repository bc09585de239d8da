package model

import (
	"time"

	"gorm.io/datatypes"
)

// Record is one chatbot interaction as written by the upstream WhatsApp flow.
// This service only ever reads it.
type Record struct {
	IdAtendimento       int64      `gorm:"column:id_atendimento;primaryKey;autoIncrement"`
	Telefone            string     `gorm:"column:telefone;type:varchar(32);index;not null"`
	NomeCliente         *string    `gorm:"column:nome_cliente;type:varchar(255)"`
	TipoSeguro          *string    `gorm:"column:tipo_seguro;type:varchar(32)"`
	TipoSolicitacao     *string    `gorm:"column:tipo_solicitacao;type:text"`
	StatusAtendimento   string     `gorm:"column:status_atendimento;type:varchar(32);not null;default:'PENDENTE'"`
	EtapaFunil          *string    `gorm:"column:etapa_funil;type:text"`
	QtdeMensagens       int        `gorm:"column:qtde_mensagens;not null;default:0"`
	DataAtendimento     *time.Time `gorm:"column:data_atendimento;index"`
	DataCriacaoRegistro time.Time  `gorm:"column:data_criacao_registro;not null;default:now()"`
	RecebeuArquivos     bool       `gorm:"column:recebeu_arquivos;not null;default:false"`
	TiposDocumentos     *string    `gorm:"column:tipos_documentos;type:text"`
	IdConversaWhatsapp  *string    `gorm:"column:id_conversa_whatsapp;type:varchar(255)"`
	OrigemLead          *string    `gorm:"column:origem_lead;type:varchar(255)"`
	ResumoConversa      *string    `gorm:"column:resumo_conversa;type:text"`
}

func (Record) TableName() string {
	return "brokeria_registros_brokeria"
}

// RecordSummary is the list projection; MensagemResumo is a transcript excerpt.
type RecordSummary struct {
	IdAtendimento     int64      `gorm:"column:id_atendimento"`
	Telefone          string     `gorm:"column:telefone"`
	NomeCliente       *string    `gorm:"column:nome_cliente"`
	TipoSeguro        *string    `gorm:"column:tipo_seguro"`
	TipoSolicitacao   *string    `gorm:"column:tipo_solicitacao"`
	StatusAtendimento string     `gorm:"column:status_atendimento"`
	QtdeMensagens     int        `gorm:"column:qtde_mensagens"`
	EtapaFunil        *string    `gorm:"column:etapa_funil"`
	DataAtendimento   *time.Time `gorm:"column:data_atendimento"`
	MensagemResumo    *string    `gorm:"column:mensagem_resumo"`
}

type RecordStats struct {
	TotalRegistros int64 `gorm:"column:total_registros"`
	Pendentes      int64 `gorm:"column:pendentes"`
	EmAtendimento  int64 `gorm:"column:em_atendimento"`
	Concluidos     int64 `gorm:"column:concluidos"`
	ClientesUnicos int64 `gorm:"column:clientes_unicos"`
	Hoje           int64 `gorm:"column:hoje"`
}

type TypeBreakdown struct {
	TipoSeguro *string `gorm:"column:tipo_seguro"`
	Total      int64   `gorm:"column:total"`
	Pendentes  int64   `gorm:"column:pendentes"`
}

type StageBreakdown struct {
	EtapaFunil     *string `gorm:"column:etapa_funil"`
	Total          int64   `gorm:"column:total"`
	MediaMensagens float64 `gorm:"column:media_mensagens"`
}

type DailyVolume struct {
	Data           datatypes.Date `gorm:"column:data"`
	TotalRegistros int64          `gorm:"column:total_registros"`
	ClientesUnicos int64          `gorm:"column:clientes_unicos"`
}
