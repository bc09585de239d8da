package implementation

import (
	"context"
	"testing"
	"time"

	"brokeria-dashboard-be/internal/entity"
	"brokeria-dashboard-be/internal/repository/specification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var summaryRowColumns = []string{
	"id_atendimento", "telefone", "nome_cliente", "tipo_seguro", "tipo_solicitacao",
	"status_atendimento", "qtde_mensagens", "etapa_funil", "data_atendimento", "mensagem_resumo",
}

func TestRecordRepository_FindOneById(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordRepository(db)

	contacted := time.Date(2026, 10, 10, 14, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "brokeria_registros_brokeria" WHERE id_atendimento = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id_atendimento", "telefone", "nome_cliente", "status_atendimento", "qtde_mensagens",
			"data_atendimento", "recebeu_arquivos", "resumo_conversa",
		}).AddRow(9, "5511999990000", "Joana", "PENDENTE", 4, contacted, true, "Cliente: oi\nBot: ola"))

	rec, err := repo.FindOne(context.Background(), specification.ByRecordID{ID: 9})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int64(9), rec.Id)
	assert.Equal(t, entity.RecordStatusPendente, rec.Status)
	require.NotNil(t, rec.Name)
	assert.Equal(t, "Joana", *rec.Name)
	assert.True(t, rec.ReceivedFiles)
	require.NotNil(t, rec.ContactedAt)
	assert.True(t, contacted.Equal(*rec.ContactedAt))
	assert.Nil(t, rec.InsuranceType)
}

func TestRecordRepository_FindOneMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordRepository(db)

	mock.ExpectQuery(`FROM "brokeria_registros_brokeria"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_atendimento"}))

	rec, err := repo.FindOne(context.Background(), specification.ByRecordID{ID: 404})
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRecordRepository_FindAllByPhone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordRepository(db)

	mock.ExpectQuery(`WHERE telefone = \$1 ORDER BY data_criacao_registro DESC`).
		WithArgs("5511988887777").
		WillReturnRows(sqlmock.NewRows([]string{"id_atendimento", "telefone"}).
			AddRow(3, "5511988887777").
			AddRow(1, "5511988887777"))

	recs, err := repo.FindAll(context.Background(),
		specification.ByPhone{Phone: "5511988887777"},
		specification.NewestCreatedFirst(),
	)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, int64(3), recs[0].Id)
}

func TestRecordRepository_FindSummariesCarriesExcerpt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordRepository(db)

	mock.ExpectQuery(`LEFT\(resumo_conversa, \$1\) AS mensagem_resumo FROM "brokeria_registros_brokeria" ORDER BY data_criacao_registro DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows(summaryRowColumns).
			AddRow(2, "5511900000000", nil, "AUTOMOVEL", "Cotação", "PENDENTE", 6, "Coleta", time.Now(), "Cliente: quero cotar"))

	rows, err := repo.FindSummaries(context.Background(),
		specification.NewestCreatedFirst(),
		specification.Limit{N: 20},
	)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Name)
	require.NotNil(t, rows[0].Excerpt)
	assert.Equal(t, "Cliente: quero cotar", *rows[0].Excerpt)
	require.NotNil(t, rows[0].InsuranceType)
	assert.Equal(t, "AUTOMOVEL", *rows[0].InsuranceType)
}

func TestRecordRepository_GetStatsWithinWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordRepository(db)

	since := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`COUNT\(\*\) AS total_registros.*FROM "brokeria_registros_brokeria" WHERE data_atendimento > \$4`).
		WithArgs("PENDENTE", "EM_ATENDIMENTO", "CONCLUIDO", since).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_registros", "pendentes", "em_atendimento", "concluidos", "clientes_unicos", "hoje",
		}).AddRow(3, 1, 1, 1, 2, 0))

	stats, err := repo.GetStats(context.Background(), specification.ContactedSince{Since: since})
	require.NoError(t, err)
	assert.Equal(t, &entity.RecordStats{Total: 3, Pending: 1, InProgress: 1, Completed: 1, UniqueClients: 2, Today: 0}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_CountByTypeOrdersByTotal(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordRepository(db)

	mock.ExpectQuery(`GROUP BY "?tipo_seguro"? ORDER BY total DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"tipo_seguro", "total", "pendentes"}).
			AddRow("AUTOMOVEL", 5, 2).
			AddRow(nil, 1, 1))

	rows, err := repo.CountByType(context.Background(), specification.ContactedSince{Since: time.Now().AddDate(0, 0, -30)})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(5), rows[0].Total)
	assert.Equal(t, int64(2), rows[0].Pending)
	assert.Nil(t, rows[1].InsuranceType)
}

func TestRecordRepository_CountByStageAverages(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordRepository(db)

	mock.ExpectQuery(`COALESCE\(AVG\(qtde_mensagens\), 0\)::float8 AS media_mensagens.*GROUP BY "?etapa_funil"?`).
		WillReturnRows(sqlmock.NewRows([]string{"etapa_funil", "total", "media_mensagens"}).
			AddRow("Cotacao", 4, 7.5))

	rows, err := repo.CountByStage(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 7.5, rows[0].AvgMessages, 0.0001)
}

func TestRecordRepository_CountByDayAscending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordRepository(db)

	d1 := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`data_atendimento::date AS data.*ORDER BY data ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"data", "total_registros", "clientes_unicos"}).
			AddRow(d1, 2, 2).
			AddRow(d2, 3, 1))

	rows, err := repo.CountByDay(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Date.Day())
	assert.Equal(t, int64(3), rows[1].Total)
	assert.Equal(t, int64(1), rows[1].UniqueClients)
}
