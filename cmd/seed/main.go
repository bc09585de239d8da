package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"brokeria-dashboard-be/internal/config"
	"brokeria-dashboard-be/internal/entity"
	"brokeria-dashboard-be/internal/mapper"
	"brokeria-dashboard-be/internal/model"
	"brokeria-dashboard-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

var (
	statuses = []entity.RecordStatus{
		entity.RecordStatusPendente,
		entity.RecordStatusEmAtendimento,
		entity.RecordStatusConcluido,
		entity.RecordStatusCancelado,
	}
	insuranceTypes = []entity.InsuranceType{
		entity.InsuranceAutomovel,
		entity.InsuranceResidencial,
		entity.InsuranceVida,
		entity.InsuranceSaude,
		entity.InsuranceEmpresarial,
	}
	requestTypes = []string{"Cotação", "Renovação", "Sinistro", "Dúvida", "Segunda via"}
	stages       = []string{"Primeiro contato", "Coleta de dados", "Cotação enviada", "Negociação", "Fechamento"}
	names        = []string{"Ana Souza", "Bruno Lima", "Carla Dias", "Diego Rocha", "Elisa Martins", "Fábio Alves"}
	origins      = []string{"whatsapp", "site", "indicacao", "instagram"}
)

// Dev-only: inserts synthetic records spread over the last 30 days.
func main() {
	n := flag.Int("n", 50, "number of records to insert")
	flag.Parse()

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.DSN(), database.DefaultPoolConfig(), nil)
	if err != nil {
		color.Red("Error: failed to connect to database: %v", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	recordMapper := mapper.NewRecordMapper()

	records := make([]*model.Record, 0, *n)
	for i := 0; i < *n; i++ {
		records = append(records, recordMapper.ToModel(syntheticRecord(rng)))
	}

	color.Cyan("Seeding %d records...", len(records))
	if err := db.CreateInBatches(records, 100).Error; err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	color.Green("Seeded %d records", len(records))
}

func syntheticRecord(rng *rand.Rand) *entity.Record {
	contactedAt := time.Now().Add(-time.Duration(rng.Int63n(int64(30 * 24 * time.Hour))))
	name := pick(rng, names)
	insurance := string(pick(rng, insuranceTypes))
	request := pick(rng, requestTypes)
	stage := pick(rng, stages)
	origin := pick(rng, origins)
	session := uuid.NewString()
	transcript := fmt.Sprintf("Cliente: Olá, gostaria de uma %s de seguro %s.\nBot: Olá %s! Vou te ajudar com isso.\nCliente: Obrigado.",
		request, insurance, name)

	rec := &entity.Record{
		Phone:         fmt.Sprintf("55119%08d", rng.Intn(100000000)),
		Name:          &name,
		InsuranceType: &insurance,
		RequestType:   &request,
		Status:        pick(rng, statuses),
		FunnelStage:   &stage,
		MessageCount:  1 + rng.Intn(40),
		ContactedAt:   &contactedAt,
		CreatedAt:     contactedAt,
		ReceivedFiles: rng.Intn(3) == 0,
		SessionId:     &session,
		LeadOrigin:    &origin,
		Transcript:    &transcript,
	}
	if rec.ReceivedFiles {
		docs := "CNH, CRLV"
		rec.DocumentTypes = &docs
	}
	return rec
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
