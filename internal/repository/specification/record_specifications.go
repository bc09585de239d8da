package specification

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// RecordField is the closed set of record columns a Predicate may reference.
// Column names never come from request input.
type RecordField string

const (
	FieldID            RecordField = "id_atendimento"
	FieldPhone         RecordField = "telefone"
	FieldStatus        RecordField = "status_atendimento"
	FieldRequestType   RecordField = "tipo_solicitacao"
	FieldInsuranceType RecordField = "tipo_seguro"
	FieldFunnelStage   RecordField = "etapa_funil"
	FieldContactedAt   RecordField = "data_atendimento"
	FieldCreatedAt     RecordField = "data_criacao_registro"
)

func (f RecordField) valid() bool {
	switch f {
	case FieldID, FieldPhone, FieldStatus, FieldRequestType, FieldInsuranceType,
		FieldFunnelStage, FieldContactedAt, FieldCreatedAt:
		return true
	}
	return false
}

type Operator string

const (
	OpEq  Operator = "="
	OpGt  Operator = ">"
	OpGte Operator = ">="
	OpLt  Operator = "<"
	OpLte Operator = "<="
)

func (o Operator) valid() bool {
	switch o {
	case OpEq, OpGt, OpGte, OpLt, OpLte:
		return true
	}
	return false
}

// Predicate is a single typed condition: field, operator, bound value.
type Predicate struct {
	Field RecordField
	Op    Operator
	Value interface{}
}

func (p Predicate) Apply(db *gorm.DB) *gorm.DB {
	if !p.Field.valid() || !p.Op.valid() {
		_ = db.AddError(fmt.Errorf("specification: unsupported predicate %q %q", p.Field, p.Op))
		return db
	}
	return db.Where(fmt.Sprintf("%s %s ?", p.Field, p.Op), p.Value)
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s %s %v", p.Field, p.Op, p.Value)
}

// Eq is shorthand for an equality predicate.
func Eq(field RecordField, value interface{}) Predicate {
	return Predicate{Field: field, Op: OpEq, Value: value}
}

// Predicates is a conjunction; an empty list imposes no constraint.
type Predicates []Predicate

func (ps Predicates) Apply(db *gorm.DB) *gorm.DB {
	for _, p := range ps {
		db = p.Apply(db)
	}
	return db
}

type ByRecordID struct {
	ID int64
}

func (s ByRecordID) Apply(db *gorm.DB) *gorm.DB {
	return Eq(FieldID, s.ID).Apply(db)
}

type ByPhone struct {
	Phone string
}

func (s ByPhone) Apply(db *gorm.DB) *gorm.DB {
	return Eq(FieldPhone, s.Phone).Apply(db)
}

// ContactedSince keeps records whose contact time is strictly after Since.
type ContactedSince struct {
	Since time.Time
}

func (s ContactedSince) Apply(db *gorm.DB) *gorm.DB {
	return Predicate{Field: FieldContactedAt, Op: OpGt, Value: s.Since}.Apply(db)
}

func NewestCreatedFirst() OrderBy {
	return OrderBy{Field: string(FieldCreatedAt), Desc: true}
}

func NewestContactedFirst() OrderBy {
	return OrderBy{Field: string(FieldContactedAt), Desc: true}
}
