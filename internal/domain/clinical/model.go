// Package clinical holds the entries attached to a prontuário:
// consultations, procedures and exams. Each entry stores a snapshot of its
// responsible party taken when the party was assigned; later changes to the
// doctor or administrator are not propagated.
package clinical

import (
	"time"

	"github.com/google/uuid"
)

// ResponsibleType tags who is responsible for a consultation.
type ResponsibleType string

const (
	ResponsibleDoctor ResponsibleType = "MEDICO"
	ResponsibleAdmin  ResponsibleType = "ADMINISTRADOR"
)

// Responsible is the polymorphic responsible party of a consultation with
// its display snapshot.
type Responsible struct {
	Tipo          ResponsibleType
	ID            uuid.UUID
	NomeCompleto  *string
	Especialidade *string
	CRM           *string
}

type Consultation struct {
	ID                      uuid.UUID
	ProntuarioID            uuid.UUID
	DataHoraConsulta        time.Time
	MotivoConsulta          string
	QueixasPrincipais       *string
	PressaoArterial         *string
	Temperatura             *string
	FrequenciaCardiaca      *string
	Saturacao               *string
	ExameFisico             *string
	HipoteseDiagnostica     *string
	CondutaPlanoTerapeutico *string
	DetalhesConsulta        *string
	ObservacoesConsulta     *string
	Responsavel             Responsible
	DeletedAt               *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type Procedure struct {
	ID                     uuid.UUID
	ProntuarioID           uuid.UUID
	DataProcedimento       time.Time
	DescricaoProcedimento  string
	RelatorioProcedimento  *string
	MedicoExecutorID       *uuid.UUID
	NomeResponsavelDisplay *string
	DeletedAt              *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type Exam struct {
	ID                                  uuid.UUID
	ProntuarioID                        uuid.UUID
	Nome                                string
	Resultado                           *string
	Observacoes                         *string
	DataExame                           time.Time
	MedicoResponsavelExameID            *uuid.UUID
	MedicoResponsavelExameNome          *string
	MedicoResponsavelExameEspecialidade *string
	MedicoResponsavelExameCRM           *string
	DeletedAt                           *time.Time
	CreatedAt                           time.Time
	UpdatedAt                           time.Time
}
