package clinical

import (
	"time"

	"github.com/google/uuid"
)

// CreateConsultationRequest registers a consultation. Without medicoId the
// authenticated administrator becomes the responsible party.
type CreateConsultationRequest struct {
	DataHoraConsulta        *time.Time `json:"dataHoraConsulta" validate:"required" mensagem:"Data e hora da consulta são obrigatórias"`
	MotivoConsulta          string     `json:"motivoConsulta" validate:"required,notblank,max=1000" mensagem:"Motivo da consulta é obrigatório"`
	QueixasPrincipais       *string    `json:"queixasPrincipais" validate:"omitempty,max=4000"`
	PressaoArterial         *string    `json:"pressaoArterial" validate:"omitempty,max=20"`
	Temperatura             *string    `json:"temperatura" validate:"omitempty,max=10"`
	FrequenciaCardiaca      *string    `json:"frequenciaCardiaca" validate:"omitempty,max=10"`
	Saturacao               *string    `json:"saturacao" validate:"omitempty,max=10"`
	ExameFisico             *string    `json:"exameFisico" validate:"omitempty,max=4000"`
	HipoteseDiagnostica     *string    `json:"hipoteseDiagnostica" validate:"omitempty,max=4000"`
	CondutaPlanoTerapeutico *string    `json:"condutaPlanoTerapeutico" validate:"omitempty,max=4000"`
	DetalhesConsulta        *string    `json:"detalhesConsulta" validate:"omitempty,max=4000"`
	ObservacoesConsulta     *string    `json:"observacoesConsulta" validate:"omitempty,max=4000"`
	MedicoID                *uuid.UUID `json:"medicoId"`
}

// UpdateConsultationRequest is a partial update. medicoId reassigns the
// responsible party to that doctor.
type UpdateConsultationRequest struct {
	DataHoraConsulta        *time.Time `json:"dataHoraConsulta"`
	MotivoConsulta          *string    `json:"motivoConsulta" validate:"omitempty,max=1000"`
	QueixasPrincipais       *string    `json:"queixasPrincipais" validate:"omitempty,max=4000"`
	PressaoArterial         *string    `json:"pressaoArterial" validate:"omitempty,max=20"`
	Temperatura             *string    `json:"temperatura" validate:"omitempty,max=10"`
	FrequenciaCardiaca      *string    `json:"frequenciaCardiaca" validate:"omitempty,max=10"`
	Saturacao               *string    `json:"saturacao" validate:"omitempty,max=10"`
	ExameFisico             *string    `json:"exameFisico" validate:"omitempty,max=4000"`
	HipoteseDiagnostica     *string    `json:"hipoteseDiagnostica" validate:"omitempty,max=4000"`
	CondutaPlanoTerapeutico *string    `json:"condutaPlanoTerapeutico" validate:"omitempty,max=4000"`
	DetalhesConsulta        *string    `json:"detalhesConsulta" validate:"omitempty,max=4000"`
	ObservacoesConsulta     *string    `json:"observacoesConsulta" validate:"omitempty,max=4000"`
	MedicoID                *uuid.UUID `json:"medicoId"`
}

type ConsultationDTO struct {
	ID                       string    `json:"id"`
	ProntuarioID             string    `json:"prontuarioId"`
	DataHoraConsulta         time.Time `json:"dataHoraConsulta"`
	MotivoConsulta           string    `json:"motivoConsulta"`
	QueixasPrincipais        *string   `json:"queixasPrincipais,omitempty"`
	PressaoArterial          *string   `json:"pressaoArterial,omitempty"`
	Temperatura              *string   `json:"temperatura,omitempty"`
	FrequenciaCardiaca       *string   `json:"frequenciaCardiaca,omitempty"`
	Saturacao                *string   `json:"saturacao,omitempty"`
	ExameFisico              *string   `json:"exameFisico,omitempty"`
	HipoteseDiagnostica      *string   `json:"hipoteseDiagnostica,omitempty"`
	CondutaPlanoTerapeutico  *string   `json:"condutaPlanoTerapeutico,omitempty"`
	DetalhesConsulta         *string   `json:"detalhesConsulta,omitempty"`
	ObservacoesConsulta      *string   `json:"observacoesConsulta,omitempty"`
	TipoResponsavel          string    `json:"tipoResponsavel"`
	ResponsavelID            string    `json:"responsavelId"`
	ResponsavelNomeCompleto  *string   `json:"responsavelNomeCompleto,omitempty"`
	ResponsavelEspecialidade *string   `json:"responsavelEspecialidade,omitempty"`
	ResponsavelCRM           *string   `json:"responsavelCRM,omitempty"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

type CreateProcedureRequest struct {
	DataProcedimento      *time.Time `json:"dataProcedimento" validate:"required" mensagem:"Data do procedimento é obrigatória"`
	DescricaoProcedimento string     `json:"descricaoProcedimento" validate:"required,notblank,max=2000" mensagem:"Descrição do procedimento é obrigatória"`
	RelatorioProcedimento *string    `json:"relatorioProcedimento" validate:"omitempty,max=10000"`
	MedicoExecutorID      *uuid.UUID `json:"medicoExecutorId" validate:"required" mensagem:"Médico executor é obrigatório"`
}

type UpdateProcedureRequest struct {
	DataProcedimento      *time.Time `json:"dataProcedimento"`
	DescricaoProcedimento *string    `json:"descricaoProcedimento" validate:"omitempty,max=2000"`
	RelatorioProcedimento *string    `json:"relatorioProcedimento" validate:"omitempty,max=10000"`
	MedicoExecutorID      *uuid.UUID `json:"medicoExecutorId"`
}

// ProcedureDTO carries both the executor's current name and the display
// name captured when the executor was assigned.
type ProcedureDTO struct {
	ID                     string    `json:"id"`
	ProntuarioID           string    `json:"prontuarioId"`
	DataProcedimento       time.Time `json:"dataProcedimento"`
	DescricaoProcedimento  string    `json:"descricaoProcedimento"`
	RelatorioProcedimento  *string   `json:"relatorioProcedimento,omitempty"`
	MedicoExecutorID       *string   `json:"medicoExecutorId,omitempty"`
	MedicoExecutorNome     *string   `json:"medicoExecutorNome,omitempty"`
	NomeResponsavelDisplay *string   `json:"nomeResponsavelDisplay,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

type CreateExamRequest struct {
	Nome                     string     `json:"nome" validate:"required,notblank,max=200" mensagem:"Nome do exame é obrigatório"`
	Resultado                *string    `json:"resultado" validate:"omitempty,max=10000"`
	Observacoes              *string    `json:"observacoes" validate:"omitempty,max=4000"`
	DataExame                *time.Time `json:"dataExame" validate:"required" mensagem:"Data do exame é obrigatória"`
	MedicoResponsavelExameID *uuid.UUID `json:"medicoResponsavelExameId"`
}

type UpdateExamRequest struct {
	Nome                     *string    `json:"nome" validate:"omitempty,max=200"`
	Resultado                *string    `json:"resultado" validate:"omitempty,max=10000"`
	Observacoes              *string    `json:"observacoes" validate:"omitempty,max=4000"`
	DataExame                *time.Time `json:"dataExame"`
	MedicoResponsavelExameID *uuid.UUID `json:"medicoResponsavelExameId"`
}

type ExamDTO struct {
	ID                                  string    `json:"id"`
	ProntuarioID                        string    `json:"prontuarioId"`
	Nome                                string    `json:"nome"`
	Resultado                           *string   `json:"resultado,omitempty"`
	Observacoes                         *string   `json:"observacoes,omitempty"`
	DataExame                           time.Time `json:"dataExame"`
	MedicoResponsavelExameID            *string   `json:"medicoResponsavelExameId,omitempty"`
	MedicoResponsavelExameNome          *string   `json:"medicoResponsavelExameNome,omitempty"`
	MedicoResponsavelExameEspecialidade *string   `json:"medicoResponsavelExameEspecialidade,omitempty"`
	MedicoResponsavelExameCRM           *string   `json:"medicoResponsavelExameCRM,omitempty"`
	CreatedAt                           time.Time `json:"createdAt"`
	UpdatedAt                           time.Time `json:"updatedAt"`
}
