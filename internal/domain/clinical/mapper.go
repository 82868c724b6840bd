package clinical

import (
	"strings"

	"github.com/google/uuid"

	"github.com/clientehm/api/internal/domain/admin"
	"github.com/clientehm/api/internal/domain/doctor"
	"github.com/clientehm/api/pkg/patch"
)

func strOf(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// SnapshotDoctor makes d the responsible party of c and copies its display
// fields.
func SnapshotDoctor(c *Consultation, d *doctor.Doctor) {
	if c == nil || d == nil {
		return
	}
	c.Responsavel = Responsible{
		Tipo:          ResponsibleDoctor,
		ID:            d.ID,
		NomeCompleto:  strOf(d.NomeCompleto),
		Especialidade: strOf(d.Especialidade),
		CRM:           strOf(d.CRM),
	}
}

// SnapshotAdmin makes a the responsible party of c. Administrators have no
// specialty or CRM.
func SnapshotAdmin(c *Consultation, a *admin.Administrator) {
	if c == nil || a == nil {
		return
	}
	nome := a.Nome
	if nome == "" {
		nome = a.Email
	}
	c.Responsavel = Responsible{
		Tipo:         ResponsibleAdmin,
		ID:           a.ID,
		NomeCompleto: strOf(nome),
	}
}

func ConsultationToEntity(req *CreateConsultationRequest) *Consultation {
	if req == nil {
		return nil
	}
	c := &Consultation{
		MotivoConsulta:          strings.TrimSpace(req.MotivoConsulta),
		QueixasPrincipais:       patch.Trimmed(req.QueixasPrincipais),
		PressaoArterial:         patch.Trimmed(req.PressaoArterial),
		Temperatura:             patch.Trimmed(req.Temperatura),
		FrequenciaCardiaca:      patch.Trimmed(req.FrequenciaCardiaca),
		Saturacao:               patch.Trimmed(req.Saturacao),
		ExameFisico:             patch.Trimmed(req.ExameFisico),
		HipoteseDiagnostica:     patch.Trimmed(req.HipoteseDiagnostica),
		CondutaPlanoTerapeutico: patch.Trimmed(req.CondutaPlanoTerapeutico),
		DetalhesConsulta:        patch.Trimmed(req.DetalhesConsulta),
		ObservacoesConsulta:     patch.Trimmed(req.ObservacoesConsulta),
	}
	if req.DataHoraConsulta != nil {
		c.DataHoraConsulta = *req.DataHoraConsulta
	}
	return c
}

func ConsultationToDTO(c *Consultation) *ConsultationDTO {
	if c == nil {
		return nil
	}
	return &ConsultationDTO{
		ID:                       c.ID.String(),
		ProntuarioID:             c.ProntuarioID.String(),
		DataHoraConsulta:         c.DataHoraConsulta,
		MotivoConsulta:           c.MotivoConsulta,
		QueixasPrincipais:        c.QueixasPrincipais,
		PressaoArterial:          c.PressaoArterial,
		Temperatura:              c.Temperatura,
		FrequenciaCardiaca:       c.FrequenciaCardiaca,
		Saturacao:                c.Saturacao,
		ExameFisico:              c.ExameFisico,
		HipoteseDiagnostica:      c.HipoteseDiagnostica,
		CondutaPlanoTerapeutico:  c.CondutaPlanoTerapeutico,
		DetalhesConsulta:         c.DetalhesConsulta,
		ObservacoesConsulta:      c.ObservacoesConsulta,
		TipoResponsavel:          string(c.Responsavel.Tipo),
		ResponsavelID:            c.Responsavel.ID.String(),
		ResponsavelNomeCompleto:  c.Responsavel.NomeCompleto,
		ResponsavelEspecialidade: c.Responsavel.Especialidade,
		ResponsavelCRM:           c.Responsavel.CRM,
		CreatedAt:                c.CreatedAt,
		UpdatedAt:                c.UpdatedAt,
	}
}

// UpdateConsultationFromDTO applies the present, non-blank fields of req.
// A non-nil responsible doctor replaces the responsible party together
// with its snapshot.
func UpdateConsultationFromDTO(req *UpdateConsultationRequest, c *Consultation, responsible *doctor.Doctor) {
	if req == nil || c == nil {
		return
	}
	patch.Time(&c.DataHoraConsulta, req.DataHoraConsulta)
	patch.String(&c.MotivoConsulta, req.MotivoConsulta)
	patch.OptionalString(&c.QueixasPrincipais, req.QueixasPrincipais)
	patch.OptionalString(&c.PressaoArterial, req.PressaoArterial)
	patch.OptionalString(&c.Temperatura, req.Temperatura)
	patch.OptionalString(&c.FrequenciaCardiaca, req.FrequenciaCardiaca)
	patch.OptionalString(&c.Saturacao, req.Saturacao)
	patch.OptionalString(&c.ExameFisico, req.ExameFisico)
	patch.OptionalString(&c.HipoteseDiagnostica, req.HipoteseDiagnostica)
	patch.OptionalString(&c.CondutaPlanoTerapeutico, req.CondutaPlanoTerapeutico)
	patch.OptionalString(&c.DetalhesConsulta, req.DetalhesConsulta)
	patch.OptionalString(&c.ObservacoesConsulta, req.ObservacoesConsulta)
	if responsible != nil {
		SnapshotDoctor(c, responsible)
	}
}

// ProcedureToEntity maps the scalar fields of req; the executor is
// assigned with AssignExecutor.
func ProcedureToEntity(req *CreateProcedureRequest) *Procedure {
	if req == nil {
		return nil
	}
	p := &Procedure{
		DescricaoProcedimento: strings.TrimSpace(req.DescricaoProcedimento),
		RelatorioProcedimento: patch.Trimmed(req.RelatorioProcedimento),
	}
	if req.DataProcedimento != nil {
		p.DataProcedimento = *req.DataProcedimento
	}
	return p
}

// AssignExecutor sets the executing doctor and its display name.
func AssignExecutor(p *Procedure, executor *doctor.Doctor) {
	if p == nil || executor == nil {
		return
	}
	id := executor.ID
	p.MedicoExecutorID = &id
	p.NomeResponsavelDisplay = strOf(executor.NomeCompleto)
}

// ProcedureToDTO maps p. executor, when given, is the current state of the
// executing doctor and supplies medicoExecutorNome.
func ProcedureToDTO(p *Procedure, executor *doctor.Doctor) *ProcedureDTO {
	if p == nil {
		return nil
	}
	dto := &ProcedureDTO{
		ID:                     p.ID.String(),
		ProntuarioID:           p.ProntuarioID.String(),
		DataProcedimento:       p.DataProcedimento,
		DescricaoProcedimento:  p.DescricaoProcedimento,
		RelatorioProcedimento:  p.RelatorioProcedimento,
		MedicoExecutorID:       idString(p.MedicoExecutorID),
		NomeResponsavelDisplay: p.NomeResponsavelDisplay,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
	if executor != nil {
		dto.MedicoExecutorID = idString(&executor.ID)
		dto.MedicoExecutorNome = strOf(executor.NomeCompleto)
	}
	return dto
}

func UpdateProcedureFromDTO(req *UpdateProcedureRequest, p *Procedure, executor *doctor.Doctor) {
	if req == nil || p == nil {
		return
	}
	patch.Time(&p.DataProcedimento, req.DataProcedimento)
	patch.String(&p.DescricaoProcedimento, req.DescricaoProcedimento)
	patch.OptionalString(&p.RelatorioProcedimento, req.RelatorioProcedimento)
	AssignExecutor(p, executor)
}

func ExamToEntity(req *CreateExamRequest) *Exam {
	if req == nil {
		return nil
	}
	e := &Exam{
		Nome:        strings.TrimSpace(req.Nome),
		Resultado:   patch.Trimmed(req.Resultado),
		Observacoes: patch.Trimmed(req.Observacoes),
	}
	if req.DataExame != nil {
		e.DataExame = *req.DataExame
	}
	return e
}

// AssignExamDoctor sets the responsible doctor of e and copies its
// display fields.
func AssignExamDoctor(e *Exam, d *doctor.Doctor) {
	if e == nil || d == nil {
		return
	}
	id := d.ID
	e.MedicoResponsavelExameID = &id
	e.MedicoResponsavelExameNome = strOf(d.NomeCompleto)
	e.MedicoResponsavelExameEspecialidade = strOf(d.Especialidade)
	e.MedicoResponsavelExameCRM = strOf(d.CRM)
}

func ExamToDTO(e *Exam) *ExamDTO {
	if e == nil {
		return nil
	}
	return &ExamDTO{
		ID:                                  e.ID.String(),
		ProntuarioID:                        e.ProntuarioID.String(),
		Nome:                                e.Nome,
		Resultado:                           e.Resultado,
		Observacoes:                         e.Observacoes,
		DataExame:                           e.DataExame,
		MedicoResponsavelExameID:            idString(e.MedicoResponsavelExameID),
		MedicoResponsavelExameNome:          e.MedicoResponsavelExameNome,
		MedicoResponsavelExameEspecialidade: e.MedicoResponsavelExameEspecialidade,
		MedicoResponsavelExameCRM:           e.MedicoResponsavelExameCRM,
		CreatedAt:                           e.CreatedAt,
		UpdatedAt:                           e.UpdatedAt,
	}
}

func UpdateExamFromDTO(req *UpdateExamRequest, e *Exam, responsible *doctor.Doctor) {
	if req == nil || e == nil {
		return
	}
	patch.String(&e.Nome, req.Nome)
	patch.OptionalString(&e.Resultado, req.Resultado)
	patch.OptionalString(&e.Observacoes, req.Observacoes)
	patch.Time(&e.DataExame, req.DataExame)
	AssignExamDoctor(e, responsible)
}
