package clinical

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clientehm/api/internal/platform/export"
)

const exportBatch = 200

// ExportRecord renders a prontuário with its active consultations,
// procedures and exams as an XLSX workbook, one sheet per kind. It returns
// the workbook and a suggested file name.
func (s *Service) ExportRecord(ctx context.Context, recordID uuid.UUID) ([]byte, string, error) {
	rec, err := s.records.RecordDetails(ctx, recordID)
	if err != nil {
		return nil, "", err
	}

	wb := export.NewWorkbook()
	if err := wb.AddSheet("Prontuário", []string{"Campo", "Valor"}, [][]string{
		{"Número", rec.NumeroProntuario},
		{"Status", rec.Status},
		{"Paciente", rec.PacienteNome},
		{"CPF", rec.PacienteCPF},
		{"Aberto em", export.FormatTime(rec.CreatedAt)},
	}); err != nil {
		return nil, "", err
	}

	consultations, err := collect(ctx, recordID, s.consultations.ListByRecord)
	if err != nil {
		return nil, "", err
	}
	if err := wb.AddSheet("Consultas", consultationHeaders, rowsOf(consultations, consultationRow)); err != nil {
		return nil, "", err
	}

	procedures, err := collect(ctx, recordID, s.procedures.ListByRecord)
	if err != nil {
		return nil, "", err
	}
	if err := wb.AddSheet("Procedimentos", procedureHeaders, rowsOf(procedures, procedureRow)); err != nil {
		return nil, "", err
	}

	exams, err := collect(ctx, recordID, s.exams.ListByRecord)
	if err != nil {
		return nil, "", err
	}
	if err := wb.AddSheet("Exames", examHeaders, rowsOf(exams, examRow)); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("prontuario-%s.xlsx", rec.NumeroProntuario), nil
}

// collect pages through list until every entry of the record is loaded.
func collect[T any](
	ctx context.Context,
	recordID uuid.UUID,
	list func(ctx context.Context, recordID uuid.UUID, limit, offset int) ([]T, int, error),
) ([]T, error) {
	var all []T
	for offset := 0; ; {
		items, total, err := list(ctx, recordID, exportBatch, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		offset += len(items)
		if len(items) == 0 || offset >= total {
			return all, nil
		}
	}
}

func rowsOf[T any](items []T, row func(T) []string) [][]string {
	out := make([][]string, 0, len(items))
	for _, it := range items {
		out = append(out, row(it))
	}
	return out
}

var consultationHeaders = []string{
	"Data/hora", "Motivo", "Queixas principais", "Pressão arterial", "Temperatura",
	"Frequência cardíaca", "Saturação", "Exame físico", "Hipótese diagnóstica",
	"Conduta", "Detalhes", "Observações", "Tipo de responsável", "Responsável",
	"Especialidade", "CRM",
}

func consultationRow(c *Consultation) []string {
	return []string{
		export.FormatTime(c.DataHoraConsulta),
		c.MotivoConsulta,
		export.Str(c.QueixasPrincipais),
		export.Str(c.PressaoArterial),
		export.Str(c.Temperatura),
		export.Str(c.FrequenciaCardiaca),
		export.Str(c.Saturacao),
		export.Str(c.ExameFisico),
		export.Str(c.HipoteseDiagnostica),
		export.Str(c.CondutaPlanoTerapeutico),
		export.Str(c.DetalhesConsulta),
		export.Str(c.ObservacoesConsulta),
		string(c.Responsavel.Tipo),
		export.Str(c.Responsavel.NomeCompleto),
		export.Str(c.Responsavel.Especialidade),
		export.Str(c.Responsavel.CRM),
	}
}

var procedureHeaders = []string{"Data", "Descrição", "Relatório", "Responsável"}

func procedureRow(p *Procedure) []string {
	return []string{
		export.FormatTime(p.DataProcedimento),
		p.DescricaoProcedimento,
		export.Str(p.RelatorioProcedimento),
		export.Str(p.NomeResponsavelDisplay),
	}
}

var examHeaders = []string{"Data", "Exame", "Resultado", "Observações", "Médico responsável", "Especialidade", "CRM"}

func examRow(e *Exam) []string {
	return []string{
		export.FormatTime(e.DataExame),
		e.Nome,
		export.Str(e.Resultado),
		export.Str(e.Observacoes),
		export.Str(e.MedicoResponsavelExameNome),
		export.Str(e.MedicoResponsavelExameEspecialidade),
		export.Str(e.MedicoResponsavelExameCRM),
	}
}
