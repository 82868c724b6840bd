package clinical

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clientehm/api/internal/platform/apperr"
	"github.com/clientehm/api/internal/platform/db"
)

func softDelete(ctx context.Context, q db.Querier, table string, id uuid.UUID, at time.Time, notFound string) error {
	tag, err := q.Exec(ctx,
		`UPDATE `+table+` SET deleted_at = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(notFound)
	}
	return nil
}

func countByRecord(ctx context.Context, q db.Querier, table string, recordID uuid.UUID) (int, error) {
	var total int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM `+table+` WHERE prontuario_id = $1 AND deleted_at IS NULL`, recordID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}

// -- Consultation --

type consultationRepoPG struct {
	pool *pgxpool.Pool
}

func NewConsultationRepo(pool *pgxpool.Pool) ConsultationRepository {
	return &consultationRepoPG{pool: pool}
}

func (r *consultationRepoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

const consultationCols = `id, prontuario_id, data_hora_consulta, motivo_consulta, queixas_principais,
	pressao_arterial, temperatura, frequencia_cardiaca, saturacao, exame_fisico,
	hipotese_diagnostica, conduta_plano_terapeutico, detalhes_consulta, observacoes_consulta,
	tipo_responsavel, responsavel_id, responsavel_nome_completo, responsavel_especialidade,
	responsavel_crm, deleted_at, created_at, updated_at`

func (r *consultationRepoPG) Create(ctx context.Context, c *Consultation) error {
	c.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO consulta (id, prontuario_id, data_hora_consulta, motivo_consulta, queixas_principais,
			pressao_arterial, temperatura, frequencia_cardiaca, saturacao, exame_fisico,
			hipotese_diagnostica, conduta_plano_terapeutico, detalhes_consulta, observacoes_consulta,
			tipo_responsavel, responsavel_id, responsavel_nome_completo, responsavel_especialidade,
			responsavel_crm)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING created_at, updated_at`,
		c.ID, c.ProntuarioID, c.DataHoraConsulta, c.MotivoConsulta, c.QueixasPrincipais,
		c.PressaoArterial, c.Temperatura, c.FrequenciaCardiaca, c.Saturacao, c.ExameFisico,
		c.HipoteseDiagnostica, c.CondutaPlanoTerapeutico, c.DetalhesConsulta, c.ObservacoesConsulta,
		string(c.Responsavel.Tipo), c.Responsavel.ID, c.Responsavel.NomeCompleto,
		c.Responsavel.Especialidade, c.Responsavel.CRM,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert consulta: %w", err)
	}
	return nil
}

func (r *consultationRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	return scanConsultation(r.conn(ctx).QueryRow(ctx,
		`SELECT `+consultationCols+` FROM consulta WHERE id = $1 AND deleted_at IS NULL`, id))
}

func (r *consultationRepoPG) Update(ctx context.Context, c *Consultation) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE consulta SET
			data_hora_consulta = $2, motivo_consulta = $3, queixas_principais = $4,
			pressao_arterial = $5, temperatura = $6, frequencia_cardiaca = $7, saturacao = $8,
			exame_fisico = $9, hipotese_diagnostica = $10, conduta_plano_terapeutico = $11,
			detalhes_consulta = $12, observacoes_consulta = $13, tipo_responsavel = $14,
			responsavel_id = $15, responsavel_nome_completo = $16, responsavel_especialidade = $17,
			responsavel_crm = $18, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`,
		c.ID, c.DataHoraConsulta, c.MotivoConsulta, c.QueixasPrincipais,
		c.PressaoArterial, c.Temperatura, c.FrequenciaCardiaca, c.Saturacao,
		c.ExameFisico, c.HipoteseDiagnostica, c.CondutaPlanoTerapeutico,
		c.DetalhesConsulta, c.ObservacoesConsulta, string(c.Responsavel.Tipo),
		c.Responsavel.ID, c.Responsavel.NomeCompleto, c.Responsavel.Especialidade,
		c.Responsavel.CRM,
	).Scan(&c.UpdatedAt)
	if db.IsNoRows(err) {
		return apperr.NotFound(MsgConsultationNotFound)
	}
	if err != nil {
		return fmt.Errorf("update consulta: %w", err)
	}
	return nil
}

func (r *consultationRepoPG) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return softDelete(ctx, r.conn(ctx), "consulta", id, at, MsgConsultationNotFound)
}

func (r *consultationRepoPG) ListByRecord(ctx context.Context, recordID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	total, err := countByRecord(ctx, r.conn(ctx), "consulta", recordID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+consultationCols+` FROM consulta
		WHERE prontuario_id = $1 AND deleted_at IS NULL
		ORDER BY data_hora_consulta DESC, id LIMIT $2 OFFSET $3`, recordID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list consultas: %w", err)
	}
	defer rows.Close()

	var out []*Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func scanConsultation(row pgx.Row) (*Consultation, error) {
	var (
		c    Consultation
		tipo string
	)
	err := row.Scan(&c.ID, &c.ProntuarioID, &c.DataHoraConsulta, &c.MotivoConsulta, &c.QueixasPrincipais,
		&c.PressaoArterial, &c.Temperatura, &c.FrequenciaCardiaca, &c.Saturacao, &c.ExameFisico,
		&c.HipoteseDiagnostica, &c.CondutaPlanoTerapeutico, &c.DetalhesConsulta, &c.ObservacoesConsulta,
		&tipo, &c.Responsavel.ID, &c.Responsavel.NomeCompleto, &c.Responsavel.Especialidade,
		&c.Responsavel.CRM, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt)
	if db.IsNoRows(err) {
		return nil, apperr.NotFound(MsgConsultationNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan consulta: %w", err)
	}
	c.Responsavel.Tipo = ResponsibleType(tipo)
	return &c, nil
}

// -- Procedure --

type procedureRepoPG struct {
	pool *pgxpool.Pool
}

func NewProcedureRepo(pool *pgxpool.Pool) ProcedureRepository {
	return &procedureRepoPG{pool: pool}
}

func (r *procedureRepoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

const procedureCols = `id, prontuario_id, data_procedimento, descricao_procedimento, relatorio_procedimento,
	medico_executor_id, nome_responsavel_display, deleted_at, created_at, updated_at`

func (r *procedureRepoPG) Create(ctx context.Context, p *Procedure) error {
	p.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO procedimento (id, prontuario_id, data_procedimento, descricao_procedimento,
			relatorio_procedimento, medico_executor_id, nome_responsavel_display)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		p.ID, p.ProntuarioID, p.DataProcedimento, p.DescricaoProcedimento,
		p.RelatorioProcedimento, p.MedicoExecutorID, p.NomeResponsavelDisplay,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert procedimento: %w", err)
	}
	return nil
}

func (r *procedureRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Procedure, error) {
	return scanProcedure(r.conn(ctx).QueryRow(ctx,
		`SELECT `+procedureCols+` FROM procedimento WHERE id = $1 AND deleted_at IS NULL`, id))
}

func (r *procedureRepoPG) Update(ctx context.Context, p *Procedure) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE procedimento SET
			data_procedimento = $2, descricao_procedimento = $3, relatorio_procedimento = $4,
			medico_executor_id = $5, nome_responsavel_display = $6, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`,
		p.ID, p.DataProcedimento, p.DescricaoProcedimento, p.RelatorioProcedimento,
		p.MedicoExecutorID, p.NomeResponsavelDisplay,
	).Scan(&p.UpdatedAt)
	if db.IsNoRows(err) {
		return apperr.NotFound(MsgProcedureNotFound)
	}
	if err != nil {
		return fmt.Errorf("update procedimento: %w", err)
	}
	return nil
}

func (r *procedureRepoPG) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return softDelete(ctx, r.conn(ctx), "procedimento", id, at, MsgProcedureNotFound)
}

func (r *procedureRepoPG) ListByRecord(ctx context.Context, recordID uuid.UUID, limit, offset int) ([]*Procedure, int, error) {
	total, err := countByRecord(ctx, r.conn(ctx), "procedimento", recordID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+procedureCols+` FROM procedimento
		WHERE prontuario_id = $1 AND deleted_at IS NULL
		ORDER BY data_procedimento DESC, id LIMIT $2 OFFSET $3`, recordID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list procedimentos: %w", err)
	}
	defer rows.Close()

	var out []*Procedure
	for rows.Next() {
		p, err := scanProcedure(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func scanProcedure(row pgx.Row) (*Procedure, error) {
	var p Procedure
	err := row.Scan(&p.ID, &p.ProntuarioID, &p.DataProcedimento, &p.DescricaoProcedimento,
		&p.RelatorioProcedimento, &p.MedicoExecutorID, &p.NomeResponsavelDisplay,
		&p.DeletedAt, &p.CreatedAt, &p.UpdatedAt)
	if db.IsNoRows(err) {
		return nil, apperr.NotFound(MsgProcedureNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan procedimento: %w", err)
	}
	return &p, nil
}

// -- Exam --

type examRepoPG struct {
	pool *pgxpool.Pool
}

func NewExamRepo(pool *pgxpool.Pool) ExamRepository {
	return &examRepoPG{pool: pool}
}

func (r *examRepoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

const examCols = `id, prontuario_id, nome, resultado, observacoes, data_exame,
	medico_responsavel_exame_id, medico_responsavel_exame_nome,
	medico_responsavel_exame_especialidade, medico_responsavel_exame_crm,
	deleted_at, created_at, updated_at`

func (r *examRepoPG) Create(ctx context.Context, e *Exam) error {
	e.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO exame (id, prontuario_id, nome, resultado, observacoes, data_exame,
			medico_responsavel_exame_id, medico_responsavel_exame_nome,
			medico_responsavel_exame_especialidade, medico_responsavel_exame_crm)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		e.ID, e.ProntuarioID, e.Nome, e.Resultado, e.Observacoes, e.DataExame,
		e.MedicoResponsavelExameID, e.MedicoResponsavelExameNome,
		e.MedicoResponsavelExameEspecialidade, e.MedicoResponsavelExameCRM,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert exame: %w", err)
	}
	return nil
}

func (r *examRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Exam, error) {
	return scanExam(r.conn(ctx).QueryRow(ctx,
		`SELECT `+examCols+` FROM exame WHERE id = $1 AND deleted_at IS NULL`, id))
}

func (r *examRepoPG) Update(ctx context.Context, e *Exam) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE exame SET
			nome = $2, resultado = $3, observacoes = $4, data_exame = $5,
			medico_responsavel_exame_id = $6, medico_responsavel_exame_nome = $7,
			medico_responsavel_exame_especialidade = $8, medico_responsavel_exame_crm = $9,
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`,
		e.ID, e.Nome, e.Resultado, e.Observacoes, e.DataExame,
		e.MedicoResponsavelExameID, e.MedicoResponsavelExameNome,
		e.MedicoResponsavelExameEspecialidade, e.MedicoResponsavelExameCRM,
	).Scan(&e.UpdatedAt)
	if db.IsNoRows(err) {
		return apperr.NotFound(MsgExamNotFound)
	}
	if err != nil {
		return fmt.Errorf("update exame: %w", err)
	}
	return nil
}

func (r *examRepoPG) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return softDelete(ctx, r.conn(ctx), "exame", id, at, MsgExamNotFound)
}

func (r *examRepoPG) ListByRecord(ctx context.Context, recordID uuid.UUID, limit, offset int) ([]*Exam, int, error) {
	total, err := countByRecord(ctx, r.conn(ctx), "exame", recordID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+examCols+` FROM exame
		WHERE prontuario_id = $1 AND deleted_at IS NULL
		ORDER BY data_exame DESC, id LIMIT $2 OFFSET $3`, recordID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list exames: %w", err)
	}
	defer rows.Close()

	var out []*Exam
	for rows.Next() {
		e, err := scanExam(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

func scanExam(row pgx.Row) (*Exam, error) {
	var e Exam
	err := row.Scan(&e.ID, &e.ProntuarioID, &e.Nome, &e.Resultado, &e.Observacoes, &e.DataExame,
		&e.MedicoResponsavelExameID, &e.MedicoResponsavelExameNome,
		&e.MedicoResponsavelExameEspecialidade, &e.MedicoResponsavelExameCRM,
		&e.DeletedAt, &e.CreatedAt, &e.UpdatedAt)
	if db.IsNoRows(err) {
		return nil, apperr.NotFound(MsgExamNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan exame: %w", err)
	}
	return &e, nil
}
