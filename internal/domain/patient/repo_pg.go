package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clientehm/api/internal/platform/apperr"
	"github.com/clientehm/api/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

const patientCols = `id, nome_completo, cpf, data_nascimento, sexo, telefone, email, endereco,
	deleted_at, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO paciente (id, nome_completo, cpf, data_nascimento, sexo, telefone, email, endereco)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		p.ID, p.NomeCompleto, p.CPF, p.DataNascimento, p.Sexo, p.Telefone, p.Email, p.Endereco,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if db.IsUniqueViolation(err, "uq_paciente_cpf") {
		return apperr.Wrap(apperr.KindDuplicate, MsgCPFTaken, err)
	}
	if err != nil {
		return fmt.Errorf("insert paciente: %w", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx, `SELECT `+patientCols+` FROM paciente WHERE id = $1`, id))
}

func (r *repoPG) GetByCPF(ctx context.Context, cpf string) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx, `SELECT `+patientCols+` FROM paciente WHERE cpf = $1`, cpf))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE paciente SET
			nome_completo = $2, data_nascimento = $3, sexo = $4, telefone = $5,
			email = $6, endereco = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		p.ID, p.NomeCompleto, p.DataNascimento, p.Sexo, p.Telefone, p.Email, p.Endereco,
	).Scan(&p.UpdatedAt)
	if db.IsNoRows(err) {
		return apperr.NotFound(MsgNotFound)
	}
	if err != nil {
		return fmt.Errorf("update paciente: %w", err)
	}
	return nil
}

func (r *repoPG) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE paciente SET deleted_at = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete paciente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, f ListFilter) ([]*Patient, int, error) {
	var (
		clauses []string
		args    []interface{}
	)
	if !f.IncludeDeleted {
		clauses = append(clauses, "deleted_at IS NULL")
	}
	if f.Nome != "" {
		args = append(args, "%"+f.Nome+"%")
		clauses = append(clauses, fmt.Sprintf("nome_completo ILIKE $%d", len(args)))
	}
	if f.CPF != "" {
		args = append(args, f.CPF+"%")
		clauses = append(clauses, fmt.Sprintf("cpf LIKE $%d", len(args)))
	}
	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM paciente`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pacientes: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM paciente%s ORDER BY nome_completo, id LIMIT $%d OFFSET $%d`,
		patientCols, where, len(args)-1, len(args))
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list pacientes: %w", err)
	}
	defer rows.Close()

	var out []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.NomeCompleto, &p.CPF, &p.DataNascimento, &p.Sexo, &p.Telefone,
		&p.Email, &p.Endereco, &p.DeletedAt, &p.CreatedAt, &p.UpdatedAt)
	if db.IsNoRows(err) {
		return nil, apperr.NotFound(MsgNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan paciente: %w", err)
	}
	return &p, nil
}

type recordRepoPG struct {
	pool *pgxpool.Pool
}

func NewRecordRepo(pool *pgxpool.Pool) RecordRepository {
	return &recordRepoPG{pool: pool}
}

func (r *recordRepoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

const recordCols = `id, paciente_id, numero_prontuario, status, created_at, updated_at`

func (r *recordRepoPG) Create(ctx context.Context, rec *MedicalRecord) error {
	rec.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO prontuario (id, paciente_id, numero_prontuario, status)
		VALUES ($1, $2, 'PR-' || LPAD(nextval('prontuario_numero_seq')::text, 8, '0'), $3)
		RETURNING numero_prontuario, status, created_at, updated_at`,
		rec.ID, rec.PacienteID, StatusActive,
	).Scan(&rec.NumeroProntuario, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt)
	if db.IsUniqueViolation(err, "uq_prontuario_paciente") {
		return apperr.Wrap(apperr.KindDuplicate, MsgRecordExists, err)
	}
	if err != nil {
		return fmt.Errorf("insert prontuario: %w", err)
	}
	return nil
}

func (r *recordRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*MedicalRecord, error) {
	return scanRecord(r.conn(ctx).QueryRow(ctx, `SELECT `+recordCols+` FROM prontuario WHERE id = $1`, id))
}

func (r *recordRepoPG) GetByPatient(ctx context.Context, patientID uuid.UUID) (*MedicalRecord, error) {
	return scanRecord(r.conn(ctx).QueryRow(ctx, `SELECT `+recordCols+` FROM prontuario WHERE paciente_id = $1`, patientID))
}

func (r *recordRepoPG) SetStatus(ctx context.Context, id uuid.UUID, status RecordStatus) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE prontuario SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update prontuario status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgRecordNotFound)
	}
	return nil
}

func scanRecord(row pgx.Row) (*MedicalRecord, error) {
	var rec MedicalRecord
	err := row.Scan(&rec.ID, &rec.PacienteID, &rec.NumeroProntuario, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt)
	if db.IsNoRows(err) {
		return nil, apperr.NotFound(MsgRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan prontuario: %w", err)
	}
	return &rec, nil
}
