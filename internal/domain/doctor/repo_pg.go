package doctor

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

const doctorCols = `id, nome_completo, crm, especialidade, resumo_especialidade, rqe,
	deleted_at, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medico (id, nome_completo, crm, especialidade, resumo_especialidade, rqe)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		d.ID, d.NomeCompleto, d.CRM, d.Especialidade, d.ResumoEspecialidade, d.RQE,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if db.IsUniqueViolation(err, "uq_medico_crm") {
		return apperr.Wrap(apperr.KindDuplicate, MsgCRMTaken, err)
	}
	if err != nil {
		return fmt.Errorf("insert medico: %w", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return scanDoctor(r.conn(ctx).QueryRow(ctx, `SELECT `+doctorCols+` FROM medico WHERE id = $1`, id))
}

func (r *repoPG) GetActiveByCRM(ctx context.Context, crm string) (*Doctor, error) {
	return scanDoctor(r.conn(ctx).QueryRow(ctx,
		`SELECT `+doctorCols+` FROM medico WHERE UPPER(crm) = UPPER($1) AND deleted_at IS NULL`, crm))
}

func (r *repoPG) Update(ctx context.Context, d *Doctor) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE medico SET
			nome_completo = $2, crm = $3, especialidade = $4,
			resumo_especialidade = $5, rqe = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		d.ID, d.NomeCompleto, d.CRM, d.Especialidade, d.ResumoEspecialidade, d.RQE,
	).Scan(&d.UpdatedAt)
	switch {
	case db.IsUniqueViolation(err, "uq_medico_crm"):
		return apperr.Wrap(apperr.KindDuplicate, MsgCRMTaken, err)
	case db.IsNoRows(err):
		return apperr.NotFound(MsgNotFound)
	case err != nil:
		return fmt.Errorf("update medico: %w", err)
	}
	return nil
}

func (r *repoPG) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE medico SET deleted_at = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete medico: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, f ListFilter) ([]*Doctor, int, error) {
	where, args := buildWhere(f)

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM medico`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count medicos: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM medico%s ORDER BY nome_completo, id LIMIT $%d OFFSET $%d`,
		doctorCols, where, len(args)-1, len(args))
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list medicos: %w", err)
	}
	defer rows.Close()

	var out []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}

func buildWhere(f ListFilter) (string, []interface{}) {
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
	if f.Especialidade != "" {
		args = append(args, "%"+f.Especialidade+"%")
		clauses = append(clauses, fmt.Sprintf("especialidade ILIKE $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.NomeCompleto, &d.CRM, &d.Especialidade, &d.ResumoEspecialidade, &d.RQE,
		&d.DeletedAt, &d.CreatedAt, &d.UpdatedAt)
	if db.IsNoRows(err) {
		return nil, apperr.NotFound(MsgNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan medico: %w", err)
	}
	return &d, nil
}
