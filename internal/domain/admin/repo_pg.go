package admin

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

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

const adminCols = `id, nome, email, senha_hash, palavra_chave_hash, ultimo_acesso, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, a *Administrator) error {
	a.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO administrador (id, nome, email, senha_hash, palavra_chave_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		a.ID, a.Nome, a.Email, a.SenhaHash, a.PalavraChaveHash,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if db.IsUniqueViolation(err, "uq_administrador_email") {
		return apperr.Wrap(apperr.KindDuplicate, MsgEmailTaken, err)
	}
	if err != nil {
		return fmt.Errorf("insert administrador: %w", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Administrator, error) {
	return scanAdmin(r.conn(ctx).QueryRow(ctx, `SELECT `+adminCols+` FROM administrador WHERE id = $1`, id))
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*Administrator, error) {
	return scanAdmin(r.conn(ctx).QueryRow(ctx,
		`SELECT `+adminCols+` FROM administrador WHERE LOWER(email) = LOWER($1)`, email))
}

func (r *repoPG) Update(ctx context.Context, a *Administrator) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE administrador SET
			nome = $2, email = $3, senha_hash = $4, palavra_chave_hash = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		a.ID, a.Nome, a.Email, a.SenhaHash, a.PalavraChaveHash,
	).Scan(&a.UpdatedAt)
	switch {
	case db.IsUniqueViolation(err, "uq_administrador_email"):
		return apperr.Wrap(apperr.KindDuplicate, MsgEmailTaken, err)
	case db.IsNoRows(err):
		return apperr.NotFound(MsgAdminNotFound)
	case err != nil:
		return fmt.Errorf("update administrador: %w", err)
	}
	return nil
}

func (r *repoPG) TouchLastAccess(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := r.conn(ctx).Exec(ctx,
		`UPDATE administrador SET ultimo_acesso = $2 WHERE id = $1`, id, at); err != nil {
		return fmt.Errorf("update ultimo_acesso: %w", err)
	}
	return nil
}

func scanAdmin(row pgx.Row) (*Administrator, error) {
	var a Administrator
	err := row.Scan(&a.ID, &a.Nome, &a.Email, &a.SenhaHash, &a.PalavraChaveHash,
		&a.UltimoAcesso, &a.CreatedAt, &a.UpdatedAt)
	if db.IsNoRows(err) {
		return nil, apperr.NotFound(MsgAdminNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan administrador: %w", err)
	}
	return &a, nil
}
