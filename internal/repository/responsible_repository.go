package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pet-adoption/internal/domain"
)

// ResponsibleRepository defines persistence access for accounts.
type ResponsibleRepository interface {
	Create(ctx context.Context, responsible *domain.Responsible) error
	Update(ctx context.Context, responsible *domain.Responsible) error
	GetByID(ctx context.Context, id string) (*domain.Responsible, error)
	GetByEmail(ctx context.Context, email string) (*domain.Responsible, error)
	// Delete removes the account; its pets go with it.
	Delete(ctx context.Context, id string) error
}

type responsibleRepository struct {
	pool *pgxpool.Pool
}

// NewResponsibleRepository returns a Postgres-backed implementation.
func NewResponsibleRepository(pool *pgxpool.Pool) ResponsibleRepository {
	return &responsibleRepository{pool: pool}
}

const responsibleColumns = `id, email, name, password_hash, cpf, cnpj, type, phone_number,
        address, postal_code, is_verified, picture_url, created_at, updated_at`

func (r *responsibleRepository) Create(ctx context.Context, responsible *domain.Responsible) error {
	const query = `
        INSERT INTO responsibles (email, name, password_hash, cpf, cnpj, type, phone_number,
            address, postal_code, is_verified, picture_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		responsible.Email,
		responsible.Name,
		responsible.PasswordHash,
		responsible.CPF,
		responsible.CNPJ,
		responsible.Type,
		responsible.PhoneNumber,
		responsible.Address,
		responsible.PostalCode,
		responsible.IsVerified,
		responsible.PictureURL,
	).Scan(&responsible.ID, &responsible.CreatedAt, &responsible.UpdatedAt)
	return translate(err)
}

func (r *responsibleRepository) Update(ctx context.Context, responsible *domain.Responsible) error {
	const query = `
        UPDATE responsibles SET email=$1, phone_number=$2, address=$3, postal_code=$4,
            picture_url=$5, is_verified=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		responsible.Email,
		responsible.PhoneNumber,
		responsible.Address,
		responsible.PostalCode,
		responsible.PictureURL,
		responsible.IsVerified,
		responsible.ID,
	).Scan(&responsible.UpdatedAt)
	return translate(err)
}

func (r *responsibleRepository) GetByID(ctx context.Context, id string) (*domain.Responsible, error) {
	return r.fetchSingle(ctx, `SELECT `+responsibleColumns+` FROM responsibles WHERE id=$1`, id)
}

func (r *responsibleRepository) GetByEmail(ctx context.Context, email string) (*domain.Responsible, error) {
	return r.fetchSingle(ctx, `SELECT `+responsibleColumns+` FROM responsibles WHERE email=$1`, email)
}

func (r *responsibleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM responsibles WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *responsibleRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Responsible, error) {
	responsible, err := scanResponsible(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, translate(err)
	}
	return responsible, nil
}

func scanResponsible(row pgx.Row) (*domain.Responsible, error) {
	var responsible domain.Responsible
	if err := row.Scan(
		&responsible.ID,
		&responsible.Email,
		&responsible.Name,
		&responsible.PasswordHash,
		&responsible.CPF,
		&responsible.CNPJ,
		&responsible.Type,
		&responsible.PhoneNumber,
		&responsible.Address,
		&responsible.PostalCode,
		&responsible.IsVerified,
		&responsible.PictureURL,
		&responsible.CreatedAt,
		&responsible.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &responsible, nil
}
