package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pet-adoption/internal/domain"
)

// PetFilter narrows listing queries.
type PetFilter struct {
	ResponsibleID *string
}

// OwnerCheck decides whether the caller may mutate a record owned by ownerID.
// Repositories run it while the record is locked and write only if it returns nil.
type OwnerCheck func(ownerID string) error

// PetRepository encapsulates pet persistence.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) error
	GetByID(ctx context.Context, id string) (*domain.PetDetail, error)
	List(ctx context.Context, filter PetFilter) ([]domain.Pet, error)
	UpdateOwned(ctx context.Context, id string, check OwnerCheck, patch domain.PetPatch) (*domain.Pet, error)
	DeleteOwned(ctx context.Context, id string, check OwnerCheck) error
}

type petRepository struct {
	pool *pgxpool.Pool
}

// NewPetRepository instantiates repository.
func NewPetRepository(pool *pgxpool.Pool) PetRepository {
	return &petRepository{pool: pool}
}

const petColumns = `p.id, p.pet_type, p.name, p.age, p.gender, p.size, p.description_history,
        p.breed, p.color, p.status, p.responsible_id, p.vaccination_history, p.pictures_url,
        p.created_at, p.updated_at`

func (r *petRepository) Create(ctx context.Context, pet *domain.Pet) error {
	const query = `
        INSERT INTO pets (pet_type, name, age, gender, size, description_history, breed, color,
            status, responsible_id, vaccination_history, pictures_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`

	if pet.PicturesURL == nil {
		pet.PicturesURL = []string{}
	}
	err := r.pool.QueryRow(ctx, query,
		pet.PetType,
		pet.Name,
		pet.Age,
		pet.Gender,
		pet.Size,
		pet.DescriptionHistory,
		pet.Breed,
		pet.Color,
		pet.Status,
		pet.ResponsibleID,
		pet.VaccinationHistory,
		pet.PicturesURL,
	).Scan(&pet.ID, &pet.CreatedAt, &pet.UpdatedAt)
	return translate(err)
}

func (r *petRepository) GetByID(ctx context.Context, id string) (*domain.PetDetail, error) {
	const query = `
        SELECT ` + petColumns + `, r.name, r.phone_number, r.email
        FROM pets p JOIN responsibles r ON r.id = p.responsible_id
        WHERE p.id=$1`

	var detail domain.PetDetail
	var contact domain.ResponsibleContact
	dest := append(petScanTargets(&detail.Pet), &contact.Name, &contact.PhoneNumber, &contact.Email)
	if err := r.pool.QueryRow(ctx, query, id).Scan(dest...); err != nil {
		return nil, translate(err)
	}
	detail.Responsible = &contact
	return &detail, nil
}

func (r *petRepository) List(ctx context.Context, filter PetFilter) ([]domain.Pet, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.ResponsibleID != nil {
		args = append(args, *filter.ResponsibleID)
		clauses = append(clauses, fmt.Sprintf("p.responsible_id::text=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM pets p WHERE %s ORDER BY p.created_at DESC`,
		petColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	return scanPets(rows)
}

func (r *petRepository) UpdateOwned(ctx context.Context, id string, check OwnerCheck, patch domain.PetPatch) (*domain.Pet, error) {
	const query = `
        UPDATE pets p SET
            pet_type = COALESCE($3::text, p.pet_type),
            name = COALESCE($4::text, p.name),
            age = COALESCE($5::text, p.age),
            gender = COALESCE($6::text, p.gender),
            size = COALESCE($7::text, p.size),
            description_history = COALESCE($8::text, p.description_history),
            breed = COALESCE($9::text, p.breed),
            color = COALESCE($10::text, p.color),
            status = COALESCE($11::text, p.status),
            vaccination_history = COALESCE($12::text, p.vaccination_history),
            pictures_url = COALESCE($13::text[], p.pictures_url),
            updated_at = NOW()
        WHERE p.id=$1 AND p.responsible_id::text=$2
        RETURNING ` + petColumns

	var pet domain.Pet
	err := pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		ownerID, err := lockOwned(ctx, tx, id, check)
		if err != nil {
			return err
		}
		var pictures []string
		var picturesArg any
		if patch.PicturesURL != nil {
			pictures = *patch.PicturesURL
			if pictures == nil {
				pictures = []string{}
			}
			picturesArg = pictures
		}
		return tx.QueryRow(ctx, query,
			id,
			ownerID,
			patch.PetType,
			patch.Name,
			patch.Age,
			patch.Gender,
			patch.Size,
			patch.DescriptionHistory,
			patch.Breed,
			patch.Color,
			patch.Status,
			patch.VaccinationHistory,
			picturesArg,
		).Scan(petScanTargets(&pet)...)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &pet, nil
}

func (r *petRepository) DeleteOwned(ctx context.Context, id string, check OwnerCheck) error {
	err := pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		ownerID, err := lockOwned(ctx, tx, id, check)
		if err != nil {
			return err
		}
		cmd, err := tx.Exec(ctx, `DELETE FROM pets WHERE id=$1 AND responsible_id::text=$2`, id, ownerID)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	return translate(err)
}

// lockOwned row-locks the pet and runs check inside the caller's transaction.
func lockOwned(ctx context.Context, tx pgx.Tx, id string, check OwnerCheck) (string, error) {
	var owner string
	if err := tx.QueryRow(ctx, `SELECT responsible_id::text FROM pets WHERE id=$1 FOR UPDATE`, id).Scan(&owner); err != nil {
		return "", err
	}
	if check == nil {
		return "", errors.New("owner check required")
	}
	if err := check(owner); err != nil {
		return "", err
	}
	return owner, nil
}

func petScanTargets(pet *domain.Pet) []any {
	return []any{
		&pet.ID,
		&pet.PetType,
		&pet.Name,
		&pet.Age,
		&pet.Gender,
		&pet.Size,
		&pet.DescriptionHistory,
		&pet.Breed,
		&pet.Color,
		&pet.Status,
		&pet.ResponsibleID,
		&pet.VaccinationHistory,
		&pet.PicturesURL,
		&pet.CreatedAt,
		&pet.UpdatedAt,
	}
}

func scanPets(rows pgx.Rows) ([]domain.Pet, error) {
	result := make([]domain.Pet, 0)
	for rows.Next() {
		var pet domain.Pet
		if err := rows.Scan(petScanTargets(&pet)...); err != nil {
			return nil, err
		}
		result = append(result, pet)
	}
	return result, rows.Err()
}
