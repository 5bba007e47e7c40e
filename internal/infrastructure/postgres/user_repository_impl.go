package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Koundinya12/UserService/internal/domain/entity"
	"github.com/Koundinya12/UserService/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, email, created_at, updated_at`

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return r.scanUser(ctx, row)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE username = $1
	`, username)
	return r.scanUser(ctx, row)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)
	`, username).Scan(&exists)
	return exists, err
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

// Save upserts the user and reconciles its addresses in one transaction:
// addresses present on the entity are upserted, rows no longer referenced
// are deleted.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	for i := range u.Addresses {
		if u.Addresses[i].ID == "" {
			u.Addresses[i].ID = uuid.NewString()
		}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO users (id, username, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username, email = EXCLUDED.email, updated_at = now()
		RETURNING created_at, updated_at
	`, u.ID, u.Username, u.Email)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	keep := make([]string, 0, len(u.Addresses))
	for _, a := range u.Addresses {
		keep = append(keep, a.ID)
	}
	if _, err := tx.Exec(ctx, `
		DELETE FROM addresses
		WHERE user_id = $1 AND NOT (id = ANY($2))
	`, u.ID, keep); err != nil {
		return nil, err
	}
	for _, a := range u.Addresses {
		if _, err := tx.Exec(ctx, `
			INSERT INTO addresses (id, user_id, street, city, state, zip_code, country, type)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE
			SET street = EXCLUDED.street, city = EXCLUDED.city, state = EXCLUDED.state,
			    zip_code = EXCLUDED.zip_code, country = EXCLUDED.country, type = EXCLUDED.type
		`, a.ID, u.ID, a.Street, a.City, a.State, a.ZipCode, a.Country, a.Type); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) scanUser(ctx context.Context, row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var createdAt, updatedAt time.Time
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.CreatedAt = createdAt
	u.UpdatedAt = updatedAt

	addrs, err := r.loadAddresses(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Addresses = addrs
	return u, nil
}

func (r *UserRepository) loadAddresses(ctx context.Context, userID string) ([]entity.Address, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, street, city, state, zip_code, country, type
		FROM addresses
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Address{}
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.City, &a.State, &a.ZipCode, &a.Country, &a.Type); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ repository.UserRepository = (*UserRepository)(nil)
