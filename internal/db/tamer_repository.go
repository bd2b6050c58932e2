package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/velrin/bestiago/internal/model"
)

// ErrInvalidCredentials is returned for an unknown name or a wrong password.
// The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TamerRepository manages tamer accounts.
type TamerRepository struct {
	pool *pgxpool.Pool
}

// NewTamerRepository creates a TamerRepository on the given pool.
func NewTamerRepository(pool *pgxpool.Pool) *TamerRepository {
	return &TamerRepository{pool: pool}
}

// Create inserts a new tamer with a bcrypt-hashed password and returns the
// stored record.
func (r *TamerRepository) Create(ctx context.Context, name, password string) (*model.Tamer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password for %q: %w", name, err)
	}

	t := &model.Tamer{
		ID:           uuid.NewString(),
		Name:         name,
		PasswordHash: string(hash),
	}
	err = r.pool.QueryRow(ctx,
		`INSERT INTO tamers (id, name, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		t.ID, t.Name, t.PasswordHash,
	).Scan(&t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating tamer %q: %w", name, err)
	}
	return t, nil
}

// GetByName retrieves a tamer by name, case-insensitive.
// Returns nil, nil when the tamer does not exist.
func (r *TamerRepository) GetByName(ctx context.Context, name string) (*model.Tamer, error) {
	var t model.Tamer
	var lastLogin *time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, password_hash, created_at, last_login
		 FROM tamers WHERE LOWER(name) = $1`,
		strings.ToLower(name),
	).Scan(&t.ID, &t.Name, &t.PasswordHash, &t.CreatedAt, &lastLogin)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying tamer %q: %w", name, err)
	}
	if lastLogin != nil {
		t.LastLogin = *lastLogin
	}
	return &t, nil
}

// Authenticate checks name and password against the stored bcrypt hash and
// stamps last_login on success. Fails with ErrInvalidCredentials.
func (r *TamerRepository) Authenticate(ctx context.Context, name, password string) (*model.Tamer, error) {
	t, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if _, err := r.pool.Exec(ctx,
		`UPDATE tamers SET last_login = $1 WHERE id = $2`, now, t.ID,
	); err != nil {
		return nil, fmt.Errorf("updating last login for %q: %w", name, err)
	}
	t.LastLogin = now
	return t, nil
}

// Delete removes a tamer; the creature roster goes with it.
func (r *TamerRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM tamers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting tamer %s: %w", id, err)
	}
	return nil
}
