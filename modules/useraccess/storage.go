package useraccess

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meetspace/meetspace/pkg/pg"
)

// User is a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type userStore interface {
	CreateUser(ctx context.Context, u User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
}

type storage struct {
	db *pgxpool.Pool
}

func newStorage(db *pgxpool.Pool) *storage {
	return &storage{db: db}
}

func (s *storage) CreateUser(ctx context.Context, u User) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO useraccess_users (id, email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	return err
}

func (s *storage) FindByEmail(ctx context.Context, email string) (User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, created_at
		 FROM useraccess_users WHERE email = $1`, email)
	return scanUser(row)
}

func (s *storage) FindByID(ctx context.Context, id uuid.UUID) (User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, created_at
		 FROM useraccess_users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *storage) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, email, password_hash, role, created_at
		 FROM useraccess_users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if pg.IsNotFoundError(err) {
		return User{}, ErrUserNotFound
	}
	return u, err
}
