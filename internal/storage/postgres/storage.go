package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/zoopark/internal/domain/errors"
	"github.com/polkiloo/zoopark/internal/domain/model"
	"github.com/polkiloo/zoopark/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool the storage relies on. Tests
// substitute a pgxmock pool through it.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type animalRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Animals() repository.AnimalRepository {
	return &animalRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS animals (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            age TEXT NOT NULL,
            species TEXT NOT NULL,
            photo_kind TEXT NOT NULL DEFAULT 'none',
            photo_ref TEXT NOT NULL DEFAULT '',
            photo_name TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_animals_photo_kind ON animals(photo_kind)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Username = username
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM users WHERE username=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- AnimalRepository implementation ---

func (r *animalRepository) Create(ctx context.Context, animal *model.Animal, persist func() error) (*model.Animal, error) {
	const query = `INSERT INTO animals (name, age, species, photo_kind, photo_ref, photo_name)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at, updated_at`

	created := *animal
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			animal.Name, animal.Age, animal.Species,
			animal.Photo.Kind, animal.Photo.Ref, animal.Photo.DisplayName,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return err
		}
		if persist != nil {
			// Runs inside the transaction so a failed photo write
			// rolls the insert back.
			return persist()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *animalRepository) GetByID(ctx context.Context, id int64) (*model.Animal, error) {
	const query = `SELECT id, name, age, species, photo_kind, photo_ref, photo_name, created_at, updated_at
                   FROM animals WHERE id=$1`
	var a model.Animal
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Age, &a.Species,
		&a.Photo.Kind, &a.Photo.Ref, &a.Photo.DisplayName,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *animalRepository) List(ctx context.Context) ([]model.Animal, error) {
	const query = `SELECT id, name, age, species, photo_kind, photo_ref, photo_name, created_at, updated_at
                   FROM animals ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Animal
	for rows.Next() {
		var a model.Animal
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Age, &a.Species,
			&a.Photo.Kind, &a.Photo.Ref, &a.Photo.DisplayName,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *animalRepository) Update(ctx context.Context, animal *model.Animal) error {
	const query = `UPDATE animals
                   SET name=$1, age=$2, species=$3, photo_kind=$4, photo_ref=$5, photo_name=$6, updated_at=NOW()
                   WHERE id=$7`
	tag, err := r.storage.pool.Exec(ctx, query,
		animal.Name, animal.Age, animal.Species,
		animal.Photo.Kind, animal.Photo.Ref, animal.Photo.DisplayName,
		animal.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *animalRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM animals WHERE id=$1`
	// Deleting an unknown id is a silent no-op.
	_, err := r.storage.pool.Exec(ctx, query, id)
	return err
}

func (r *animalRepository) StoredPhotoKeys(ctx context.Context) ([]string, error) {
	const query = `SELECT photo_ref FROM animals WHERE photo_kind=$1`
	rows, err := r.storage.pool.Query(ctx, query, model.PhotoStoredFile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
