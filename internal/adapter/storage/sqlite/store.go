package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"

	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/port"
)

//go:embed migrations/*.sql
var migrations embed.FS

const timeLayout = time.RFC3339Nano

type Store struct {
	db *sql.DB
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA foreign_keys = ON",
				"PRAGMA cache_size = -8000", // 8MB
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

var migrateMu sync.Mutex

func NewStore(dataDir string) (*Store, error) {
	registerHook()

	dbPath := filepath.Join(dataDir, "vodpipe.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection for SQLite (WAL allows concurrent reads but only one writer)
	db.SetMaxOpenConns(1)

	// goose keeps its base FS and dialect in package globals
	migrateMu.Lock()
	defer migrateMu.Unlock()
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const assetColumns = `id, title, description, owner_id, original_file_name, original_location,
	content_type, size_bytes, checksum, state, duration_seconds, manifest_location,
	thumbnail_location, failure_reason, created_at, updated_at`

func (s *Store) Create(ctx context.Context, a *domain.MediaAsset) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO assets (`+assetColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.Description, a.OwnerID, a.OriginalFileName, a.OriginalLocation,
		a.ContentType, a.SizeBytes, a.Checksum, string(a.State),
		nullFloat(a.DurationSeconds), nullString(a.ManifestLocation), nullString(a.ThumbnailLocation),
		a.FailureReason, a.CreatedAt.UTC().Format(timeLayout), a.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert asset %s: %w", a.ID, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.MediaAsset, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = ?`, id)
	a, err := scanAsset(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get asset %s: %w", id, err)
	}
	return a, nil
}

func (s *Store) MarkProcessing(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE assets SET state = ?, updated_at = ? WHERE id = ? AND state = ?`,
		string(domain.AssetStateProcessing), now(), id, string(domain.AssetStateUploading))
	if err != nil {
		return fmt.Errorf("mark processing %s: %w", id, err)
	}
	return s.checkTransition(ctx, res, id)
}

func (s *Store) MarkProcessed(ctx context.Context, id string, r domain.ProcessedResult) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE assets
		SET state = ?, manifest_location = ?, thumbnail_location = ?, duration_seconds = ?,
			failure_reason = '', updated_at = ?
		WHERE id = ? AND state IN (?, ?)`,
		string(domain.AssetStateProcessed), r.ManifestLocation, r.ThumbnailLocation, r.DurationSeconds,
		now(), id, string(domain.AssetStateUploading), string(domain.AssetStateProcessing))
	if err != nil {
		return fmt.Errorf("mark processed %s: %w", id, err)
	}
	return s.checkTransition(ctx, res, id)
}

func (s *Store) MarkFailed(ctx context.Context, id string, reason string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE assets SET state = ?, failure_reason = ?, updated_at = ?
		WHERE id = ? AND state IN (?, ?)`,
		string(domain.AssetStateFailed), reason, now(),
		id, string(domain.AssetStateUploading), string(domain.AssetStateProcessing))
	if err != nil {
		return fmt.Errorf("mark failed %s: %w", id, err)
	}
	return s.checkTransition(ctx, res, id)
}

func (s *Store) ListByState(ctx context.Context, states []domain.AssetState) ([]*domain.MediaAsset, error) {
	if len(states) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(states)), ", ")
	args := make([]any, len(states))
	for i, st := range states {
		args[i] = string(st)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE state IN (`+placeholders+`) ORDER BY created_at`, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets by state: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var result []*domain.MediaAsset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// checkTransition tells a missing record apart from a refused transition
// when a guarded UPDATE touched no rows.
func (s *Store) checkTransition(ctx context.Context, res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	var state string
	err = s.db.QueryRowContext(ctx, `SELECT state FROM assets WHERE id = ?`, id).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read state %s: %w", id, err)
	}
	return fmt.Errorf("%w: asset %s is %s", domain.ErrInvalidTransition, id, state)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(sc scanner) (*domain.MediaAsset, error) {
	var (
		a                  domain.MediaAsset
		state              string
		duration           sql.NullFloat64
		manifest, thumb    sql.NullString
		createdAt, updated string
	)
	if err := sc.Scan(
		&a.ID, &a.Title, &a.Description, &a.OwnerID, &a.OriginalFileName, &a.OriginalLocation,
		&a.ContentType, &a.SizeBytes, &a.Checksum, &state, &duration, &manifest,
		&thumb, &a.FailureReason, &createdAt, &updated,
	); err != nil {
		return nil, err
	}
	a.State = domain.AssetState(state)
	a.DurationSeconds = duration.Float64
	a.ManifestLocation = manifest.String
	a.ThumbnailLocation = thumb.String

	var err error
	if a.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &a, nil
}

func now() string {
	return time.Now().UTC().Format(timeLayout)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: f != 0}
}

var _ port.AssetStore = (*Store)(nil)
