// Package store persists prompt configuration snapshots and their rendered
// documents to SQLite. Persistence is a caller-side concern: the core builder
// never touches storage, so this package is consumed by the CLI and by
// embedding applications that want named, replayable prompt versions.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/quill-labs/promptforge"
)

//go:embed schema.sql
var sqliteSchema string

// timeLayout is the stored form of created_at. It is fixed-width (fractional
// seconds always nine digits, always UTC) so that lexicographic ordering of
// the column equals chronological ordering; RFC3339Nano strips trailing zeros
// and does not sort.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrNotFound is returned when no snapshot exists with the requested ID.
var ErrNotFound = errors.New("store: snapshot not found")

// Snapshot is one stored prompt version: the full configuration plus the
// document it rendered to at save time.
type Snapshot struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Format    promptforge.Format `json:"format"`
	Config    promptforge.Config `json:"config"`
	Prompt    string             `json:"prompt"`
	CreatedAt time.Time          `json:"created_at"`
}

// SnapshotStore persists snapshots to a SQLite database.
type SnapshotStore struct {
	db *sql.DB
}

// Open opens (or creates) a snapshot store at the given path.
// WAL mode is enabled for concurrent read access.
func Open(path string) (*SnapshotStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: set WAL mode: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Save renders nothing itself: it stores the given configuration and
// pre-rendered prompt under a fresh snapshot ID and returns the record.
func (s *SnapshotStore) Save(ctx context.Context, name string, format promptforge.Format, cfg promptforge.Config, prompt string) (Snapshot, error) {
	configJSON, err := json.Marshal(cfg)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: marshal config: %w", err)
	}

	snap := Snapshot{
		ID:        uuid.NewString(),
		Name:      name,
		Format:    format,
		Config:    cfg,
		Prompt:    prompt,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, name, format, config, prompt, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		snap.ID,
		snap.Name,
		string(snap.Format),
		string(configJSON),
		snap.Prompt,
		snap.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: insert snapshot: %w", err)
	}

	return snap, nil
}

// Get retrieves a snapshot by ID. Returns ErrNotFound when absent.
func (s *SnapshotStore) Get(ctx context.Context, id string) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, format, config, prompt, created_at
		 FROM snapshots WHERE id = ?`, id)

	snap, err := scanSnapshot(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNotFound
	}
	return snap, err
}

// List returns all snapshots, newest first.
func (s *SnapshotStore) List(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, format, config, prompt, created_at
		 FROM snapshots ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("store: list snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]Snapshot, 0)
	for rows.Next() {
		snap, err := scanSnapshot(rows.Scan)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// Delete removes a snapshot by ID. Returns ErrNotFound when absent.
func (s *SnapshotStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete snapshot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete snapshot: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSnapshot(scan func(dest ...any) error) (Snapshot, error) {
	var (
		snap       Snapshot
		format     string
		configJSON string
		createdAt  string
	)
	if err := scan(&snap.ID, &snap.Name, &format, &configJSON, &snap.Prompt, &createdAt); err != nil {
		return Snapshot{}, err
	}

	snap.Format = promptforge.Format(format)

	if err := json.Unmarshal([]byte(configJSON), &snap.Config); err != nil {
		return Snapshot{}, fmt.Errorf("store: unmarshal config: %w", err)
	}

	parsed, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: parse created_at: %w", err)
	}
	snap.CreatedAt = parsed

	return snap, nil
}
