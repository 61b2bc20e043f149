package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"eventAdmin/internal/config"
	"eventAdmin/internal/models"
)

// Storage keeps events that were created through this service but may not
// be returned by the backend yet.
type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}
	if err = s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Storage) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS local_events (
			id              TEXT PRIMARY KEY,
			organization_id TEXT NOT NULL,
			payload         JSONB NOT NULL,
			created_at      TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS local_events_org_idx ON local_events (organization_id, created_at)`

	if _, err := s.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to migrate local_events: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// SaveLocalEvent stores ev for org, replacing an earlier copy with the same id.
func (s *Storage) SaveLocalEvent(ctx context.Context, org string, ev models.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	query := `
		INSERT INTO local_events (id, organization_id, payload, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload`

	createdAt := ev.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err = s.DB.ExecContext(ctx, query, ev.ID, org, payload, createdAt); err != nil {
		return fmt.Errorf("failed to save local event: %w", err)
	}

	return nil
}

func (s *Storage) LocalEvents(ctx context.Context, org string) ([]models.Event, error) {
	query := `
		SELECT payload
		FROM local_events
		WHERE organization_id = $1
		ORDER BY created_at ASC`

	rows, err := s.DB.QueryContext(ctx, query, org)
	if err != nil {
		return nil, fmt.Errorf("failed to get local events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var payload []byte
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan local event: %w", err)
		}

		var ev models.Event
		if err = json.Unmarshal(payload, &ev); err != nil {
			return nil, fmt.Errorf("failed to decode local event: %w", err)
		}
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating local events: %w", err)
	}

	return events, nil
}

// DeleteLocalEvents drops the given ids of org, usually because the backend
// now returns them.
func (s *Storage) DeleteLocalEvents(ctx context.Context, org string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `
		DELETE FROM local_events
		WHERE organization_id = $1 AND id = ANY($2)`

	result, err := s.DB.ExecContext(ctx, query, org, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to delete local events: %w", err)
	}

	n, _ := result.RowsAffected()
	return n, nil
}

func (s *Storage) ClearLocalEvents(ctx context.Context, org string) ([]string, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `DELETE FROM local_events WHERE organization_id = $1 RETURNING id`, org)
	if err != nil {
		return nil, fmt.Errorf("failed to clear local events: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan cleared id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cleared ids: %w", err)
	}

	return ids, tx.Commit()
}
