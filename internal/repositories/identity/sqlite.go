package identity

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/sunyue-dev/time-exchange/internal/dbx"
	"github.com/sunyue-dev/time-exchange/internal/logging"
	"github.com/sunyue-dev/time-exchange/internal/models"
)

// Storage keys. The counter key is shared by all identities ever created on
// the device, which is what keeps messenger numbers monotonic across logouts.
const (
	identityKey = "time_exchange_user"
	counterKey  = "global_messenger_count"
)

// SQLiteStore implements Store over a key-value table in the local SQLite
// database. Single-threaded access is assumed; NextID still runs in a
// transaction so a read-increment-write can never be torn by an error between
// the two statements.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, log: log}
}

var _ Store = (*SQLiteStore)(nil)

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

// Load reads the persisted identity. A missing key or an undecodable value
// both yield (nil, nil): a corrupted record routes the user back to
// onboarding instead of crashing.
func (s *SQLiteStore) Load(ctx context.Context) (*models.Identity, error) {
	raw, err := s.get(ctx, s.db, identityKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var id models.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		s.log.Warn(ctx, "stored identity is unreadable, treating as absent", "error", err)
		return nil, nil
	}
	return &id, nil
}

// Save writes the identity, overwriting any prior value.
func (s *SQLiteStore) Save(ctx context.Context, id *models.Identity) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}
	return s.set(ctx, s.db, identityKey, raw)
}

// Clear removes the persisted identity.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, identityKey)
	if err != nil {
		return fmt.Errorf("failed to clear identity: %w", err)
	}
	return nil
}

// NextID increments the persistent messenger counter and returns the new
// value formatted as a zero-padded 4-digit decimal string. A missing or
// unreadable counter starts from zero. Values beyond 9999 are not truncated,
// the formatted string simply grows.
func (s *SQLiteStore) NextID(ctx context.Context) (string, error) {
	var next int

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		raw, err := s.get(ctx, tx, counterKey)
		if err != nil {
			return err
		}

		last := 0
		if raw != nil {
			if v, err := strconv.Atoi(string(raw)); err == nil {
				last = v
			} else {
				s.log.Warn(ctx, "messenger counter is unreadable, restarting from zero", "value", string(raw))
			}
		}

		next = last + 1
		return s.set(ctx, tx, counterKey, []byte(strconv.Itoa(next)))
	})
	if err != nil {
		return "", fmt.Errorf("failed to advance messenger counter: %w", err)
	}

	return fmt.Sprintf("%04d", next), nil
}
