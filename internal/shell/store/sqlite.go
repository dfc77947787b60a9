package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/artpar/sloganforge/internal/core/domain"
	"github.com/artpar/sloganforge/internal/core/i18n"
	"github.com/artpar/sloganforge/internal/core/slogan"
	"github.com/artpar/sloganforge/internal/core/validation"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// =============================================================================
// Executor Interface - Shared by DB and Transaction
// =============================================================================

// executor abstracts database operations that can be performed on both
// a database connection and a transaction.
type executor interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// =============================================================================
// SQLiteStore
// =============================================================================

// SQLiteStore implements Store using SQLite.
//
// The database normally lives in memory, so the pool is pinned to a single
// connection that is never recycled: closing it would drop every table.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	// Open database connection
	db, err := sqlx.Open("sqlite3", withForeignKeys(dsn))
	if err != nil {
		return nil, NewStoreError("NewSQLiteStore", "", "", "failed to open database", ErrConnectionFailed)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "", "failed to ping database", ErrConnectionFailed)
	}

	// Run migrations
	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "", err.Error(), ErrMigrationFailed)
	}

	return &SQLiteStore{db: db}, nil
}

// withForeignKeys appends the pragma that enables ON DELETE CASCADE.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// runMigrations runs database migrations using embedded SQL files.
func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Ping checks that the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return NewStoreError("Ping", "", "", err.Error(), ErrConnectionFailed)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// Session Operations
// =============================================================================

// sessionRow represents a session row in the database.
type sessionRow struct {
	ID         string `db:"id"`
	Language   string `db:"language"`
	CreatedAt  string `db:"created_at"`
	LastSeenAt string `db:"last_seen_at"`
}

func (s *SQLiteStore) CreateSession(ctx context.Context, session *domain.Session) error {
	return createSession(ctx, s.db, session)
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	return getSession(ctx, s.db, id)
}

func (s *SQLiteStore) UpdateSession(ctx context.Context, session *domain.Session) error {
	return updateSession(ctx, s.db, session)
}

func (s *SQLiteStore) DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	return deleteExpiredSessions(ctx, s.db, cutoff)
}

func (s *SQLiteStore) CountSessions(ctx context.Context) (int, error) {
	return countSessions(ctx, s.db)
}

// =============================================================================
// Batch Operations
// =============================================================================

// batchRow represents a batch row in the database.
type batchRow struct {
	ID          string `db:"id"`
	SessionID   string `db:"session_id"`
	CompanyName string `db:"company_name"`
	Industry    string `db:"industry"`
	Keywords    string `db:"keywords"`
	Tone        string `db:"tone"`
	CreatedAt   string `db:"created_at"`
}

// sloganRow represents a slogan row in the database.
type sloganRow struct {
	BatchID  string `db:"batch_id"`
	ID       string `db:"id"`
	Position int    `db:"position"`
	Text     string `db:"text"`
	Rating   int    `db:"rating"`
}

// ReplaceBatch stores batch in its own transaction, removing the session's
// previous batch.
func (s *SQLiteStore) ReplaceBatch(ctx context.Context, batch *domain.Batch) error {
	return s.WithTx(ctx, func(tx Store) error {
		return tx.ReplaceBatch(ctx, batch)
	})
}

func (s *SQLiteStore) GetBatch(ctx context.Context, id string) (*domain.Batch, error) {
	return getBatch(ctx, s.db, id)
}

func (s *SQLiteStore) GetSessionBatch(ctx context.Context, sessionID string) (*domain.Batch, error) {
	return getSessionBatch(ctx, s.db, sessionID)
}

func (s *SQLiteStore) ListSlogans(ctx context.Context, batchID string, opts ListOptions) ([]slogan.Slogan, error) {
	return listSlogans(ctx, s.db, batchID, opts)
}

func (s *SQLiteStore) RateSlogan(ctx context.Context, batchID, sloganID string, rating int) error {
	return rateSlogan(ctx, s.db, batchID, sloganID, rating)
}

// =============================================================================
// Transaction Support
// =============================================================================

func (s *SQLiteStore) WithTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return NewStoreError("WithTx", "", "", "failed to begin transaction", ErrTxFailed)
	}

	txS := &txSQLiteStore{tx: tx}

	if err := fn(txS); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return NewStoreError("WithTx", "", "", fmt.Sprintf("rollback failed after error: %v", err), ErrTxFailed)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return NewStoreError("WithTx", "", "", "failed to commit transaction", ErrTxFailed)
	}

	return nil
}

// =============================================================================
// Transaction Store
// =============================================================================

// txSQLiteStore implements Store within a transaction.
type txSQLiteStore struct {
	tx *sqlx.Tx
}

func (s *txSQLiteStore) CreateSession(ctx context.Context, session *domain.Session) error {
	return createSession(ctx, s.tx, session)
}

func (s *txSQLiteStore) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	return getSession(ctx, s.tx, id)
}

func (s *txSQLiteStore) UpdateSession(ctx context.Context, session *domain.Session) error {
	return updateSession(ctx, s.tx, session)
}

func (s *txSQLiteStore) DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	return deleteExpiredSessions(ctx, s.tx, cutoff)
}

func (s *txSQLiteStore) CountSessions(ctx context.Context) (int, error) {
	return countSessions(ctx, s.tx)
}

func (s *txSQLiteStore) ReplaceBatch(ctx context.Context, batch *domain.Batch) error {
	return replaceBatch(ctx, s.tx, batch)
}

func (s *txSQLiteStore) GetBatch(ctx context.Context, id string) (*domain.Batch, error) {
	return getBatch(ctx, s.tx, id)
}

func (s *txSQLiteStore) GetSessionBatch(ctx context.Context, sessionID string) (*domain.Batch, error) {
	return getSessionBatch(ctx, s.tx, sessionID)
}

func (s *txSQLiteStore) ListSlogans(ctx context.Context, batchID string, opts ListOptions) ([]slogan.Slogan, error) {
	return listSlogans(ctx, s.tx, batchID, opts)
}

func (s *txSQLiteStore) RateSlogan(ctx context.Context, batchID, sloganID string, rating int) error {
	return rateSlogan(ctx, s.tx, batchID, sloganID, rating)
}

// WithTx runs fn inside the already open transaction.
func (s *txSQLiteStore) WithTx(ctx context.Context, fn func(Store) error) error {
	return fn(s)
}

func (s *txSQLiteStore) Ping(ctx context.Context) error {
	return nil
}

func (s *txSQLiteStore) Close() error {
	return nil
}

// =============================================================================
// Session Implementation
// =============================================================================

func createSession(ctx context.Context, exec executor, session *domain.Session) error {
	query := `
		INSERT INTO sessions (id, language, created_at, last_seen_at)
		VALUES (:id, :language, :created_at, :last_seen_at)`

	row := map[string]any{
		"id":           session.ID,
		"language":     string(session.Language),
		"created_at":   formatTime(session.CreatedAt),
		"last_seen_at": formatTime(session.LastSeenAt),
	}

	_, err := exec.NamedExecContext(ctx, query, row)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: sessions.id") {
			return NewStoreError("CreateSession", "session", session.ID, "session with this ID already exists", ErrDuplicateID)
		}
		return NewStoreError("CreateSession", "session", session.ID, err.Error(), err)
	}

	return nil
}

func getSession(ctx context.Context, exec executor, id string) (*domain.Session, error) {
	query := `SELECT * FROM sessions WHERE id = ?`

	var row sessionRow
	err := exec.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetSession", "session", id, "session not found", ErrNotFound)
		}
		return nil, NewStoreError("GetSession", "session", id, err.Error(), err)
	}

	return rowToSession(&row)
}

func updateSession(ctx context.Context, exec executor, session *domain.Session) error {
	query := `
		UPDATE sessions SET
			language = :language,
			last_seen_at = :last_seen_at
		WHERE id = :id`

	row := map[string]any{
		"id":           session.ID,
		"language":     string(session.Language),
		"last_seen_at": formatTime(session.LastSeenAt),
	}

	result, err := exec.NamedExecContext(ctx, query, row)
	if err != nil {
		return NewStoreError("UpdateSession", "session", session.ID, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateSession", "session", session.ID, "session not found", ErrNotFound)
	}

	return nil
}

func deleteExpiredSessions(ctx context.Context, exec executor, cutoff time.Time) (int64, error) {
	query := `DELETE FROM sessions WHERE last_seen_at < ?`

	result, err := exec.ExecContext(ctx, query, formatTime(cutoff))
	if err != nil {
		return 0, NewStoreError("DeleteExpiredSessions", "session", "", err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

func countSessions(ctx context.Context, exec executor) (int, error) {
	var count int
	if err := exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM sessions`); err != nil {
		return 0, NewStoreError("CountSessions", "session", "", err.Error(), err)
	}
	return count, nil
}

func rowToSession(row *sessionRow) (*domain.Session, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, NewStoreError("rowToSession", "session", row.ID, "failed to parse created_at", ErrInvalidData)
	}
	lastSeenAt, err := parseTime(row.LastSeenAt)
	if err != nil {
		return nil, NewStoreError("rowToSession", "session", row.ID, "failed to parse last_seen_at", ErrInvalidData)
	}

	lang, ok := i18n.ParseLanguage(row.Language)
	if !ok {
		lang = i18n.Default
	}

	return &domain.Session{
		ID:         row.ID,
		Language:   lang,
		CreatedAt:  createdAt,
		LastSeenAt: lastSeenAt,
	}, nil
}

// =============================================================================
// Batch Implementation
// =============================================================================

func replaceBatch(ctx context.Context, exec executor, batch *domain.Batch) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM batches WHERE session_id = ?`, batch.SessionID); err != nil {
		return NewStoreError("ReplaceBatch", "batch", batch.ID, err.Error(), err)
	}

	keywordsJSON, err := json.Marshal(batch.Request.Keywords)
	if err != nil {
		return NewStoreError("ReplaceBatch", "batch", batch.ID, "failed to serialize keywords", ErrInvalidData)
	}

	query := `
		INSERT INTO batches (id, session_id, company_name, industry, keywords, tone, created_at)
		VALUES (:id, :session_id, :company_name, :industry, :keywords, :tone, :created_at)`

	row := map[string]any{
		"id":           batch.ID,
		"session_id":   batch.SessionID,
		"company_name": batch.Request.CompanyName,
		"industry":     batch.Request.Industry,
		"keywords":     string(keywordsJSON),
		"tone":         string(batch.Request.Tone),
		"created_at":   formatTime(batch.CreatedAt),
	}

	_, err = exec.NamedExecContext(ctx, query, row)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: batches.id") {
			return NewStoreError("ReplaceBatch", "batch", batch.ID, "batch with this ID already exists", ErrDuplicateID)
		}
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return NewStoreError("ReplaceBatch", "batch", batch.ID, "session does not exist", ErrForeignKey)
		}
		return NewStoreError("ReplaceBatch", "batch", batch.ID, err.Error(), err)
	}

	sloganQuery := `
		INSERT INTO slogans (batch_id, id, position, text, rating)
		VALUES (:batch_id, :id, :position, :text, :rating)`

	for i, s := range batch.Slogans {
		row := sloganRow{BatchID: batch.ID, ID: s.ID, Position: i, Text: s.Text, Rating: s.Rating}
		if _, err := exec.NamedExecContext(ctx, sloganQuery, row); err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed: slogans") {
				return NewStoreError("ReplaceBatch", "slogan", s.ID, "duplicate slogan ID in batch", ErrDuplicateID)
			}
			return NewStoreError("ReplaceBatch", "slogan", s.ID, err.Error(), err)
		}
	}

	return nil
}

func getBatch(ctx context.Context, exec executor, id string) (*domain.Batch, error) {
	query := `SELECT * FROM batches WHERE id = ?`

	var row batchRow
	err := exec.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetBatch", "batch", id, "batch not found", ErrNotFound)
		}
		return nil, NewStoreError("GetBatch", "batch", id, err.Error(), err)
	}

	return loadBatch(ctx, exec, &row)
}

func getSessionBatch(ctx context.Context, exec executor, sessionID string) (*domain.Batch, error) {
	query := `SELECT * FROM batches WHERE session_id = ?`

	var row batchRow
	err := exec.GetContext(ctx, &row, query, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetSessionBatch", "batch", sessionID, "session has no batch", ErrNotFound)
		}
		return nil, NewStoreError("GetSessionBatch", "batch", sessionID, err.Error(), err)
	}

	return loadBatch(ctx, exec, &row)
}

func loadBatch(ctx context.Context, exec executor, row *batchRow) (*domain.Batch, error) {
	batch, err := rowToBatch(row)
	if err != nil {
		return nil, err
	}

	slogans, err := selectSlogans(ctx, exec, row.ID, -1, 0)
	if err != nil {
		return nil, err
	}
	batch.Slogans = slogans
	return batch, nil
}

func rowToBatch(row *batchRow) (*domain.Batch, error) {
	var keywords []string
	if err := json.Unmarshal([]byte(row.Keywords), &keywords); err != nil {
		return nil, NewStoreError("rowToBatch", "batch", row.ID, "failed to parse keywords", ErrInvalidData)
	}

	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, NewStoreError("rowToBatch", "batch", row.ID, "failed to parse created_at", ErrInvalidData)
	}

	return &domain.Batch{
		ID:        row.ID,
		SessionID: row.SessionID,
		Request: slogan.Request{
			CompanyName: row.CompanyName,
			Industry:    row.Industry,
			Keywords:    keywords,
			Tone:        slogan.Tone(row.Tone),
		},
		CreatedAt: createdAt,
	}, nil
}

// =============================================================================
// Slogan Implementation
// =============================================================================

func listSlogans(ctx context.Context, exec executor, batchID string, opts ListOptions) ([]slogan.Slogan, error) {
	var exists int
	if err := exec.GetContext(ctx, &exists, `SELECT COUNT(*) FROM batches WHERE id = ?`, batchID); err != nil {
		return nil, NewStoreError("ListSlogans", "batch", batchID, err.Error(), err)
	}
	if exists == 0 {
		return nil, NewStoreError("ListSlogans", "batch", batchID, "batch not found", ErrNotFound)
	}

	opts = opts.Normalize()
	return selectSlogans(ctx, exec, batchID, opts.Limit, opts.Offset)
}

// selectSlogans loads slogans in generation order. A negative limit means
// no limit, as in SQLite.
func selectSlogans(ctx context.Context, exec executor, batchID string, limit, offset int) ([]slogan.Slogan, error) {
	query := `SELECT * FROM slogans WHERE batch_id = ? ORDER BY position LIMIT ? OFFSET ?`

	var rows []sloganRow
	if err := exec.SelectContext(ctx, &rows, query, batchID, limit, offset); err != nil {
		return nil, NewStoreError("ListSlogans", "slogan", batchID, err.Error(), err)
	}

	slogans := make([]slogan.Slogan, 0, len(rows))
	for _, row := range rows {
		slogans = append(slogans, slogan.Slogan{ID: row.ID, Text: row.Text, Rating: row.Rating})
	}
	return slogans, nil
}

func rateSlogan(ctx context.Context, exec executor, batchID, sloganID string, rating int) error {
	if _, msg := validation.ValidateRating(rating); msg != "" {
		return NewStoreError("RateSlogan", "slogan", sloganID, msg, ErrInvalidData)
	}

	query := `UPDATE slogans SET rating = ? WHERE batch_id = ? AND id = ?`

	result, err := exec.ExecContext(ctx, query, rating, batchID, sloganID)
	if err != nil {
		return NewStoreError("RateSlogan", "slogan", sloganID, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("RateSlogan", "slogan", domain.SloganKey(batchID, sloganID), "slogan not found", ErrNotFound)
	}

	return nil
}

// =============================================================================
// Helpers
// =============================================================================

// formatTime stores times as UTC RFC3339 so that string comparison in SQL
// orders them chronologically.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
