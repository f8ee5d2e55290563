package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

//go:embed schema.sql
var schemaSQL string

type sqliteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo opens (and creates if needed) a local session database.
// dbPath may be ":memory:".
func NewSQLiteSessionRepo(dbPath string) (SessionRepo, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		// every pooled connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA busy_timeout=5000", // Must be first
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &sqliteSessionRepo{db: db}, nil
}

func (r *sqliteSessionRepo) Create(ctx context.Context, session *model.Session) error {
	payload, err := encodeSession(session)
	if err != nil {
		return err
	}
	feedback, err := encodeFeedback(session.Feedback)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, created_at, payload, feedback) VALUES (?, ?, ?, ?)`,
		session.ID, session.CreatedAt.UnixNano(), payload, feedback)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrSessionExists
	}
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *sqliteSessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT payload, feedback FROM sessions WHERE id = ?`, id)
	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return session, err
}

func (r *sqliteSessionRepo) SetFeedback(ctx context.Context, id string, feedback *model.Feedback) error {
	encoded, err := encodeFeedback(feedback)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, `UPDATE sessions SET feedback = ? WHERE id = ?`, encoded, id)
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *sqliteSessionRepo) List(ctx context.Context) ([]*model.Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload, feedback FROM sessions ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *sqliteSessionRepo) ListWithFeedback(ctx context.Context, page, perPage int) (*model.FeedbackPage, error) {
	page, perPage = NormalizePage(page, perPage)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions WHERE feedback IS NOT NULL`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count feedback: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT payload, feedback FROM sessions WHERE feedback IS NOT NULL
		 ORDER BY created_at DESC, id ASC LIMIT ? OFFSET ?`,
		perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, err
	}
	return &model.FeedbackPage{Rows: sessions, Total: total, Page: page, PerPage: perPage}, nil
}

func (r *sqliteSessionRepo) Close(ctx context.Context) error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*model.Session, error) {
	var payload string
	var feedback sql.NullString
	if err := row.Scan(&payload, &feedback); err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	session.Feedback = nil
	if feedback.Valid {
		var fb model.Feedback
		if err := json.Unmarshal([]byte(feedback.String), &fb); err != nil {
			return nil, fmt.Errorf("decode feedback: %w", err)
		}
		session.Feedback = &fb
	}
	return &session, nil
}

func scanSessions(rows *sql.Rows) ([]*model.Session, error) {
	sessions := []*model.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// encodeSession stores everything but feedback, which lives in its own column
func encodeSession(s *model.Session) (string, error) {
	cp := *s
	cp.Feedback = nil
	data, err := json.Marshal(&cp)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	return string(data), nil
}

func encodeFeedback(fb *model.Feedback) (sql.NullString, error) {
	if fb == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(fb)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode feedback: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
