package results

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Filter selects rows for analytics and dashboards. Zero-value fields are
// ignored; all matching rows come back in insertion order.
type Filter struct {
	Email        string
	StudentNames []string
	Subjects     []string
	Limit        int
}

// Store is the append-only result log. Append inserts exactly one row and
// never rewrites earlier ones, so concurrent sessions cannot lose updates.
type Store interface {
	Append(ctx context.Context, r Record) error
	Query(ctx context.Context, f Filter) ([]Record, error)
}

// SQLStore persists records over database/sql, for sqlite or postgres.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Append(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (email,student_name,subject,topic,difficulty,quiz_type,score,total,ts,weak_areas,feedback_summary)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		r.Email, r.StudentName, r.Subject, r.Topic, r.Difficulty, r.QuizType,
		r.Score, r.Total, r.Timestamp, r.WeakAreas, r.FeedbackSummary)
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

func (s *SQLStore) Query(ctx context.Context, f Filter) ([]Record, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Email != "" {
		where = append(where, "email="+arg(f.Email))
	}
	if len(f.StudentNames) > 0 {
		where = append(where, "student_name IN ("+placeholders(arg, f.StudentNames)+")")
	}
	if len(f.Subjects) > 0 {
		where = append(where, "subject IN ("+placeholders(arg, f.Subjects)+")")
	}

	q := `SELECT email,student_name,subject,topic,difficulty,quiz_type,score,total,ts,weak_areas,feedback_summary FROM results`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id"
	if f.Limit > 0 {
		q += " LIMIT " + arg(f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Email, &r.StudentName, &r.Subject, &r.Topic, &r.Difficulty,
			&r.QuizType, &r.Score, &r.Total, &r.Timestamp, &r.WeakAreas, &r.FeedbackSummary); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func placeholders(arg func(any) string, vals []string) string {
	ps := make([]string, len(vals))
	for i, v := range vals {
		ps[i] = arg(v)
	}
	return strings.Join(ps, ",")
}
