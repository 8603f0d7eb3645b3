package postgres

import (
	"context"
	"errors"

	"go-hiretrack-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const interviewColumns = `id, candidate_id, candidate_name, position, type, status, date, start_time, end_time, interviewers, location, video_link, notes, time_zone, created_at, updated_at`

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

func scanInterview(row pgx.Row) (*domain.Interview, error) {
	var iv domain.Interview
	var interviewers []string
	err := row.Scan(
		&iv.ID, &iv.CandidateID, &iv.CandidateName, &iv.Position, &iv.Type,
		&iv.Status, &iv.Date, &iv.StartTime, &iv.EndTime, pq.Array(&interviewers),
		&iv.Location, &iv.VideoLink, &iv.Notes, &iv.TimeZone,
		&iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	iv.Interviewers = interviewers
	return &iv, nil
}

func (r *interviewRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.Interview, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interviews := []domain.Interview{}
	for rows.Next() {
		var iv domain.Interview
		var interviewers []string
		if err := rows.Scan(
			&iv.ID, &iv.CandidateID, &iv.CandidateName, &iv.Position, &iv.Type,
			&iv.Status, &iv.Date, &iv.StartTime, &iv.EndTime, pq.Array(&interviewers),
			&iv.Location, &iv.VideoLink, &iv.Notes, &iv.TimeZone,
			&iv.CreatedAt, &iv.UpdatedAt,
		); err != nil {
			return nil, err
		}
		iv.Interviewers = interviewers
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func (r *interviewRepo) Fetch(ctx context.Context) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews ORDER BY date DESC`
	return r.fetch(ctx, query)
}

func (r *interviewRepo) FetchByCandidateID(ctx context.Context, candidateID string) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE candidate_id = $1 ORDER BY date DESC`
	return r.fetch(ctx, query, candidateID)
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`
	return scanInterview(r.db.QueryRow(ctx, query, id))
}

func (r *interviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	query := `INSERT INTO interviews (id, candidate_id, candidate_name, position, type, status, date, start_time, end_time, interviewers, location, video_link, notes, time_zone, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(ctx, query,
		iv.ID, iv.CandidateID, iv.CandidateName, iv.Position, iv.Type,
		iv.Status, iv.Date, iv.StartTime, iv.EndTime, pq.Array(iv.Interviewers),
		iv.Location, iv.VideoLink, iv.Notes, iv.TimeZone,
		iv.CreatedAt, iv.UpdatedAt,
	)
	return err
}

func (r *interviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	query := `UPDATE interviews SET
			candidate_id = $2, candidate_name = $3, position = $4, type = $5,
			status = $6, date = $7, start_time = $8, end_time = $9,
			interviewers = $10, location = $11, video_link = $12, notes = $13,
			time_zone = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		iv.ID, iv.CandidateID, iv.CandidateName, iv.Position, iv.Type,
		iv.Status, iv.Date, iv.StartTime, iv.EndTime, pq.Array(iv.Interviewers),
		iv.Location, iv.VideoLink, iv.Notes, iv.TimeZone, iv.UpdatedAt,
	)
	return err
}

func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	// feedback rows follow via ON DELETE CASCADE
	query := `DELETE FROM interviews WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
