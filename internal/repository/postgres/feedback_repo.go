package postgres

import (
	"context"
	"errors"

	"go-hiretrack-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const feedbackColumns = `id, interview_id, evaluator_id, evaluator_name, overall_rating, recommendation, strengths, weaknesses, notes, submitted_at`

type feedbackRepo struct {
	db *pgxpool.Pool
}

func NewFeedbackRepository(db *pgxpool.Pool) domain.FeedbackRepository {
	return &feedbackRepo{db: db}
}

func scanFeedback(row pgx.Row) (*domain.Feedback, error) {
	var f domain.Feedback
	err := row.Scan(
		&f.ID, &f.InterviewID, &f.EvaluatorID, &f.EvaluatorName,
		&f.OverallRating, &f.Recommendation, &f.Strengths, &f.Weaknesses,
		&f.Notes, &f.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *feedbackRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.Feedback, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := []domain.Feedback{}
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(
			&f.ID, &f.InterviewID, &f.EvaluatorID, &f.EvaluatorName,
			&f.OverallRating, &f.Recommendation, &f.Strengths, &f.Weaknesses,
			&f.Notes, &f.SubmittedAt,
		); err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

func (r *feedbackRepo) Fetch(ctx context.Context) ([]domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback ORDER BY submitted_at DESC`
	return r.fetch(ctx, query)
}

func (r *feedbackRepo) FetchByInterviewID(ctx context.Context, interviewID string) ([]domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE interview_id = $1 ORDER BY submitted_at DESC`
	return r.fetch(ctx, query, interviewID)
}

func (r *feedbackRepo) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = $1`
	return scanFeedback(r.db.QueryRow(ctx, query, id))
}

func (r *feedbackRepo) Create(ctx context.Context, f *domain.Feedback) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO feedback (id, interview_id, evaluator_id, evaluator_name, overall_rating, recommendation, strengths, weaknesses, notes, submitted_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.Exec(ctx, query,
		f.ID, f.InterviewID, f.EvaluatorID, f.EvaluatorName,
		f.OverallRating, f.Recommendation, f.Strengths, f.Weaknesses,
		f.Notes, f.SubmittedAt,
	)
	if err != nil {
		return err
	}

	// Submitting feedback completes the interview
	_, err = tx.Exec(ctx,
		`UPDATE interviews SET status = $2, updated_at = NOW() WHERE id = $1`,
		f.InterviewID, domain.InterviewCompleted,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *feedbackRepo) Update(ctx context.Context, f *domain.Feedback) error {
	query := `UPDATE feedback SET overall_rating = $2, recommendation = $3, strengths = $4, weaknesses = $5, notes = $6
	          WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		f.ID, f.OverallRating, f.Recommendation, f.Strengths, f.Weaknesses, f.Notes,
	)
	return err
}

func (r *feedbackRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM feedback WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
