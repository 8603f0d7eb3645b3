package postgres

import (
	"context"
	"errors"

	"go-hiretrack-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const offerColumns = `id, candidate_id, candidate_name, position, department, status, salary, start_date, expiration_date, notes, created_at, updated_at`

type offerRepo struct {
	db *pgxpool.Pool
}

func NewOfferRepository(db *pgxpool.Pool) domain.OfferRepository {
	return &offerRepo{db: db}
}

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(
		&o.ID, &o.CandidateID, &o.CandidateName, &o.Position, &o.Department,
		&o.Status, &o.Salary, &o.StartDate, &o.ExpirationDate, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *offerRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.Offer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []domain.Offer{}
	for rows.Next() {
		var o domain.Offer
		if err := rows.Scan(
			&o.ID, &o.CandidateID, &o.CandidateName, &o.Position, &o.Department,
			&o.Status, &o.Salary, &o.StartDate, &o.ExpirationDate, &o.Notes,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *offerRepo) Fetch(ctx context.Context) ([]domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers ORDER BY created_at DESC`
	return r.fetch(ctx, query)
}

func (r *offerRepo) FetchByCandidateID(ctx context.Context, candidateID string) ([]domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE candidate_id = $1 ORDER BY created_at DESC`
	return r.fetch(ctx, query, candidateID)
}

func (r *offerRepo) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`
	return scanOffer(r.db.QueryRow(ctx, query, id))
}

func (r *offerRepo) Create(ctx context.Context, o *domain.Offer, promote bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO offers (id, candidate_id, candidate_name, position, department, status, salary, start_date, expiration_date, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = tx.Exec(ctx, query,
		o.ID, o.CandidateID, o.CandidateName, o.Position, o.Department,
		o.Status, o.Salary, o.StartDate, o.ExpirationDate, o.Notes,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if promote {
		_, err = tx.Exec(ctx,
			`UPDATE candidates SET status = $2, updated_at = NOW() WHERE id = $1`,
			o.CandidateID, domain.StageOffer,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *offerRepo) Update(ctx context.Context, o *domain.Offer, hire bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE offers SET status = $2, salary = $3, start_date = $4, expiration_date = $5, notes = $6, updated_at = $7
	          WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		o.ID, o.Status, o.Salary, o.StartDate, o.ExpirationDate, o.Notes, o.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if hire {
		_, err = tx.Exec(ctx,
			`UPDATE candidates SET status = $2, updated_at = NOW() WHERE id = $1`,
			o.CandidateID, domain.StageHired,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *offerRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM offers WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
