package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const candidateColumns = `id, first_name, last_name, email, phone, status, position, department, source, applied_date, created_at, updated_at`

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) scanRow(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.Status, &c.Position, &c.Department, &c.Source, &c.AppliedDate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepo) fetchSkills(ctx context.Context, candidateID string) ([]domain.Skill, error) {
	query := `SELECT id, name, category FROM skills WHERE candidate_id = $1`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *candidateRepo) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
			&c.Status, &c.Position, &c.Department, &c.Source, &c.AppliedDate,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range candidates {
		skills, err := r.fetchSkills(ctx, candidates[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch skills: %w", err)
		}
		candidates[i].Skills = skills
	}
	return candidates, nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := r.scanRow(r.db.QueryRow(ctx, query, id))
	if err != nil || c == nil {
		return c, err
	}
	c.Skills, err = r.fetchSkills(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	return c, nil
}

func (r *candidateRepo) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`
	return r.scanRow(r.db.QueryRow(ctx, query, email))
}

func (r *candidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO candidates (id, first_name, last_name, email, phone, status, position, department, source, applied_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = tx.Exec(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone,
		c.Status, c.Position, c.Department, c.Source, c.AppliedDate,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A candidate with this email already exists")
		}
		return err
	}

	if err := insertSkills(ctx, tx, c.ID, c.Skills); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *candidateRepo) Update(ctx context.Context, c *domain.Candidate, replaceSkills bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE candidates SET
			first_name = $2, last_name = $3, email = $4, phone = $5,
			status = $6, position = $7, department = $8, source = $9,
			applied_date = $10, updated_at = $11
		WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone,
		c.Status, c.Position, c.Department, c.Source, c.AppliedDate,
		c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A candidate with this email already exists")
		}
		return err
	}

	if replaceSkills {
		// Whole-set replacement: drop every existing skill link and insert
		// the provided set fresh
		if _, err := tx.Exec(ctx, `DELETE FROM skills WHERE candidate_id = $1`, c.ID); err != nil {
			return fmt.Errorf("failed to clean skills: %w", err)
		}
		if err := insertSkills(ctx, tx, c.ID, c.Skills); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func insertSkills(ctx context.Context, tx pgx.Tx, candidateID string, skills []domain.Skill) error {
	if len(skills) == 0 {
		return nil
	}
	query := `INSERT INTO skills (id, candidate_id, name, category) VALUES ($1, $2, $3, $4)`
	for _, s := range skills {
		if _, err := tx.Exec(ctx, query, s.ID, candidateID, s.Name, s.Category); err != nil {
			return fmt.Errorf("failed to insert skill %q: %w", s.Name, err)
		}
	}
	return nil
}

func (r *candidateRepo) Delete(ctx context.Context, id string) error {
	// skills, interviews, offers and feedback rows follow via ON DELETE CASCADE
	query := `DELETE FROM candidates WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
