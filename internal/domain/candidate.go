package domain

import (
	"context"
	"time"
)

// Pipeline stages for a candidate, in progression order.
const (
	StageApplied   = "Applied"
	StageTechnical = "Technical"
	StageCultural  = "Cultural"
	StageOffer     = "Offer"
	StageHired     = "Hired"
)

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type Candidate struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Status      string    `json:"status"`
	Position    string    `json:"position"`
	Department  *string   `json:"department"`
	Source      *string   `json:"source"`
	AppliedDate string    `json:"appliedDate"`
	Skills      []Skill   `json:"skills"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CandidateDetails is the GetByID projection with relations eagerly attached.
type CandidateDetails struct {
	Candidate
	Interviews []Interview `json:"interviews"`
	Offers     []Offer     `json:"offers"`
}

type CandidateUpdate struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Status      *string `json:"status"`
	Position    *string `json:"position"`
	Department  *string `json:"department"`
	Source      *string `json:"source"`
	AppliedDate *string `json:"appliedDate"`
	Skills      []Skill `json:"skills"`
}

type CandidateRepository interface {
	Fetch(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	GetByEmail(ctx context.Context, email string) (*Candidate, error)
	Create(ctx context.Context, c *Candidate) error
	// Update persists the row; when replaceSkills is set the candidate's
	// skill set is removed and recreated from c.Skills in the same
	// transaction.
	Update(ctx context.Context, c *Candidate, replaceSkills bool) error
	Delete(ctx context.Context, id string) error
}

type CandidateUsecase interface {
	List(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id string) (*CandidateDetails, error)
	Create(ctx context.Context, c *Candidate) error
	Update(ctx context.Context, id string, upd *CandidateUpdate) (*Candidate, error)
	Delete(ctx context.Context, id string) error
}
