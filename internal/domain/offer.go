package domain

import (
	"context"
	"time"
)

const (
	OfferPending  = "Pending"
	OfferAccepted = "Accepted"
	OfferRejected = "Rejected"
	OfferExpired  = "Expired"
)

type Offer struct {
	ID             string    `json:"id"`
	CandidateID    string    `json:"candidateId"`
	CandidateName  string    `json:"candidateName"`
	Position       string    `json:"position"`
	Department     string    `json:"department"`
	Status         string    `json:"status"`
	Salary         float64   `json:"salary"`
	StartDate      *string   `json:"startDate"`
	ExpirationDate string    `json:"expirationDate"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type OfferUpdate struct {
	Status         *string  `json:"status"`
	Salary         *float64 `json:"salary"`
	StartDate      *string  `json:"startDate"`
	ExpirationDate *string  `json:"expirationDate"`
	Notes          *string  `json:"notes"`
}

type OfferRepository interface {
	Fetch(ctx context.Context) ([]Offer, error)
	FetchByCandidateID(ctx context.Context, candidateID string) ([]Offer, error)
	GetByID(ctx context.Context, id string) (*Offer, error)
	// Create inserts the offer and, when promote is set, moves the candidate
	// to the Offer stage within the same transaction.
	Create(ctx context.Context, o *Offer, promote bool) error
	// Update persists the row and, when hire is set, moves the candidate to
	// Hired within the same transaction.
	Update(ctx context.Context, o *Offer, hire bool) error
	Delete(ctx context.Context, id string) error
}

type OfferUsecase interface {
	List(ctx context.Context) ([]Offer, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Offer, error)
	GetByID(ctx context.Context, id string) (*Offer, error)
	Create(ctx context.Context, o *Offer) error
	Update(ctx context.Context, id string, upd *OfferUpdate) (*Offer, error)
	Delete(ctx context.Context, id string) error
}
