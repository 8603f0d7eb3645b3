package domain

import (
	"context"
	"time"
)

const (
	InterviewScheduled = "Scheduled"
	InterviewCompleted = "Completed"
)

type Interview struct {
	ID            string    `json:"id"`
	CandidateID   string    `json:"candidateId"`
	CandidateName string    `json:"candidateName"`
	Position      string    `json:"position"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Interviewers  []string  `json:"interviewers"`
	Location      *string   `json:"location"`
	VideoLink     *string   `json:"videoLink"`
	Notes         *string   `json:"notes"`
	TimeZone      *string   `json:"timeZone"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// InterviewDetails is the GetByID projection including submitted feedback.
type InterviewDetails struct {
	Interview
	Feedback []Feedback `json:"feedback"`
}

type InterviewUpdate struct {
	CandidateID   *string  `json:"candidateId"`
	CandidateName *string  `json:"candidateName"`
	Position      *string  `json:"position"`
	Type          *string  `json:"type"`
	Status        *string  `json:"status"`
	Date          *string  `json:"date"`
	StartTime     *string  `json:"startTime"`
	EndTime       *string  `json:"endTime"`
	Interviewers  []string `json:"interviewers"`
	Location      *string  `json:"location"`
	VideoLink     *string  `json:"videoLink"`
	Notes         *string  `json:"notes"`
	TimeZone      *string  `json:"timeZone"`
}

type InterviewRepository interface {
	Fetch(ctx context.Context) ([]Interview, error)
	FetchByCandidateID(ctx context.Context, candidateID string) ([]Interview, error)
	GetByID(ctx context.Context, id string) (*Interview, error)
	Create(ctx context.Context, iv *Interview) error
	Update(ctx context.Context, iv *Interview) error
	Delete(ctx context.Context, id string) error
}

type InterviewUsecase interface {
	List(ctx context.Context) ([]Interview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Interview, error)
	GetByID(ctx context.Context, id string) (*InterviewDetails, error)
	Create(ctx context.Context, iv *Interview) error
	Update(ctx context.Context, id string, upd *InterviewUpdate) (*Interview, error)
	Delete(ctx context.Context, id string) error
}
