package domain

import (
	"context"
	"time"
)

type Feedback struct {
	ID             string    `json:"id"`
	InterviewID    string    `json:"interviewId"`
	EvaluatorID    string    `json:"evaluatorId"`
	EvaluatorName  string    `json:"evaluatorName"`
	OverallRating  int       `json:"overallRating"`
	Recommendation string    `json:"recommendation"`
	Strengths      string    `json:"strengths"`
	Weaknesses     *string   `json:"weaknesses"`
	Notes          *string   `json:"notes"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

type FeedbackUpdate struct {
	OverallRating  *int    `json:"overallRating"`
	Recommendation *string `json:"recommendation"`
	Strengths      *string `json:"strengths"`
	Weaknesses     *string `json:"weaknesses"`
	Notes          *string `json:"notes"`
}

type FeedbackRepository interface {
	Fetch(ctx context.Context) ([]Feedback, error)
	FetchByInterviewID(ctx context.Context, interviewID string) ([]Feedback, error)
	GetByID(ctx context.Context, id string) (*Feedback, error)
	// Create inserts the feedback and marks the parent interview Completed
	// within the same transaction.
	Create(ctx context.Context, f *Feedback) error
	Update(ctx context.Context, f *Feedback) error
	Delete(ctx context.Context, id string) error
}

type FeedbackUsecase interface {
	List(ctx context.Context) ([]Feedback, error)
	ListByInterview(ctx context.Context, interviewID string) ([]Feedback, error)
	GetByID(ctx context.Context, id string) (*Feedback, error)
	Create(ctx context.Context, f *Feedback) error
	Update(ctx context.Context, id string, upd *FeedbackUpdate) (*Feedback, error)
	Delete(ctx context.Context, id string) error
}
