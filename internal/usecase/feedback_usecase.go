package usecase

import (
	"context"
	"time"

	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"

	"github.com/google/uuid"
)

type feedbackUsecase struct {
	repo          domain.FeedbackRepository
	interviewRepo domain.InterviewRepository
}

func NewFeedbackUsecase(repo domain.FeedbackRepository, interviewRepo domain.InterviewRepository) domain.FeedbackUsecase {
	return &feedbackUsecase{repo: repo, interviewRepo: interviewRepo}
}

func (u *feedbackUsecase) List(ctx context.Context) ([]domain.Feedback, error) {
	return u.repo.Fetch(ctx)
}

func (u *feedbackUsecase) ListByInterview(ctx context.Context, interviewID string) ([]domain.Feedback, error) {
	return u.repo.FetchByInterviewID(ctx, interviewID)
}

func (u *feedbackUsecase) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperror.NotFound("Feedback not found")
	}
	return f, nil
}

func (u *feedbackUsecase) Create(ctx context.Context, f *domain.Feedback) error {
	interview, err := u.interviewRepo.GetByID(ctx, f.InterviewID)
	if err != nil {
		return err
	}
	if interview == nil {
		return apperror.NotFound("Interview not found")
	}

	f.ID = uuid.NewString()
	f.SubmittedAt = time.Now()

	// The repo completes the parent interview in the same transaction
	return u.repo.Create(ctx, f)
}

func (u *feedbackUsecase) Update(ctx context.Context, id string, upd *domain.FeedbackUpdate) (*domain.Feedback, error) {
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperror.NotFound("Feedback not found")
	}

	if upd.OverallRating != nil {
		f.OverallRating = *upd.OverallRating
	}
	if upd.Recommendation != nil {
		f.Recommendation = *upd.Recommendation
	}
	if upd.Strengths != nil {
		f.Strengths = *upd.Strengths
	}
	if upd.Weaknesses != nil {
		f.Weaknesses = upd.Weaknesses
	}
	if upd.Notes != nil {
		f.Notes = upd.Notes
	}

	if err := u.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (u *feedbackUsecase) Delete(ctx context.Context, id string) error {
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return apperror.NotFound("Feedback not found")
	}
	return u.repo.Delete(ctx, id)
}
