package usecase

import (
	"context"
	"time"

	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"

	"github.com/google/uuid"
)

type interviewUsecase struct {
	repo          domain.InterviewRepository
	candidateRepo domain.CandidateRepository
	feedbackRepo  domain.FeedbackRepository
}

func NewInterviewUsecase(repo domain.InterviewRepository, candidateRepo domain.CandidateRepository, feedbackRepo domain.FeedbackRepository) domain.InterviewUsecase {
	return &interviewUsecase{
		repo:          repo,
		candidateRepo: candidateRepo,
		feedbackRepo:  feedbackRepo,
	}
}

func (u *interviewUsecase) List(ctx context.Context) ([]domain.Interview, error) {
	return u.repo.Fetch(ctx)
}

func (u *interviewUsecase) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Interview, error) {
	return u.repo.FetchByCandidateID(ctx, candidateID)
}

func (u *interviewUsecase) GetByID(ctx context.Context, id string) (*domain.InterviewDetails, error) {
	iv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv == nil {
		return nil, apperror.NotFound("Interview not found")
	}

	feedback, err := u.feedbackRepo.FetchByInterviewID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.InterviewDetails{Interview: *iv, Feedback: feedback}, nil
}

func (u *interviewUsecase) Create(ctx context.Context, iv *domain.Interview) error {
	candidate, err := u.candidateRepo.GetByID(ctx, iv.CandidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return apperror.NotFound("Candidate not found")
	}

	now := time.Now()
	iv.ID = uuid.NewString()
	iv.CreatedAt = now
	iv.UpdatedAt = now

	return u.repo.Create(ctx, iv)
}

func (u *interviewUsecase) Update(ctx context.Context, id string, upd *domain.InterviewUpdate) (*domain.Interview, error) {
	iv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv == nil {
		return nil, apperror.NotFound("Interview not found")
	}

	if upd.CandidateID != nil {
		candidate, err := u.candidateRepo.GetByID(ctx, *upd.CandidateID)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			return nil, apperror.NotFound("Candidate not found")
		}
		iv.CandidateID = *upd.CandidateID
	}
	if upd.CandidateName != nil {
		iv.CandidateName = *upd.CandidateName
	}
	if upd.Position != nil {
		iv.Position = *upd.Position
	}
	if upd.Type != nil {
		iv.Type = *upd.Type
	}
	if upd.Status != nil {
		iv.Status = *upd.Status
	}
	if upd.Date != nil {
		iv.Date = *upd.Date
	}
	if upd.StartTime != nil {
		iv.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		iv.EndTime = *upd.EndTime
	}
	if upd.Interviewers != nil {
		iv.Interviewers = upd.Interviewers
	}
	if upd.Location != nil {
		iv.Location = upd.Location
	}
	if upd.VideoLink != nil {
		iv.VideoLink = upd.VideoLink
	}
	if upd.Notes != nil {
		iv.Notes = upd.Notes
	}
	if upd.TimeZone != nil {
		iv.TimeZone = upd.TimeZone
	}
	iv.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (u *interviewUsecase) Delete(ctx context.Context, id string) error {
	iv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if iv == nil {
		return apperror.NotFound("Interview not found")
	}
	return u.repo.Delete(ctx, id)
}
