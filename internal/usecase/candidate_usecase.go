package usecase

import (
	"context"
	"time"

	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"

	"github.com/google/uuid"
)

type candidateUsecase struct {
	repo          domain.CandidateRepository
	interviewRepo domain.InterviewRepository
	offerRepo     domain.OfferRepository
}

func NewCandidateUsecase(repo domain.CandidateRepository, interviewRepo domain.InterviewRepository, offerRepo domain.OfferRepository) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:          repo,
		interviewRepo: interviewRepo,
		offerRepo:     offerRepo,
	}
}

func (u *candidateUsecase) List(ctx context.Context) ([]domain.Candidate, error) {
	return u.repo.Fetch(ctx)
}

func (u *candidateUsecase) GetByID(ctx context.Context, id string) (*domain.CandidateDetails, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	interviews, err := u.interviewRepo.FetchByCandidateID(ctx, id)
	if err != nil {
		return nil, err
	}
	offers, err := u.offerRepo.FetchByCandidateID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.CandidateDetails{
		Candidate:  *c,
		Interviews: interviews,
		Offers:     offers,
	}, nil
}

func (u *candidateUsecase) Create(ctx context.Context, c *domain.Candidate) error {
	existing, err := u.repo.GetByEmail(ctx, c.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.Conflict("A candidate with this email already exists")
	}

	now := time.Now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.AppliedDate == "" {
		c.AppliedDate = now.Format("2006-01-02")
	}
	for i := range c.Skills {
		c.Skills[i].ID = uuid.NewString()
	}

	return u.repo.Create(ctx, c)
}

func (u *candidateUsecase) Update(ctx context.Context, id string, upd *domain.CandidateUpdate) (*domain.Candidate, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	if upd.FirstName != nil {
		c.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		c.LastName = *upd.LastName
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.Phone != nil {
		c.Phone = upd.Phone
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.Position != nil {
		c.Position = *upd.Position
	}
	if upd.Department != nil {
		c.Department = upd.Department
	}
	if upd.Source != nil {
		c.Source = upd.Source
	}
	if upd.AppliedDate != nil {
		c.AppliedDate = *upd.AppliedDate
	}
	c.UpdatedAt = time.Now()

	// Skills are replace-not-merge: a provided set removes every existing
	// skill row and inserts the new ones
	replaceSkills := upd.Skills != nil
	if replaceSkills {
		c.Skills = upd.Skills
		for i := range c.Skills {
			c.Skills[i].ID = uuid.NewString()
		}
	}

	if err := u.repo.Update(ctx, c, replaceSkills); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id string) error {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return apperror.NotFound("Candidate not found")
	}
	return u.repo.Delete(ctx, id)
}
