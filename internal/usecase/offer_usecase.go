package usecase

import (
	"context"
	"time"

	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"

	"github.com/google/uuid"
)

type offerUsecase struct {
	repo          domain.OfferRepository
	candidateRepo domain.CandidateRepository
}

func NewOfferUsecase(repo domain.OfferRepository, candidateRepo domain.CandidateRepository) domain.OfferUsecase {
	return &offerUsecase{repo: repo, candidateRepo: candidateRepo}
}

func (u *offerUsecase) List(ctx context.Context) ([]domain.Offer, error) {
	return u.repo.Fetch(ctx)
}

func (u *offerUsecase) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Offer, error) {
	return u.repo.FetchByCandidateID(ctx, candidateID)
}

func (u *offerUsecase) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperror.NotFound("Offer not found")
	}
	return o, nil
}

func (u *offerUsecase) Create(ctx context.Context, o *domain.Offer) error {
	candidate, err := u.candidateRepo.GetByID(ctx, o.CandidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return apperror.NotFound("Candidate not found")
	}

	now := time.Now()
	o.ID = uuid.NewString()
	o.CreatedAt = now
	o.UpdatedAt = now

	// Extending an offer moves the candidate into the Offer stage unless
	// they are already there (or past it)
	promote := candidate.Status != domain.StageOffer && candidate.Status != domain.StageHired
	return u.repo.Create(ctx, o, promote)
}

func (u *offerUsecase) Update(ctx context.Context, id string, upd *domain.OfferUpdate) (*domain.Offer, error) {
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperror.NotFound("Offer not found")
	}

	// Hire fires only on the transition into Accepted; re-submitting
	// Accepted is an idempotent no-op
	hire := upd.Status != nil && *upd.Status == domain.OfferAccepted && o.Status != domain.OfferAccepted

	if upd.Status != nil {
		o.Status = *upd.Status
	}
	if upd.Salary != nil {
		o.Salary = *upd.Salary
	}
	if upd.StartDate != nil {
		o.StartDate = upd.StartDate
	}
	if upd.ExpirationDate != nil {
		o.ExpirationDate = *upd.ExpirationDate
	}
	if upd.Notes != nil {
		o.Notes = upd.Notes
	}
	o.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, o, hire); err != nil {
		return nil, err
	}
	return o, nil
}

func (u *offerUsecase) Delete(ctx context.Context, id string) error {
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return apperror.NotFound("Offer not found")
	}
	return u.repo.Delete(ctx, id)
}
