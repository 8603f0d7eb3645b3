package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/internal/usecase"
	"go-hiretrack-backend/pkg/apperror"
	"go-hiretrack-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func assertAppError(t *testing.T, err error, code int) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestOfferCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should promote the candidate when extending a first offer", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewOfferUsecase(offerRepo, candidateRepo)

		candidateRepo.On("GetByID", ctx, "c1").
			Return(&domain.Candidate{ID: "c1", Status: domain.StageTechnical}, nil)
		offerRepo.On("Create", ctx, mock.AnythingOfType("*domain.Offer"), true).Return(nil)

		offer := &domain.Offer{CandidateID: "c1", Position: "Backend Engineer", Salary: 95000}
		err := uc.Create(ctx, offer)

		require.NoError(t, err)
		assert.NotEmpty(t, offer.ID)
		offerRepo.AssertExpectations(t)
	})

	t.Run("Should not promote when the candidate is already at the Offer stage", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewOfferUsecase(offerRepo, candidateRepo)

		candidateRepo.On("GetByID", ctx, "c1").
			Return(&domain.Candidate{ID: "c1", Status: domain.StageOffer}, nil)
		offerRepo.On("Create", ctx, mock.AnythingOfType("*domain.Offer"), false).Return(nil)

		err := uc.Create(ctx, &domain.Offer{CandidateID: "c1"})

		require.NoError(t, err)
		offerRepo.AssertExpectations(t)
	})

	t.Run("Should not demote a hired candidate", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewOfferUsecase(offerRepo, candidateRepo)

		candidateRepo.On("GetByID", ctx, "c1").
			Return(&domain.Candidate{ID: "c1", Status: domain.StageHired}, nil)
		offerRepo.On("Create", ctx, mock.AnythingOfType("*domain.Offer"), false).Return(nil)

		err := uc.Create(ctx, &domain.Offer{CandidateID: "c1"})

		require.NoError(t, err)
		offerRepo.AssertExpectations(t)
	})

	t.Run("Should return 404 when the candidate does not exist", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewOfferUsecase(offerRepo, candidateRepo)

		candidateRepo.On("GetByID", ctx, "missing").Return(nil, nil)

		err := uc.Create(ctx, &domain.Offer{CandidateID: "missing"})

		assertAppError(t, err, http.StatusNotFound)
		offerRepo.AssertNotCalled(t, "Create")
	})
}

func TestOfferUpdate(t *testing.T) {
	ctx := context.Background()
	accepted := domain.OfferAccepted

	t.Run("Should hire the candidate when the offer transitions into Accepted", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, new(MockCandidateRepo))

		offerRepo.On("GetByID", ctx, "o1").
			Return(&domain.Offer{ID: "o1", CandidateID: "c1", Status: domain.OfferPending}, nil)
		offerRepo.On("Update", ctx, mock.AnythingOfType("*domain.Offer"), true).Return(nil)

		out, err := uc.Update(ctx, "o1", &domain.OfferUpdate{Status: &accepted})

		require.NoError(t, err)
		assert.Equal(t, domain.OfferAccepted, out.Status)
		offerRepo.AssertExpectations(t)
	})

	t.Run("Should treat re-accepting an accepted offer as a no-op", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, new(MockCandidateRepo))

		offerRepo.On("GetByID", ctx, "o1").
			Return(&domain.Offer{ID: "o1", Status: domain.OfferAccepted}, nil)
		offerRepo.On("Update", ctx, mock.AnythingOfType("*domain.Offer"), false).Return(nil)

		_, err := uc.Update(ctx, "o1", &domain.OfferUpdate{Status: &accepted})

		require.NoError(t, err)
		offerRepo.AssertExpectations(t)
	})

	t.Run("Should merge only the provided fields", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, new(MockCandidateRepo))

		offerRepo.On("GetByID", ctx, "o1").Return(&domain.Offer{
			ID:             "o1",
			Status:         domain.OfferPending,
			Salary:         90000,
			ExpirationDate: "2026-09-30",
		}, nil)
		offerRepo.On("Update", ctx, mock.AnythingOfType("*domain.Offer"), false).Return(nil)

		salary := 105000.0
		out, err := uc.Update(ctx, "o1", &domain.OfferUpdate{Salary: &salary})

		require.NoError(t, err)
		assert.Equal(t, 105000.0, out.Salary)
		assert.Equal(t, domain.OfferPending, out.Status)
		assert.Equal(t, "2026-09-30", out.ExpirationDate)
	})

	t.Run("Should return 404 for an unknown offer", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, new(MockCandidateRepo))

		offerRepo.On("GetByID", ctx, "missing").Return(nil, nil)

		_, err := uc.Update(ctx, "missing", &domain.OfferUpdate{Status: &accepted})

		assertAppError(t, err, http.StatusNotFound)
	})
}

func TestFeedbackCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign id and submission time before persisting", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepo)
		interviewRepo := new(MockInterviewRepo)
		uc := usecase.NewFeedbackUsecase(feedbackRepo, interviewRepo)

		interviewRepo.On("GetByID", ctx, "iv1").
			Return(&domain.Interview{ID: "iv1", Status: domain.InterviewScheduled}, nil)
		feedbackRepo.On("Create", ctx, mock.AnythingOfType("*domain.Feedback")).Return(nil)

		f := &domain.Feedback{InterviewID: "iv1", OverallRating: 4, Recommendation: "Hire"}
		err := uc.Create(ctx, f)

		require.NoError(t, err)
		assert.NotEmpty(t, f.ID)
		assert.WithinDuration(t, time.Now(), f.SubmittedAt, time.Minute)
		feedbackRepo.AssertExpectations(t)
	})

	t.Run("Should return 404 when the interview does not exist", func(t *testing.T) {
		feedbackRepo := new(MockFeedbackRepo)
		interviewRepo := new(MockInterviewRepo)
		uc := usecase.NewFeedbackUsecase(feedbackRepo, interviewRepo)

		interviewRepo.On("GetByID", ctx, "missing").Return(nil, nil)

		err := uc.Create(ctx, &domain.Feedback{InterviewID: "missing"})

		assertAppError(t, err, http.StatusNotFound)
		feedbackRepo.AssertNotCalled(t, "Create")
	})
}

func TestCandidateCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should default the applied date and assign skill ids", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockInterviewRepo), new(MockOfferRepo))

		repo.On("GetByEmail", ctx, "jane@example.com").Return(nil, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil)

		c := &domain.Candidate{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Status:    domain.StageApplied,
			Position:  "SRE",
			Skills:    []domain.Skill{{Name: "Go"}, {Name: "Kubernetes"}},
		}
		err := uc.Create(ctx, c)

		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, time.Now().Format("2006-01-02"), c.AppliedDate)
		for _, s := range c.Skills {
			assert.NotEmpty(t, s.ID)
		}
	})

	t.Run("Should reject a duplicate email with 409", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockInterviewRepo), new(MockOfferRepo))

		repo.On("GetByEmail", ctx, "jane@example.com").
			Return(&domain.Candidate{ID: "existing", Email: "jane@example.com"}, nil)

		err := uc.Create(ctx, &domain.Candidate{Email: "jane@example.com"})

		assertAppError(t, err, http.StatusConflict)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestCandidateUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should leave skills untouched when the update omits them", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockInterviewRepo), new(MockOfferRepo))

		repo.On("GetByID", ctx, "c1").Return(&domain.Candidate{
			ID:     "c1",
			Status: domain.StageApplied,
			Skills: []domain.Skill{{ID: "s1", Name: "Go"}},
		}, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*domain.Candidate"), false).Return(nil)

		status := domain.StageTechnical
		out, err := uc.Update(ctx, "c1", &domain.CandidateUpdate{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, domain.StageTechnical, out.Status)
		assert.Equal(t, "s1", out.Skills[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("Should replace the whole skill set when one is provided", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockInterviewRepo), new(MockOfferRepo))

		repo.On("GetByID", ctx, "c1").Return(&domain.Candidate{
			ID:     "c1",
			Skills: []domain.Skill{{ID: "s1", Name: "Go"}},
		}, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*domain.Candidate"), true).Return(nil)

		out, err := uc.Update(ctx, "c1", &domain.CandidateUpdate{
			Skills: []domain.Skill{{Name: "Rust"}},
		})

		require.NoError(t, err)
		require.Len(t, out.Skills, 1)
		assert.Equal(t, "Rust", out.Skills[0].Name)
		assert.NotEmpty(t, out.Skills[0].ID)
		repo.AssertExpectations(t)
	})
}

func TestUserChangePassword(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Should replace the hash when the current password matches", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo)

		repo.On("GetByID", ctx, "u1").
			Return(&domain.User{ID: "u1", Password: string(hash)}, nil)
		repo.On("UpdatePassword", ctx, "u1", mock.AnythingOfType("string")).Return(nil)

		err := uc.ChangePassword(ctx, "u1", "old-password", "new-password")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should return 401 for a wrong current password", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo)

		repo.On("GetByID", ctx, "u1").
			Return(&domain.User{ID: "u1", Password: string(hash)}, nil)

		err := uc.ChangePassword(ctx, "u1", "wrong", "new-password")

		assertAppError(t, err, http.StatusUnauthorized)
		repo.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("Should return 400 when a password is missing", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo))

		err := uc.ChangePassword(ctx, "u1", "", "new-password")

		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Should return 404 for an unknown user", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo)

		repo.On("GetByID", ctx, "missing").Return(nil, nil)

		err := uc.ChangePassword(ctx, "missing", "old-password", "new-password")

		assertAppError(t, err, http.StatusNotFound)
	})
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	tokens := token.NewService("test-secret", time.Hour)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	active := &domain.User{
		ID:       "u1",
		Email:    "admin@example.com",
		Password: string(hash),
		Role:     domain.RoleAdmin,
		IsActive: true,
	}

	t.Run("Should issue a verifiable token on success", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, tokens)

		repo.On("GetByEmail", ctx, "admin@example.com").Return(active, nil)

		tok, user, err := uc.Login(ctx, "admin@example.com", "secret123")

		require.NoError(t, err)
		require.NotNil(t, user)
		claims, err := tokens.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.ID)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
	})

	t.Run("Should return 401 for an unknown email", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, tokens)

		repo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

		_, _, err := uc.Login(ctx, "nobody@example.com", "secret123")

		assertAppError(t, err, http.StatusUnauthorized)
	})

	t.Run("Should return 401 for a deactivated account", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, tokens)

		inactive := *active
		inactive.IsActive = false
		repo.On("GetByEmail", ctx, "admin@example.com").Return(&inactive, nil)

		_, _, err := uc.Login(ctx, "admin@example.com", "secret123")

		assertAppError(t, err, http.StatusUnauthorized)
	})

	t.Run("Should return 401 for a wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, tokens)

		repo.On("GetByEmail", ctx, "admin@example.com").Return(active, nil)

		_, _, err := uc.Login(ctx, "admin@example.com", "wrong")

		assertAppError(t, err, http.StatusUnauthorized)
	})
}
