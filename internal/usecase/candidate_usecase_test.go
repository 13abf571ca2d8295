package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"math/rand"
	"net/http"
	"testing"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/estimation"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCandidateUsecase(repo *MockCandidateRepo, blobs *MockBlobStore) domain.CandidateUsecase {
	return usecase.NewCandidateUsecase(repo, blobs, estimation.NewService(rand.New(rand.NewSource(1))))
}

func validCandidate() *domain.Candidate {
	return &domain.Candidate{
		ID:        "cand-1",
		FirstName: "Ana",
		LastName:  "Dupont",
		Email:     "ana.dupont@example.com",
		Phone:     "+33 6 12 34 56 78",
		Skills:    []string{"React", "TypeScript"},
		Status:    domain.CandidateStatusAvailable,
	}
}

func TestCreateCandidate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo, new(MockBlobStore))

		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil)

		c := validCandidate()
		c.Status = ""
		err := uc.CreateCandidate(authedCtx("user-1"), c)

		assert.NoError(t, err)
		assert.Equal(t, "user-1", c.UserID)
		assert.Equal(t, domain.CandidateStatusAvailable, c.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Fail_MissingFields", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo, new(MockBlobStore))

		c := validCandidate()
		c.Phone = ""
		c.Skills = nil
		err := uc.CreateCandidate(authedCtx("user-1"), c)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Fields["Phone"], "Téléphone")
		assert.Contains(t, appErr.Fields["Skills"], "Compétences")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail_BadEmail", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo, new(MockBlobStore))

		c := validCandidate()
		c.Email = "not-an-email"
		err := uc.CreateCandidate(authedCtx("user-1"), c)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Fields["Email"], "format d'email invalide")
	})

	t.Run("Success_PermissiveEmailShape", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo, new(MockBlobStore))
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		// Only the local@domain.tld shape is enforced, not full RFC 5322.
		c := validCandidate()
		c.Email = "ana..dupont@example.com"

		assert.NoError(t, uc.CreateCandidate(authedCtx("user-1"), c))
	})

	t.Run("Fail_NoOwner", func(t *testing.T) {
		uc := newCandidateUsecase(new(MockCandidateRepo), new(MockBlobStore))

		err := uc.CreateCandidate(context.Background(), validCandidate())

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})
}

func TestListCandidates(t *testing.T) {
	ana := domain.Candidate{FirstName: "Ana", LastName: "Dupont", Email: "ana@example.com",
		Skills: []string{"React", "TypeScript"}, Status: domain.CandidateStatusAvailable}
	ben := domain.Candidate{FirstName: "Ben", LastName: "Martin", Email: "ben@example.com",
		Skills: []string{"Go"}, Status: domain.CandidateStatusInterviewing}
	chloe := domain.Candidate{FirstName: "Chloé", LastName: "Anand", Email: "chloe@example.com",
		Skills: []string{"React"}, Status: domain.CandidateStatusHired}

	t.Run("ConjunctiveFilters", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo, new(MockBlobStore))
		repo.On("ListByOwner", mock.Anything, "user-1").Return([]domain.Candidate{ana, ben, chloe}, nil)

		// "an" matches Ana Dupont and Chloé Anand by name; the skill and
		// status dimensions then cut the set down to Ana alone.
		out, err := uc.ListCandidates(authedCtx("user-1"), domain.CandidateFilter{
			Query: "an", Skill: "React", Status: domain.CandidateStatusAvailable,
		})

		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "Ana", out[0].FirstName)
	})

	t.Run("EmptyFilterReturnsAllInOrder", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo, new(MockBlobStore))
		repo.On("ListByOwner", mock.Anything, "user-1").Return([]domain.Candidate{ana, ben, chloe}, nil)

		out, err := uc.ListCandidates(authedCtx("user-1"), domain.CandidateFilter{})

		assert.NoError(t, err)
		assert.Equal(t, []string{"Ana", "Ben", "Chloé"},
			[]string{out[0].FirstName, out[1].FirstName, out[2].FirstName})
	})
}

func TestDeleteCandidate(t *testing.T) {
	key := "cv/user-1/cand-1/cv.pdf"

	t.Run("Success_CascadesCV", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		blobs := new(MockBlobStore)
		uc := newCandidateUsecase(repo, blobs)

		c := validCandidate()
		c.CVObjectKey = &key
		repo.On("GetByID", mock.Anything, "user-1", "cand-1").Return(c, nil)
		blobs.On("Delete", mock.Anything, key).Return(nil)
		repo.On("Delete", mock.Anything, "user-1", "cand-1").Return(nil)

		err := uc.DeleteCandidate(authedCtx("user-1"), "cand-1")

		assert.NoError(t, err)
		blobs.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Fail_BlobErrorKeepsRecord", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		blobs := new(MockBlobStore)
		uc := newCandidateUsecase(repo, blobs)

		c := validCandidate()
		c.CVObjectKey = &key
		repo.On("GetByID", mock.Anything, "user-1", "cand-1").Return(c, nil)
		blobs.On("Delete", mock.Anything, key).Return(errors.New("storage unreachable"))

		err := uc.DeleteCandidate(authedCtx("user-1"), "cand-1")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success_NoCV", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		blobs := new(MockBlobStore)
		uc := newCandidateUsecase(repo, blobs)

		repo.On("GetByID", mock.Anything, "user-1", "cand-1").Return(validCandidate(), nil)
		repo.On("Delete", mock.Anything, "user-1", "cand-1").Return(nil)

		err := uc.DeleteCandidate(authedCtx("user-1"), "cand-1")

		assert.NoError(t, err)
		blobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Fail_OtherOwner", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo, new(MockBlobStore))

		repo.On("GetByID", mock.Anything, "user-2", "cand-1").Return(nil, nil)

		err := uc.DeleteCandidate(authedCtx("user-2"), "cand-1")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}

func TestEstimateMarketValue(t *testing.T) {
	repo := new(MockCandidateRepo)
	uc := newCandidateUsecase(repo, new(MockBlobStore))

	c := validCandidate()
	c.Skills = []string{"React", "TypeScript", "Node.js"}
	c.CVAnalysis = &domain.CVAnalysis{Experience: []domain.ExperienceEntry{
		{Title: "Développeuse", Company: "Acme"},
		{Title: "Lead", Company: "Globex"},
	}}
	repo.On("GetByID", mock.Anything, "user-1", "cand-1").Return(c, nil)
	repo.On("Update", mock.Anything, c).Return(nil)

	out, err := uc.EstimateMarketValue(authedCtx("user-1"), "cand-1")

	assert.NoError(t, err)
	assert.Equal(t, 43000, out.CVAnalysis.MarketValue.Min)
	assert.Equal(t, 53000, out.CVAnalysis.MarketValue.Max)
	assert.Equal(t, "EUR", out.CVAnalysis.MarketValue.Currency)
	repo.AssertExpectations(t)
}

func TestExportCSV(t *testing.T) {
	repo := new(MockCandidateRepo)
	uc := newCandidateUsecase(repo, new(MockBlobStore))

	c := *validCandidate()
	c.Skills = []string{"React", "Node.js"}
	c.Availability = "Immédiate"
	repo.On("ListByOwner", mock.Anything, "user-1").Return([]domain.Candidate{c}, nil)

	data, filename, err := uc.ExportCSV(authedCtx("user-1"), domain.CandidateFilter{})
	assert.NoError(t, err)
	assert.Contains(t, filename, ".csv")

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Prénom", "Nom", "Email", "Téléphone", "Compétences", "Disponibilité", "Statut"}, records[0])
	assert.Equal(t, []string{"Ana", "Dupont", "ana.dupont@example.com", "+33 6 12 34 56 78",
		"React, Node.js", "Immédiate", "Disponible"}, records[1])
}

func TestAttachCV(t *testing.T) {
	pdf := append([]byte("%PDF-1.7"), bytes.Repeat([]byte{0x20}, 64)...)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		blobs := new(MockBlobStore)
		uc := newCandidateUsecase(repo, blobs)

		repo.On("GetByID", mock.Anything, "user-1", "cand-1").Return(validCandidate(), nil)
		blobs.On("Upload", mock.Anything, "cv/user-1/cand-1/cv.pdf", pdf, "application/pdf").
			Return("https://blobs.local/talent/cv/user-1/cand-1/cv.pdf", nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil)

		out, err := uc.AttachCV(authedCtx("user-1"), "cand-1", "cv.pdf", pdf)

		assert.NoError(t, err)
		assert.NotNil(t, out.CVURL)
		assert.Equal(t, "cv/user-1/cand-1/cv.pdf", *out.CVObjectKey)
	})

	t.Run("Fail_WrongMagicBytes", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		blobs := new(MockBlobStore)
		uc := newCandidateUsecase(repo, blobs)

		repo.On("GetByID", mock.Anything, "user-1", "cand-1").Return(validCandidate(), nil)

		_, err := uc.AttachCV(authedCtx("user-1"), "cand-1", "cv.pdf", []byte("plain text pretending"))

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		blobs.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
