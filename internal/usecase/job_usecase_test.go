package usecase_test

import (
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

func newJobUsecase(repo *MockJobRepo) domain.JobUsecase {
	return usecase.NewJobUsecase(repo, estimation.NewService(rand.New(rand.NewSource(1))))
}

func draftJob() *domain.JobPosting {
	return &domain.JobPosting{
		ID:     "job-1",
		Title:  "Développeur Full Stack",
		Type:   domain.JobTypeCDI,
		Status: domain.JobStatusDraft,
	}
}

func TestCreateJob(t *testing.T) {
	t.Run("Success_ScoredOnce", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := newJobUsecase(repo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobPosting")).Return(nil)

		job := draftJob()
		job.Status = ""
		err := uc.CreateJob(authedCtx("user-1"), job)

		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusDraft, job.Status)
		assert.GreaterOrEqual(t, job.AIScore, 60)
		assert.LessOrEqual(t, job.AIScore, 100)
		repo.AssertExpectations(t)
	})

	t.Run("Fail_UnknownType", func(t *testing.T) {
		uc := newJobUsecase(new(MockJobRepo))

		job := draftJob()
		job.Type = "Bénévolat"
		err := uc.CreateJob(authedCtx("user-1"), job)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Fields["Type"], "valeur non autorisée")
	})
}

func TestGetJob(t *testing.T) {
	repo := new(MockJobRepo)
	uc := newJobUsecase(repo)

	job := draftJob()
	job.Views = 4
	repo.On("GetByID", mock.Anything, "user-1", "job-1").Return(job, nil)
	repo.On("IncrementViews", mock.Anything, "user-1", "job-1").Return(nil)

	out, err := uc.GetJob(authedCtx("user-1"), "job-1")

	assert.NoError(t, err)
	assert.Equal(t, 5, out.Views)
	repo.AssertExpectations(t)
}

func TestPublishJob(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := newJobUsecase(repo)

		repo.On("GetByID", mock.Anything, "user-1", "job-1").Return(draftJob(), nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.JobPosting")).Return(nil)

		out, err := uc.PublishJob(authedCtx("user-1"), "job-1")

		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusPublished, out.Status)
		assert.NotNil(t, out.PublishedAt)
	})

	t.Run("Fail_AlreadyPublished", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := newJobUsecase(repo)

		job := draftJob()
		job.Status = domain.JobStatusPublished
		repo.On("GetByID", mock.Anything, "user-1", "job-1").Return(job, nil)

		_, err := uc.PublishJob(authedCtx("user-1"), "job-1")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Fail_NotFound", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := newJobUsecase(repo)

		repo.On("GetByID", mock.Anything, "user-1", "missing").Return(nil, nil)

		_, err := uc.PublishJob(authedCtx("user-1"), "missing")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}

func TestUpdateJobPreservesScore(t *testing.T) {
	repo := new(MockJobRepo)
	uc := newJobUsecase(repo)

	existing := draftJob()
	existing.AIScore = 87
	existing.Views = 12
	repo.On("GetByID", mock.Anything, "user-1", "job-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.JobPosting")).Return(nil)

	edited := draftJob()
	edited.Title = "Développeur Full Stack Senior"
	edited.AIScore = 0
	err := uc.UpdateJob(authedCtx("user-1"), edited)

	assert.NoError(t, err)
	assert.Equal(t, 87, edited.AIScore)
	assert.Equal(t, 12, edited.Views)
}

func TestGeneratePosting(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := newJobUsecase(new(MockJobRepo))

		out, err := uc.GeneratePosting(authedCtx("user-1"), "Développeur Backend", "Senior (5+ ans)", "Paris", "55-65k€")

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Description)
		assert.NotEmpty(t, out.Requirements)
		assert.NotEmpty(t, out.Skills)
	})

	t.Run("Fail_EmptyTitle", func(t *testing.T) {
		uc := newJobUsecase(new(MockJobRepo))

		_, err := uc.GeneratePosting(authedCtx("user-1"), "  ", "", "", "")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})
}

func TestListJobsFilter(t *testing.T) {
	repo := new(MockJobRepo)
	uc := newJobUsecase(repo)

	jobs := []domain.JobPosting{
		{Title: "Développeur Backend", Department: "Tech", Status: domain.JobStatusPublished},
		{Title: "Product Manager", Department: "Produit", Status: domain.JobStatusDraft},
		{Title: "Développeur Frontend", Department: "Tech", Status: domain.JobStatusDraft},
	}
	repo.On("ListByOwner", mock.Anything, "user-1").Return(jobs, nil)

	out, err := uc.ListJobs(authedCtx("user-1"), domain.JobFilter{
		Query: "développeur", Status: domain.JobStatusDraft,
	})

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "Développeur Frontend", out[0].Title)
}
