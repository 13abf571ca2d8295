package usecase

import (
	"context"
	"strings"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/estimation"
	"go-talent-backend/internal/search"
	"go-talent-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo   domain.JobRepository
	estimator *estimation.Service
	validate  *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, estimator *estimation.Service) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:   jobRepo,
		estimator: estimator,
		validate:  newValidator(),
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.JobPosting) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}

	if err := u.validate.Struct(job); err != nil {
		return validationError(err)
	}

	job.UserID = userID
	if job.Status == "" {
		job.Status = domain.JobStatusDraft
	}

	// Attractiveness score is fixed at creation time; edits never change it.
	job.AIScore = u.estimator.ScoreJob(job)

	return u.jobRepo.Create(ctx, job)
}

// GetJob returns the posting and counts the view.
func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.JobPosting, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("Offre introuvable")
	}

	if err := u.jobRepo.IncrementViews(ctx, userID, id); err == nil {
		job.Views++
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobPosting, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return search.Compose(jobs, filter.Query,
		func(j domain.JobPosting) []string {
			return []string{j.Title, j.Department}
		},
		search.Equals(filter.Status, func(j domain.JobPosting) string { return j.Status }),
	), nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.JobPosting) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}

	if err := u.validate.Struct(job); err != nil {
		return validationError(err)
	}

	existing, err := u.jobRepo.GetByID(ctx, userID, job.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Offre introuvable")
	}

	// Score, counters and publication timestamp survive edits untouched.
	job.UserID = userID
	job.AIScore = existing.AIScore
	job.Applications = existing.Applications
	job.Views = existing.Views
	job.PublishedAt = existing.PublishedAt
	if job.Status == "" {
		job.Status = existing.Status
	}

	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}
	return translateNotFound(u.jobRepo.Delete(ctx, userID, id), "Offre introuvable")
}

// PublishJob moves a draft posting to published and stamps the publication
// time. Any other starting status is rejected.
func (u *jobUsecase) PublishJob(ctx context.Context, id string) (*domain.JobPosting, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("Offre introuvable")
	}

	if job.Status != domain.JobStatusDraft {
		return nil, apperror.UnprocessableEntity(
			"Seule une offre en brouillon peut être publiée (statut actuel : " + job.Status + ")")
	}

	now := time.Now()
	job.Status = domain.JobStatusPublished
	job.PublishedAt = &now

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) GeneratePosting(ctx context.Context, title, experience, location, salary string) (*domain.GeneratedPosting, error) {
	if _, err := ownerID(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, apperror.BadRequest("Titre : champ obligatoire")
	}
	return u.estimator.GeneratePosting(title, experience, location, salary), nil
}
