package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-talent-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepository struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `
	id, user_id, title, COALESCE(department, ''), COALESCE(location, ''), type,
	COALESCE(experience, ''), COALESCE(salary, ''), COALESCE(description, ''),
	requirements, benefits, skills, status, ai_score, applications, views,
	published_at, closing_date, COALESCE(recruiter_notes, ''), tags, created_at, updated_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.JobPosting) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	query := `
		INSERT INTO jobs (
			id, user_id, title, department, location, type, experience, salary,
			description, requirements, benefits, skills, status, ai_score,
			applications, views, published_at, closing_date, recruiter_notes, tags,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		          $15, $16, $17, $18, $19, $20, NOW(), NOW())
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		job.ID, job.UserID, job.Title, job.Department, job.Location, job.Type,
		job.Experience, job.Salary, job.Description, pq.Array(job.Requirements),
		pq.Array(job.Benefits), pq.Array(job.Skills), job.Status, job.AIScore,
		job.Applications, job.Views, job.PublishedAt, job.ClosingDate,
		job.RecruiterNotes, pq.Array(job.Tags),
	).Scan(&job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) GetByID(ctx context.Context, userID, id string) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 AND user_id = $2`

	job, err := scanJob(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) ListByOwner(ctx context.Context, userID string) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `
		UPDATE jobs SET
			title = $1, department = $2, location = $3, type = $4, experience = $5,
			salary = $6, description = $7, requirements = $8, benefits = $9,
			skills = $10, status = $11, published_at = $12, closing_date = $13,
			recruiter_notes = $14, tags = $15, updated_at = NOW()
		WHERE id = $16 AND user_id = $17
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		job.Title, job.Department, job.Location, job.Type, job.Experience,
		job.Salary, job.Description, pq.Array(job.Requirements), pq.Array(job.Benefits),
		pq.Array(job.Skills), job.Status, job.PublishedAt, job.ClosingDate,
		job.RecruiterNotes, pq.Array(job.Tags), job.ID, job.UserID,
	).Scan(&job.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *jobRepository) Delete(ctx context.Context, userID, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter without touching updated_at, so a
// read never looks like an edit.
func (r *jobRepository) IncrementViews(ctx context.Context, userID, id string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE jobs SET views = views + 1 WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func scanJob(row pgx.Row) (*domain.JobPosting, error) {
	var job domain.JobPosting
	var requirements, benefits, skills, tags []string

	err := row.Scan(
		&job.ID, &job.UserID, &job.Title, &job.Department, &job.Location, &job.Type,
		&job.Experience, &job.Salary, &job.Description, pq.Array(&requirements),
		pq.Array(&benefits), pq.Array(&skills), &job.Status, &job.AIScore,
		&job.Applications, &job.Views, &job.PublishedAt, &job.ClosingDate,
		&job.RecruiterNotes, pq.Array(&tags), &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	job.Requirements = requirements
	job.Benefits = benefits
	job.Skills = skills
	job.Tags = tags
	return &job, nil
}
