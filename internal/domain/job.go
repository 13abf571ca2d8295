package domain

import (
	"context"
	"time"
)

// Job status constants. Only draft → published is reachable through the
// publish operation; closed and paused are set by direct update.
const (
	JobStatusDraft     = "draft"
	JobStatusPublished = "published"
	JobStatusClosed    = "closed"
	JobStatusPaused    = "paused"
)

// Job contract types offered on postings
const (
	JobTypeCDI        = "CDI"
	JobTypeCDD        = "CDD"
	JobTypeStage      = "Stage"
	JobTypeFreelance  = "Freelance"
	JobTypeAlternance = "Alternance"
)

// JobTypes lists every valid posting type.
var JobTypes = []string{JobTypeCDI, JobTypeCDD, JobTypeStage, JobTypeFreelance, JobTypeAlternance}

// JobPosting is an advertised open role with a lifecycle status.
// AIScore is computed once at creation and never recomputed on edit.
type JobPosting struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Title          string     `json:"title" validate:"required,max=150"`
	Department     string     `json:"department"`
	Location       string     `json:"location"`
	Type           string     `json:"type" validate:"required,oneof=CDI CDD Stage Freelance Alternance"`
	Experience     string     `json:"experience"`
	Salary         string     `json:"salary"`
	Description    string     `json:"description"`
	Requirements   []string   `json:"requirements"`
	Benefits       []string   `json:"benefits"`
	Skills         []string   `json:"skills"`
	Status         string     `json:"status"`
	AIScore        int        `json:"ai_score"`
	Applications   int        `json:"applications"`
	Views          int        `json:"views"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	ClosingDate    *time.Time `json:"closing_date,omitempty"`
	RecruiterNotes string     `json:"recruiter_notes,omitempty"`
	Tags           []string   `json:"tags"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// JobFilter combines free-text search (title, department) with a status filter.
type JobFilter struct {
	Query  string `json:"query,omitempty"`
	Status string `json:"status,omitempty"`
}

// GeneratedPosting is the output of the posting generator: a ready-to-edit
// draft derived from the job title, experience label, location and salary.
type GeneratedPosting struct {
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	Skills       []string `json:"skills"`
	Category     string   `json:"category"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, userID, id string) (*JobPosting, error)
	ListByOwner(ctx context.Context, userID string) ([]JobPosting, error)
	Update(ctx context.Context, job *JobPosting) error
	Delete(ctx context.Context, userID, id string) error
	IncrementViews(ctx context.Context, userID, id string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *JobPosting) error
	GetJob(ctx context.Context, id string) (*JobPosting, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]JobPosting, error)
	UpdateJob(ctx context.Context, job *JobPosting) error
	DeleteJob(ctx context.Context, id string) error
	PublishJob(ctx context.Context, id string) (*JobPosting, error)
	GeneratePosting(ctx context.Context, title, experience, location, salary string) (*GeneratedPosting, error)
}
