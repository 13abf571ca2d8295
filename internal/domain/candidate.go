package domain

import (
	"context"
	"time"
)

// Candidate status constants
const (
	CandidateStatusAvailable    = "available"
	CandidateStatusInterviewing = "interviewing"
	CandidateStatusHired        = "hired"
	CandidateStatusInactive     = "inactive"
)

// CandidateStatuses lists every valid candidate status.
var CandidateStatuses = []string{
	CandidateStatusAvailable,
	CandidateStatusInterviewing,
	CandidateStatusHired,
	CandidateStatusInactive,
}

// CandidateStatusLabels maps statuses to the French display labels used in exports.
var CandidateStatusLabels = map[string]string{
	CandidateStatusAvailable:    "Disponible",
	CandidateStatusInterviewing: "En entretien",
	CandidateStatusHired:        "Embauché",
	CandidateStatusInactive:     "Inactif",
}

// Candidate is a person profile tracked through the recruiting pipeline.
// Owned by the account that created it; all access is scoped by UserID.
type Candidate struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	FirstName    string      `json:"first_name" validate:"required,max=100"`
	LastName     string      `json:"last_name" validate:"required,max=100"`
	Email        string      `json:"email" validate:"required,email_shape"`
	Phone        string      `json:"phone" validate:"required,valid_phone"`
	Skills       []string    `json:"skills" validate:"required,min=1"`
	Status       string      `json:"status"`
	Availability string      `json:"availability"`
	CVURL        *string     `json:"cv_url,omitempty"`
	CVObjectKey  *string     `json:"-"`
	CVAnalysis   *CVAnalysis `json:"cv_analysis,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// FullName is the text-search representation of the candidate's identity.
func (c *Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CVAnalysis holds the structured interpretation of an uploaded CV.
// Stored alongside the candidate as a JSON document.
type CVAnalysis struct {
	Skills            []string          `json:"skills"`
	Experience        []ExperienceEntry `json:"experience"`
	Education         []EducationEntry  `json:"education"`
	Summary           string            `json:"summary"`
	RecommendedTitles []string          `json:"recommended_titles"`
	MarketValue       *MarketValue      `json:"market_value,omitempty"`
}

// ExperienceEntry is one position in a candidate's work history.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one degree or training in a candidate's background.
type EducationEntry struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year,omitempty"`
}

// MarketValue is an estimated salary range for a candidate.
type MarketValue struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// CandidateFilter combines free-text search with categorical filters.
// Unset (empty) dimensions match everything; set dimensions are conjunctive.
type CandidateFilter struct {
	Query  string `json:"query,omitempty"`
	Skill  string `json:"skill,omitempty"`
	Status string `json:"status,omitempty"`
}

type CandidateRepository interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, userID, id string) (*Candidate, error)
	ListByOwner(ctx context.Context, userID string) ([]Candidate, error)
	Update(ctx context.Context, c *Candidate) error
	Delete(ctx context.Context, userID, id string) error
}

type CandidateUsecase interface {
	CreateCandidate(ctx context.Context, c *Candidate) error
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	UpdateCandidate(ctx context.Context, c *Candidate) error
	DeleteCandidate(ctx context.Context, id string) error
	AttachCV(ctx context.Context, id, filename string, data []byte) (*Candidate, error)
	EstimateMarketValue(ctx context.Context, id string) (*Candidate, error)
	ExportCSV(ctx context.Context, filter CandidateFilter) ([]byte, string, error)
	ExportExcel(ctx context.Context, filter CandidateFilter) ([]byte, string, error)
}
