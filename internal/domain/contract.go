package domain

import (
	"context"
	"time"
)

// Contract status constants. The supported pipeline is draft → sent → signed;
// expired and cancelled are reachable only by explicit update.
const (
	ContractStatusDraft     = "draft"
	ContractStatusSent      = "sent"
	ContractStatusSigned    = "signed"
	ContractStatusExpired   = "expired"
	ContractStatusCancelled = "cancelled"
)

// Salary period constants
const (
	SalaryPeriodMonthly = "monthly"
	SalaryPeriodYearly  = "yearly"
	SalaryPeriodDaily   = "daily"
	SalaryPeriodHourly  = "hourly"
)

// Salary is the remuneration attached to a contract.
type Salary struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
	Period   string  `json:"period" validate:"required,oneof=monthly yearly daily hourly"`
}

// Contract is an employment agreement instance linked to a candidate.
type Contract struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	CandidateID        string     `json:"candidate_id" validate:"required"`
	Type               string     `json:"type" validate:"required,oneof=CDI CDD Stage Freelance"`
	Status             string     `json:"status"`
	Position           string     `json:"position" validate:"required"`
	Department         string     `json:"department"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	Salary             Salary     `json:"salary"`
	ContractURL        *string    `json:"contract_url,omitempty"`
	ContractObjectKey  *string    `json:"-"`
	SignatureURL       *string    `json:"signature_url,omitempty"`
	SignatureObjectKey *string    `json:"-"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type ContractRepository interface {
	Create(ctx context.Context, c *Contract) error
	GetByID(ctx context.Context, userID, id string) (*Contract, error)
	ListByOwner(ctx context.Context, userID string) ([]Contract, error)
	ListByCandidate(ctx context.Context, userID, candidateID string) ([]Contract, error)
	Update(ctx context.Context, c *Contract) error
	Delete(ctx context.Context, userID, id string) error
}

type ContractUsecase interface {
	CreateContract(ctx context.Context, c *Contract) error
	GetContract(ctx context.Context, id string) (*Contract, error)
	ListContracts(ctx context.Context) ([]Contract, error)
	ListContractsByCandidate(ctx context.Context, candidateID string) ([]Contract, error)
	UpdateContract(ctx context.Context, c *Contract) error
	DeleteContract(ctx context.Context, id string) error
	SendContract(ctx context.Context, id string) (*Contract, error)
	SignContract(ctx context.Context, id string) (*Contract, error)
	AttachFile(ctx context.Context, id, kind, filename string, data []byte) (*Contract, error)
}
