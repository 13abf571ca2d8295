package domain

import (
	"context"
	"time"
)

// Document type constants
const (
	DocumentTypeID            = "id"
	DocumentTypeContract      = "contract"
	DocumentTypeCertification = "certification"
	DocumentTypeOther         = "other"
)

// Document status constants. Status is stored as-is and is not derived from
// ExpiryDate; expiry curation stays a manual operation.
const (
	DocumentStatusValid   = "valid"
	DocumentStatusExpired = "expired"
	DocumentStatusPending = "pending"
)

// Document is a file attached to a candidate (identity papers, certifications...).
type Document struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	CandidateID string     `json:"candidate_id" validate:"required"`
	Type        string     `json:"type" validate:"required,oneof=id contract certification other"`
	Title       string     `json:"title" validate:"required,max=200"`
	URL         string     `json:"url"`
	ObjectKey   *string    `json:"-"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DocumentFilter combines free-text title search with status and type filters.
type DocumentFilter struct {
	Query  string `json:"query,omitempty"`
	Status string `json:"status,omitempty"`
	Type   string `json:"type,omitempty"`
}

type DocumentRepository interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, userID, id string) (*Document, error)
	ListByOwner(ctx context.Context, userID string) ([]Document, error)
	ListByCandidate(ctx context.Context, userID, candidateID string) ([]Document, error)
	Update(ctx context.Context, d *Document) error
	Delete(ctx context.Context, userID, id string) error
}

type DocumentUsecase interface {
	CreateDocument(ctx context.Context, d *Document, filename string, data []byte) error
	GetDocument(ctx context.Context, id string) (*Document, error)
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]Document, error)
	ListDocumentsByCandidate(ctx context.Context, candidateID string) ([]Document, error)
	UpdateDocument(ctx context.Context, d *Document) error
	DeleteDocument(ctx context.Context, id string) error
	DownloadDocument(ctx context.Context, id string) (string, error)
}
