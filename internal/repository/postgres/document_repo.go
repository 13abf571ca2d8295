package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-talent-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type documentRepository struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) domain.DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `
	id, user_id, candidate_id, type, title, COALESCE(url, ''), object_key,
	expiry_date, status, created_at, updated_at`

func (r *documentRepository) Create(ctx context.Context, d *domain.Document) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	query := `
		INSERT INTO documents (
			id, user_id, candidate_id, type, title, url, object_key,
			expiry_date, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		d.ID, d.UserID, d.CandidateID, d.Type, d.Title, d.URL, d.ObjectKey,
		d.ExpiryDate, d.Status,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
}

func (r *documentRepository) GetByID(ctx context.Context, userID, id string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND user_id = $2`

	d, err := scanDocument(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (r *documentRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryDocuments(ctx, query, userID)
}

func (r *documentRepository) ListByCandidate(ctx context.Context, userID, candidateID string) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents
		WHERE user_id = $1 AND candidate_id = $2 ORDER BY created_at DESC`
	return r.queryDocuments(ctx, query, userID, candidateID)
}

func (r *documentRepository) queryDocuments(ctx context.Context, query string, args ...any) ([]domain.Document, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, *d)
	}
	return documents, rows.Err()
}

func (r *documentRepository) Update(ctx context.Context, d *domain.Document) error {
	query := `
		UPDATE documents SET
			candidate_id = $1, type = $2, title = $3, url = $4, object_key = $5,
			expiry_date = $6, status = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		d.CandidateID, d.Type, d.Title, d.URL, d.ObjectKey,
		d.ExpiryDate, d.Status, d.ID, d.UserID,
	).Scan(&d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *documentRepository) Delete(ctx context.Context, userID, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var d domain.Document

	err := row.Scan(
		&d.ID, &d.UserID, &d.CandidateID, &d.Type, &d.Title, &d.URL, &d.ObjectKey,
		&d.ExpiryDate, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
