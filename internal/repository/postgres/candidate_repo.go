package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-talent-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	analysis, err := marshalAnalysis(c.CVAnalysis)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO candidates (
			id, user_id, first_name, last_name, email, phone, skills, status,
			availability, cv_url, cv_object_key, cv_analysis, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		c.ID, c.UserID, c.FirstName, c.LastName, c.Email, c.Phone,
		pq.Array(c.Skills), c.Status, c.Availability, c.CVURL, c.CVObjectKey, analysis,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *candidateRepository) GetByID(ctx context.Context, userID, id string) (*domain.Candidate, error) {
	query := `
		SELECT id, user_id, first_name, last_name, email, phone, skills, status,
		       COALESCE(availability, ''), cv_url, cv_object_key, cv_analysis, created_at, updated_at
		FROM candidates WHERE id = $1 AND user_id = $2`

	c, err := scanCandidate(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *candidateRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Candidate, error) {
	query := `
		SELECT id, user_id, first_name, last_name, email, phone, skills, status,
		       COALESCE(availability, ''), cv_url, cv_object_key, cv_analysis, created_at, updated_at
		FROM candidates WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) Update(ctx context.Context, c *domain.Candidate) error {
	analysis, err := marshalAnalysis(c.CVAnalysis)
	if err != nil {
		return err
	}

	query := `
		UPDATE candidates SET
			first_name = $1, last_name = $2, email = $3, phone = $4, skills = $5,
			status = $6, availability = $7, cv_url = $8, cv_object_key = $9,
			cv_analysis = $10, updated_at = NOW()
		WHERE id = $11 AND user_id = $12
		RETURNING updated_at`

	err = r.db.QueryRow(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, pq.Array(c.Skills),
		c.Status, c.Availability, c.CVURL, c.CVObjectKey, analysis,
		c.ID, c.UserID,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *candidateRepository) Delete(ctx context.Context, userID, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func marshalAnalysis(a *domain.CVAnalysis) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cv analysis: %w", err)
	}
	return b, nil
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var skills []string
	var analysis []byte

	err := row.Scan(
		&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		pq.Array(&skills), &c.Status, &c.Availability, &c.CVURL, &c.CVObjectKey,
		&analysis, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Skills = skills
	if len(analysis) > 0 {
		c.CVAnalysis = &domain.CVAnalysis{}
		if err := json.Unmarshal(analysis, c.CVAnalysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cv analysis: %w", err)
		}
	}
	return &c, nil
}
