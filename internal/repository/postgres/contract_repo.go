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

type contractRepository struct {
	db *pgxpool.Pool
}

func NewContractRepository(db *pgxpool.Pool) domain.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `
	id, user_id, candidate_id, type, status, position, COALESCE(department, ''),
	start_date, end_date, salary_amount, salary_currency, salary_period,
	contract_url, contract_object_key, signature_url, signature_object_key,
	created_at, updated_at`

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query := `
		INSERT INTO contracts (
			id, user_id, candidate_id, type, status, position, department,
			start_date, end_date, salary_amount, salary_currency, salary_period,
			contract_url, contract_object_key, signature_url, signature_object_key,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		c.ID, c.UserID, c.CandidateID, c.Type, c.Status, c.Position, c.Department,
		c.StartDate, c.EndDate, c.Salary.Amount, c.Salary.Currency, c.Salary.Period,
		c.ContractURL, c.ContractObjectKey, c.SignatureURL, c.SignatureObjectKey,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *contractRepository) GetByID(ctx context.Context, userID, id string) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1 AND user_id = $2`

	c, err := scanContract(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *contractRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryContracts(ctx, query, userID)
}

func (r *contractRepository) ListByCandidate(ctx context.Context, userID, candidateID string) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts
		WHERE user_id = $1 AND candidate_id = $2 ORDER BY created_at DESC`
	return r.queryContracts(ctx, query, userID, candidateID)
}

func (r *contractRepository) queryContracts(ctx context.Context, query string, args ...any) ([]domain.Contract, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, rows.Err()
}

func (r *contractRepository) Update(ctx context.Context, c *domain.Contract) error {
	query := `
		UPDATE contracts SET
			candidate_id = $1, type = $2, status = $3, position = $4, department = $5,
			start_date = $6, end_date = $7, salary_amount = $8, salary_currency = $9,
			salary_period = $10, contract_url = $11, contract_object_key = $12,
			signature_url = $13, signature_object_key = $14, updated_at = NOW()
		WHERE id = $15 AND user_id = $16
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		c.CandidateID, c.Type, c.Status, c.Position, c.Department,
		c.StartDate, c.EndDate, c.Salary.Amount, c.Salary.Currency, c.Salary.Period,
		c.ContractURL, c.ContractObjectKey, c.SignatureURL, c.SignatureObjectKey,
		c.ID, c.UserID,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *contractRepository) Delete(ctx context.Context, userID, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contracts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var c domain.Contract

	err := row.Scan(
		&c.ID, &c.UserID, &c.CandidateID, &c.Type, &c.Status, &c.Position, &c.Department,
		&c.StartDate, &c.EndDate, &c.Salary.Amount, &c.Salary.Currency, &c.Salary.Period,
		&c.ContractURL, &c.ContractObjectKey, &c.SignatureURL, &c.SignatureObjectKey,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
