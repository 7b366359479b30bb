package postgres

import (
	"context"
	"errors"
	"fmt"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// TransactionViewRepo implements ports.TransactionViewRepository on transactions_view.
type TransactionViewRepo struct {
	pool Pool
}

// NewTransactionViewRepo creates a new TransactionViewRepo.
func NewTransactionViewRepo(pool Pool) *TransactionViewRepo {
	return &TransactionViewRepo{pool: pool}
}

// Upsert writes the latest projection of a transaction.
func (r *TransactionViewRepo) Upsert(ctx context.Context, v ports.TransactionView) error {
	query := `INSERT INTO transactions_view (transaction_id, status, client_id, rpt_ids, amount, fee, creation_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (transaction_id) DO UPDATE
		SET status = EXCLUDED.status, fee = EXCLUDED.fee, updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		v.TransactionID.String(), string(v.Status), string(v.ClientID), v.RptIDs,
		v.Amount, v.Fee, v.CreationDate, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert transaction view: %w", err)
	}
	return nil
}

// GetByID fetches the projection of a transaction. Returns nil, nil if absent.
func (r *TransactionViewRepo) GetByID(ctx context.Context, transactionID domain.TransactionID) (*ports.TransactionView, error) {
	query := `SELECT transaction_id, status, client_id, rpt_ids, amount, fee, creation_date, updated_at
		FROM transactions_view WHERE transaction_id = $1`

	var (
		v                    ports.TransactionView
		id, status, clientID string
	)
	err := r.pool.QueryRow(ctx, query, transactionID.String()).Scan(
		&id, &status, &clientID, &v.RptIDs, &v.Amount, &v.Fee, &v.CreationDate, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction view: %w", err)
	}
	v.TransactionID = domain.TransactionID(id)
	v.Status = domain.TransactionStatus(status)
	v.ClientID = domain.ClientID(clientID)
	return &v, nil
}
