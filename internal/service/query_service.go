package service

import (
	"context"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"

	"github.com/rs/zerolog"
)

// TransactionQueryServiceImpl implements ports.TransactionQueryService.
type TransactionQueryServiceImpl struct {
	journal eventJournal
}

func NewTransactionQueryService(events ports.EventStore, log zerolog.Logger) *TransactionQueryServiceImpl {
	return &TransactionQueryServiceImpl{journal: newEventJournal(events, nil, log)}
}

// GetTransaction folds the event log of a transaction.
func (s *TransactionQueryServiceImpl) GetTransaction(ctx context.Context, transactionID domain.TransactionID) (domain.Transaction, error) {
	snap, err := s.journal.load(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return snap.tx, nil
}
