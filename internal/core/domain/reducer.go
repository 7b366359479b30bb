package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an event cannot be applied to the current stage.
// It signals corrupted data: guards prevent such events from ever being appended.
var ErrInvalidTransition = errors.New("invalid event transition")

// Reduce folds an ordered event sequence into the current aggregate,
// starting from EmptyTransaction. It has no side effects.
func Reduce(events []Event) (Transaction, error) {
	var tx Transaction = EmptyTransaction{}
	for _, e := range events {
		next, err := Apply(tx, e)
		if err != nil {
			return nil, err
		}
		tx = next
	}
	return tx, nil
}

// Apply computes the stage following tx once e is applied.
func Apply(tx Transaction, e Event) (Transaction, error) {
	if _, empty := tx.(EmptyTransaction); !empty && tx.TransactionID() != e.TransactionID {
		return nil, fmt.Errorf("%w: event for %s applied to %s", ErrInvalidTransition, e.TransactionID, tx.TransactionID())
	}

	switch data := e.Data.(type) {
	case ActivatedData:
		if _, ok := tx.(EmptyTransaction); ok {
			return TransactionActivated{
				ID:                          e.TransactionID,
				CreationDate:                e.CreationDate,
				PaymentNotices:              data.PaymentNotices,
				ClientID:                    data.ClientID,
				IDCart:                      data.IDCart,
				UserID:                      data.UserID,
				PaymentTokenValiditySeconds: data.PaymentTokenValiditySeconds,
			}, nil
		}
	case AuthorizationRequestedData:
		if t, ok := tx.(TransactionActivated); ok {
			return TransactionWithRequestedAuthorization{TransactionActivated: t, Authorization: data}, nil
		}
	case AuthorizationCompletedData:
		if t, ok := tx.(TransactionWithRequestedAuthorization); ok {
			return TransactionAuthorizationCompleted{TransactionWithRequestedAuthorization: t, Completion: data}, nil
		}
	case ClosureRequestedData:
		if t, ok := tx.(TransactionAuthorizationCompleted); ok {
			return TransactionWithClosureRequested{TransactionAuthorizationCompleted: t}, nil
		}
	case ClosedData:
		if t, ok := Closable(tx); ok {
			return TransactionClosed{TransactionAuthorizationCompleted: t, ClosureOutcome: data.Outcome}, nil
		}
	case ClosureFailedData:
		if t, ok := Closable(tx); ok {
			if t.Completion.Outcome() == AuthorizationOutcomeOK {
				return TransactionClosed{TransactionAuthorizationCompleted: t, ClosureOutcome: ClosureOutcomeKO}, nil
			}
			return TransactionUnauthorized{TransactionAuthorizationCompleted: t}, nil
		}
	case ClosureErrorData:
		if t, ok := Closable(tx); ok {
			return TransactionWithClosureError{TransactionAuthorizationCompleted: t, ClosureError: data}, nil
		}
	case RefundRequestedData:
		switch t := tx.(type) {
		case TransactionClosed:
			return TransactionWithRefundRequested{TransactionAuthorizationCompleted: t.TransactionAuthorizationCompleted, StatusBeforeRefunded: data.StatusBeforeRefunded}, nil
		case TransactionWithClosureError:
			return TransactionWithRefundRequested{TransactionAuthorizationCompleted: t.TransactionAuthorizationCompleted, StatusBeforeRefunded: data.StatusBeforeRefunded}, nil
		}
	case UserReceiptRequestedData:
		switch t := tx.(type) {
		case TransactionClosed:
			return TransactionWithUserReceiptRequested{TransactionClosed: t, Receipt: data}, nil
		case TransactionExpired:
			if closed, ok := t.Previous.(TransactionClosed); ok {
				return TransactionWithUserReceiptRequested{TransactionClosed: closed, Receipt: data}, nil
			}
		}
	case UserCanceledData:
		if t, ok := tx.(TransactionActivated); ok {
			return TransactionUserCanceled{TransactionActivated: t}, nil
		}
	case ExpiredData:
		switch tx.(type) {
		case EmptyTransaction, TransactionExpired:
		default:
			return TransactionExpired{Previous: tx, StatusBeforeExpiration: tx.Status()}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s on status %q", ErrInvalidTransition, e.EventCode, tx.Status())
}

// Closable returns the authorization-completed core of tx when a close-payment
// attempt is allowed from its stage.
func Closable(tx Transaction) (TransactionAuthorizationCompleted, bool) {
	switch t := tx.(type) {
	case TransactionAuthorizationCompleted:
		return t, true
	case TransactionWithClosureRequested:
		return t.TransactionAuthorizationCompleted, true
	case TransactionWithClosureError:
		return t.TransactionAuthorizationCompleted, true
	}
	return TransactionAuthorizationCompleted{}, false
}
