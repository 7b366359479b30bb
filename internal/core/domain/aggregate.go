package domain

import "time"

// Transaction is the aggregate obtained by folding a transaction's events.
// There is one implementation per reachable lifecycle stage; each carries
// only the data meaningful at that stage.
type Transaction interface {
	TransactionID() TransactionID
	Status() TransactionStatus
	isTransaction()
}

// Activated is satisfied by every stage reached after activation.
type Activated interface {
	Transaction
	ActivationData() TransactionActivated
}

// AuthorizationRequested is satisfied by every stage that went through an authorization request.
type AuthorizationRequested interface {
	Activated
	AuthorizationData() AuthorizationRequestedData
}

// AuthorizationCompleted is satisfied by every stage that received the gateway outcome.
type AuthorizationCompleted interface {
	AuthorizationRequested
	CompletionData() AuthorizationCompletedData
}

// EmptyTransaction is the zero value the fold starts from.
type EmptyTransaction struct{}

func (EmptyTransaction) TransactionID() TransactionID { return "" }
func (EmptyTransaction) Status() TransactionStatus    { return "" }
func (EmptyTransaction) isTransaction()               {}

type TransactionActivated struct {
	ID                          TransactionID
	CreationDate                time.Time
	PaymentNotices              []PaymentNotice
	ClientID                    ClientID
	IDCart                      *string
	UserID                      *string
	PaymentTokenValiditySeconds int
}

func (t TransactionActivated) TransactionID() TransactionID         { return t.ID }
func (t TransactionActivated) Status() TransactionStatus            { return TransactionStatusActivated }
func (t TransactionActivated) ActivationData() TransactionActivated { return t }
func (TransactionActivated) isTransaction()                         {}

// TokenValidity is the payment token validity window.
func (t TransactionActivated) TokenValidity() time.Duration {
	return time.Duration(t.PaymentTokenValiditySeconds) * time.Second
}

// TokenExpiresAt is the instant the payment tokens stop being usable.
func (t TransactionActivated) TokenExpiresAt() time.Time {
	return t.CreationDate.Add(t.TokenValidity())
}

// Amount is the sum of the notice amounts, fee excluded.
func (t TransactionActivated) Amount() int64 {
	return TotalAmount(t.PaymentNotices)
}

// PaymentTokens lists the tokens of every notice in cart order.
func (t TransactionActivated) PaymentTokens() []string {
	tokens := make([]string, 0, len(t.PaymentNotices))
	for _, n := range t.PaymentNotices {
		tokens = append(tokens, n.PaymentToken)
	}
	return tokens
}

type TransactionWithRequestedAuthorization struct {
	TransactionActivated
	Authorization AuthorizationRequestedData
}

func (t TransactionWithRequestedAuthorization) Status() TransactionStatus {
	return TransactionStatusAuthorizationRequested
}

func (t TransactionWithRequestedAuthorization) AuthorizationData() AuthorizationRequestedData {
	return t.Authorization
}

type TransactionAuthorizationCompleted struct {
	TransactionWithRequestedAuthorization
	Completion AuthorizationCompletedData
}

func (t TransactionAuthorizationCompleted) Status() TransactionStatus {
	return TransactionStatusAuthorizationCompleted
}

func (t TransactionAuthorizationCompleted) CompletionData() AuthorizationCompletedData {
	return t.Completion
}

type TransactionWithClosureRequested struct {
	TransactionAuthorizationCompleted
}

func (t TransactionWithClosureRequested) Status() TransactionStatus {
	return TransactionStatusClosureRequested
}

type TransactionWithClosureError struct {
	TransactionAuthorizationCompleted
	ClosureError ClosureErrorData
}

func (t TransactionWithClosureError) Status() TransactionStatus {
	return TransactionStatusClosureError
}

// TransactionClosed is a transaction the clearing node answered for.
// ClosureOutcome KO means the notice was not paid although the gateway authorized it.
type TransactionClosed struct {
	TransactionAuthorizationCompleted
	ClosureOutcome ClosureOutcome
}

func (t TransactionClosed) Status() TransactionStatus {
	return TransactionStatusClosed
}

type TransactionUnauthorized struct {
	TransactionAuthorizationCompleted
}

func (t TransactionUnauthorized) Status() TransactionStatus {
	return TransactionStatusUnauthorized
}

type TransactionWithRefundRequested struct {
	TransactionAuthorizationCompleted
	StatusBeforeRefunded TransactionStatus
}

func (t TransactionWithRefundRequested) Status() TransactionStatus {
	return TransactionStatusRefundRequested
}

type TransactionWithUserReceiptRequested struct {
	TransactionClosed
	Receipt UserReceiptRequestedData
}

func (t TransactionWithUserReceiptRequested) Status() TransactionStatus {
	return TransactionStatusNotificationRequested
}

type TransactionUserCanceled struct {
	TransactionActivated
}

func (t TransactionUserCanceled) Status() TransactionStatus {
	return TransactionStatusCancellationRequested
}

// TransactionExpired wraps the stage the transaction was in when it expired.
type TransactionExpired struct {
	Previous               Transaction
	StatusBeforeExpiration TransactionStatus
}

func (t TransactionExpired) TransactionID() TransactionID { return t.Previous.TransactionID() }
func (t TransactionExpired) Status() TransactionStatus    { return TransactionStatusExpired }
func (TransactionExpired) isTransaction()                 {}

// ClosedWithOutcomeOK reports whether tx is a closure the clearing node accepted.
func ClosedWithOutcomeOK(tx Transaction) (TransactionClosed, bool) {
	closed, ok := tx.(TransactionClosed)
	if !ok || closed.ClosureOutcome != ClosureOutcomeOK {
		return TransactionClosed{}, false
	}
	return closed, true
}
