package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionID identifies a transaction across every saga step (32 hex chars).
type TransactionID string

// NewTransactionID generates a fresh transaction identifier.
func NewTransactionID() TransactionID {
	return TransactionID(strings.ReplaceAll(uuid.New().String(), "-", ""))
}

var transactionIDRe = regexp.MustCompile(`^[0-9a-f]{32}$`)

// ParseTransactionID validates a transaction id received from a caller.
func ParseTransactionID(raw string) (TransactionID, error) {
	if !transactionIDRe.MatchString(raw) {
		return "", fmt.Errorf("invalid transactionId %q", raw)
	}
	return TransactionID(raw), nil
}

func (id TransactionID) String() string {
	return string(id)
}

// TransactionStatus represents the lifecycle stage of a transaction aggregate.
type TransactionStatus string

const (
	TransactionStatusActivated              TransactionStatus = "ACTIVATED"
	TransactionStatusAuthorizationRequested TransactionStatus = "AUTHORIZATION_REQUESTED"
	TransactionStatusAuthorizationCompleted TransactionStatus = "AUTHORIZATION_COMPLETED"
	TransactionStatusClosureRequested       TransactionStatus = "CLOSURE_REQUESTED"
	TransactionStatusClosed                 TransactionStatus = "CLOSED"
	TransactionStatusClosureError           TransactionStatus = "CLOSURE_ERROR"
	TransactionStatusUnauthorized           TransactionStatus = "UNAUTHORIZED"
	TransactionStatusRefundRequested        TransactionStatus = "REFUND_REQUESTED"
	TransactionStatusNotificationRequested  TransactionStatus = "NOTIFICATION_REQUESTED"
	TransactionStatusCancellationRequested  TransactionStatus = "CANCELLATION_REQUESTED"
	TransactionStatusExpired                TransactionStatus = "EXPIRED"
)

// ClientID identifies the channel that opened the transaction.
type ClientID string

const (
	ClientIDCheckout     ClientID = "CHECKOUT"
	ClientIDCheckoutCart ClientID = "CHECKOUT_CART"
	ClientIDIO           ClientID = "IO"
)

// IsValid reports whether the client id is one of the known channels.
func (c ClientID) IsValid() bool {
	switch c {
	case ClientIDCheckout, ClientIDCheckoutCart, ClientIDIO:
		return true
	}
	return false
}

var rptIDRe = regexp.MustCompile(`^\d{29}$`)

// RptID identifies a payment request at the clearing node:
// 11 digits of creditor fiscal code followed by an 18 digit notice number.
type RptID string

// ParseRptID validates the raw value.
func ParseRptID(raw string) (RptID, error) {
	if !rptIDRe.MatchString(raw) {
		return "", fmt.Errorf("invalid rptId %q", raw)
	}
	return RptID(raw), nil
}

// FiscalCode returns the creditor institution fiscal code.
func (r RptID) FiscalCode() string {
	return string(r)[:11]
}

// NoticeNumber returns the payment notice number.
func (r RptID) NoticeNumber() string {
	return string(r)[11:]
}

func (r RptID) String() string {
	return string(r)
}

const idempotencyKeySuffixLen = 10

var (
	idempotencyKeyRe       = regexp.MustCompile(`^(\d{11})_([a-zA-Z\d]{10})$`)
	idempotencyKeyAlphabet = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")
)

// IdempotencyKey makes repeated activations of the same notice recognizable
// by the clearing node. Serialized as "{issuerFiscalCode}_{randomSuffix}".
type IdempotencyKey struct {
	IssuerFiscalCode string
	RandomSuffix     string
}

// NewIdempotencyKey generates a key for the given issuer with a random suffix.
func NewIdempotencyKey(issuerFiscalCode string) (IdempotencyKey, error) {
	suffix := make([]byte, idempotencyKeySuffixLen)
	alphabetLen := big.NewInt(int64(len(idempotencyKeyAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return IdempotencyKey{}, fmt.Errorf("generating idempotency key: %w", err)
		}
		suffix[i] = idempotencyKeyAlphabet[n.Int64()]
	}
	return IdempotencyKey{IssuerFiscalCode: issuerFiscalCode, RandomSuffix: string(suffix)}, nil
}

// ParseIdempotencyKey parses the serialized form.
func ParseIdempotencyKey(raw string) (IdempotencyKey, error) {
	m := idempotencyKeyRe.FindStringSubmatch(raw)
	if m == nil {
		return IdempotencyKey{}, fmt.Errorf("invalid idempotency key %q", raw)
	}
	return IdempotencyKey{IssuerFiscalCode: m[1], RandomSuffix: m[2]}, nil
}

// IsZero reports whether the key was never generated.
func (k IdempotencyKey) IsZero() bool {
	return k.IssuerFiscalCode == "" || k.RandomSuffix == ""
}

func (k IdempotencyKey) String() string {
	return k.IssuerFiscalCode + "_" + k.RandomSuffix
}

func (k IdempotencyKey) MarshalText() ([]byte, error) {
	if k.IsZero() {
		return []byte{}, nil
	}
	return []byte(k.String()), nil
}

func (k *IdempotencyKey) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = IdempotencyKey{}
		return nil
	}
	parsed, err := ParseIdempotencyKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// TransferInfo is a single beneficiary transfer inside a payment notice.
type TransferInfo struct {
	PaFiscalCode     string `json:"paFiscalCode"`
	DigitalStamp     bool   `json:"digitalStamp"`
	TransferAmount   int64  `json:"transferAmount"`
	TransferCategory string `json:"transferCategory"`
}

// PaymentNotice is one payable notice of a (possibly multi-notice) cart.
// Amounts are euro cents.
type PaymentNotice struct {
	RptID          RptID          `json:"rptId"`
	PaymentToken   string         `json:"paymentToken"`
	Amount         int64          `json:"amount"`
	Description    string         `json:"description"`
	TransferList   []TransferInfo `json:"transferList"`
	IdempotencyKey IdempotencyKey `json:"idempotencyKey"`
	DueDate        string         `json:"dueDate,omitempty"`
	IsAllCCP       bool           `json:"isAllCCP"`
}

// TotalAmount sums the amount of every notice.
func TotalAmount(notices []PaymentNotice) int64 {
	var total int64
	for _, n := range notices {
		total += n.Amount
	}
	return total
}

// PaymentRequestInfo is the idempotency cache entry for a notice, keyed by rptId.
type PaymentRequestInfo struct {
	RptID          RptID          `json:"rptId"`
	IdempotencyKey IdempotencyKey `json:"idempotencyKey"`
	PaymentToken   string         `json:"paymentToken,omitempty"`
	Amount         int64          `json:"amount,omitempty"`
	Description    string         `json:"description,omitempty"`
	DueDate        string         `json:"dueDate,omitempty"`
	TransferList   []TransferInfo `json:"transferList,omitempty"`
	IsAllCCP       bool           `json:"isAllCCP"`
	ActivationDate *time.Time     `json:"activationDate,omitempty"`
}

// HasValidToken reports whether the entry carries a non-blank payment token
// that is still inside its validity window.
func (p *PaymentRequestInfo) HasValidToken(now time.Time, validity time.Duration) bool {
	if p == nil || strings.TrimSpace(p.PaymentToken) == "" || p.ActivationDate == nil {
		return false
	}
	return now.Before(p.ActivationDate.Add(validity))
}

// ExclusiveLockDocument is an admission record for non-idempotent calls.
type ExclusiveLockDocument struct {
	ID     string `json:"id"`
	Holder string `json:"holder"`
}
