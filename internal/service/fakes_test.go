package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"
)

const (
	testTxID  = domain.TransactionID("8f9c2a64d1e54b0c9a7e3f21b6d4c8e0")
	testRptID = domain.RptID("77777777777302016723749670035")
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testSagaConfig() SagaConfig {
	return SagaConfig{
		PaymentTokenValidity:             120 * time.Second,
		TransientQueueTTL:                time.Hour,
		AuthorizationRequestedVisibility: 15 * time.Minute,
		ClosureRetryInterval:             5 * time.Second,
		ClosureSoftTimeoutOffset:         10 * time.Second,
		ActivationParallelism:            4,
		ActivationWaitTimeout:            2 * time.Second,
		ActivationPollInterval:           2 * time.Millisecond,
		TokenAudience:                    testAudience,
		Queues: QueueNames{
			Activated:              "activated",
			AuthorizationRequested: "auth-requested",
			Closure:                "closure",
			Refund:                 "refund",
			Notifications:          "notifications",
			Cancellation:           "cancellation",
		},
	}
}

// ---- event fixtures ----

func activatedEvent(at time.Time, amounts ...int64) domain.Event {
	if len(amounts) == 0 {
		amounts = []int64{100}
	}
	notices := make([]domain.PaymentNotice, 0, len(amounts))
	for i, amount := range amounts {
		rptID := testRptID
		if i > 0 {
			rptID = domain.RptID("7777777777730201672374967003" + string(rune('0'+i)))
		}
		notices = append(notices, domain.PaymentNotice{
			RptID:        rptID,
			PaymentToken: "token-" + string(rune('a'+i)),
			Amount:       amount,
			Description:  "TARI 2026",
		})
	}
	return domain.NewEvent(testTxID, domain.ActivatedData{
		PaymentNotices:              notices,
		ClientID:                    domain.ClientIDCheckout,
		PaymentTokenValiditySeconds: 120,
	}, at)
}

func npgRequestedEvent(at time.Time, amount, fee int64) domain.Event {
	return domain.NewEvent(testTxID, domain.AuthorizationRequestedData{
		Amount:                 amount,
		Fee:                    fee,
		PaymentInstrumentID:    "pm-cards",
		PspID:                  "BNLIITRR",
		PaymentTypeCode:        "CP",
		BrokerName:             "BNL",
		PspChannelCode:         "BNL_CHANNEL",
		PaymentMethodName:      "CARDS",
		PspBusinessName:        "BNL",
		AuthorizationRequestID: "order-1",
		AuthorizationURL:       "https://acs.example.com",
		Language:               "IT",
		GatewayData: domain.NpgAuthorizationRequestedData{
			Brand:     "VISA",
			SessionID: "sess-1",
		},
	}, at)
}

func npgCompletedEvent(at time.Time, result domain.NpgOperationResult) domain.Event {
	return domain.NewEvent(testTxID, domain.AuthorizationCompletedData{
		AuthorizationCode:  strPtr("123456"),
		RRN:                strPtr("rrn-1"),
		TimestampOperation: at,
		GatewayData: domain.NpgAuthorizationData{
			OperationResult:   result,
			OperationID:       "op-1",
			PaymentEndToEndID: "e2e-1",
		},
	}, at)
}

// authorizedEvents returns the history of a transaction whose NPG
// authorization completed with result.
func authorizedEvents(result domain.NpgOperationResult) []domain.Event {
	return []domain.Event{
		activatedEvent(testNow, 100),
		npgRequestedEvent(testNow.Add(time.Second), 100, 10),
		npgCompletedEvent(testNow.Add(2*time.Second), result),
	}
}

// ---- in-memory ports ----

// barrierEventStore holds every reader until all of them loaded the log, so
// their appends race for the same version.
type barrierEventStore struct {
	*memEventStore
	readers sync.WaitGroup
}

func newBarrierEventStore(readers int, events ...domain.Event) *barrierEventStore {
	s := &barrierEventStore{memEventStore: newMemEventStore(events...)}
	s.readers.Add(readers)
	return s
}

func (s *barrierEventStore) FindAllOrdered(ctx context.Context, id domain.TransactionID) ([]domain.Event, error) {
	events, err := s.memEventStore.FindAllOrdered(ctx, id)
	s.readers.Done()
	s.readers.Wait()
	return events, err
}

type memEventStore struct {
	mu        sync.Mutex
	events    map[domain.TransactionID][]domain.Event
	appendErr error
}

func newMemEventStore(events ...domain.Event) *memEventStore {
	s := &memEventStore{events: make(map[domain.TransactionID][]domain.Event)}
	for _, e := range events {
		s.events[e.TransactionID] = append(s.events[e.TransactionID], e)
	}
	return s
}

func (s *memEventStore) Append(_ context.Context, event domain.Event, expectedVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appendErr != nil {
		return s.appendErr
	}
	if current := len(s.events[event.TransactionID]); current != expectedVersion {
		return fmt.Errorf("%w: log at version %d, expected %d", ports.ErrVersionConflict, current, expectedVersion)
	}
	s.events[event.TransactionID] = append(s.events[event.TransactionID], event)
	return nil
}

func (s *memEventStore) FindAllOrdered(_ context.Context, id domain.TransactionID) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events[id]...), nil
}

func (s *memEventStore) codes(id domain.TransactionID) []domain.EventCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	var codes []domain.EventCode
	for _, e := range s.events[id] {
		codes = append(codes, e.EventCode)
	}
	return codes
}

func (s *memEventStore) last(id domain.TransactionID) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events[id]
	return events[len(events)-1]
}

type memViews struct {
	mu    sync.Mutex
	views map[domain.TransactionID]ports.TransactionView
}

func newMemViews() *memViews {
	return &memViews{views: make(map[domain.TransactionID]ports.TransactionView)}
}

func (v *memViews) Upsert(_ context.Context, view ports.TransactionView) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.views[view.TransactionID] = view
	return nil
}

func (v *memViews) GetByID(_ context.Context, id domain.TransactionID) (*ports.TransactionView, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	view, ok := v.views[id]
	if !ok {
		return nil, nil
	}
	return &view, nil
}

type memCache struct {
	mu      sync.Mutex
	entries map[domain.RptID]domain.PaymentRequestInfo
	deleted []domain.RptID
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[domain.RptID]domain.PaymentRequestInfo)}
}

func (c *memCache) Get(_ context.Context, rptID domain.RptID) (*domain.PaymentRequestInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	info, ok := c.entries[rptID]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

func (c *memCache) SaveIfAbsent(_ context.Context, info domain.PaymentRequestInfo) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[info.RptID]; ok {
		return false, nil
	}
	c.entries[info.RptID] = info
	return true, nil
}

func (c *memCache) Save(_ context.Context, info domain.PaymentRequestInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[info.RptID] = info
	return nil
}

func (c *memCache) Delete(_ context.Context, rptID domain.RptID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, rptID)
	c.deleted = append(c.deleted, rptID)
	return nil
}

type memLocks struct {
	mu    sync.Mutex
	locks map[string]time.Duration
}

func newMemLocks() *memLocks {
	return &memLocks{locks: make(map[string]time.Duration)}
}

func (l *memLocks) SaveIfAbsent(_ context.Context, lock domain.ExclusiveLockDocument, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, held := l.locks[lock.ID]; held {
		return false, nil
	}
	l.locks[lock.ID] = ttl
	return true, nil
}

func (l *memLocks) Delete(_ context.Context, lockID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, lockID)
	return nil
}

func (l *memLocks) held(lockID string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ttl, ok := l.locks[lockID]
	return ttl, ok
}

type sentMessage struct {
	queue      string
	event      domain.Event
	visibility time.Duration
	ttl        time.Duration
}

type memQueue struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
	// failures counts the sends still to reject per queue.
	failures map[string]int
}

// failNext rejects the next n sends to queue.
func (q *memQueue) failNext(queue string, n int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.failures == nil {
		q.failures = make(map[string]int)
	}
	q.failures[queue] = n
}

func (q *memQueue) Send(_ context.Context, queue string, event domain.Event, visibility, ttl time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	if q.failures[queue] > 0 {
		q.failures[queue]--
		return fmt.Errorf("queue %s unavailable", queue)
	}
	q.sent = append(q.sent, sentMessage{queue: queue, event: event, visibility: visibility, ttl: ttl})
	return nil
}

func (q *memQueue) messages(queue string) []sentMessage {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []sentMessage
	for _, m := range q.sent {
		if m.queue == queue {
			out = append(out, m)
		}
	}
	return out
}

type traceAuthorization struct {
	gateway         domain.GatewayType
	paymentTypeCode string
	outcome         ports.TraceOutcome
}

type traceClosure struct {
	outcome ports.TraceOutcome
	closure domain.ClosureOutcome
}

type recordingTracer struct {
	mu             sync.Mutex
	repeated       []domain.RptID
	authorizations []traceAuthorization
	closures       []traceClosure
}

func (t *recordingTracer) RepeatedActivation(rptID domain.RptID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.repeated = append(t.repeated, rptID)
}

func (t *recordingTracer) AuthorizationRequested(gateway domain.GatewayType, paymentTypeCode string, outcome ports.TraceOutcome) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.authorizations = append(t.authorizations, traceAuthorization{gateway, paymentTypeCode, outcome})
}

func (t *recordingTracer) ClosureAttempted(outcome ports.TraceOutcome, closure domain.ClosureOutcome) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closures = append(t.closures, traceClosure{outcome, closure})
}

func (t *recordingTracer) repeatedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.repeated)
}
