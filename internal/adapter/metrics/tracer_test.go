package metrics

import (
	"testing"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracer(t *testing.T) {
	reg := prometheus.NewRegistry()
	tracer := NewTracer(reg)

	tracer.RepeatedActivation("77777777777302016723749670035")
	tracer.RepeatedActivation("77777777777302016723749670035")
	tracer.AuthorizationRequested(domain.GatewayNPG, "CP", ports.TraceOutcomeOK)
	tracer.AuthorizationRequested(domain.GatewayRedirect, "RBPS", ports.TraceOutcomeError)
	tracer.ClosureAttempted(ports.TraceOutcomeOK, domain.ClosureOutcomeOK)

	assert.Equal(t, float64(2), testutil.ToFloat64(tracer.repeatedActivations))
	assert.Equal(t, float64(1), testutil.ToFloat64(tracer.authorizations.WithLabelValues("NPG", "CP", "OK")))
	assert.Equal(t, float64(1), testutil.ToFloat64(tracer.authorizations.WithLabelValues("REDIRECT", "RBPS", "ERROR")))
	assert.Equal(t, float64(1), testutil.ToFloat64(tracer.closures.WithLabelValues("OK", "OK")))

	count, err := testutil.GatherAndCount(reg, "transactions_authorization_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
