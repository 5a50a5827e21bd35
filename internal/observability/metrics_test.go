package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsExist(t *testing.T) {
	assert.NotNil(t, RequestDuration)
	assert.NotNil(t, RegistrationSubmissions)
	assert.NotNil(t, FieldValidationFailures)
	assert.NotNil(t, LoginAttempts)
	assert.NotNil(t, PhotoOperations)
	assert.NotNil(t, CacheHits)
	assert.NotNil(t, DatabaseOperations)
	assert.NotNil(t, ActiveConnections)
}

func TestRegistrationSubmissions(t *testing.T) {
	before := testutil.ToFloat64(RegistrationSubmissions.WithLabelValues("succeeded"))

	RegistrationSubmissions.WithLabelValues("succeeded").Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(RegistrationSubmissions.WithLabelValues("succeeded")))
}

func TestFieldValidationFailures(t *testing.T) {
	before := testutil.ToFloat64(FieldValidationFailures.WithLabelValues("registration", "cpf"))

	FieldValidationFailures.WithLabelValues("registration", "cpf").Inc()
	FieldValidationFailures.WithLabelValues("registration", "email").Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(FieldValidationFailures.WithLabelValues("registration", "cpf")))
}

func TestRequestDuration(t *testing.T) {
	RequestDuration.WithLabelValues("/v1/registrations", "POST", "201").Observe(0.5)
	RequestDuration.WithLabelValues("/v1/workspace/photos", "GET", "200").Observe(0.1)
}

func TestActiveConnections(t *testing.T) {
	ActiveConnections.Set(10)
	ActiveConnections.Inc()
	ActiveConnections.Dec()

	assert.Equal(t, float64(10), testutil.ToFloat64(ActiveConnections))
}
