package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func withSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
	return recorder
}

func TestRequestTiming(t *testing.T) {
	recorder := withSpanRecorder(t)

	router := gin.New()
	router.Use(RequestTiming())
	router.GET("/test", func(c *gin.Context) {
		start, ok := c.Get("request_start_time")
		assert.True(t, ok)
		assert.IsType(t, time.Time{}, start)
		assert.True(t, trace.SpanFromContext(c.Request.Context()).SpanContext().IsValid())
		c.Status(http.StatusInternalServerError)
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	spans := recorder.Ended()
	if assert.Len(t, spans, 1) {
		assert.Equal(t, "http.request", spans[0].Name())
		found := false
		for _, attr := range spans[0].Attributes() {
			if attr.Key == "http.status_code" {
				found = true
				assert.Equal(t, int64(500), attr.Value.AsInt64())
			}
		}
		assert.True(t, found)
	}
}
