package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"autocare/config"
	"autocare/infras/otel"
)

func TestNew_WithoutEndpointIsNoop(t *testing.T) {
	tracer := otel.New(&config.Config{})

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Create")
	assert.NotNil(t, ctx)

	assert.NotPanics(t, func() {
		scope.SetAttribute("query", "SELECT 1")
		scope.SetAttributes(map[string]any{"count": 3, "ok": true, "tags": []string{"a"}, "price": 12.5})
		scope.AddEvent("cache.miss")
		scope.TraceIfError(nil)
		scope.TraceError(errors.New("boom"))
		scope.End()
	})

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
