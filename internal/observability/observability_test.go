package observability

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"github.com/spec-kit/pet-adoption/internal/config"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordRequest("/pet", "GET", 200, 20*time.Millisecond)
		}()
	}
	wg.Wait()
	m.RecordError("/pet", "POST", "VALIDATION_FAILED")

	snap := m.Snapshot()
	assert.Equal(t, int64(10), snap.Requests["/pet|GET|200"])
	assert.Equal(t, int64(20), snap.AvgLatencyMilli["/pet|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/pet|POST|VALIDATION_FAILED"])

	var nilMetrics *Metrics
	nilMetrics.RecordRequest("/", "GET", 200, time.Millisecond)
	assert.Empty(t, nilMetrics.Snapshot().Requests)
}

func TestRequestLogger(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zaptest.NewLogger(t), m))
	app.Get("/pet/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/pet/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	req := httptest.NewRequest("GET", "/pet/43", nil)
	req.Header.Set(RequestIDHeader, "abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Header.Get(RequestIDHeader))

	assert.Equal(t, int64(2), m.Snapshot().Requests["/pet/:id|GET|204"])
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "verbose"}, "production")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "unknown level falls back to info")
}

func TestRouteLabel(t *testing.T) {
	app := fiber.New()
	var labels []string
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		labels = append(labels, RouteLabel(c))
		return err
	})
	app.Get("/pet/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for _, path := range []string{"/pet/1", "/pet/2", "/elsewhere/3"} {
		_, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
	}

	require.Len(t, labels, 3)
	assert.Equal(t, "/pet/:id", labels[0])
	assert.Equal(t, "/pet/:id", labels[1])
	assert.NotContains(t, labels[2], "elsewhere")
}
