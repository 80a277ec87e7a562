package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

type responseEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *appErrors.Error       `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func newGinContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	var env responseEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func notificationTitle(env responseEnvelope) string {
	note, _ := env.Meta["notification"].(map[string]interface{})
	title, _ := note["title"].(string)
	return title
}

type reportServiceMock struct {
	lastRange string
	err       error
}

func (m *reportServiceMock) Overview(_ context.Context, timeRange string) (*models.ReportOverview, error) {
	m.lastRange = timeRange
	if m.err != nil {
		return nil, m.err
	}
	return &models.ReportOverview{TimeRange: models.TimeRange(timeRange)}, nil
}

func TestReportHandlerOverview(t *testing.T) {
	svc := &reportServiceMock{}
	handler := NewReportHandler(svc)

	c, w := newGinContext(http.MethodGet, "/admin/reports?range=30days", nil)
	handler.Overview(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "30days", svc.lastRange)
	assert.Contains(t, string(decodeEnvelope(t, w).Data), `"timeRange":"30days"`)
}

func TestReportHandlerOverviewInvalidRange(t *testing.T) {
	handler := NewReportHandler(&reportServiceMock{err: appErrors.Clone(appErrors.ErrValidation, "bad range")})

	c, w := newGinContext(http.MethodGet, "/admin/reports?range=2weeks", nil)
	handler.Overview(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, appErrors.ErrValidation.Code, decodeEnvelope(t, w).Error.Code)
}
