package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

func TestResponseMetaHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, ExtractMeta(c))

	SetCacheHit(c, true)
	SetNotification(c, models.Notify("Order Updated", "Module order has been saved."))
	SetNotification(c, models.Notification{})
	SetMeta(c, "view", "grid")

	meta := ExtractMeta(c)
	assert.Equal(t, true, meta["cache_hit"])
	assert.Equal(t, "grid", meta["view"])
	note, ok := meta["notification"].(models.Notification)
	assert.True(t, ok)
	assert.Equal(t, "Order Updated", note.Title)
}
