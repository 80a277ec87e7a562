package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

const (
	responseMetaKey = "response_meta"
	cacheHitKey     = "cache_hit"
	notificationKey = "notification"
)

// WithResponseMeta initialises response metadata storage on the request context.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(responseMetaKey, map[string]interface{}{})
		c.Next()
	}
}

// SetCacheHit records cache hit information for the current response.
func SetCacheHit(c *gin.Context, hit bool) {
	ensureMeta(c)[cacheHitKey] = hit
}

// SetNotification attaches the toast shown to the admin for this response.
func SetNotification(c *gin.Context, note models.Notification) {
	if note.Title == "" {
		return
	}
	ensureMeta(c)[notificationKey] = note
}

// SetMeta stores an arbitrary metadata value.
func SetMeta(c *gin.Context, key string, value interface{}) {
	ensureMeta(c)[key] = value
}

// SetProcessingTime records how long the handler took since start.
func SetProcessingTime(c *gin.Context, start time.Time) {
	ensureMeta(c)["processing_time_ms"] = time.Since(start).Milliseconds()
}

// ExtractMeta returns the metadata map stored on the context.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	if meta, exists := c.Get(responseMetaKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok {
			return typed
		}
	}
	return nil
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if meta := ExtractMeta(c); meta != nil {
		return meta
	}
	newMeta := make(map[string]interface{})
	if c != nil {
		c.Set(responseMetaKey, newMeta)
	}
	return newMeta
}
