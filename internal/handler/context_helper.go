package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Wekraft-001/admin-hub/internal/middleware"
	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/pkg/response"
)

// respond writes data with the request's metadata and optional notification.
func respond(c *gin.Context, status int, data interface{}, note models.Notification) {
	middleware.SetNotification(c, note)
	response.JSON(c, status, data, metaOf(c))
}

// fail writes an error envelope, keeping the notification the admin should see.
func fail(c *gin.Context, err error, note models.Notification) {
	middleware.SetNotification(c, note)
	response.Error(c, err, metaOf(c))
}

func metaOf(c *gin.Context) map[string]interface{} {
	if meta := middleware.ExtractMeta(c); meta != nil {
		return meta
	}
	return map[string]interface{}{}
}

func sessionID(c *gin.Context) string {
	return middleware.SessionID(c)
}
