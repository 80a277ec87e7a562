package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data  interface{}            `json:"data,omitempty"`
	Error *appErrors.Error       `json:"error,omitempty"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// JSON sends a success response with optional metadata.
func JSON(c *gin.Context, status int, data interface{}, meta ...map[string]interface{}) {
	noStore(c)
	envelope := Envelope{Data: data}
	if m := mergeMeta(meta); len(m) > 0 {
		envelope.Meta = m
	}
	c.JSON(status, envelope)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}, meta ...map[string]interface{}) {
	JSON(c, http.StatusCreated, data, meta...)
}

// Accepted responds with HTTP 202 for work that completes out of band.
func Accepted(c *gin.Context, data interface{}, meta ...map[string]interface{}) {
	JSON(c, http.StatusAccepted, data, meta...)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error, meta ...map[string]interface{}) {
	appErr := appErrors.FromError(err)
	noStore(c)
	envelope := Envelope{Error: appErr}
	if m := mergeMeta(meta); len(m) > 0 {
		envelope.Meta = m
	}
	c.JSON(appErr.Status, envelope)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

func mergeMeta(meta []map[string]interface{}) map[string]interface{} {
	if len(meta) == 1 {
		return meta[0]
	}
	merged := map[string]interface{}{}
	for _, m := range meta {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
