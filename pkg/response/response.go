package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kmq-gateway/internal/dto"
	appErrors "github.com/noah-isme/kmq-gateway/pkg/errors"
)

// Envelope represents the common response contract for non-query endpoints.
type Envelope struct {
	Data  interface{}            `json:"data,omitempty"`
	Error *appErrors.Error       `json:"error,omitempty"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// JSON sends a success response with optional metadata.
func JSON(c *gin.Context, status int, data interface{}, meta ...map[string]interface{}) {
	noStore(c)
	envelope := Envelope{Data: data}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// Query writes a record query result as-is, with no envelope.
func Query(c *gin.Context, result interface{}) {
	noStore(c)
	c.JSON(http.StatusOK, result)
}

// QueryError renders caller input errors as a dto.ErrorResult with HTTP 400
// and anything else through Error.
func QueryError(c *gin.Context, err error) {
	if !appErrors.IsValidation(err) {
		Error(c, err)
		return
	}
	appErr := appErrors.FromError(err)
	noStore(c)
	c.JSON(http.StatusBadRequest, dto.NewErrorResult(appErr.Code, appErr.Error()))
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
