package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/edupanel/edu-admin-api/pkg/errors"
)

// errorEnvelope is the common failure contract.
type errorEnvelope struct {
	Error *appErrors.Error `json:"error"`
}

// JSON sends a success response. Payloads are emitted as-is: the browser
// client consumes exact body shapes such as {"token": ...} and raw lists.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, errorEnvelope{Error: appErr})
}
