package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope untuk operasi tulis: {message, data}.
type MessageEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Data writes the payload as-is. Read endpoints (list, details, dashboard)
// return the resource itself, not an envelope.
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Message writes `{message}` for operations with no payload to return.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageEnvelope{Message: message})
}

// WithData writes `{message, data}` for create/edit confirmations.
func WithData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, MessageEnvelope{Message: message, Data: data})
}

// Error writes the failure envelope with a real HTTP status. Meniru
// pola sukses-dengan-status-200 dari service lama adalah anti-pattern.
func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
