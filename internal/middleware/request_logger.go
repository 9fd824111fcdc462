package middleware

import (
	"fmt"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/logs"

	"github.com/gin-gonic/gin"
)

// RequestLogger persists one log entry per handled request. Persistence
// failures never affect the response; logs.Service.Record swallows them.
func RequestLogger(logSvc *logs.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		level := "info"
		if status >= 500 {
			level = "error"
		} else if status >= 400 {
			level = "warn"
		}

		entry := &logs.Entry{
			Message:    fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			Level:      level,
			Endpoint:   c.Request.URL.Path,
			Method:     c.Request.Method,
			StatusCode: status,
			DurationMs: duration.Milliseconds(),
			Timestamp:  start,
		}
		if id, ok := UserIDFromContext(c); ok {
			entry.UserID = &id
		}

		logSvc.Record(c.Request.Context(), entry)
	}
}
