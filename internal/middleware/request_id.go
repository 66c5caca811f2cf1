package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const headerRequestID = "X-Request-Id"

// RequestID reuses the inbound request id when the caller sent one, otherwise
// assigns a fresh one. The id is echoed back on the response.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Header(headerRequestID, id)

		c.Next()
	}
}
