// Package requestid tags every request with a correlation ID that flows into
// the response headers and the request log.
package requestid

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Header carries the request ID on both the inbound request and the response.
const Header = "X-Request-ID"

const ctxKey = "request_id"

// Middleware propagates the caller's request ID, minting one when absent.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = newID()
		}

		c.Set(ctxKey, id)
		c.Writer.Header().Set(Header, id)

		c.Next()
	}
}

// Value returns the request ID bound to the context, or "" outside the
// middleware.
func Value(c *gin.Context) string {
	if v, ok := c.Get(ctxKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// newID returns 16 random bytes hex-encoded; if entropy is unavailable the
// request still gets a traceable timestamp marker.
func newID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}
	return "req-" + strconv.FormatInt(time.Now().UnixNano(), 10)
}
