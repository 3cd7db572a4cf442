package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// bodyCapture mirrors the response into a buffer while forwarding to
// the client, so a successful body can be stored after the handler ran.
type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheResponse caches successful GET responses in Redis for ttl,
// keyed by path and query. With a nil client it is a pass-through.
// Only the public read-only listings go through this; anything behind
// auth stays uncached.
func CacheResponse(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		sum := sha1.Sum([]byte(c.Request.URL.Path + "?" + c.Request.URL.RawQuery))
		key := fmt.Sprintf("respcache:%x", sum)

		if cached, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		cw := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()

		if c.Writer.Status() == http.StatusOK && cw.buf.Len() > 0 {
			rdb.Set(c.Request.Context(), key, cw.buf.Bytes(), ttl)
		}
	}
}
