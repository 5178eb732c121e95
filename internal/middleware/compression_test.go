package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompressedRouter() (*Compression, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	cm := NewCompression(6)
	r := gin.New()
	r.Use(cm.Handler())
	r.GET("/data", func(c *gin.Context) {
		c.String(http.StatusOK, strings.Repeat("grading report payload ", 100))
	})
	return cm, r
}

func TestCompressionGzipsWhenAccepted(t *testing.T) {
	_, r := newCompressedRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/data", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	defer gz.Close()

	decoded, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "grading report payload")
	assert.Less(t, w.Body.Len(), len(decoded))
}

func TestCompressionSkipsWithoutAcceptHeader(t *testing.T) {
	_, r := newCompressedRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/data", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Contains(t, w.Body.String(), "grading report payload")
}

func TestCompressionStats(t *testing.T) {
	cm, r := newCompressedRouter()

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/data", nil)
		if i == 0 {
			req.Header.Set("Accept-Encoding", "gzip")
		}
		r.ServeHTTP(w, req)
	}

	stats := cm.GetStats()
	assert.Equal(t, int64(3), stats["total_requests"])
	assert.Equal(t, int64(1), stats["compressed_requests"])
}
