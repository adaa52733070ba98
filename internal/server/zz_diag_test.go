package server

import (
	"net/http"
	"testing"
	"time"
)

func TestDiagConcurrent(t *testing.T) {
	rast := &stubRasterizer{block: make(chan struct{})}
	s := newTestServer(t, rast)

	go func() {
		doJSON(t, s, http.MethodPost, "/export", map[string]string{"language": "English"})
	}()
	time.Sleep(200 * time.Millisecond)
	rec := doJSON(t, s, http.MethodPost, "/export", map[string]string{"language": "English"})
	t.Logf("code=%d body=%q", rec.Code, rec.Body.String())
	close(rast.block)
}
