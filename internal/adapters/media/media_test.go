package media

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHTTPStore_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer func() { _ = file.Close() }()
		payload, _ := io.ReadAll(file)
		assert.Equal(t, "frames", string(payload))
		assert.Equal(t, "lecture.mp4", header.Filename)
		assert.Equal(t, "video/mp4", header.Header.Get("Content-Type"))
		assert.Equal(t, "classes", r.FormValue("upload_preset"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://cdn.example/v1/lecture.mp4"}`))
	}))
	defer server.Close()

	s := NewHTTPStore(&Config{UploadURL: server.URL, UploadPreset: "classes", Timeout: time.Second, Cooldown: time.Second})
	mediaURL, thumb, err := s.Upload(context.Background(), "lecture.mp4", "video/mp4", strings.NewReader("frames"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/v1/lecture.mp4", mediaURL)
	assert.Equal(t, "https://cdn.example/v1/lecture.jpg", thumb)
}

func TestHTTPStore_BacksOff(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	s := NewHTTPStore(&Config{UploadURL: server.URL, Timeout: time.Second, Cooldown: time.Second}, Logger(zap.NewNop()))

	_, _, err := s.Upload(context.Background(), "a.mp4", "", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrServiceUnavailable)

	_, _, err = s.Upload(context.Background(), "a.mp4", "", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, int32(1), calls.Load(), "open breaker must not reach the host")
}

func TestCircuitBreaker(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cb := newCircuitBreaker(10 * time.Second)
	cb.now = func() time.Time { return now }

	fail := func() (time.Duration, error) { return 0, assert.AnError }
	ok := func() (time.Duration, error) { return 0, nil }

	assert.ErrorIs(t, cb.execute(fail), assert.AnError)
	assert.ErrorIs(t, cb.execute(ok), ErrServiceUnavailable)

	now = now.Add(11 * time.Second)
	assert.NoError(t, cb.execute(ok), "half-open probe")
	assert.NoError(t, cb.execute(ok))

	assert.NoError(t, cb.execute(func() (time.Duration, error) { return time.Minute, nil }))
	now = now.Add(30 * time.Second)
	assert.ErrorIs(t, cb.execute(ok), ErrServiceUnavailable, "retry-after overrides cooldown")
}

func TestDiskStore_Upload(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStore(&Config{Dir: dir, BaseURL: "http://localhost:8080/media/"})
	require.NoError(t, err)

	mediaURL, thumb, err := s.Upload(context.Background(), "../Lecture.MP4", "video/mp4", strings.NewReader("frames"))
	require.NoError(t, err)
	assert.Empty(t, thumb)
	require.True(t, strings.HasPrefix(mediaURL, "http://localhost:8080/media/"))
	assert.True(t, strings.HasSuffix(mediaURL, ".mp4"))

	name := strings.TrimPrefix(mediaURL, "http://localhost:8080/media/")
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "frames", string(content))
}

func TestThumbnailURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example/a/v.jpg", thumbnailURL("https://cdn.example/a/v.mp4"))
	assert.Equal(t, "https://cdn.example/a/v.jpg", thumbnailURL("https://cdn.example/a/v"))
}
