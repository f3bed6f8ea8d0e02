package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type tUploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// HTTPStore posts videos as multipart forms to a media host.
type HTTPStore struct {
	log     *zap.Logger
	client  *http.Client
	breaker *circuitBreaker
	url     string
	preset  string
}

type option func(*HTTPStore)

func Logger(log *zap.Logger) option {
	return func(s *HTTPStore) {
		if log != nil {
			s.log = log
		}
	}
}

func Client(client *http.Client) option {
	return func(s *HTTPStore) {
		if client != nil {
			s.client = client
		}
	}
}

func NewHTTPStore(cfg *Config, options ...option) *HTTPStore {
	s := &HTTPStore{
		log:     zap.NewNop(),
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: newCircuitBreaker(cfg.Cooldown),
		url:     cfg.UploadURL,
		preset:  cfg.UploadPreset,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *HTTPStore) Upload(ctx context.Context, name, contentType string, payload io.Reader) (string, string, error) {
	body, formType, err := s.form(name, contentType, payload)
	if err != nil {
		return "", "", err
	}

	var mediaURL string
	err = s.breaker.execute(func() (time.Duration, error) {
		url, delay, postErr := s.post(ctx, body, formType)
		mediaURL = url
		return delay, postErr
	})
	if err != nil {
		return "", "", fmt.Errorf("failed upload media: %w", err)
	}
	if mediaURL == "" {
		return "", "", fmt.Errorf("failed upload media: %w", ErrServiceUnavailable)
	}

	return mediaURL, thumbnailURL(mediaURL), nil
}

func (s *HTTPStore) form(name, contentType string, payload io.Reader) ([]byte, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed create form file: %w", err)
	}
	if _, err := io.Copy(part, payload); err != nil {
		return nil, "", fmt.Errorf("failed read media payload: %w", err)
	}
	if s.preset != "" {
		if err := w.WriteField("upload_preset", s.preset); err != nil {
			return nil, "", fmt.Errorf("failed write form field: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed close form: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func (s *HTTPStore) post(ctx context.Context, body []byte, formType string) (string, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("failed build request: %w", err)
	}
	req.Header.Set("Content-Type", formType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	bBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		jBody := tUploadResponse{}
		if err := json.Unmarshal(bBody, &jBody); err != nil {
			return "", 0, fmt.Errorf("failed unmarshal upload response: %w", err)
		}
		if jBody.SecureURL != "" {
			return jBody.SecureURL, 0, nil
		}
		return jBody.URL, 0, nil
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		s.log.Debug("media host asked to back off",
			zap.String("status", resp.Status),
			zap.Int("Retry-After", retryAfter),
		)
		return "", time.Duration(retryAfter) * time.Second, fmt.Errorf("%w: %s", ErrServiceUnavailable, resp.Status)
	default:
		s.log.Info("not correct response",
			zap.String("status", resp.Status),
			zap.String("body", string(bBody)),
		)
		return "", 0, fmt.Errorf("unexpected status %s", resp.Status)
	}
}
