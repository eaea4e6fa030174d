package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"signup/internal/domain"
)

// RegisterPath is the endpoint path, relative to the service base URL.
const RegisterPath = "/auth/register"

const (
	defaultUserAgent = "signup/1.0"
	// maxDetailBytes bounds how much of an error body is read for "detail".
	maxDetailBytes = 64 << 10
)

type HTTP struct {
	Base      string
	HTTP      *http.Client
	UserAgent string
	Log       logrus.FieldLogger
}

// NewHTTP returns a client for the service at base. A nil client means
// http.DefaultClient and a nil logger discards output.
func NewHTTP(base string, client *http.Client, log logrus.FieldLogger) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &HTTP{
		Base:      strings.TrimRight(base, "/"),
		HTTP:      client,
		UserAgent: defaultUserAgent,
		Log:       log,
	}
}

var _ domain.RegistrationClient = (*HTTP)(nil)

// Register posts the registration payload.
func (c *HTTP) Register(ctx context.Context, request domain.RegistrationRequest) error {
	return c.post(ctx, RegisterPath, request)
}

func (c *HTTP) post(ctx context.Context, path string, in any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return fmt.Errorf("encode %s body: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("X-Request-ID", requestID)

	log := c.Log.WithFields(logrus.Fields{
		"method":     req.Method,
		"url":        req.URL.String(),
		"request_id": requestID,
	})
	log.Debug("Sending request")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.WithError(err).Warn("Request did not complete")
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	})

	if resp.StatusCode/100 != 2 {
		detail := readDetail(resp.Body)
		log.WithField("detail", detail).Info("Request rejected")
		return &domain.RejectedError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Detail:     detail,
		}
	}

	// Drain so the connection can be reused; the body itself is not part of
	// the contract.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDetailBytes))
	log.Info("Request accepted")
	return nil
}

// readDetail extracts the "detail" message from an error body, or "".
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxDetailBytes))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		for _, item := range items {
			if msg := strings.TrimSpace(item.Msg); msg != "" {
				return msg
			}
		}
	}
	return ""
}
