package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	retrierconfig "partner/pkg/retrier"
	"partner/pkg/retrier/backoff_adapter"
)

const serviceName = "partner-backend"

const maxResponseBody = 1 << 20

const (
	headerRequestID      = "X-Request-ID"
	headerIdempotencyKey = "Idempotency-Key"
)

type Gateway struct {
	baseURL *url.URL
	client  httpDoer
	creds   credentials
	limiter limiter
	retrier retrier
}

func New(
	baseURL string,
	client httpDoer,
	creds credentials,
	limiter limiter,
	retryConfig retrierconfig.Config,
) (*Gateway, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", baseURL)
	}

	retryConfig.ShouldRetry = isRetryable

	return &Gateway{
		baseURL: u,
		client:  client,
		creds:   creds,
		limiter: limiter,
		retrier: backoff_adapter.New(retryConfig),
	}, nil
}

// call описание одного вызова бэкенда.
type call struct {
	op       string
	fallback string
	method   string
	path     string
	query    url.Values
	body     any
}

// do выполняет вызов с ретраями. Токен проверяется до любого сетевого
// вызова, его отсутствие не ретраится.
func (g *Gateway) do(ctx context.Context, c call, out any) error {
	token, err := g.creds.Token()
	if err != nil {
		return err
	}

	var payload []byte
	if c.body != nil {
		payload, err = json.Marshal(c.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", c.op, err)
		}
	}

	target := g.baseURL.JoinPath(c.path)
	if len(c.query) > 0 {
		target.RawQuery = c.query.Encode()
	}

	// ключ общий для всех попыток, бэкенд может склеить повторы
	var idempotencyKey string
	if c.method != http.MethodGet {
		idempotencyKey = uuid.NewString()
	}

	return g.executeWithMetrics(ctx, c.op, func(ctx context.Context) error {
		if err := g.limiter.Wait(ctx); err != nil {
			return err
		}

		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, c.method, target.String(), body)
		if err != nil {
			return fmt.Errorf("%s: build request: %w", c.op, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")
		req.Header.Set(headerRequestID, uuid.NewString())
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if idempotencyKey != "" {
			req.Header.Set(headerIdempotencyKey, idempotencyKey)
		}

		resp, err := g.client.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return &RemoteError{Op: c.op, Message: c.fallback, Err: err}
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		if err != nil {
			return &RemoteError{Op: c.op, StatusCode: resp.StatusCode, Message: c.fallback, Err: err}
		}

		if resp.StatusCode >= http.StatusBadRequest {
			return &RemoteError{
				Op:         c.op,
				StatusCode: resp.StatusCode,
				Message:    messageOr(raw, c.fallback),
				Err:        fmt.Errorf("%s %s: status %d", c.method, c.path, resp.StatusCode),
			}
		}

		if out == nil || len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return &RemoteError{Op: c.op, StatusCode: resp.StatusCode, Message: c.fallback, Err: err}
		}
		return nil
	})
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	remote, ok := AsRemote(err)
	return ok && remote.Temporary()
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := httpCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func httpCode(err error) string {
	if err == nil {
		return "200"
	}
	if remote, ok := AsRemote(err); ok {
		if remote.StatusCode == 0 {
			return "network"
		}
		return strconv.Itoa(remote.StatusCode)
	}
	return "unknown"
}

// messageOr текст ошибки из тела ответа: поле error, затем message.
func messageOr(raw []byte, fallback string) string {
	var body struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return fallback
	}
	if msg, ok := body.Error.(string); ok && strings.TrimSpace(msg) != "" {
		return msg
	}
	if strings.TrimSpace(body.Message) != "" {
		return body.Message
	}
	return fallback
}
