package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"tracking-service/internal/entities"
)

// maxBodySize ограничивает чтение ответа upstream
const maxBodySize = 8 << 20

type Client struct {
	service string
	baseURL *url.URL
	http    *http.Client
	token   string
}

type Option func(*Client)

// WithBearerToken добавляет Authorization: Bearer к каждому запросу.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

// New создает клиента к одному upstream. service идет в метки метрик.
func New(service, baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse %s url %q: %w", service, baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("parse %s url %q: scheme must be http or https", service, baseURL)
	}

	c := &Client{
		service: service,
		baseURL: parsed,
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type Request struct {
	Method string
	// Operation - метка метрик и логов, например "GetFeed"
	Operation   string
	Path        string
	Query       url.Values
	Body        io.Reader
	ContentType string
	// AcceptStatus - коды вне 2xx, тело которых вызывающий разбирает сам
	AcceptStatus []int
}

// Do выполняет запрос. Сетевые ошибки и таймауты оборачивают
// entities.ErrTransientFailure, ответы вне 2xx возвращаются как *StatusError.
// При успехе вызывающий обязан закрыть тело ответа.
func (c *Client) Do(ctx context.Context, req Request) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.url(req.Path, req.Query), req.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: build request: %w", c.service, req.Operation, err)
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		GatewayRequestDuration.WithLabelValues(c.service, req.Operation, "error").Observe(time.Since(start).Seconds())
		GatewayFailuresTotal.WithLabelValues(c.service, req.Operation, "transport").Inc()
		return nil, fmt.Errorf("%s %s: %w: %w", c.service, req.Operation, entities.ErrTransientFailure, err)
	}
	GatewayRequestDuration.WithLabelValues(c.service, req.Operation, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if !isSuccess(resp.StatusCode, req.AcceptStatus) {
		drainAndClose(resp.Body)
		GatewayFailuresTotal.WithLabelValues(c.service, req.Operation, "status").Inc()
		return nil, &StatusError{
			Service:   c.service,
			Operation: req.Operation,
			Code:      resp.StatusCode,
		}
	}
	return resp, nil
}

// DoJSON выполняет запрос и декодирует тело в out. Нечитаемое тело -
// entities.ErrUpstreamData. out == nil - тело игнорируется.
func (c *Client) DoJSON(ctx context.Context, req Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer drainAndClose(resp.Body)

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(out); err != nil {
		GatewayFailuresTotal.WithLabelValues(c.service, req.Operation, "decode").Inc()
		return fmt.Errorf("%s %s: decode response: %w: %w", c.service, req.Operation, entities.ErrUpstreamData, err)
	}
	return nil
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func isSuccess(code int, accept []int) bool {
	if code >= 200 && code < 300 {
		return true
	}
	return slices.Contains(accept, code)
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBodySize))
	_ = body.Close()
}
