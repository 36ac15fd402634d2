// Package backend is the typed client of the marketplace REST backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/util"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgUnreachable = "Failed to reach backend"
	msgBadToken    = "Missing/Invalid access token"
	msgNotAllowed  = "Operation not permitted"

	defaultTimeout = 2 * time.Second
	maxBodyBytes   = 8 << 20
)

// Client talks to the backend with the session's cookies attached.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ service.BackendClient = (*Client)(nil)

// Params holds dependencies for the backend client, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Repo   repository.KeyValueRepository
}

// New creates the backend client and restores its credentials on start.
func New(params Params) (*Client, error) {
	cfg := params.Config.Backend
	logger := params.Logger.With(slog.String("component", "backend_client"))

	origin, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid backend base url")
	}

	jar, err := newPersistentJar(origin, params.Repo, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := jar.Restore(ctx); err != nil {
				logger.Warn("Backend credentials not restored", slog.Any("error", err))
			}

			return nil
		},
	})

	return NewClient(cfg.BaseURL, cfg.Timeout, jar, logger), nil
}

// NewClient creates a client for baseURL. A zero timeout means two seconds.
func NewClient(baseURL string, timeout time.Duration, jar http.CookieJar, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		logger: logger,
	}
}

// filePart is a single multipart file field.
type filePart struct {
	field    string
	filename string
	content  io.Reader
}

// call describes one backend operation.
type call struct {
	op     string
	method string
	path   string
	query  map[string]string
	body   any
	file   *filePart

	// statuses maps documented statuses to fixed messages.
	statuses map[int]string
	// other, when set, builds the message for any status not in statuses
	// from the backend's own message field.
	other func(status int, backendMessage string) string

	schema       *openapi3.Schema
	shapeMessage string
	// optionalBody accepts an empty success body without running the schema.
	optionalBody bool
	out          any
}

func (c *Client) do(ctx context.Context, cl call) error {
	start := time.Now()

	req, err := c.newRequest(ctx, cl)
	if err != nil {
		observe(cl.op, outcomeTransport, time.Since(start).Seconds())

		return domainerrors.NewTransportError(msgUnreachable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(cl.op, outcomeTransport, time.Since(start).Seconds())
		c.logger.Debug("Backend unreachable",
			slog.String("operation", cl.op),
			slog.Any("error", err),
		)

		return domainerrors.NewTransportError(msgUnreachable, errors.WithStack(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		observe(cl.op, outcomeTransport, time.Since(start).Seconds())

		return domainerrors.NewTransportError(msgUnreachable, errors.WithStack(err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		observe(cl.op, outcomeStatus, time.Since(start).Seconds())
		c.logger.Debug("Backend rejected request",
			slog.String("operation", cl.op),
			slog.Int("status", resp.StatusCode),
		)

		return statusError(cl, resp.StatusCode, body)
	}

	if err := decode(cl, body); err != nil {
		observe(cl.op, outcomeMalformed, time.Since(start).Seconds())
		c.logger.Warn("Backend response failed shape check",
			slog.String("operation", cl.op),
			slog.Any("error", err),
		)

		return err
	}

	observe(cl.op, outcomeSuccess, time.Since(start).Seconds())

	return nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		values := url.Values{}
		for k, v := range cl.query {
			values.Set(k, v)
		}
		target += "?" + values.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)

	switch {
	case cl.file != nil:
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)

		part, err := writer.CreateFormFile(cl.file.field, cl.file.filename)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if _, err := io.Copy(part, cl.file.content); err != nil {
			return nil, errors.Wrap(err, "failed to read upload")
		}
		if err := writer.Close(); err != nil {
			return nil, errors.WithStack(err)
		}

		c.logger.Debug("Uploading file",
			slog.String("operation", cl.op),
			slog.String("filename", cl.file.filename),
			slog.String("size", util.FormatBytes(int64(buf.Len()))),
		)

		body = buf
		contentType = writer.FormDataContentType()

	case cl.body != nil:
		data, err := json.Marshal(cl.body)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func statusError(cl call, status int, body []byte) error {
	if msg, ok := cl.statuses[status]; ok {
		return domainerrors.NewMappedStatusError(status, msg)
	}

	if cl.other != nil {
		return domainerrors.NewMappedStatusError(status, cl.other(status, backendMessage(body)))
	}

	return domainerrors.NewUnmappedStatusError(status)
}

// backendMessage extracts the "message" field of an error body, if any.
func backendMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return payload.Message
}

func decode(cl call, body []byte) error {
	if cl.schema == nil {
		return nil
	}

	if cl.optionalBody && len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return domainerrors.NewMalformedResponseError(cl.shapeMessage, errors.WithStack(err))
	}

	if err := cl.schema.VisitJSON(doc); err != nil {
		return domainerrors.NewMalformedResponseError(cl.shapeMessage, errors.WithStack(err))
	}

	if err := json.Unmarshal(body, cl.out); err != nil {
		return domainerrors.NewMalformedResponseError(cl.shapeMessage, errors.WithStack(err))
	}

	return nil
}

// withToken adds the shared 401 message to statuses.
func withToken(statuses map[int]string) map[int]string {
	statuses[http.StatusUnauthorized] = msgBadToken

	return statuses
}

// orStatus returns message, or "Request failed: <status>" when the backend sent none.
func orStatus(status int, message string) string {
	if message == "" {
		return domainerrors.NewUnmappedStatusError(status).Error()
	}

	return message
}

// Module provides the backend client FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(service.BackendClient)),
			fx.As(new(service.SessionBackend)),
			fx.As(new(service.CardBackend)),
			fx.As(new(service.DemoBackend)),
		),
	),
)
