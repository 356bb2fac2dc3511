package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Yathish26/GrojetDPartner/internal/common"
	"github.com/Yathish26/GrojetDPartner/internal/session"
)

// clientPlatform identifies this client to the backend, the way the mobile
// builds send their platform name.
const clientPlatform = "cli"

// Options configures a single request. The zero value is a GET with no body.
type Options struct {
	Method  string
	Headers map[string]string
	// Body is pre-serialized JSON. It is sent byte for byte; the client
	// never re-encodes it.
	Body string
}

// Client issues authenticated requests against the Grojet backend. The
// session store is an explicit dependency: the bearer token is read fresh
// on every call, so a login or logout between calls takes effect without
// rebuilding the client.
type Client struct {
	rest           *resty.Client
	sessions       *session.Store
	baseURL        string
	deviceID       string
	onUnauthorized func()
}

func NewClient(baseURL string, timeout time.Duration, sessions *session.Store) *Client {
	rest := resty.New().
		SetTimeout(timeout)

	return &Client{
		rest:     rest,
		sessions: sessions,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		deviceID: common.GetClientIdentifier().String(),
	}
}

// SetOnUnauthorized registers the single session-expiry handler. When any
// authenticated request comes back 401 the client clears the session and
// invokes the handler once, then returns the parsed response as normal.
func (c *Client) SetOnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Sessions returns the session store the client was built with.
func (c *Client) Sessions() *session.Store {
	return c.sessions
}

// Request performs an HTTP call against the configured backend and returns
// the uniform parsed result. Every HTTP status yields a Response; only
// transport failures and unparseable success bodies are errors.
func (c *Client) Request(ctx context.Context, endpoint string, opts *Options) (*Response, error) {

	if opts == nil {
		opts = &Options{}
	}

	method := methodOrDefault(opts.Method)
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s. Ensure you're using the http const", method)
	}

	finalUrl := c.baseURL + endpoint
	token := c.sessions.Token()

	logrus.WithFields(logrus.Fields{
		"url":       finalUrl,
		"method":    method,
		"hasToken":  len(token) > 0,
		"requestId": uuid.New().String(),
	}).Debugln("Making API request")

	builder := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Platform", clientPlatform).
		SetHeader("X-Device-Id", c.deviceID)

	// The token goes in as a plain header so the caller overlay below can
	// replace it like any other default.
	sentStoredToken := len(token) > 0
	if sentStoredToken {
		builder.SetHeader("Authorization", "Bearer "+token)
	}

	// Caller headers overlay the defaults, caller wins on conflict
	for k, v := range opts.Headers {
		if strings.EqualFold(k, "Authorization") {
			sentStoredToken = false
		}
		builder.SetHeader(k, v)
	}

	if len(opts.Body) > 0 {
		builder.SetBody(opts.Body)
	}

	res, err := makeRequestFromBuilder(builder, method, finalUrl)

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"url": finalUrl,
		}).WithError(err).Errorln("Failed to fetch from URL")
		return nil, fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}

	response, err := c.parseResponse(res)
	if err != nil {
		return nil, err
	}

	if response.Status == http.StatusUnauthorized && sentStoredToken {
		// The server rejected a token we still hold. Tear the session
		// down here rather than in every caller.
		logrus.WithField("url", finalUrl).Debugln("Token rejected, clearing session")
		c.sessions.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	return response, nil
}

func (c *Client) parseResponse(res *resty.Response) (*Response, error) {

	body := res.Body()
	parsed := make(map[string]any)

	if len(body) > 0 {
		if err := json.Unmarshal(body, &parsed); err != nil {
			if res.IsSuccess() {
				return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
			}
			// Error responses are allowed to be garbage; substitute a
			// generic payload and keep the status.
			parsed = map[string]any{"message": fallbackMessage}
		}
	}

	return &Response{
		OK:     res.IsSuccess(),
		Status: res.StatusCode(),
		Body:   parsed,
	}, nil
}

func makeRequestFromBuilder(builder *resty.Request, method string, finalUrl string) (*resty.Response, error) {

	switch method {
	case http.MethodPost:
		return builder.Post(finalUrl)
	case http.MethodPut:
		return builder.Put(finalUrl)
	case http.MethodDelete:
		return builder.Delete(finalUrl)
	default:
		return builder.Get(finalUrl)
	}
}

func methodOrDefault(method string) string {
	if len(method) == 0 {
		return http.MethodGet
	}
	return strings.ToUpper(method)
}
