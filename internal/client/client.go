package client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultPort     = 3780
	DefaultPageSize = 500
	apiPath         = "/api/3"
)

// ErrUnauthorized is returned (wrapped in an *APIError) when the console rejects the credentials.
var ErrUnauthorized = errors.New("console rejected credentials")

type NexposeClient struct {
	HTTP   *resty.Client
	Config ClientConfig
}

type ClientConfig struct {
	Host         string // hostname, host:port or full URL
	Port         int
	Username     string
	Password     string
	Insecure     bool // consoles usually ship self-signed certs
	DisableProxy bool // never consult HTTP(S)_PROXY
	Timeout      time.Duration
	PageSize     int
}

// Session describes an authenticated console connection.
type Session struct {
	BaseURL  string
	Username string
}

// APIError is a non-2xx response from the console.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("failed to %s: %d %s", e.Op, e.StatusCode, strings.TrimSpace(e.Body))
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == 401 {
		return ErrUnauthorized
	}
	return nil
}

func newAPIError(op string, resp *resty.Response) error {
	return &APIError{Op: op, StatusCode: resp.StatusCode(), Body: resp.String()}
}

// BaseURL resolves the API root for a configured host.
func (cfg ClientConfig) BaseURL() string {
	host := strings.TrimRight(cfg.Host, "/")
	if !strings.Contains(host, "://") {
		port := cfg.Port
		if port == 0 {
			port = DefaultPort
		}
		if !strings.Contains(host, ":") {
			host = fmt.Sprintf("%s:%d", host, port)
		}
		host = "https://" + host
	}
	return strings.TrimSuffix(host, apiPath) + apiPath
}

func New(cfg ClientConfig) *NexposeClient {
	r := resty.New()
	r.SetBaseURL(cfg.BaseURL())

	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")
	r.SetBasicAuth(cfg.Username, cfg.Password)

	if cfg.Insecure {
		r.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	if cfg.DisableProxy {
		r.RemoveProxy()
	}
	if cfg.Timeout > 0 {
		r.SetTimeout(cfg.Timeout)
	}

	return &NexposeClient{
		HTTP:   r,
		Config: cfg,
	}
}

// Login verifies the credentials against the API root. The v3 API is
// stateless, so the returned Session only records who is connected.
func (c *NexposeClient) Login(ctx context.Context) (*Session, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get("/")

	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, newAPIError("log in", resp)
	}

	return &Session{
		BaseURL:  c.HTTP.BaseURL,
		Username: c.Config.Username,
	}, nil
}

func (c *NexposeClient) pageSize() int {
	if c.Config.PageSize > 0 {
		return c.Config.PageSize
	}
	return DefaultPageSize
}
