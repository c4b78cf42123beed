// Package testutils provides an HTTP test suite running the full API against
// in-memory storage.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/infra/repository"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/app"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/config"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/webapi"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/suite"
)

// E2ETestSuite builds a fresh application before every test.
type E2ETestSuite struct {
	suite.Suite
	Cfg *config.App
	App *app.App
	Web *fiber.App
}

// NewTestConfig returns the default configuration with rate limiting relaxed
// and request logging disabled.
func NewTestConfig() *config.App {
	cfg := config.Default()
	cfg.Env = "test"
	cfg.RateLimit.MaxRequests = 10000
	cfg.RateLimit.Window = time.Minute
	return cfg
}

// NewTestApp wires the HTTP API over in-memory stores with a silent logger.
func NewTestApp(cfg *config.App) (*app.App, *fiber.App, error) {
	fiberlog.SetOutput(io.Discard)
	deps := &config.Deps{
		ClientRepository:  repository.NewClientRepository(),
		AccountRepository: repository.NewAccountRepository(),
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:            cfg,
	}
	a, err := app.New(deps, cfg)
	if err != nil {
		return nil, nil, err
	}
	return a, webapi.SetupApp(a), nil
}

// SetupTest initializes a new application for each test.
func (s *E2ETestSuite) SetupTest() {
	if s.Cfg == nil {
		s.Cfg = NewTestConfig()
	}
	var err error
	s.App, s.Web, err = NewTestApp(s.Cfg)
	s.Require().NoError(err)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := s.Web.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// Decode reads resp's JSON body into v and closes it.
func (s *E2ETestSuite) Decode(resp *http.Response, v any) {
	defer resp.Body.Close() //nolint:errcheck
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}
