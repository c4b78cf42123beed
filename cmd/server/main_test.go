package main_test

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

type MainTestSuite struct {
	testutils.E2ETestSuite
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) TestStartServer_RootRoute() {
	resp := s.MakeRequest(http.MethodGet, "/", "")
	defer resp.Body.Close() //nolint: errcheck
	if resp.StatusCode != http.StatusOK {
		s.T().Fatalf("expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func (s *MainTestSuite) TestNotFoundRoute() {
	resp := s.MakeRequest(http.MethodGet, "/doesnotexist", "")
	defer resp.Body.Close() //nolint: errcheck
	if resp.StatusCode != http.StatusNotFound {
		s.T().Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func (s *MainTestSuite) TestCreateClient_BadRequest() {
	resp := s.MakeRequest(http.MethodPost, "/clients", "")
	defer resp.Body.Close() //nolint: errcheck
	if resp.StatusCode != http.StatusBadRequest {
		s.T().Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
