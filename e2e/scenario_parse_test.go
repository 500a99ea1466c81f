package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testParseSuite struct {
	BaseHTTPSuite
}

func TestParseSuite(t *testing.T) {
	suite.Run(t, &testParseSuite{})
}

func (s *testParseSuite) TestHealth() {
	status, body := s.Call("Health check", http.MethodGet, "/healthz", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Require().Equal("ok", body["status"])
}

func (s *testParseSuite) TestParseRejectsMissingURL() {
	status, body := s.Call("Missing input_url", http.MethodPost, "/parse", map[string]string{})
	s.Require().Equal(http.StatusBadRequest, status)
	s.Require().NotEmpty(body["error"])
}

func (s *testParseSuite) TestParseSampleLog() {
	if s.Config.SampleLogURL == "" {
		s.T().Skip("SAMPLE_LOG_URL is not set")
	}

	// The second call must be served with the same result, from the keychain cache when applicable.
	for _, step := range []string{"Parse sample log", "Parse sample log again"} {
		s.Run(step, func() {
			status, body := s.Call(step, http.MethodPost, "/parse", map[string]string{"input_url": s.Config.SampleLogURL})
			s.Require().Equal(http.StatusOK, status, body["error"])
			s.Require().Equal("ok", body["status"])
			s.Require().NotEmpty(body["file"])
			s.Require().Contains(body, "summary")
		})
	}
}

func (s *testParseSuite) TestUnknownRoute() {
	status, body := s.Call("Unknown route", http.MethodGet, "/does-not-exist", nil)
	s.Require().Equal(http.StatusNotFound, status)
	s.Require().NotEmpty(body["error"])
}
