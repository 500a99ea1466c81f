package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration and skips when no server is configured.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ParserAddr == "" {
		s.T().Skip("PARSER_ADDR is not set")
	}
	s.client = &http.Client{Timeout: 2 * time.Minute}
}

// Call sends body as JSON and returns the status code and decoded JSON response.
func (s *BaseHTTPSuite) Call(name, method, path string, body any) (int, map[string]any) {
	t := s.T()
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	request, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(s.Config.ParserAddr, "/")+path, reader)
	s.Require().NoError(err)
	request.Header.Set("Content-Type", "application/json")
	if s.Config.AuthToken != "" {
		request.Header.Set("Authorization", "Bearer "+s.Config.AuthToken)
	}

	start := time.Now()
	response, err := s.client.Do(request)
	s.Require().NoError(err, "Failed to reach server at "+s.Config.ParserAddr)
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	s.Require().NoError(err)

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", method, path, response.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		fmt.Fprintln(&logBuilder, "\nRESPONSE:")
		fmt.Fprintln(&logBuilder, string(raw))
	}
	t.Log(logBuilder.String())

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(raw, &decoded), string(raw))
	return response.StatusCode, decoded
}
