// Package integration provides helpers and integration tests for the voice
// search service. Integration tests verify that components work together
// correctly, including HTTP handlers, the parsing pipeline, and the lexicons.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/ferry-search/voice-search-service/internal/adapter/http"
	"github.com/ferry-search/voice-search-service/internal/infrastructure/timeutil"
	"github.com/ferry-search/voice-search-service/internal/parser"
)

// MaxTextChars is the request text cap used by integration test servers.
const MaxTextChars = 500

// ReferenceNow is the fixed instant all integration tests run at. It is a
// Sunday, so weekday resolution is predictable.
var ReferenceNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

// ReferenceDate is ReferenceNow's calendar day in YYYY-MM-DD format.
const ReferenceDate = "2025-06-15"

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.QueryHandler
	Clock   *timeutil.MockClock
}

// NewTestServer creates a test server around the production parser, with a
// mock clock frozen at ReferenceNow and dates anchored in UTC. The clock is
// shared between parser and handler, so advancing it moves both the parse
// anchor and the reported reference date.
func NewTestServer() *TestServer {
	clock := timeutil.NewMockClock(ReferenceNow)
	p := parser.New(clock, parser.Config{Location: time.UTC})
	return newTestServer(p, clock)
}

// NewTestServerWithParser creates a test server around the given parser.
// The handler still reports reference dates from a clock at ReferenceNow.
func NewTestServerWithParser(p parser.QueryParser) *TestServer {
	return newTestServer(p, timeutil.NewMockClock(ReferenceNow))
}

func newTestServer(p parser.QueryParser, clock *timeutil.MockClock) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewQueryHandler(p, clock, time.UTC, MaxTextChars)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Clock:   clock,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// ParseRequest posts the given body to the parse endpoint.
func (ts *TestServer) ParseRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/search/parse",
		Body:   body,
	})
}

// LocalesRequest makes a supported-locales request.
func (ts *TestServer) LocalesRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/search/locales",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseQueryResponse parses the response body as a ParseResponseDTO.
func (r Response) ParseQueryResponse() (*httpAdapter.ParseResponseDTO, error) {
	var resp httpAdapter.ParseResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// ParseRequestBody is a helper struct for building parse request bodies.
type ParseRequestBody struct {
	Text   string `json:"text"`
	Locale string `json:"locale,omitempty"`
}

// DefaultParseRequest returns a fully specified query that exercises every
// extraction concern at once.
func DefaultParseRequest() ParseRequestBody {
	return ParseRequestBody{
		Text:   "Round trip from Tunis to Marseille on July 20 returning July 27 for 2 adults and 1 child with car",
		Locale: "en",
	}
}
