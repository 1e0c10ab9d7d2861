package testutil

import (
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/middlewares"
	"elite-dashboard/internal/mocks"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockSession    *mocks.MockSessionProvider
	MockDiscord    *mocks.MockDiscordProvider
	MockRoles      *mocks.MockRoleProvider
	MockTokens     *mocks.MockTokenProvider
	LogHandler     *TestLogHandler
}

// DefaultTestConfig is a valid configuration that talks to nothing real.
func DefaultTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           8080,
			ExternalURL:    "https://dashboard.example.com",
			RequestTimeout: 5 * time.Second,
		},
		Log:  config.DefaultLogConfig,
		CORS: config.DefaultCORSConfig,
		Sessions: config.SessionConfig{
			Mode:           config.SessionModeSession,
			Name:           "elite-dashboard-session-id",
			Secure:         true,
			PendingTimeout: 5 * time.Minute,
			Timeout:        30 * 24 * time.Hour,
			RefreshPath:    "/api/elites/@me",
		},
		Discord: config.DiscordConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  "https://dashboard.example.com/api/auth/discord/callback",
			Scopes:       []string{"identify", "guilds.members.read"},
			APIVersion:   10,
			GuildID:      "42",
			StaffRoleID:  "7",
			HTTPTimeout:  2 * time.Second,
			APIBaseURL:   "https://discord.test/api",
			AuthorizeURL: "https://discord.test/oauth2/authorize",
			TokenURL:     "https://discord.test/api/v10/oauth2/token",
		},
		JWT: config.JWTConfig{
			AccessTokenSecret:  "access-secret-access-secret-access-secret",
			RefreshTokenSecret: "refresh-secret-refresh-secret-refresh-secret",
			AccessTokenExp:     time.Hour,
			RefreshTokenExp:    7 * 24 * time.Hour,
		},
		Redis: &config.RedisConfig{Address: "localhost:6379"},
	}
}

// NewTestContext creates a complete test setup with sensible defaults and a GET / request.
func NewTestContext(t *testing.T) *TestContext {
	return NewTestContextWithURL(t, http.MethodGet, "/")
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockSession := mocks.NewMockSessionProvider(ctrl)
	mockDiscord := mocks.NewMockDiscordProvider(ctrl)
	mockRoles := mocks.NewMockRoleProvider(ctrl)
	mockTokens := mocks.NewMockTokenProvider(ctrl)

	req := httptest.NewRequest(method, url, nil)
	rr := httptest.NewRecorder()

	appCtx := middlewares.NewAppContext(req.Context(), DefaultTestConfig(), logger, mockSession, mockDiscord, mockRoles, mockTokens)
	appCtx.Request = req
	appCtx.Response = rr

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		MockController: ctrl,
		MockSession:    mockSession,
		MockDiscord:    mockDiscord,
		MockRoles:      mockRoles,
		MockTokens:     mockTokens,
		LogHandler:     logHandler,
	}
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

func (tc *TestContext) AssertLogsContainMessage(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	t.Helper()
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

func (tc *TestContext) GetLogRecords() []TestLogRecord {
	return tc.LogHandler.GetRecords()
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// ServeMiddleware runs mw around next with the app context attached, the way the router does.
func (tc *TestContext) ServeMiddleware(mw func(http.Handler) http.Handler, next http.Handler) {
	req := middlewares.WithAppContext(tc.Request, tc.AppContext)
	tc.AppContext.Request = req
	mw(next).ServeHTTP(tc.Response, req)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

func (tc *TestContext) GetResponseBody() string {
	return tc.Response.Body.String()
}

// AssertJSONField checks a specific field in a JSON response
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

// AssertBodyContains checks the raw response body for a substring
func (tc *TestContext) AssertBodyContains(t *testing.T, substr string) {
	t.Helper()
	if body := tc.GetResponseBody(); !strings.Contains(body, substr) {
		t.Errorf("Expected body to contain %q, got %q", substr, body)
	}
}

// GetCookie returns the last Set-Cookie named name, or nil.
func (tc *TestContext) GetCookie(name string) *http.Cookie {
	var found *http.Cookie
	for _, c := range tc.Response.Result().Cookies() {
		if c.Name == name {
			found = c
		}
	}
	return found
}

// AssertCookie checks that a cookie was set with the given value and max age.
func (tc *TestContext) AssertCookie(t *testing.T, name, value string, maxAge time.Duration) *http.Cookie {
	t.Helper()
	c := tc.GetCookie(name)
	if c == nil {
		t.Fatalf("Expected cookie %s to be set", name)
	}
	if c.Value != value {
		t.Errorf("Expected cookie %s to be %q, got %q", name, value, c.Value)
	}
	if c.MaxAge != int(maxAge/time.Second) {
		t.Errorf("Expected cookie %s max age %d, got %d", name, int(maxAge/time.Second), c.MaxAge)
	}
	if !c.HttpOnly {
		t.Errorf("Expected cookie %s to be HttpOnly", name)
	}
	return c
}

// AssertCookieCleared checks that a cookie was expired in the response.
func (tc *TestContext) AssertCookieCleared(t *testing.T, name string) {
	t.Helper()
	c := tc.GetCookie(name)
	if c == nil {
		t.Fatalf("Expected cookie %s to be cleared", name)
	}
	if c.MaxAge >= 0 || c.Value != "" {
		t.Errorf("Expected cookie %s to be expired, got max age %d value %q", name, c.MaxAge, c.Value)
	}
}

// AssertNoCookie checks that the response sets no cookie named name.
func (tc *TestContext) AssertNoCookie(t *testing.T, name string) {
	t.Helper()
	if c := tc.GetCookie(name); c != nil {
		t.Errorf("Expected no cookie %s, got %q", name, c.Value)
	}
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithSessionMode switches the configured session mode
func (tc *TestContext) WithSessionMode(mode string) *TestContext {
	tc.AppContext.Config.Sessions.Mode = mode
	return tc
}

// WithSessionManager allows you to override the session manager with a different mock or implementation
func (tc *TestContext) WithSessionManager(sm middlewares.SessionProvider) *TestContext {
	tc.AppContext.SessionManager = sm
	return tc
}

// Helper to add query parameters to the request
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// Helper to add headers
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// WithCookie adds a request cookie
func (tc *TestContext) WithCookie(name, value string) *TestContext {
	tc.Request.AddCookie(&http.Cookie{Name: name, Value: value})
	return tc
}

// WithRequest allows you to set a custom request (useful for tests that don't use URL constructor)
func (tc *TestContext) WithRequest(req *http.Request) *TestContext {
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}
