package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/press-pay/internal/logger"
	"github.com/MKhiriev/press-pay/internal/service"
	"github.com/MKhiriev/press-pay/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed-" + user.Name, Identity: user.Identity()}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return parseTestToken(tokenString)
	}
	return m.parseTokenFn(ctx, tokenString)
}

// mockEntryService implements service.EntryService for unit tests.
type mockEntryService struct {
	createEntryFn func(ctx context.Context, caller models.Identity, request models.CreateEntryRequest) (models.ClothesEntry, error)
	listEntriesFn func(ctx context.Context, caller models.Identity) ([]models.ClothesEntry, error)
	updateEntryFn func(ctx context.Context, caller models.Identity, id int64, request models.UpdateEntryRequest) (models.ClothesEntry, error)
	deleteEntryFn func(ctx context.Context, caller models.Identity, id int64) error
}

func (m *mockEntryService) CreateEntry(ctx context.Context, caller models.Identity, request models.CreateEntryRequest) (models.ClothesEntry, error) {
	return m.createEntryFn(ctx, caller, request)
}

func (m *mockEntryService) ListEntries(ctx context.Context, caller models.Identity) ([]models.ClothesEntry, error) {
	return m.listEntriesFn(ctx, caller)
}

func (m *mockEntryService) UpdateEntry(ctx context.Context, caller models.Identity, id int64, request models.UpdateEntryRequest) (models.ClothesEntry, error) {
	return m.updateEntryFn(ctx, caller, id, request)
}

func (m *mockEntryService) DeleteEntry(ctx context.Context, caller models.Identity, id int64) error {
	return m.deleteEntryFn(ctx, caller, id)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	name    string
	version string
}

func (m *mockAppInfoService) GetServiceName(_ context.Context) string { return m.name }
func (m *mockAppInfoService) GetAppVersion(_ context.Context) string  { return m.version }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var (
	testCustomer = models.Identity{ID: 1, Role: models.RoleCustomer, Name: "Amina"}
	testVendor   = models.Identity{ID: 2, Role: models.RoleVendor, Name: "Shiny Shirts"}
)

// parseTestToken accepts the two fixed tokens "customer-token" and
// "vendor-token" and rejects everything else.
func parseTestToken(tokenString string) (models.Token, error) {
	switch tokenString {
	case "customer-token":
		return models.Token{SignedString: tokenString, Identity: testCustomer}, nil
	case "vendor-token":
		return models.Token{SignedString: tokenString, Identity: testVendor}, nil
	default:
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
}

// newTestRouter builds the full router over the given mocks. Nil mocks are
// replaced with empty ones.
func newTestRouter(t *testing.T, auth *mockAuthService, entries *mockEntryService) http.Handler {
	t.Helper()
	if auth == nil {
		auth = &mockAuthService{}
	}
	if entries == nil {
		entries = &mockEntryService{}
	}

	svcs := &service.Services{
		AuthService:    auth,
		EntryService:   entries,
		AppInfoService: &mockAppInfoService{name: "PressPay API", version: "v1.2.3"},
	}
	return NewHandler(svcs, logger.Nop()).Init()
}

// doRequest sends a request through router. token, when set, is sent as a
// bearer token.
func doRequest(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeBody unmarshals the recorder's body into T.
func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

// assertError checks a failure envelope.
func assertError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, rr.Code, "body: %s", rr.Body.String())
	body := decodeBody[models.ErrorResponse](t, rr)
	require.False(t, body.OK)
	require.Equal(t, code, body.Error)
}
