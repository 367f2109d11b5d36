package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/service"
	"github.com/MKhiriev/go-course-keeper/internal/validators"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/stretchr/testify/require"
)

const (
	managerToken = "manager-token"
	studentToken = "student-token"
	expiredToken = "expired-token"

	testUserID   = "0b6f5a3e-8d1c-4f5e-9a7b-2c3d4e5f6a7b"
	testCourseID = "7c1e2d3f-4a5b-4c6d-8e9f-0a1b2c3d4e5f"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Tokens are resolved from
// the fixed strings above instead of being signed.
type mockAuthService struct {
	loginFn       func(ctx context.Context, credentials models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.LoginRequest) (models.User, error) {
	if m.loginFn == nil {
		return models.User{}, service.ErrWrongCredentials
	}
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed-" + user.ID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(_ context.Context, tokenString string) (models.Claims, error) {
	switch tokenString {
	case managerToken:
		return models.Claims{UserID: testUserID, Role: models.RoleManager}, nil
	case studentToken:
		return models.Claims{UserID: testUserID, Role: models.RoleStudent}, nil
	case expiredToken:
		return models.Claims{}, service.ErrTokenIsExpired
	default:
		return models.Claims{}, service.ErrTokenIsExpiredOrInvalid
	}
}

type mockUserService struct {
	createFn func(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	getFn    func(ctx context.Context, id string) (models.User, error)
	listFn   func(ctx context.Context, query models.ListQuery) ([]models.User, int64, error)

	createCalls int
}

func (m *mockUserService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	m.createCalls++
	return m.createFn(ctx, request)
}

func (m *mockUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context, query models.ListQuery) ([]models.User, int64, error) {
	return m.listFn(ctx, query)
}

type mockCourseService struct {
	createFn func(ctx context.Context, request models.CreateCourseRequest) (models.Course, error)
	getFn    func(ctx context.Context, id string) (models.Course, error)
	listFn   func(ctx context.Context, query models.ListQuery) ([]models.Course, int64, error)

	createCalls int
}

func (m *mockCourseService) CreateCourse(ctx context.Context, request models.CreateCourseRequest) (models.Course, error) {
	m.createCalls++
	return m.createFn(ctx, request)
}

func (m *mockCourseService) GetCourse(ctx context.Context, id string) (models.Course, error) {
	return m.getFn(ctx, id)
}

func (m *mockCourseService) ListCourses(ctx context.Context, query models.ListQuery) ([]models.Course, int64, error) {
	return m.listFn(ctx, query)
}

type mockAppInfoService struct {
	healthErr error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo("test", "", "")
}

func (m *mockAppInfoService) CheckHealth(_ context.Context) error {
	return m.healthErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testDeps struct {
	users   *mockUserService
	courses *mockCourseService
	auth    *mockAuthService
	appInfo *mockAppInfoService
}

func newTestDeps() *testDeps {
	return &testDeps{
		users:   &mockUserService{},
		courses: &mockCourseService{},
		auth:    &mockAuthService{},
		appInfo: &mockAppInfoService{},
	}
}

// newTestHandler builds a Handler around deps with response validation on.
func newTestHandler(deps *testDeps, settings Settings) *Handler {
	if deps == nil {
		deps = newTestDeps()
	}
	services := &service.Services{
		AuthService:    deps.auth,
		UserService:    deps.users,
		CourseService:  deps.courses,
		AppInfoService: deps.appInfo,
	}
	return NewHandler(services, validators.NewStructValidator(), settings, logger.Nop())
}

func devSettings() Settings {
	return Settings{ValidateResponses: true}
}

// serve runs one request through the full router.
func serve(t *testing.T, h *Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}
