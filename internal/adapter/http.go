package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/utils"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpCourseAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCourseAPI returns a [CourseAPI] for the server at address, which
// may omit the scheme ("localhost:8080"). A non-positive timeout leaves
// requests bounded only by their context.
func NewHTTPCourseAPI(address string, timeout time.Duration, logger *logger.Logger) (CourseAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid course api address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpCourseAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCourseAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCourseAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized returns a request carrying the stored token.
func (h *httpCourseAPI) authorized(ctx context.Context) *resty.Request {
	return h.client.Authorized(h.Token()).SetContext(ctx)
}

func (h *httpCourseAPI) SignUp(ctx context.Context, request models.CreateUserRequest) (string, error) {
	var created models.CreateUserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return "", fmt.Errorf("sign up request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return created.UserID, nil
}

func (h *httpCourseAPI) Login(ctx context.Context, credentials models.LoginRequest) (string, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&login).
		Post("/sessions")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(login.Token)
	h.logger.Debug().Str("email", credentials.Email).Msg("logged in")
	return login.Token, nil
}

func (h *httpCourseAPI) CreateCourse(ctx context.Context, request models.CreateCourseRequest) (string, error) {
	var created models.CreateCourseResponse

	resp, err := h.authorized(ctx).
		SetBody(request).
		SetResult(&created).
		Post("/courses")
	if err != nil {
		return "", fmt.Errorf("create course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return created.CourseID, nil
}

func (h *httpCourseAPI) GetCourse(ctx context.Context, id string) (models.Course, error) {
	var found models.CourseResponse

	resp, err := h.authorized(ctx).
		SetPathParam("id", id).
		SetResult(&found).
		Get("/courses/{id}")
	if err != nil {
		return models.Course{}, fmt.Errorf("get course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Course{}, err
	}

	return found.Course, nil
}

func (h *httpCourseAPI) ListCourses(ctx context.Context, params models.CourseListParams) (models.CourseListResponse, error) {
	var list models.CourseListResponse

	resp, err := h.authorized(ctx).
		SetQueryParams(listQueryParams(params.Search, params.OrderBy, params.Page)).
		SetResult(&list).
		Get("/courses")
	if err != nil {
		return models.CourseListResponse{}, fmt.Errorf("list courses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CourseListResponse{}, err
	}

	return list, nil
}

func (h *httpCourseAPI) GetUser(ctx context.Context, id string) (models.User, error) {
	var found models.UserResponse

	resp, err := h.authorized(ctx).
		SetPathParam("id", id).
		SetResult(&found).
		Get("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return found.User, nil
}

func (h *httpCourseAPI) ListUsers(ctx context.Context, params models.UserListParams) (models.UserListResponse, error) {
	var list models.UserListResponse

	resp, err := h.authorized(ctx).
		SetQueryParams(listQueryParams(params.Search, params.OrderBy, params.Page)).
		SetResult(&list).
		Get("/users")
	if err != nil {
		return models.UserListResponse{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserListResponse{}, err
	}

	return list, nil
}

func (h *httpCourseAPI) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpCourseAPI) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&version).Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// listQueryParams drops zero values so the server applies its defaults.
func listQueryParams(search, orderBy string, page int) map[string]string {
	params := make(map[string]string, 3)
	if search != "" {
		params["search"] = search
	}
	if orderBy != "" {
		params["orderBy"] = orderBy
	}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	return params
}
