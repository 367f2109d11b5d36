package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client
// preconfigured to talk JSON to the course API.
//
//	client := utils.NewHTTPClient("http://localhost:8080")
//	resp, err := client.Authorized(token).
//	    SetBody(models.CreateCourseRequest{...}).
//	    Post("/courses")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL.
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// Authorized returns a request carrying token as a bearer credential.
func (c *HTTPClient) Authorized(token string) *resty.Request {
	return c.R().SetAuthToken(token)
}
