// Package iis is a typed client for the BSUIR IIS schedule API.
package iis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/samvad-hq/iis-schedule-client/pkg/httpclient"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://iis.bsuir.by"

const (
	currentWeekPath   = "/api/v1/schedule/current-week"
	auditoriesPath    = "/api/v1/auditories"
	departmentsPath   = "/api/v1/departments"
	facultiesPath     = "/api/v1/faculties"
	employeesPath     = "/api/v1/employees/all"
	groupsPath        = "/api/v1/student-groups"
	specialitiesPath  = "/api/v1/specialities"
	lastUpdatePath    = "/api/v1/last-update-date/"
	announcementsPath = "/api/v1/announcements/"
)

// Client issues one GET per call against a fixed base URL. It is safe for concurrent use.
type Client struct {
	baseURL     string
	http        httpclient.Client
	statusCheck bool
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default resty transport.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithStatusCheck toggles rejection of non-2xx responses. When disabled, any
// response body is decoded regardless of status. Enabled by default.
func WithStatusCheck(enabled bool) Option {
	return func(c *Client) { c.statusCheck = enabled }
}

// New builds a client for baseURL, which must not end with a slash.
// No request is made.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     baseURL,
		statusCheck: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(0)
	}
	return c
}

// BaseURL returns the base URL as given to New.
func (c *Client) BaseURL() string { return c.baseURL }

// CurrentWeek returns the current week number. The endpoint answers with bare text.
func (c *Client) CurrentWeek(ctx context.Context) (WeekNumber, error) {
	url := c.baseURL + currentWeekPath
	body, err := c.fetch(ctx, url)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(strings.TrimSpace(string(body)), 10, 32)
	if err != nil {
		return 0, &DecodeError{URL: url, Body: snippet(body), Err: err}
	}
	return WeekNumber(n), nil
}

// Auditories lists all rooms.
func (c *Client) Auditories(ctx context.Context) ([]Auditory, error) {
	return fetchAndDecode[[]Auditory](ctx, c, c.baseURL+auditoriesPath)
}

// Departments lists all departments.
func (c *Client) Departments(ctx context.Context) ([]Department, error) {
	return fetchAndDecode[[]Department](ctx, c, c.baseURL+departmentsPath)
}

// Faculties lists all faculties.
func (c *Client) Faculties(ctx context.Context) ([]Faculty, error) {
	return fetchAndDecode[[]Faculty](ctx, c, c.baseURL+facultiesPath)
}

// Employees lists all employees.
func (c *Client) Employees(ctx context.Context) ([]Employee, error) {
	return fetchAndDecode[[]Employee](ctx, c, c.baseURL+employeesPath)
}

// Groups lists all student groups.
func (c *Client) Groups(ctx context.Context) ([]Group, error) {
	return fetchAndDecode[[]Group](ctx, c, c.baseURL+groupsPath)
}

// Specialities lists all specialities.
func (c *Client) Specialities(ctx context.Context) ([]Speciality, error) {
	return fetchAndDecode[[]Speciality](ctx, c, c.baseURL+specialitiesPath)
}

// LastUpdate returns when the schedule selected by q last changed.
func (c *Client) LastUpdate(ctx context.Context, q LastUpdateQuery) (LastUpdate, error) {
	if q == nil {
		return LastUpdate{}, errors.New("iis: last update query is nil")
	}
	return fetchAndDecode[LastUpdate](ctx, c, c.baseURL+lastUpdatePath+q.QueryParams())
}

// Announcements lists the announcements selected by q.
func (c *Client) Announcements(ctx context.Context, q AnnouncementQuery) ([]Announcement, error) {
	if q == nil {
		return nil, errors.New("iis: announcement query is nil")
	}
	return fetchAndDecode[[]Announcement](ctx, c, c.baseURL+announcementsPath+q.QueryParams())
}

// fetchAndDecode performs the request and decodes the body into T. On any
// error it returns the zero T, so callers never see a partial list.
func fetchAndDecode[T any](ctx context.Context, c *Client, url string) (T, error) {
	var out T
	body, err := c.fetch(ctx, url)
	if err != nil {
		return out, err
	}
	if err := decodeStrict(body, &out); err != nil {
		var zero T
		return zero, &DecodeError{URL: url, Body: snippet(body), Err: err}
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := c.http.Get(ctx, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	body := resp.Body()
	if c.statusCheck {
		if code := resp.StatusCode(); code < 200 || code > 299 {
			return nil, &FetchError{URL: url, Err: &StatusError{StatusCode: code, Body: snippet(body)}}
		}
	}
	return body, nil
}

func decodeStrict(body []byte, out any) error {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return err
	}
	return checkRequired(raw, out)
}
