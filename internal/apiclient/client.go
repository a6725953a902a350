// Package apiclient is the HTTP implementation of frontend.DataPort and
// frontend.ConsolePort.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/frontend"
	"github.com/harramos25/GlamBook/internal/httperr"
	"github.com/harramos25/GlamBook/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

var (
	_ frontend.DataPort    = (*Client)(nil)
	_ frontend.ConsolePort = (*Client)(nil)
)

// WithToken returns a copy that sends the admin bearer token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// APIError is a non-2xx response, carrying the server's error body.
type APIError struct {
	Status  int
	Message string
	Code    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

func (c *Client) FetchCatalog(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	err := c.do(ctx, http.MethodGet, "/api/services", nil, &out)
	return out, err
}

func (c *Client) FetchStaff(ctx context.Context) ([]models.Stylist, error) {
	var out []models.Stylist
	err := c.do(ctx, http.MethodGet, "/api/stylists", nil, &out)
	return out, err
}

func (c *Client) SubmitBooking(ctx context.Context, req dto.CreateBookingRequest) (*models.Booking, error) {
	var out dto.CreateBookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out.Booking, nil
}

func (c *Client) FetchStats(ctx context.Context) (*dto.DashboardStats, error) {
	var out dto.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchBookings(ctx context.Context) ([]dto.BookingListDTO, error) {
	var out []dto.BookingListDTO
	err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &out)
	return out, err
}

// FetchCalendar needs a client from WithToken.
func (c *Client) FetchCalendar(ctx context.Context, date string) (*dto.CalendarDay, error) {
	var out dto.CalendarDay
	path := "/api/admin/calendar?date=" + url.QueryEscape(date)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var he httperr.HTTPError
		if json.NewDecoder(resp.Body).Decode(&he) == nil && he.Message != "" {
			apiErr.Message = he.Message
			apiErr.Code = he.Code
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
