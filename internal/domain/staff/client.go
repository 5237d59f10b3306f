package staff

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hospital/gateway/internal/platform/upstream"
)

// Fetcher is the data-access surface the staff table needs. The table
// never talks HTTP directly, so tests can swap in a canned fetcher.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]Staff, error)
	FetchActive(ctx context.Context) ([]Staff, error)
	FetchByType(ctx context.Context, staffType string) ([]Staff, error)
	FetchByDepartment(ctx context.Context, department string) ([]Staff, error)
	FetchBySpecialization(ctx context.Context, specialization string) ([]Staff, error)
	FetchByID(ctx context.Context, id int) (*Staff, error)
}

// Client fetches staff collections from the hospital API and unwraps
// the envelope into typed records.
type Client struct {
	api  *upstream.Client
	auth string
}

func NewClient(api *upstream.Client, authHeader string) *Client {
	return &Client{api: api, auth: authHeader}
}

func (c *Client) list(ctx context.Context, path string) ([]Staff, error) {
	p, err := c.api.Get(ctx, path, c.auth)
	if err != nil {
		return nil, err
	}
	var items []Staff
	if err := json.Unmarshal(p.DataOrEmptyList(), &items); err != nil {
		return nil, fmt.Errorf("decode staff list: %w", err)
	}
	return items, nil
}

func (c *Client) FetchAll(ctx context.Context) ([]Staff, error) {
	return c.list(ctx, "/staff")
}

func (c *Client) FetchActive(ctx context.Context) ([]Staff, error) {
	return c.list(ctx, "/staff/active")
}

func (c *Client) FetchByType(ctx context.Context, staffType string) ([]Staff, error) {
	return c.list(ctx, "/staff/type/"+url.PathEscape(staffType))
}

func (c *Client) FetchByDepartment(ctx context.Context, department string) ([]Staff, error) {
	return c.list(ctx, "/staff/department/"+url.PathEscape(department))
}

func (c *Client) FetchBySpecialization(ctx context.Context, specialization string) ([]Staff, error) {
	return c.list(ctx, "/staff/specialization/"+url.PathEscape(specialization))
}

func (c *Client) FetchByID(ctx context.Context, id int) (*Staff, error) {
	p, err := c.api.Get(ctx, "/staff/"+strconv.Itoa(id), c.auth)
	if err != nil {
		return nil, err
	}
	var s Staff
	if err := json.Unmarshal(p.Data, &s); err != nil {
		return nil, fmt.Errorf("decode staff: %w", err)
	}
	return &s, nil
}

func (c *Client) Create(ctx context.Context, req Request) (*Staff, error) {
	p, err := c.api.Post(ctx, "/staff", c.auth, req)
	if err != nil {
		return nil, err
	}
	var s Staff
	if err := json.Unmarshal(p.Data, &s); err != nil {
		return nil, fmt.Errorf("decode created staff: %w", err)
	}
	return &s, nil
}

func (c *Client) Update(ctx context.Context, id int, req Request) (*Staff, error) {
	p, err := c.api.Put(ctx, "/staff/"+strconv.Itoa(id), c.auth, req)
	if err != nil {
		return nil, err
	}
	var s Staff
	if err := json.Unmarshal(p.Data, &s); err != nil {
		return nil, fmt.Errorf("decode updated staff: %w", err)
	}
	return &s, nil
}

func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.api.Delete(ctx, "/staff/"+strconv.Itoa(id), c.auth)
	return err
}
