package patient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hospital/gateway/internal/platform/upstream"
)

// Fetcher is the data-access surface the patient table needs.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]Patient, error)
	FetchActive(ctx context.Context) ([]Patient, error)
	FetchByID(ctx context.Context, id int) (*Patient, error)
}

// Client fetches patient collections from the hospital API and unwraps
// the envelope into typed records.
type Client struct {
	api  *upstream.Client
	auth string
}

func NewClient(api *upstream.Client, authHeader string) *Client {
	return &Client{api: api, auth: authHeader}
}

func (c *Client) list(ctx context.Context, path string) ([]Patient, error) {
	p, err := c.api.Get(ctx, path, c.auth)
	if err != nil {
		return nil, err
	}
	var items []Patient
	if err := json.Unmarshal(p.DataOrEmptyList(), &items); err != nil {
		return nil, fmt.Errorf("decode patient list: %w", err)
	}
	return items, nil
}

func (c *Client) FetchAll(ctx context.Context) ([]Patient, error) {
	return c.list(ctx, "/patient")
}

func (c *Client) FetchActive(ctx context.Context) ([]Patient, error) {
	return c.list(ctx, "/patient/active")
}

func (c *Client) FetchByID(ctx context.Context, id int) (*Patient, error) {
	p, err := c.api.Get(ctx, "/patients/"+strconv.Itoa(id), c.auth)
	if err != nil {
		return nil, err
	}
	var out Patient
	if err := json.Unmarshal(p.Data, &out); err != nil {
		return nil, fmt.Errorf("decode patient: %w", err)
	}
	return &out, nil
}

func (c *Client) Update(ctx context.Context, id int, req Request) (*Patient, error) {
	p, err := c.api.Put(ctx, "/patients/"+strconv.Itoa(id), c.auth, req)
	if err != nil {
		return nil, err
	}
	var out Patient
	if err := json.Unmarshal(p.Data, &out); err != nil {
		return nil, fmt.Errorf("decode updated patient: %w", err)
	}
	return &out, nil
}

func (c *Client) Deactivate(ctx context.Context, id int) error {
	_, err := c.api.Patch(ctx, "/patient/"+strconv.Itoa(id)+"/deactivate", c.auth, nil)
	return err
}

func (c *Client) Reactivate(ctx context.Context, id int) error {
	_, err := c.api.Patch(ctx, "/patient/"+strconv.Itoa(id)+"/reactivate", c.auth, nil)
	return err
}
