package workload

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hospital/gateway/internal/platform/upstream"
)

// Fetcher is the data-access surface the workload table needs.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]Workload, error)
	FetchByDate(ctx context.Context, date string) ([]Workload, error)
	FetchByRange(ctx context.Context, startDate, endDate string) ([]Workload, error)
	FetchByStaff(ctx context.Context, staffID int) ([]Workload, error)
	FetchByStaffAndRange(ctx context.Context, staffID int, startDate, endDate string) ([]Workload, error)
}

// Client fetches workload collections from the hospital API and
// unwraps the envelope into typed records.
type Client struct {
	api  *upstream.Client
	auth string
}

func NewClient(api *upstream.Client, authHeader string) *Client {
	return &Client{api: api, auth: authHeader}
}

func (c *Client) list(ctx context.Context, path string) ([]Workload, error) {
	p, err := c.api.Get(ctx, path, c.auth)
	if err != nil {
		return nil, err
	}
	var items []Workload
	if err := json.Unmarshal(p.DataOrEmptyList(), &items); err != nil {
		return nil, fmt.Errorf("decode workload list: %w", err)
	}
	return items, nil
}

func rangeQuery(startDate, endDate string) string {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	return q.Encode()
}

func (c *Client) FetchAll(ctx context.Context) ([]Workload, error) {
	return c.list(ctx, "/staff/workloads")
}

func (c *Client) FetchByDate(ctx context.Context, date string) ([]Workload, error) {
	return c.list(ctx, "/staff/workloads/date/"+url.PathEscape(date))
}

func (c *Client) FetchByRange(ctx context.Context, startDate, endDate string) ([]Workload, error) {
	return c.list(ctx, "/staff/workloads/date-range?"+rangeQuery(startDate, endDate))
}

func (c *Client) FetchByStaff(ctx context.Context, staffID int) ([]Workload, error) {
	return c.list(ctx, "/staff/workloads/staff/"+strconv.Itoa(staffID))
}

func (c *Client) FetchByStaffAndRange(ctx context.Context, staffID int, startDate, endDate string) ([]Workload, error) {
	return c.list(ctx, "/staff/workloads/staff/"+strconv.Itoa(staffID)+"/date-range?"+rangeQuery(startDate, endDate))
}

func (c *Client) Create(ctx context.Context, req Request) (*Workload, error) {
	p, err := c.api.Post(ctx, "/staff/workloads", c.auth, req)
	if err != nil {
		return nil, err
	}
	var w Workload
	if err := json.Unmarshal(p.Data, &w); err != nil {
		return nil, fmt.Errorf("decode created workload: %w", err)
	}
	return &w, nil
}

func (c *Client) Update(ctx context.Context, id int, req Request) (*Workload, error) {
	p, err := c.api.Put(ctx, "/staff/workloads/"+strconv.Itoa(id), c.auth, req)
	if err != nil {
		return nil, err
	}
	var w Workload
	if err := json.Unmarshal(p.Data, &w); err != nil {
		return nil, fmt.Errorf("decode updated workload: %w", err)
	}
	return &w, nil
}

func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.api.Delete(ctx, "/staff/workloads/"+strconv.Itoa(id), c.auth)
	return err
}
