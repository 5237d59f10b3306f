package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hospital/gateway/internal/platform/upstream"
)

// Fetcher is the data-access surface the schedule table needs.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]Schedule, error)
	FetchActive(ctx context.Context) ([]Schedule, error)
	FetchByRange(ctx context.Context, startTime, endTime string) ([]Schedule, error)
	FetchByDepartment(ctx context.Context, department string) ([]Schedule, error)
	FetchByShiftType(ctx context.Context, shiftType string) ([]Schedule, error)
	FetchByStaff(ctx context.Context, staffID int) ([]Schedule, error)
	FetchByStaffAndRange(ctx context.Context, staffID int, startTime, endTime string) ([]Schedule, error)
}

// Client fetches schedule collections from the hospital API and
// unwraps the envelope into typed records.
type Client struct {
	api  *upstream.Client
	auth string
}

func NewClient(api *upstream.Client, authHeader string) *Client {
	return &Client{api: api, auth: authHeader}
}

func (c *Client) list(ctx context.Context, path string) ([]Schedule, error) {
	p, err := c.api.Get(ctx, path, c.auth)
	if err != nil {
		return nil, err
	}
	var items []Schedule
	if err := json.Unmarshal(p.DataOrEmptyList(), &items); err != nil {
		return nil, fmt.Errorf("decode schedule list: %w", err)
	}
	return items, nil
}

func rangeQuery(startTime, endTime string) string {
	q := url.Values{}
	q.Set("startTime", startTime)
	q.Set("endTime", endTime)
	return q.Encode()
}

func (c *Client) FetchAll(ctx context.Context) ([]Schedule, error) {
	return c.list(ctx, "/staff/schedules")
}

func (c *Client) FetchActive(ctx context.Context) ([]Schedule, error) {
	return c.list(ctx, "/staff/schedules/active")
}

func (c *Client) FetchByRange(ctx context.Context, startTime, endTime string) ([]Schedule, error) {
	return c.list(ctx, "/staff/schedules/date-range?"+rangeQuery(startTime, endTime))
}

func (c *Client) FetchByDepartment(ctx context.Context, department string) ([]Schedule, error) {
	return c.list(ctx, "/staff/schedules/department/"+url.PathEscape(department))
}

func (c *Client) FetchByShiftType(ctx context.Context, shiftType string) ([]Schedule, error) {
	return c.list(ctx, "/staff/schedules/shift-type/"+url.PathEscape(shiftType))
}

func (c *Client) FetchByStaff(ctx context.Context, staffID int) ([]Schedule, error) {
	return c.list(ctx, "/staff/schedules/staff/"+strconv.Itoa(staffID))
}

func (c *Client) FetchByStaffAndRange(ctx context.Context, staffID int, startTime, endTime string) ([]Schedule, error) {
	return c.list(ctx, "/staff/schedules/staff/"+strconv.Itoa(staffID)+"/date-range?"+rangeQuery(startTime, endTime))
}

func (c *Client) Create(ctx context.Context, req Request) (*Schedule, error) {
	p, err := c.api.Post(ctx, "/staff/schedules", c.auth, req)
	if err != nil {
		return nil, err
	}
	var s Schedule
	if err := json.Unmarshal(p.Data, &s); err != nil {
		return nil, fmt.Errorf("decode created schedule: %w", err)
	}
	return &s, nil
}

func (c *Client) Update(ctx context.Context, id int, req Request) (*Schedule, error) {
	p, err := c.api.Put(ctx, "/staff/schedules/"+strconv.Itoa(id), c.auth, req)
	if err != nil {
		return nil, err
	}
	var s Schedule
	if err := json.Unmarshal(p.Data, &s); err != nil {
		return nil, fmt.Errorf("decode updated schedule: %w", err)
	}
	return &s, nil
}

func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.api.Delete(ctx, "/staff/schedules/"+strconv.Itoa(id), c.auth)
	return err
}
