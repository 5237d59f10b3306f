package workload

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hospital/gateway/internal/platform/envelope"
	"github.com/hospital/gateway/internal/platform/upstream"
)

func newTestHandler(t *testing.T, backend http.HandlerFunc) *Handler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	return NewHandler(upstream.NewClient(srv.URL, 2*time.Second), zerolog.Nop())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope.Envelope {
	t.Helper()
	var env envelope.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestByDateRangeForwardsQueryPair(t *testing.T) {
	var gotPath, gotQuery string
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		w.Write([]byte(`{"status":200,"message":"ok","data":[]}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/staff/workloads/date-range?startDate=2025-03-01&endDate=2025-03-31", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if err := h.ByDateRange(c); err != nil {
		t.Fatal(err)
	}

	if gotPath != "/staff/workloads/date-range" {
		t.Errorf("path = %q", gotPath)
	}
	if !strings.Contains(gotQuery, "startDate=2025-03-01") || !strings.Contains(gotQuery, "endDate=2025-03-31") {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestByDatePathParam(t *testing.T) {
	var gotPath string
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":200,"message":"ok","data":null}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/staff/workloads/date/2025-03-14", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("date")
	c.SetParamValues("2025-03-14")
	if err := h.ByDate(c); err != nil {
		t.Fatal(err)
	}

	if gotPath != "/staff/workloads/date/2025-03-14" {
		t.Errorf("upstream path = %q", gotPath)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("body = %s, want null data as []", rec.Body.String())
	}
}

func TestCreateForwardsEveryField(t *testing.T) {
	var forwarded map[string]interface{}
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&forwarded)
		w.Write([]byte(`{"status":200,"message":"ok","data":{"id":9}}`))
	})

	body := strings.NewReader(`{"staffId":1,"date":"2025-03-01","patientCount":5,"appointmentCount":4,"procedureCount":3,"surgeryCount":2,"consultationCount":1,"hoursWorked":8,"notes":"ward round"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/staff/workloads", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}

	want := map[string]float64{
		"staffId":           1,
		"patientCount":      5,
		"appointmentCount":  4,
		"procedureCount":    3,
		"surgeryCount":      2,
		"consultationCount": 1,
		"hoursWorked":       8,
	}
	for field, value := range want {
		got, ok := forwarded[field].(float64)
		if !ok || got != value {
			t.Errorf("forwarded %s = %v, want %v", field, forwarded[field], value)
		}
	}
	if forwarded["date"] != "2025-03-01" || forwarded["notes"] != "ward round" {
		t.Errorf("forwarded body = %v", forwarded)
	}
}

func TestCreateFailureMessage(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	body := strings.NewReader(`{"staffId":3,"date":"2025-03-14"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/staff/workloads", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Failed to create workload" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	var gotBody Request
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/staff/workloads/5" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status":200,"message":"ok","data":{"id":5}}`))
	})

	body := strings.NewReader(`{"staffId":3,"date":"2025-03-14","hoursWorked":9.5}`)
	req := httptest.NewRequest(http.MethodPut, "/api/staff/workloads/5", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := h.Update(c); err != nil {
		t.Fatal(err)
	}

	if gotBody.HoursWorked != 9.5 {
		t.Errorf("forwarded body = %+v", gotBody)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Workload updated successfully" {
		t.Errorf("message = %q", env.Message)
	}
}
