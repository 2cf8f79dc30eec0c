package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/swimapi/config"
	"github.com/padraicbc/swimapi/swim"
)

func newTestContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

// Param validation runs before any query, so a zero-value Handler is
// enough to exercise the 400 paths.
func TestMissingParamsAreBadRequests(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name string
		url  string
		fn   func(echo.Context) error
	}{
		{"summary without name", "/api/summary?stroke=breaststroke", h.Summary},
		{"summary without stroke", "/api/summary?name=A", h.Summary},
		{"rank without name", "/api/rank?stroke=breaststroke", h.Rank},
		{"rank without stroke", "/api/rank?name=A", h.Rank},
		{"results without name", "/api/results", h.Results},
		{"swimmers without q", "/api/swimmers", h.Swimmers},
		{"events without name", "/api/events", h.Events},
	}

	for _, tt := range tests {
		err := tt.fn(newTestContext(tt.url))
		he, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("%s: expected *echo.HTTPError, got %v", tt.name, err)
		}
		if he.Code != http.StatusBadRequest {
			t.Errorf("%s: code = %d, want %d", tt.name, he.Code, http.StatusBadRequest)
		}
	}
}

func TestMalformedPaginationIsABadRequest(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		url string
		fn  func(echo.Context) error
	}{
		{"/api/summary?name=A&stroke=b&limit=0", h.Summary},
		{"/api/summary?name=A&stroke=b&limit=notanumber", h.Summary},
		{"/api/summary?name=A&stroke=b&limit=99999", h.Summary},
		{"/api/summary?name=A&stroke=b&cursor=-1", h.Summary},
		{"/api/rank?name=A&stroke=b&ageTolerance=0", h.Rank},
		{"/api/rank?name=A&stroke=b&monthsBack=-2", h.Rank},
	}
	for _, tt := range tests {
		err := tt.fn(newTestContext(tt.url))
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %v", tt.url, err)
		}
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		n, cursor, limit int
		lo, hi           int
		next             *int
	}{
		{n: 10, cursor: 0, limit: 5, lo: 0, hi: 5, next: intp(5)},
		{n: 10, cursor: 5, limit: 5, lo: 5, hi: 10, next: nil},
		{n: 3, cursor: 0, limit: 200, lo: 0, hi: 3, next: nil},
		{n: 3, cursor: 7, limit: 5, lo: 3, hi: 3, next: nil},
		{n: 0, cursor: 0, limit: 5, lo: 0, hi: 0, next: nil},
	}
	for _, tt := range tests {
		lo, hi, next := paginate(tt.n, tt.cursor, tt.limit)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("paginate(%d,%d,%d) bounds = (%d,%d), want (%d,%d)",
				tt.n, tt.cursor, tt.limit, lo, hi, tt.lo, tt.hi)
		}
		switch {
		case (next == nil) != (tt.next == nil):
			t.Errorf("paginate(%d,%d,%d) next = %v, want %v", tt.n, tt.cursor, tt.limit, next, tt.next)
		case next != nil && *next != *tt.next:
			t.Errorf("paginate(%d,%d,%d) next = %d, want %d", tt.n, tt.cursor, tt.limit, *next, *tt.next)
		}
	}
}

func intp(v int) *int { return &v }

func TestLikePattern(t *testing.T) {
	if got := likePattern(" 50 meter breaststroke "); got != "%50 meter breaststroke%" {
		t.Errorf("likePattern = %q", got)
	}
	if got := likePattern(""); got != "%" {
		t.Errorf("likePattern empty = %q", got)
	}
}

func TestPolicySelection(t *testing.T) {
	cfg := &config.Config{PoolPolicy: config.PolicyDemographic, AgeTolerance: 2}
	h := New(nil, cfg, nil)

	p := h.policy(0)
	dp, ok := p.(swim.DemographicPolicy)
	if !ok {
		t.Fatalf("policy = %T, want DemographicPolicy", p)
	}
	if dp.ToleranceYears != 2 {
		t.Errorf("ToleranceYears = %d, want configured 2", dp.ToleranceYears)
	}

	if dp := h.policy(5).(swim.DemographicPolicy); dp.ToleranceYears != 5 {
		t.Errorf("ToleranceYears = %d, want override 5", dp.ToleranceYears)
	}

	h = New(nil, &config.Config{PoolPolicy: config.PolicyCoOccurrence}, nil)
	if _, ok := h.policy(0).(swim.CoOccurrencePolicy); !ok {
		t.Errorf("policy = %T, want CoOccurrencePolicy", h.policy(0))
	}
}
