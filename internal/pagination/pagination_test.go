package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults when absent", "/organizations", DefaultPage, DefaultLimit},
		{"explicit values", "/organizations?page=3&limit=10", 3, 10},
		{"malformed values fall back", "/organizations?page=abc&limit=xyz", DefaultPage, DefaultLimit},
		{"negative values fall back", "/organizations?page=-1&limit=-5", DefaultPage, DefaultLimit},
		{"limit clamped to max", "/organizations?limit=500", DefaultPage, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			p := ParseParams(r)
			if p.Page != tt.wantPage {
				t.Errorf("Expected page %d, got %d", tt.wantPage, p.Page)
			}
			if p.Limit != tt.wantLimit {
				t.Errorf("Expected limit %d, got %d", tt.wantLimit, p.Limit)
			}
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	p := Params{Page: 3, Limit: 20}
	if got := p.CalculateOffset(); got != 40 {
		t.Errorf("Expected offset 40, got %d", got)
	}
}

func TestCalculateMeta(t *testing.T) {
	p := Params{Page: 2, Limit: 10}
	meta := p.CalculateMeta(25)

	if meta.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", meta.TotalPages)
	}
	if meta.TotalRecords != 25 {
		t.Errorf("Expected 25 total records, got %d", meta.TotalRecords)
	}
	if !meta.HasNext {
		t.Error("Expected HasNext to be true on page 2 of 3")
	}
	if !meta.HasPrevious {
		t.Error("Expected HasPrevious to be true on page 2")
	}
}

func TestCalculateMeta_Empty(t *testing.T) {
	p := Params{Page: 1, Limit: 10}
	meta := p.CalculateMeta(0)

	if meta.TotalPages != 1 {
		t.Errorf("Expected 1 total page for empty result, got %d", meta.TotalPages)
	}
	if meta.HasNext || meta.HasPrevious {
		t.Error("Expected no neighboring pages for empty result")
	}
}
