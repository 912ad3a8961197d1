package handler

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		pages int
	}{
		{"even split", 1, 10, 30, 3},
		{"partial last page", 2, 10, 25, 3},
		{"empty result", 1, 10, 0, 0},
		{"zero limit", 1, 0, 5, 5},
		{"negative limit", 1, -3, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.Pages != tt.pages {
				t.Errorf("pages = %d, want %d", p.Pages, tt.pages)
			}
			if p.Current != tt.page {
				t.Errorf("current = %d, want %d", p.Current, tt.page)
			}
			if p.Total != tt.total {
				t.Errorf("total = %d, want %d", p.Total, tt.total)
			}
		})
	}
}
