package pagination

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"zero values fall back to defaults", 0, 0, 1, 15},
		{"negative page clamped", -3, 20, 1, 20},
		{"per page above limit clamped", 2, 500, 2, 100},
		{"valid values untouched", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PaginationParams{Page: tt.page, PerPage: tt.perPage}
			p.Validate()
			if p.Page != tt.wantPage || p.PerPage != tt.wantPerPage {
				t.Errorf("Validate() = page %d per_page %d, want page %d per_page %d",
					p.Page, p.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 15}
	if got := p.Offset(); got != 30 {
		t.Errorf("Offset() = %d, want 30", got)
	}

	p = &PaginationParams{Page: 1, PerPage: 100}
	if got := p.Offset(); got != 0 {
		t.Errorf("Offset() = %d, want 0", got)
	}
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 15, 31)

	if pg.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", pg.TotalPages)
	}
	if !pg.HasNext {
		t.Error("HasNext = false, want true on middle page")
	}
	if !pg.HasPrev {
		t.Error("HasPrev = false, want true on middle page")
	}

	last := NewPagination(3, 15, 31)
	if last.HasNext {
		t.Error("HasNext = true on last page")
	}

	first := NewPagination(1, 15, 31)
	if first.HasPrev {
		t.Error("HasPrev = true on first page")
	}
}
