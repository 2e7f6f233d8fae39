package helpers

import "testing"

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		page, limit int
		wantPages   int
	}{
		{"exact pages", 40, 1, 10, 4},
		{"partial last page", 42, 1, 10, 5},
		{"single item", 1, 1, 10, 1},
		{"empty set", 0, 1, 10, 0},
	}
	for _, tc := range tests {
		meta := NewPaginationMeta(tc.total, tc.page, tc.limit)
		if meta.TotalPages != tc.wantPages {
			t.Errorf("%s: got %d pages, want %d", tc.name, meta.TotalPages, tc.wantPages)
		}
		if meta.Total != tc.total || meta.Page != tc.page || meta.Limit != tc.limit {
			t.Errorf("%s: meta fields not carried through: %+v", tc.name, meta)
		}
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 20)
	if offset != 40 || limit != 20 {
		t.Fatalf("got offset=%d limit=%d, want 40/20", offset, limit)
	}

	// Out-of-range inputs clamp to defaults.
	offset, limit = CalculateOffsetLimit(0, 0)
	if offset != 0 || limit != DefaultPageSize {
		t.Fatalf("got offset=%d limit=%d, want 0/%d", offset, limit, DefaultPageSize)
	}

	_, limit = CalculateOffsetLimit(1, MaxPageSize+1)
	if limit != DefaultPageSize {
		t.Fatalf("expected oversized limit reset to %d, got %d", DefaultPageSize, limit)
	}
}
