package repositories

import (
	"strings"
	"testing"
)

func studentCollection(t *testing.T) *Collection {
	t.Helper()
	col, ok := defaultCollections()["students"]
	if !ok {
		t.Fatal("students collection not registered")
	}
	return col
}

func TestBuildListQueryBasics(t *testing.T) {
	col := studentCollection(t)

	sql, args, err := buildListQuery(col, ListParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "COUNT(*) OVER()") {
		t.Fatalf("expected window count in query: %s", sql)
	}
	if !strings.Contains(sql, "FROM students") {
		t.Fatalf("expected students table: %s", sql)
	}
	if !strings.Contains(sql, "ORDER BY created_at DESC") {
		t.Fatalf("expected default sort: %s", sql)
	}
	if !strings.Contains(sql, "LIMIT 10") || !strings.Contains(sql, "OFFSET 0") {
		t.Fatalf("expected pagination clauses: %s", sql)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildListQueryOffset(t *testing.T) {
	col := studentCollection(t)

	sql, _, err := buildListQuery(col, ListParams{Page: 3, Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "LIMIT 20") || !strings.Contains(sql, "OFFSET 40") {
		t.Fatalf("expected page 3 offset: %s", sql)
	}
}

func TestBuildListQuerySearch(t *testing.T) {
	col := studentCollection(t)

	sql, args, err := buildListQuery(col, ListParams{Page: 1, Limit: 10, Search: "ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "name ILIKE") || !strings.Contains(sql, "email ILIKE") {
		t.Fatalf("expected ILIKE over search columns: %s", sql)
	}
	if !strings.Contains(sql, " OR ") {
		t.Fatalf("expected OR-joined search: %s", sql)
	}
	found := false
	for _, a := range args {
		if a == "%ada%" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected wildcard-wrapped search arg, got %v", args)
	}
}

func TestBuildListQueryFilters(t *testing.T) {
	col := studentCollection(t)

	sql, args, err := buildListQuery(col, ListParams{
		Page: 1, Limit: 10,
		Filters: map[string]string{"block": "A"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "block::text = $1") {
		t.Fatalf("expected block filter: %s", sql)
	}
	if len(args) != 1 || args[0] != "A" {
		t.Fatalf("expected filter arg, got %v", args)
	}
}

func TestBuildListQueryIgnoresUnknownAndEmptyFilters(t *testing.T) {
	col := studentCollection(t)

	sql, args, err := buildListQuery(col, ListParams{
		Page: 1, Limit: 10,
		Filters: map[string]string{
			"password": "x",
			"year":     "",
			"block":    "A",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "block::text = $1") {
		t.Errorf("expected block filter to survive, got %q", sql)
	}
	if strings.Contains(sql, "password") || strings.Contains(sql, "year") {
		t.Errorf("expected unknown and empty filters dropped, got %q", sql)
	}
	if len(args) != 1 || args[0] != "A" {
		t.Errorf("expected only the block value bound, got %v", args)
	}
}

func TestBuildListQuerySortForms(t *testing.T) {
	col := studentCollection(t)

	tests := []struct {
		sort string
		want string
	}{
		{"name", "ORDER BY name ASC"},
		{"-name", "ORDER BY name DESC"},
		{"name:asc", "ORDER BY name ASC"},
		{"name:desc", "ORDER BY name DESC"},
		{"name:DESC", "ORDER BY name DESC"},
		// Unlisted fields and unknown directions fall back to the default.
		{"name:sideways", "ORDER BY created_at DESC"},
		{"password", "ORDER BY created_at DESC"},
		{"password:asc", "ORDER BY created_at DESC"},
	}
	for _, tt := range tests {
		sql, _, err := buildListQuery(col, ListParams{Page: 1, Limit: 10, Sort: tt.sort})
		if err != nil {
			t.Fatalf("sort %q: unexpected error: %v", tt.sort, err)
		}
		if !strings.Contains(sql, tt.want) {
			t.Errorf("sort %q: expected %q in %s", tt.sort, tt.want, sql)
		}
	}
}

func TestRoomStatusFilterCompilesToCase(t *testing.T) {
	col, ok := defaultCollections()["rooms"]
	if !ok {
		t.Fatal("rooms collection not registered")
	}

	sql, args, err := buildListQuery(col, ListParams{
		Page: 1, Limit: 10,
		Filters: map[string]string{"status": "Available"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "CASE WHEN maintenance") {
		t.Fatalf("expected derived status expression: %s", sql)
	}
	if len(args) != 1 || args[0] != "Available" {
		t.Fatalf("expected status arg, got %v", args)
	}
}

func TestEveryCollectionHasConsistentDescriptor(t *testing.T) {
	for name, col := range defaultCollections() {
		if col.Name != name {
			t.Errorf("%s: registry key and descriptor name differ", name)
		}
		if col.Table == "" || len(col.Columns) == 0 || col.Scan == nil || col.DefaultSort == "" {
			t.Errorf("%s: incomplete descriptor", name)
		}
	}
}
