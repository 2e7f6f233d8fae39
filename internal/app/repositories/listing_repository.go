package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/helpers"
)

// ListParams carries the query surface shared by every collection
// listing: pagination, free-text search, sorting, and exact-match filters.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	// Sort is a whitelisted "field:direction" pair; a bare field sorts
	// ascending and a '-' prefix is accepted as shorthand for descending.
	Sort    string
	Filters map[string]string
}

// Collection describes one listable table: which columns come back, which
// are searchable, which exact-match filters and sort fields are allowed,
// and how a row scans into a model. Filter and sort values are SQL
// expressions so derived fields (like room status) can participate.
type Collection struct {
	Name          string
	Table         string
	Columns       []string
	SearchColumns []string
	FilterColumns map[string]string
	SortColumns   map[string]string
	DefaultSort   string
	Scan          func(rows pgx.Rows, total *int64) (interface{}, error)
}

// ListingRepository executes descriptor-driven listing queries. One
// implementation serves every registered collection.
type ListingRepository struct {
	db          *pgxpool.Pool
	timeout     time.Duration
	collections map[string]*Collection
}

// NewListingRepository creates a listing repository with the default
// collection registry.
func NewListingRepository(db *pgxpool.Pool, timeout time.Duration) *ListingRepository {
	return &ListingRepository{
		db:          db,
		timeout:     timeout,
		collections: defaultCollections(),
	}
}

// Collection returns the descriptor registered under name.
func (r *ListingRepository) Collection(name string) (*Collection, error) {
	col, ok := r.collections[name]
	if !ok {
		return nil, apperrors.ErrUnknownCollection
	}
	return col, nil
}

// List runs the filtered, sorted, paginated query for a collection and
// returns the page of models together with the unpaginated total.
func (r *ListingRepository) List(ctx context.Context, name string, params ListParams) ([]interface{}, int64, error) {
	col, err := r.Collection(name)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := boundCtx(ctx, r.timeout)
	defer cancel()

	sql, args, err := buildListQuery(col, params)
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var items []interface{}
	var total int64

	for rows.Next() {
		item, err := col.Scan(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// buildListQuery assembles the squirrel query for a collection. The total
// rides along as a COUNT(*) OVER() window column so one round trip serves
// both the page and the pagination meta.
func buildListQuery(col *Collection, params ListParams) (string, []interface{}, error) {
	query := squirrel.Select(col.Columns...).
		Column("COUNT(*) OVER()").
		From(col.Table).
		PlaceholderFormat(squirrel.Dollar)

	// Free-text search ORs an ILIKE over every searchable column
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		or := squirrel.Or{}
		for _, c := range col.SearchColumns {
			or = append(or, squirrel.ILike{c: pattern})
		}
		if len(or) > 0 {
			query = query.Where(or)
		}
	}

	// Exact-match filters. Keys outside the whitelist and empty values
	// are dropped silently so stale dashboard parameters never fail a
	// listing.
	for param, value := range params.Filters {
		expr, ok := col.FilterColumns[param]
		if !ok || value == "" {
			continue
		}
		// Filter values arrive as query-string text; compare as text so
		// numeric columns do not need per-filter type plumbing.
		query = query.Where(expr+"::text = ?", value)
	}

	query = query.OrderBy(orderClause(col, params.Sort))

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	query = query.Limit(uint64(limit)).Offset(offset)

	return query.ToSql()
}

// orderClause resolves a "field:direction" sort against the collection
// whitelist, falling back to the default order for unknown fields or
// directions. The "-field" shorthand means descending.
func orderClause(col *Collection, sort string) string {
	field, dir, paired := strings.Cut(sort, ":")
	switch {
	case paired:
		switch strings.ToLower(dir) {
		case "asc":
			dir = "ASC"
		case "desc":
			dir = "DESC"
		default:
			return col.DefaultSort
		}
	case strings.HasPrefix(field, "-"):
		field = strings.TrimPrefix(field, "-")
		dir = "DESC"
	default:
		dir = "ASC"
	}
	expr, ok := col.SortColumns[field]
	if !ok {
		return col.DefaultSort
	}
	return expr + " " + dir
}
