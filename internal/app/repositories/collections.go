package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/yigit/hostelhub/internal/app/models"
)

// roomStatusExpr derives the presented room status in SQL so it can be
// filtered on even though only the maintenance flag is stored.
const roomStatusExpr = `(CASE WHEN maintenance THEN 'Maintenance' WHEN occupied >= capacity THEN 'Full' ELSE 'Available' END)`

// defaultCollections registers every listable table. Filter keys use the
// JSON field names clients see, mapped to the SQL they compile to.
func defaultCollections() map[string]*Collection {
	collections := []*Collection{
		{
			Name:          "students",
			Table:         "students",
			Columns:       []string{"id", "name", "email", "phone", "course", "year", "room", "block", "status", "created_at", "updated_at"},
			SearchColumns: []string{"name", "email", "phone", "course"},
			FilterColumns: map[string]string{
				"status": "status",
				"block":  "block",
				"room":   "room",
				"year":   "year",
				"course": "course",
			},
			SortColumns: map[string]string{
				"name":      "name",
				"year":      "year",
				"room":      "room",
				"block":     "block",
				"createdAt": "created_at",
			},
			DefaultSort: "created_at DESC",
			Scan:        scanStudentRow,
		},
		{
			Name:          "rooms",
			Table:         "rooms",
			Columns:       []string{"id", "number", "block", "capacity", "occupied", "maintenance", "created_at", "updated_at"},
			SearchColumns: []string{"number", "block"},
			FilterColumns: map[string]string{
				"block":  "block",
				"number": "number",
				"status": roomStatusExpr,
			},
			SortColumns: map[string]string{
				"number":    "number",
				"block":     "block",
				"capacity":  "capacity",
				"occupied":  "occupied",
				"createdAt": "created_at",
			},
			DefaultSort: "id ASC",
			Scan:        scanRoomRow,
		},
		{
			Name:          "leaves",
			Table:         "leaves",
			Columns:       []string{"id", "student_id", "from_date", "to_date", "reason", "status", "checkout_date", "checkin_date", "created_at", "updated_at"},
			SearchColumns: []string{"reason"},
			FilterColumns: map[string]string{
				"status":    "status",
				"studentId": "student_id",
			},
			SortColumns: map[string]string{
				"fromDate":  "from_date",
				"toDate":    "to_date",
				"status":    "status",
				"createdAt": "created_at",
			},
			DefaultSort: "created_at DESC",
			Scan:        scanLeaveRow,
		},
		{
			Name:          "complaints",
			Table:         "complaints",
			Columns:       []string{"id", "student_id", "category", "title", "description", "status", "created_at", "updated_at"},
			SearchColumns: []string{"title", "description", "category"},
			FilterColumns: map[string]string{
				"status":    "status",
				"category":  "category",
				"studentId": "student_id",
			},
			SortColumns: map[string]string{
				"status":    "status",
				"category":  "category",
				"createdAt": "created_at",
			},
			DefaultSort: "created_at DESC",
			Scan:        scanComplaintRow,
		},
		{
			Name:          "notices",
			Table:         "notices",
			Columns:       []string{"id", "title", "body", "audience", "posted_by", "created_at", "updated_at"},
			SearchColumns: []string{"title", "body"},
			FilterColumns: map[string]string{
				"audience": "audience",
				"postedBy": "posted_by",
			},
			SortColumns: map[string]string{
				"title":     "title",
				"createdAt": "created_at",
			},
			DefaultSort: "created_at DESC",
			Scan:        scanNoticeRow,
		},
	}

	registry := make(map[string]*Collection, len(collections))
	for _, c := range collections {
		registry[c.Name] = c
	}
	return registry
}

func scanStudentRow(rows pgx.Rows, total *int64) (interface{}, error) {
	var s models.Student
	err := rows.Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Course, &s.Year,
		&s.Room, &s.Block, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		total,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanRoomRow(rows pgx.Rows, total *int64) (interface{}, error) {
	var r models.Room
	err := rows.Scan(
		&r.ID, &r.Number, &r.Block, &r.Capacity, &r.Occupied, &r.Maintenance,
		&r.CreatedAt, &r.UpdatedAt,
		total,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanLeaveRow(rows pgx.Rows, total *int64) (interface{}, error) {
	var l models.Leave
	err := rows.Scan(
		&l.ID, &l.StudentID, &l.FromDate, &l.ToDate, &l.Reason, &l.Status,
		&l.CheckoutDate, &l.CheckinDate, &l.CreatedAt, &l.UpdatedAt,
		total,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanComplaintRow(rows pgx.Rows, total *int64) (interface{}, error) {
	var c models.Complaint
	err := rows.Scan(
		&c.ID, &c.StudentID, &c.Category, &c.Title, &c.Description, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
		total,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanNoticeRow(rows pgx.Rows, total *int64) (interface{}, error) {
	var n models.Notice
	err := rows.Scan(
		&n.ID, &n.Title, &n.Body, &n.Audience, &n.PostedBy,
		&n.CreatedAt, &n.UpdatedAt,
		total,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
