package dto

// CreateLeaveRequest is the payload for POST /leaves. Dates use the
// YYYY-MM-DD layout.
type CreateLeaveRequest struct {
	StudentID int64  `json:"studentId" binding:"required"`
	FromDate  string `json:"fromDate" binding:"required,datetime=2006-01-02"`
	ToDate    string `json:"toDate" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"required"`
}

// DecideLeaveRequest is the payload for PATCH /leaves/{id}/status.
type DecideLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Rejected"`
}
