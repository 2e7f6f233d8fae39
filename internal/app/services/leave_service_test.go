package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
)

// fakeLeaveStore mirrors the status-guarded update semantics of the SQL
// implementation.
type fakeLeaveStore struct {
	mu     sync.Mutex
	nextID int64
	leaves map[int64]*models.Leave
}

func newFakeLeaveStore() *fakeLeaveStore {
	return &fakeLeaveStore{nextID: 1, leaves: map[int64]*models.Leave{}}
}

func (f *fakeLeaveStore) Create(_ context.Context, leave *models.Leave) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	leave.ID = f.nextID
	f.nextID++
	leave.CreatedAt = time.Now()
	leave.UpdatedAt = leave.CreatedAt
	copied := *leave
	f.leaves[leave.ID] = &copied
	return nil
}

func (f *fakeLeaveStore) GetByID(_ context.Context, id int64) (*models.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.leaves[id]
	if !ok {
		return nil, apperrors.ErrLeaveNotFound
	}
	copied := *l
	return &copied, nil
}

func (f *fakeLeaveStore) UpdateStatusIf(_ context.Context, id int64, from, to models.LeaveStatus) (*models.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.leaves[id]
	if !ok {
		return nil, apperrors.ErrLeaveNotFound
	}
	if l.Status != from {
		return nil, apperrors.ErrInvalidTransition
	}
	l.Status = to
	now := time.Now()
	switch to {
	case models.LeaveCheckedOut:
		l.CheckoutDate = &now
	case models.LeaveCompleted:
		l.CheckinDate = &now
	}
	l.UpdatedAt = now
	copied := *l
	return &copied, nil
}

type fakeLeaveStudents struct {
	ids map[int64]bool
}

func (f *fakeLeaveStudents) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if !f.ids[id] {
		return nil, apperrors.ErrStudentNotFound
	}
	return &models.Student{ID: id}, nil
}

func newLeaveFixture(studentIDs ...int64) (LeaveService, *fakeLeaveStore) {
	store := newFakeLeaveStore()
	students := &fakeLeaveStudents{ids: map[int64]bool{}}
	for _, id := range studentIDs {
		students.ids[id] = true
	}
	return NewLeaveService(store, students, nil), store
}

func createPendingLeave(t *testing.T, svc LeaveService) *models.Leave {
	t.Helper()
	leave, err := svc.CreateLeave(context.Background(), &dto.CreateLeaveRequest{
		StudentID: 1,
		FromDate:  "2026-09-01",
		ToDate:    "2026-09-05",
		Reason:    "family visit",
	})
	if err != nil {
		t.Fatalf("failed to create leave: %v", err)
	}
	return leave
}

func TestCreateLeave(t *testing.T) {
	svc, _ := newLeaveFixture(1)

	leave := createPendingLeave(t, svc)
	if leave.Status != models.LeavePending {
		t.Fatalf("expected Pending, got %s", leave.Status)
	}
	if leave.ID == 0 {
		t.Fatal("expected assigned id")
	}
}

func TestCreateLeaveInvalidDateRange(t *testing.T) {
	svc, _ := newLeaveFixture(1)

	_, err := svc.CreateLeave(context.Background(), &dto.CreateLeaveRequest{
		StudentID: 1,
		FromDate:  "2026-09-05",
		ToDate:    "2026-09-01",
		Reason:    "backwards",
	})
	if !errors.Is(err, apperrors.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestCreateLeaveUnknownStudent(t *testing.T) {
	svc, _ := newLeaveFixture()

	_, err := svc.CreateLeave(context.Background(), &dto.CreateLeaveRequest{
		StudentID: 9,
		FromDate:  "2026-09-01",
		ToDate:    "2026-09-05",
		Reason:    "nobody",
	})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestDecideLeave(t *testing.T) {
	svc, _ := newLeaveFixture(1)
	leave := createPendingLeave(t, svc)

	decided, err := svc.DecideLeave(context.Background(), leave.ID, models.LeaveApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decided.Status != models.LeaveApproved {
		t.Fatalf("expected Approved, got %s", decided.Status)
	}

	// A second decision on the same leave must conflict.
	_, err = svc.DecideLeave(context.Background(), leave.ID, models.LeaveRejected)
	if !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestDecideLeaveRejectsNonDecisionStatus(t *testing.T) {
	svc, _ := newLeaveFixture(1)
	leave := createPendingLeave(t, svc)

	_, err := svc.DecideLeave(context.Background(), leave.ID, models.LeaveCompleted)
	if !errors.Is(err, apperrors.ErrInvalidLeaveStatus) {
		t.Fatalf("expected ErrInvalidLeaveStatus, got %v", err)
	}
}

func TestDecideLeaveNotFound(t *testing.T) {
	svc, _ := newLeaveFixture(1)

	_, err := svc.DecideLeave(context.Background(), 404, models.LeaveApproved)
	if !errors.Is(err, apperrors.ErrLeaveNotFound) {
		t.Fatalf("expected ErrLeaveNotFound, got %v", err)
	}
}

func TestLeaveFullLifecycle(t *testing.T) {
	svc, _ := newLeaveFixture(1)
	leave := createPendingLeave(t, svc)

	if _, err := svc.DecideLeave(context.Background(), leave.ID, models.LeaveApproved); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	out, err := svc.CheckoutLeave(context.Background(), leave.ID)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if out.Status != models.LeaveCheckedOut || out.CheckoutDate == nil {
		t.Fatalf("expected CheckedOut with timestamp, got %+v", out)
	}

	in, err := svc.CheckinLeave(context.Background(), leave.ID)
	if err != nil {
		t.Fatalf("checkin failed: %v", err)
	}
	if in.Status != models.LeaveCompleted || in.CheckinDate == nil {
		t.Fatalf("expected Completed with timestamp, got %+v", in)
	}

	// Completed is terminal.
	if _, err := svc.CheckoutLeave(context.Background(), leave.ID); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition after completion, got %v", err)
	}
}

func TestCheckoutRequiresApproval(t *testing.T) {
	svc, _ := newLeaveFixture(1)
	leave := createPendingLeave(t, svc)

	_, err := svc.CheckoutLeave(context.Background(), leave.ID)
	if !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestConcurrentDecisionsOnlyOneWins(t *testing.T) {
	svc, store := newLeaveFixture(1)
	leave := createPendingLeave(t, svc)

	const deciders = 8
	var wg sync.WaitGroup
	results := make(chan error, deciders)
	for i := 0; i < deciders; i++ {
		decision := models.LeaveApproved
		if i%2 == 1 {
			decision = models.LeaveRejected
		}
		wg.Add(1)
		go func(d models.LeaveStatus) {
			defer wg.Done()
			_, err := svc.DecideLeave(context.Background(), leave.ID, d)
			results <- err
		}(decision)
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, apperrors.ErrInvalidTransition):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winning decision, got %d", wins)
	}
	if conflicts != deciders-1 {
		t.Fatalf("expected %d conflicts, got %d", deciders-1, conflicts)
	}

	final, _ := store.GetByID(context.Background(), leave.ID)
	if final.Status != models.LeaveApproved && final.Status != models.LeaveRejected {
		t.Fatalf("expected a decided status, got %s", final.Status)
	}
}
