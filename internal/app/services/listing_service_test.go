package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/app/repositories"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
)

type fakeListingStore struct {
	items  []interface{}
	total  int64
	err    error
	params repositories.ListParams
}

func (f *fakeListingStore) List(_ context.Context, _ string, params repositories.ListParams) ([]interface{}, int64, error) {
	f.params = params
	return f.items, f.total, f.err
}

type fakeResolverStudents struct {
	byID    map[int64]*models.Student
	byEmail map[string]*models.Student
}

func (f *fakeResolverStudents) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeResolverStudents) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	if s, ok := f.byEmail[email]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

type fakeResolverUsers struct {
	byID map[int64]*models.User
}

func (f *fakeResolverUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func newResolver(students *fakeResolverStudents, users *fakeResolverUsers) *IdentityResolver {
	if students == nil {
		students = &fakeResolverStudents{byID: map[int64]*models.Student{}, byEmail: map[string]*models.Student{}}
	}
	if users == nil {
		users = &fakeResolverUsers{byID: map[int64]*models.User{}}
	}
	return NewIdentityResolver(students, users)
}

func TestListPaginationMeta(t *testing.T) {
	store := &fakeListingStore{
		items: []interface{}{&models.Notice{ID: 1}, &models.Notice{ID: 2}},
		total: 42,
	}
	svc := NewListingService(store, newResolver(nil, nil))

	resp, err := svc.List(context.Background(), "notices", repositories.ListParams{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Meta.Total != 42 || resp.Meta.Page != 2 || resp.Meta.Limit != 10 {
		t.Fatalf("unexpected meta: %+v", resp.Meta)
	}
	if resp.Meta.TotalPages != 5 {
		t.Fatalf("expected 5 total pages, got %d", resp.Meta.TotalPages)
	}
}

func TestListEmptyPage(t *testing.T) {
	store := &fakeListingStore{total: 0}
	svc := NewListingService(store, newResolver(nil, nil))

	resp, err := svc.List(context.Background(), "notices", repositories.ListParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, ok := resp.Data.([]interface{})
	if !ok || len(data) != 0 {
		t.Fatalf("expected empty data slice, got %#v", resp.Data)
	}
	if resp.Meta.TotalPages != 0 {
		t.Fatalf("expected 0 total pages, got %d", resp.Meta.TotalPages)
	}
}

func TestListResolvesDirectStudentReference(t *testing.T) {
	room, block := "101", "A"
	students := &fakeResolverStudents{
		byID: map[int64]*models.Student{
			5: {ID: 5, Name: "Ada", Email: "ada@hostel.edu", Room: &room, Block: &block},
		},
		byEmail: map[string]*models.Student{},
	}
	store := &fakeListingStore{
		items: []interface{}{&models.Leave{ID: 1, StudentID: 5, Status: models.LeavePending}},
		total: 1,
	}
	svc := NewListingService(store, newResolver(students, nil))

	resp, err := svc.List(context.Background(), "leaves", repositories.ListParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leave := resp.Data.([]interface{})[0].(*models.Leave)
	if leave.Student == nil || leave.Student.Name != "Ada" {
		t.Fatalf("expected resolved student, got %+v", leave.Student)
	}
	if leave.Student.Room == nil || *leave.Student.Room != "101" {
		t.Fatalf("expected room on summary, got %+v", leave.Student)
	}
}

func TestListResolvesAccountReferenceViaEmail(t *testing.T) {
	students := &fakeResolverStudents{
		byID: map[int64]*models.Student{},
		byEmail: map[string]*models.Student{
			"bo@hostel.edu": {ID: 7, Name: "Bo", Email: "bo@hostel.edu"},
		},
	}
	users := &fakeResolverUsers{byID: map[int64]*models.User{
		99: {ID: 99, Name: "Bo Account", Email: "bo@hostel.edu"},
	}}
	store := &fakeListingStore{
		items: []interface{}{&models.Complaint{ID: 1, StudentID: 99}},
		total: 1,
	}
	svc := NewListingService(store, newResolver(students, users))

	resp, err := svc.List(context.Background(), "complaints", repositories.ListParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	complaint := resp.Data.([]interface{})[0].(*models.Complaint)
	if complaint.Student == nil || complaint.Student.ID != 7 {
		t.Fatalf("expected resolution to profile 7, got %+v", complaint.Student)
	}
}

func TestListAccountWithoutProfileFallsBack(t *testing.T) {
	users := &fakeResolverUsers{byID: map[int64]*models.User{
		99: {ID: 99, Name: "Orphan Account", Email: "orphan@hostel.edu"},
	}}
	store := &fakeListingStore{
		items: []interface{}{&models.Leave{ID: 1, StudentID: 99}},
		total: 1,
	}
	svc := NewListingService(store, newResolver(nil, users))

	resp, err := svc.List(context.Background(), "leaves", repositories.ListParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leave := resp.Data.([]interface{})[0].(*models.Leave)
	if leave.Student == nil || leave.Student.Name != "Orphan Account" {
		t.Fatalf("expected account fallback summary, got %+v", leave.Student)
	}
	if leave.Student.Room != nil {
		t.Fatalf("account fallback must not carry a room, got %v", *leave.Student.Room)
	}
}

func TestListDanglingReferenceYieldsNullStudent(t *testing.T) {
	store := &fakeListingStore{
		items: []interface{}{&models.Leave{ID: 1, StudentID: 12345}},
		total: 1,
	}
	svc := NewListingService(store, newResolver(nil, nil))

	resp, err := svc.List(context.Background(), "leaves", repositories.ListParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leave := resp.Data.([]interface{})[0].(*models.Leave)
	if leave.Student != nil {
		t.Fatalf("expected nil student for dangling reference, got %+v", leave.Student)
	}
}

func TestListDerivesRoomStatus(t *testing.T) {
	store := &fakeListingStore{
		items: []interface{}{&models.Room{ID: 1, Number: "101", Block: "A", Capacity: 2, Occupied: 2}},
		total: 1,
	}
	svc := NewListingService(store, newResolver(nil, nil))

	resp, err := svc.List(context.Background(), "rooms", repositories.ListParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	room := resp.Data.([]interface{})[0].(dto.RoomResponse)
	if room.Status != models.RoomStatusFull {
		t.Fatalf("expected Full, got %s", room.Status)
	}
}

func TestListPropagatesStoreError(t *testing.T) {
	store := &fakeListingStore{err: apperrors.ErrUnknownCollection}
	svc := NewListingService(store, newResolver(nil, nil))

	_, err := svc.List(context.Background(), "nope", repositories.ListParams{Page: 1, Limit: 10})
	if !errors.Is(err, apperrors.ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}
}
