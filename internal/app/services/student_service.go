package services

import (
	"context"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/models/dto"
)

// StudentService defines the interface for resident profile operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
}

// studentStore is the slice of the student repository profile CRUD needs.
type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	students studentStore
}

// NewStudentService creates a new StudentService
func NewStudentService(students studentStore) StudentService {
	return &studentServiceImpl{students: students}
}

// CreateStudent registers a new resident profile without a room
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Course: req.Course,
		Year:   req.Year,
		Status: models.StudentActive,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudentByID retrieves a resident profile
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// UpdateStudent edits profile fields. Email and room assignment are not
// editable here; email is the identity link to login accounts and rooms
// belong to the allocation engine.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Name = req.Name
	student.Phone = req.Phone
	student.Course = req.Course
	student.Year = req.Year
	if req.Status != "" {
		student.Status = models.StudentStatus(req.Status)
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}
