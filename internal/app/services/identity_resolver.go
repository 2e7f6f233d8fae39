package services

import (
	"context"
	"errors"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

// resolverStudentStore reads resident profiles for reference resolution.
type resolverStudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
}

// resolverUserStore reads login accounts for reference resolution.
type resolverUserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// IdentityResolver resolves a studentId reference to a resident summary.
// Historical records may carry the id of a login account instead of a
// profile; the resolver chases the account's email back to the profile,
// and falls back to the account's own details when no profile shares it.
// Resolution is strictly read-only: stored references are never rewritten.
type IdentityResolver struct {
	students resolverStudentStore
	users    resolverUserStore
}

// NewIdentityResolver creates a new IdentityResolver
func NewIdentityResolver(students resolverStudentStore, users resolverUserStore) *IdentityResolver {
	return &IdentityResolver{
		students: students,
		users:    users,
	}
}

// Resolve maps a studentId reference to a summary. An unresolvable
// reference yields (nil, nil) so listings degrade to a null student
// instead of failing the whole page. Storage errors still propagate.
func (r *IdentityResolver) Resolve(ctx context.Context, studentID int64) (*models.StudentSummary, error) {
	student, err := r.students.GetByID(ctx, studentID)
	if err == nil {
		return summarize(student), nil
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	user, err := r.users.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Debug().Int64("student_id", studentID).Msg("Dangling student reference")
			return nil, nil
		}
		return nil, err
	}

	student, err = r.students.GetByEmail(ctx, user.Email)
	if err == nil {
		return summarize(student), nil
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	// Account exists but no profile shares its email; surface what the
	// account knows.
	return &models.StudentSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func summarize(student *models.Student) *models.StudentSummary {
	return &models.StudentSummary{
		ID:    student.ID,
		Name:  student.Name,
		Email: student.Email,
		Phone: student.Phone,
		Room:  student.Room,
		Block: student.Block,
	}
}
