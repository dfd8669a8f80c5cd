package services

import (
	"context"

	"github.com/google/uuid"

	"scholaris/internal/app/models"
)

// Store is the persistence collaborator consumed by the services. Two
// implementations exist: the pgx-backed one in internal/app/repositories and
// the in-memory one in internal/app/repositories/memory.
//
// WithTx runs fn against a transaction-scoped store: either every write
// inside fn commits, or none do. Repository lookups return (nil, nil) when
// no row matches; the services decide which absence is an error.
type Store interface {
	Users() UserRepository
	Roles() RoleRepository
	Departments() DepartmentRepository
	Courses() CourseRepository
	Professors() ProfessorRepository
	Students() StudentRepository
	Profiles() ProfileRepository

	WithTx(ctx context.Context, fn func(Store) error) error
}

// UserRepository handles persistence for users and their role memberships.
// AssignRole and RemoveRole have set semantics: assigning an already-present
// role or removing an absent one is a no-op.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindPage(ctx context.Context, offset uint64, limit int) ([]*models.User, int64, error)
	AssignRole(ctx context.Context, userID uuid.UUID, roleID int64) error
	RemoveRole(ctx context.Context, userID uuid.UUID, roleID int64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoleRepository handles persistence for roles. DeleteByName detaches the
// role from every user's membership set as part of the same delete.
type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	GetByName(ctx context.Context, name string) (*models.Role, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context) ([]*models.Role, error)
	DeleteByName(ctx context.Context, name string) error
}

// DepartmentRepository handles persistence for departments
type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context) ([]*models.Department, error)
}

// CourseRepository handles persistence for courses and the enrollment join
// table (the owning side of the course-student association). LinkStudent is
// the single place both sides of the relationship are connected.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByTitle(ctx context.Context, title string) (*models.Course, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindPage(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error)
	LinkStudent(ctx context.Context, courseID int64, studentID uuid.UUID) error
	Delete(ctx context.Context, id int64) error
}

// ProfessorRepository handles persistence for professors. Deleting a
// professor detaches their courses (professor reference cleared) without
// deleting them.
type ProfessorRepository interface {
	Create(ctx context.Context, professor *models.Professor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Professor, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindPage(ctx context.Context, offset uint64, limit int) ([]*models.Professor, int64, error)
	Update(ctx context.Context, professor *models.Professor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StudentRepository handles persistence for students. Deleting a student
// severs its enrollment rows and profile.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindPage(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileRepository handles persistence for student profiles
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.StudentProfile) error
	GetByStudentID(ctx context.Context, studentID uuid.UUID) (*models.StudentProfile, error)
	ExistsByStudentID(ctx context.Context, studentID uuid.UUID) (bool, error)
}
