package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"scholaris/internal/app/services"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool and pgx.Tx. Every
// repository runs its queries through it, so the same repository code serves
// both pooled and transaction-scoped stores.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles the per-entity repositories over a single DBTX and
// implements services.Store. pool is nil on transaction-scoped instances.
type Repositories struct {
	pool *pgxpool.Pool

	users       *UserRepository
	roles       *RoleRepository
	departments *DepartmentRepository
	courses     *CourseRepository
	professors  *ProfessorRepository
	students    *StudentRepository
	profiles    *ProfileRepository
}

// NewRepositories creates the pgx-backed store over a connection pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	r := newRepositories(pool)
	r.pool = pool
	return r
}

func newRepositories(db DBTX) *Repositories {
	return &Repositories{
		users:       NewUserRepository(db),
		roles:       NewRoleRepository(db),
		departments: NewDepartmentRepository(db),
		courses:     NewCourseRepository(db),
		professors:  NewProfessorRepository(db),
		students:    NewStudentRepository(db),
		profiles:    NewProfileRepository(db),
	}
}

func (r *Repositories) Users() services.UserRepository             { return r.users }
func (r *Repositories) Roles() services.RoleRepository             { return r.roles }
func (r *Repositories) Departments() services.DepartmentRepository { return r.departments }
func (r *Repositories) Courses() services.CourseRepository         { return r.courses }
func (r *Repositories) Professors() services.ProfessorRepository   { return r.professors }
func (r *Repositories) Students() services.StudentRepository       { return r.students }
func (r *Repositories) Profiles() services.ProfileRepository       { return r.profiles }

// WithTx runs fn against a transaction-scoped store and commits if fn
// returns nil. On a transaction-scoped instance it runs fn directly, so
// nested calls join the enclosing transaction.
func (r *Repositories) WithTx(ctx context.Context, fn func(services.Store) error) error {
	if r.pool == nil {
		return fn(r)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(newRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}
