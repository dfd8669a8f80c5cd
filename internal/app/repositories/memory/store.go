// Package memory provides an in-memory implementation of services.Store.
// It backs the service tests and enforces the same uniqueness and cascade
// rules as the pgx-backed store.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"scholaris/internal/app/models"
	"scholaris/internal/app/services"
)

type state struct {
	users     map[uuid.UUID]*models.User
	userRoles map[uuid.UUID]map[int64]bool

	roles   map[int64]*models.Role
	roleSeq int64

	departments map[int64]*models.Department
	deptSeq     int64

	courses    map[int64]*models.Course
	courseSeq  int64
	enrollment map[int64]map[uuid.UUID]bool

	professors map[uuid.UUID]*models.Professor
	students   map[uuid.UUID]*models.Student

	profiles         map[uuid.UUID]*models.StudentProfile
	profileByStudent map[uuid.UUID]uuid.UUID
}

func newState() *state {
	return &state{
		users:            make(map[uuid.UUID]*models.User),
		userRoles:        make(map[uuid.UUID]map[int64]bool),
		roles:            make(map[int64]*models.Role),
		departments:      make(map[int64]*models.Department),
		courses:          make(map[int64]*models.Course),
		enrollment:       make(map[int64]map[uuid.UUID]bool),
		professors:       make(map[uuid.UUID]*models.Professor),
		students:         make(map[uuid.UUID]*models.Student),
		profiles:         make(map[uuid.UUID]*models.StudentProfile),
		profileByStudent: make(map[uuid.UUID]uuid.UUID),
	}
}

// Store is the in-memory services.Store. The zero value is not usable; use
// NewStore. A transaction-scoped Store carries a nil mutex: the root WithTx
// already holds the lock for the duration of the transaction.
type Store struct {
	mu *sync.Mutex
	st *state
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{mu: &sync.Mutex{}, st: newState()}
}

// lock acquires the store mutex and returns the unlock func. On a
// transaction-scoped store it is a no-op.
func (s *Store) lock() func() {
	if s.mu == nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) Users() services.UserRepository             { return &userRepo{s} }
func (s *Store) Roles() services.RoleRepository             { return &roleRepo{s} }
func (s *Store) Departments() services.DepartmentRepository { return &departmentRepo{s} }
func (s *Store) Courses() services.CourseRepository         { return &courseRepo{s} }
func (s *Store) Professors() services.ProfessorRepository   { return &professorRepo{s} }
func (s *Store) Students() services.StudentRepository       { return &studentRepo{s} }
func (s *Store) Profiles() services.ProfileRepository       { return &profileRepo{s} }

// WithTx runs fn against a transaction-scoped store under the store lock.
// The state is snapshotted first; if fn fails, the snapshot is restored, so
// partial writes never become visible. Nested calls join the enclosing
// transaction.
func (s *Store) WithTx(ctx context.Context, fn func(services.Store) error) error {
	if s.mu == nil {
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(&Store{st: s.st}); err != nil {
		*s.st = *snapshot
		return err
	}
	return nil
}

func (st *state) clone() *state {
	c := newState()
	c.roleSeq = st.roleSeq
	c.deptSeq = st.deptSeq
	c.courseSeq = st.courseSeq

	for id, u := range st.users {
		c.users[id] = cloneUser(u)
	}
	for id, set := range st.userRoles {
		c.userRoles[id] = cloneIDSet(set)
	}
	for id, r := range st.roles {
		cp := *r
		c.roles[id] = &cp
	}
	for id, d := range st.departments {
		cp := *d
		c.departments[id] = &cp
	}
	for id, course := range st.courses {
		c.courses[id] = cloneCourse(course)
	}
	for id, set := range st.enrollment {
		c.enrollment[id] = cloneUUIDSet(set)
	}
	for id, p := range st.professors {
		c.professors[id] = cloneProfessor(p)
	}
	for id, s := range st.students {
		cp := *s
		cp.Courses = nil
		cp.Profile = nil
		c.students[id] = &cp
	}
	for id, p := range st.profiles {
		cp := *p
		c.profiles[id] = &cp
	}
	for sid, pid := range st.profileByStudent {
		c.profileByStudent[sid] = pid
	}
	return c
}

func cloneIDSet(set map[int64]bool) map[int64]bool {
	c := make(map[int64]bool, len(set))
	for k := range set {
		c[k] = true
	}
	return c
}

func cloneUUIDSet(set map[uuid.UUID]bool) map[uuid.UUID]bool {
	c := make(map[uuid.UUID]bool, len(set))
	for k := range set {
		c[k] = true
	}
	return c
}

// cloneUser copies a stored user. Stored users never carry Roles; those are
// resolved from userRoles on read.
func cloneUser(u *models.User) *models.User {
	cp := *u
	cp.Roles = nil
	return &cp
}

func cloneCourse(c *models.Course) *models.Course {
	cp := *c
	cp.Department = nil
	if c.DepartmentID != nil {
		v := *c.DepartmentID
		cp.DepartmentID = &v
	}
	if c.ProfessorID != nil {
		v := *c.ProfessorID
		cp.ProfessorID = &v
	}
	return &cp
}

func cloneProfessor(p *models.Professor) *models.Professor {
	cp := *p
	cp.Department = nil
	cp.Courses = nil
	if p.DepartmentID != nil {
		v := *p.DepartmentID
		cp.DepartmentID = &v
	}
	return &cp
}
