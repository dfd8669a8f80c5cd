package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"scholaris/internal/app/models"
	"scholaris/internal/pkg/apperrors"
)

func pageBounds(total int, offset uint64, limit int) (int, int) {
	start := int(offset)
	if start > total {
		start = total
	}
	end := start + limit
	if limit < 0 || end > total {
		end = total
	}
	return start, end
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	defer r.s.lock()()

	for _, existing := range r.s.st.users {
		if existing.Username == user.Username {
			return apperrors.NewDuplicateEntityError("User with this username already exists")
		}
	}
	r.s.st.users[user.ID] = cloneUser(user)
	r.s.st.userRoles[user.ID] = make(map[int64]bool)
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	defer r.s.lock()()

	user, ok := r.s.st.users[id]
	if !ok {
		return nil, nil
	}
	return r.withRoles(user), nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	defer r.s.lock()()

	for _, user := range r.s.st.users {
		if user.Username == username {
			return r.withRoles(user), nil
		}
	}
	return nil, nil
}

func (r *userRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	defer r.s.lock()()

	_, ok := r.s.st.users[id]
	return ok, nil
}

func (r *userRepo) FindPage(ctx context.Context, offset uint64, limit int) ([]*models.User, int64, error) {
	defer r.s.lock()()

	all := make([]*models.User, 0, len(r.s.st.users))
	for _, user := range r.s.st.users {
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Username < all[j].Username })

	start, end := pageBounds(len(all), offset, limit)
	users := make([]*models.User, 0, end-start)
	for _, user := range all[start:end] {
		users = append(users, r.withRoles(user))
	}
	return users, int64(len(all)), nil
}

func (r *userRepo) AssignRole(ctx context.Context, userID uuid.UUID, roleID int64) error {
	defer r.s.lock()()

	set, ok := r.s.st.userRoles[userID]
	if !ok {
		set = make(map[int64]bool)
		r.s.st.userRoles[userID] = set
	}
	set[roleID] = true
	return nil
}

func (r *userRepo) RemoveRole(ctx context.Context, userID uuid.UUID, roleID int64) error {
	defer r.s.lock()()

	delete(r.s.st.userRoles[userID], roleID)
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.lock()()

	delete(r.s.st.users, id)
	delete(r.s.st.userRoles, id)
	return nil
}

func (r *userRepo) withRoles(user *models.User) *models.User {
	cp := cloneUser(user)
	for roleID := range r.s.st.userRoles[user.ID] {
		if role, ok := r.s.st.roles[roleID]; ok {
			cp.Roles = append(cp.Roles, *role)
		}
	}
	sort.Slice(cp.Roles, func(i, j int) bool { return cp.Roles[i].Name < cp.Roles[j].Name })
	return cp
}

type roleRepo struct{ s *Store }

func (r *roleRepo) Create(ctx context.Context, role *models.Role) error {
	defer r.s.lock()()

	for _, existing := range r.s.st.roles {
		if existing.Name == role.Name {
			return apperrors.NewDuplicateEntityError(fmt.Sprintf("Role with name %s already exists", role.Name))
		}
	}
	r.s.st.roleSeq++
	role.ID = r.s.st.roleSeq
	cp := *role
	r.s.st.roles[role.ID] = &cp
	return nil
}

func (r *roleRepo) GetByName(ctx context.Context, name string) (*models.Role, error) {
	defer r.s.lock()()

	for _, role := range r.s.st.roles {
		if role.Name == name {
			cp := *role
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *roleRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	defer r.s.lock()()

	for _, role := range r.s.st.roles {
		if role.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *roleRepo) FindAll(ctx context.Context) ([]*models.Role, error) {
	defer r.s.lock()()

	roles := make([]*models.Role, 0, len(r.s.st.roles))
	for _, role := range r.s.st.roles {
		cp := *role
		roles = append(roles, &cp)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}

func (r *roleRepo) DeleteByName(ctx context.Context, name string) error {
	defer r.s.lock()()

	for id, role := range r.s.st.roles {
		if role.Name == name {
			delete(r.s.st.roles, id)
			for _, set := range r.s.st.userRoles {
				delete(set, id)
			}
			return nil
		}
	}
	return nil
}

type departmentRepo struct{ s *Store }

func (r *departmentRepo) Create(ctx context.Context, department *models.Department) error {
	defer r.s.lock()()

	for _, existing := range r.s.st.departments {
		if existing.Name == department.Name {
			return apperrors.NewDuplicateEntityError("Department with this name already exists")
		}
	}
	r.s.st.deptSeq++
	department.ID = r.s.st.deptSeq
	cp := *department
	r.s.st.departments[department.ID] = &cp
	return nil
}

func (r *departmentRepo) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	defer r.s.lock()()

	department, ok := r.s.st.departments[id]
	if !ok {
		return nil, nil
	}
	cp := *department
	return &cp, nil
}

func (r *departmentRepo) GetByName(ctx context.Context, name string) (*models.Department, error) {
	defer r.s.lock()()

	for _, department := range r.s.st.departments {
		if department.Name == name {
			cp := *department
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *departmentRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	defer r.s.lock()()

	for _, department := range r.s.st.departments {
		if department.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *departmentRepo) FindAll(ctx context.Context) ([]*models.Department, error) {
	defer r.s.lock()()

	departments := make([]*models.Department, 0, len(r.s.st.departments))
	for _, department := range r.s.st.departments {
		cp := *department
		departments = append(departments, &cp)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].Name < departments[j].Name })
	return departments, nil
}

type courseRepo struct{ s *Store }

func (r *courseRepo) Create(ctx context.Context, course *models.Course) error {
	defer r.s.lock()()

	for _, existing := range r.s.st.courses {
		if existing.Title == course.Title {
			return apperrors.NewDuplicateEntityError("Course with this title already exists")
		}
	}
	r.s.st.courseSeq++
	course.ID = r.s.st.courseSeq
	r.s.st.courses[course.ID] = cloneCourse(course)
	r.s.st.enrollment[course.ID] = make(map[uuid.UUID]bool)
	return nil
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	defer r.s.lock()()

	course, ok := r.s.st.courses[id]
	if !ok {
		return nil, nil
	}
	return cloneCourse(course), nil
}

func (r *courseRepo) GetByTitle(ctx context.Context, title string) (*models.Course, error) {
	defer r.s.lock()()

	for _, course := range r.s.st.courses {
		if course.Title == title {
			return cloneCourse(course), nil
		}
	}
	return nil, nil
}

func (r *courseRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	defer r.s.lock()()

	_, ok := r.s.st.courses[id]
	return ok, nil
}

func (r *courseRepo) FindPage(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error) {
	defer r.s.lock()()

	all := make([]*models.Course, 0, len(r.s.st.courses))
	for _, course := range r.s.st.courses {
		all = append(all, course)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	start, end := pageBounds(len(all), offset, limit)
	courses := make([]*models.Course, 0, end-start)
	for _, course := range all[start:end] {
		courses = append(courses, cloneCourse(course))
	}
	return courses, int64(len(all)), nil
}

func (r *courseRepo) LinkStudent(ctx context.Context, courseID int64, studentID uuid.UUID) error {
	defer r.s.lock()()

	set, ok := r.s.st.enrollment[courseID]
	if !ok {
		set = make(map[uuid.UUID]bool)
		r.s.st.enrollment[courseID] = set
	}
	set[studentID] = true
	return nil
}

func (r *courseRepo) Delete(ctx context.Context, id int64) error {
	defer r.s.lock()()

	delete(r.s.st.courses, id)
	delete(r.s.st.enrollment, id)
	return nil
}

type professorRepo struct{ s *Store }

func (r *professorRepo) Create(ctx context.Context, professor *models.Professor) error {
	defer r.s.lock()()

	for _, existing := range r.s.st.professors {
		if existing.Email == professor.Email || existing.PhoneNumber == professor.PhoneNumber {
			return apperrors.NewDuplicateEntityError("Professor with this email or phone number already exists")
		}
	}
	r.s.st.professors[professor.ID] = cloneProfessor(professor)
	return nil
}

func (r *professorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Professor, error) {
	defer r.s.lock()()

	professor, ok := r.s.st.professors[id]
	if !ok {
		return nil, nil
	}
	return r.withRelations(professor), nil
}

func (r *professorRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	defer r.s.lock()()

	_, ok := r.s.st.professors[id]
	return ok, nil
}

func (r *professorRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	defer r.s.lock()()

	for _, professor := range r.s.st.professors {
		if professor.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *professorRepo) FindPage(ctx context.Context, offset uint64, limit int) ([]*models.Professor, int64, error) {
	defer r.s.lock()()

	all := make([]*models.Professor, 0, len(r.s.st.professors))
	for _, professor := range r.s.st.professors {
		all = append(all, professor)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].LastName != all[j].LastName {
			return all[i].LastName < all[j].LastName
		}
		return all[i].FirstName < all[j].FirstName
	})

	start, end := pageBounds(len(all), offset, limit)
	professors := make([]*models.Professor, 0, end-start)
	for _, professor := range all[start:end] {
		professors = append(professors, r.withRelations(professor))
	}
	return professors, int64(len(all)), nil
}

func (r *professorRepo) Update(ctx context.Context, professor *models.Professor) error {
	defer r.s.lock()()

	if _, ok := r.s.st.professors[professor.ID]; !ok {
		return apperrors.NewResourceNotFoundError("Professor not found")
	}
	for id, existing := range r.s.st.professors {
		if id == professor.ID {
			continue
		}
		if existing.Email == professor.Email || existing.PhoneNumber == professor.PhoneNumber {
			return apperrors.NewDuplicateEntityError("Professor with this email or phone number already exists")
		}
	}
	r.s.st.professors[professor.ID] = cloneProfessor(professor)
	return nil
}

func (r *professorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.lock()()

	for _, course := range r.s.st.courses {
		if course.ProfessorID != nil && *course.ProfessorID == id {
			course.ProfessorID = nil
		}
	}
	delete(r.s.st.professors, id)
	return nil
}

func (r *professorRepo) withRelations(professor *models.Professor) *models.Professor {
	cp := cloneProfessor(professor)
	if cp.DepartmentID != nil {
		if department, ok := r.s.st.departments[*cp.DepartmentID]; ok {
			d := *department
			cp.Department = &d
		}
	}
	for _, course := range r.s.st.courses {
		if course.ProfessorID != nil && *course.ProfessorID == professor.ID {
			cp.Courses = append(cp.Courses, *cloneCourse(course))
		}
	}
	sort.Slice(cp.Courses, func(i, j int) bool { return cp.Courses[i].ID < cp.Courses[j].ID })
	return cp
}

type studentRepo struct{ s *Store }

func (r *studentRepo) Create(ctx context.Context, student *models.Student) error {
	defer r.s.lock()()

	for _, existing := range r.s.st.students {
		if existing.Email == student.Email {
			return apperrors.NewDuplicateEntityError("Student with email already exists")
		}
	}
	cp := *student
	cp.Courses = nil
	cp.Profile = nil
	r.s.st.students[student.ID] = &cp
	return nil
}

func (r *studentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	defer r.s.lock()()

	student, ok := r.s.st.students[id]
	if !ok {
		return nil, nil
	}
	return r.withRelations(student), nil
}

func (r *studentRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	defer r.s.lock()()

	_, ok := r.s.st.students[id]
	return ok, nil
}

func (r *studentRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	defer r.s.lock()()

	for _, student := range r.s.st.students {
		if student.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *studentRepo) FindPage(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	defer r.s.lock()()

	all := make([]*models.Student, 0, len(r.s.st.students))
	for _, student := range r.s.st.students {
		all = append(all, student)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].LastName != all[j].LastName {
			return all[i].LastName < all[j].LastName
		}
		return all[i].FirstName < all[j].FirstName
	})

	start, end := pageBounds(len(all), offset, limit)
	students := make([]*models.Student, 0, end-start)
	for _, student := range all[start:end] {
		students = append(students, r.withRelations(student))
	}
	return students, int64(len(all)), nil
}

func (r *studentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.lock()()

	for _, set := range r.s.st.enrollment {
		delete(set, id)
	}
	if profileID, ok := r.s.st.profileByStudent[id]; ok {
		delete(r.s.st.profiles, profileID)
		delete(r.s.st.profileByStudent, id)
	}
	delete(r.s.st.students, id)
	return nil
}

func (r *studentRepo) withRelations(student *models.Student) *models.Student {
	cp := *student
	cp.Courses = nil
	cp.Profile = nil

	for courseID, set := range r.s.st.enrollment {
		if set[student.ID] {
			if course, ok := r.s.st.courses[courseID]; ok {
				cp.Courses = append(cp.Courses, *cloneCourse(course))
			}
		}
	}
	sort.Slice(cp.Courses, func(i, j int) bool { return cp.Courses[i].ID < cp.Courses[j].ID })

	if profileID, ok := r.s.st.profileByStudent[student.ID]; ok {
		if profile, ok := r.s.st.profiles[profileID]; ok {
			p := *profile
			cp.Profile = &p
		}
	}
	return &cp
}

type profileRepo struct{ s *Store }

func (r *profileRepo) Create(ctx context.Context, profile *models.StudentProfile) error {
	defer r.s.lock()()

	if _, ok := r.s.st.profileByStudent[profile.StudentID]; ok {
		return apperrors.NewConflictError("Profile already exists for this student")
	}
	cp := *profile
	r.s.st.profiles[profile.ID] = &cp
	r.s.st.profileByStudent[profile.StudentID] = profile.ID
	return nil
}

func (r *profileRepo) GetByStudentID(ctx context.Context, studentID uuid.UUID) (*models.StudentProfile, error) {
	defer r.s.lock()()

	profileID, ok := r.s.st.profileByStudent[studentID]
	if !ok {
		return nil, nil
	}
	profile, ok := r.s.st.profiles[profileID]
	if !ok {
		return nil, nil
	}
	cp := *profile
	return &cp, nil
}

func (r *profileRepo) ExistsByStudentID(ctx context.Context, studentID uuid.UUID) (bool, error) {
	defer r.s.lock()()

	_, ok := r.s.st.profileByStudent[studentID]
	return ok, nil
}
