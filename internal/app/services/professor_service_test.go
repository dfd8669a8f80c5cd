package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
)

func professorRequest(email, phone string, titles ...string) dto.ProfessorRequest {
	return dto.ProfessorRequest{
		FirstName:    "John",
		LastName:     "Smith",
		Email:        email,
		PhoneNumber:  phone,
		CourseTitles: titles,
		Department:   "Computer Science",
	}
}

func setupDepartment(t *testing.T, store Store) {
	t.Helper()
	svc := NewDepartmentService(store)
	if _, err := svc.CreateDepartment(context.Background(), dto.DepartmentRequest{Name: "Computer Science"}); err != nil {
		t.Fatalf("CreateDepartment: %v", err)
	}
}

func TestAddProfessorRequiresExistingDepartment(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewProfessorService(store)

	err := svc.AddProfessor(ctx, professorRequest("john@example.com", "+40711111111", "Algebra"))
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error for missing department, got %v", err)
	}

	_, total, err := store.Professors().FindPage(ctx, 0, 10)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 0 {
		t.Errorf("rejected registration must not leave a professor behind, got %d", total)
	}
}

func TestAddProfessorDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupDepartment(t, store)
	svc := NewProfessorService(store)

	if err := svc.AddProfessor(ctx, professorRequest("john@example.com", "+40711111111", "Algebra")); err != nil {
		t.Fatalf("AddProfessor: %v", err)
	}

	err := svc.AddProfessor(ctx, professorRequest("john@example.com", "+40722222222", "Geometry"))
	if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Fatalf("expected duplicate-entity error, got %v", err)
	}
}

func TestAddProfessorTakenCourseTitle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupDepartment(t, store)
	svc := NewProfessorService(store)

	if err := svc.AddProfessor(ctx, professorRequest("john@example.com", "+40711111111", "Math")); err != nil {
		t.Fatalf("AddProfessor: %v", err)
	}

	// the professor path always inserts fresh course rows, so a taken title
	// fails the whole registration
	err := svc.AddProfessor(ctx, professorRequest("alice@example.com", "+40722222222", "Math"))
	if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Fatalf("expected duplicate-entity error for taken title, got %v", err)
	}

	_, total, err := store.Professors().FindPage(ctx, 0, 10)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 1 {
		t.Errorf("expected the second registration to be rolled back, got %d professors", total)
	}
}

// The professor path creates course rows, the student path reuses them by
// title, and deleting the professor detaches the shared course without
// touching the student's enrollment.
func TestProfessorStudentCourseLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupDepartment(t, store)

	professors := NewProfessorService(store)
	courses := NewCourseService(store)
	students := NewStudentService(store, courses)

	if err := professors.AddProfessor(ctx, professorRequest("john@example.com", "+40711111111", "Math")); err != nil {
		t.Fatalf("AddProfessor: %v", err)
	}
	if err := students.AddStudent(ctx, studentRequest("jane@example.com", "Math")); err != nil {
		t.Fatalf("AddStudent: %v", err)
	}

	_, total, err := store.Courses().FindPage(ctx, 0, 10)
	if err != nil {
		t.Fatalf("FindPage courses: %v", err)
	}
	if total != 1 {
		t.Fatalf("student registration must reuse the professor's Math course, got %d courses", total)
	}

	page, _, err := professors.GetProfessors(ctx, 1, 10)
	if err != nil {
		t.Fatalf("GetProfessors: %v", err)
	}
	if len(page) != 1 || len(page[0].Courses) != 1 {
		t.Fatalf("expected the professor to own the Math course")
	}
	professorID := page[0].ID

	if err := professors.DeleteProfessor(ctx, professorID); err != nil {
		t.Fatalf("DeleteProfessor: %v", err)
	}

	_, err = professors.GetProfessor(ctx, professorID)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}

	course, err := store.Courses().GetByTitle(ctx, "Math")
	if err != nil {
		t.Fatalf("GetByTitle: %v", err)
	}
	if course == nil {
		t.Fatal("deleting a professor must not delete their courses")
	}
	if course.ProfessorID != nil {
		t.Error("surviving course must be detached from the deleted professor")
	}

	studentPage, _, err := students.GetStudents(ctx, 1, 10)
	if err != nil {
		t.Fatalf("GetStudents: %v", err)
	}
	if len(studentPage) != 1 || len(studentPage[0].Courses) != 1 {
		t.Error("the student's enrollment must survive the professor delete")
	}
}

func TestDeleteProfessorNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupDepartment(t, store)
	svc := NewProfessorService(store)

	if err := svc.AddProfessor(ctx, professorRequest("john@example.com", "+40711111111", "Algebra")); err != nil {
		t.Fatalf("AddProfessor: %v", err)
	}

	if err := svc.DeleteProfessor(ctx, uuid.New()); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	_, total, err := store.Professors().FindPage(ctx, 0, 10)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 1 {
		t.Errorf("failed delete must leave the store unchanged, got %d professors", total)
	}
}

func TestUpdateProfessorDetails(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	setupDepartment(t, store)

	departments := NewDepartmentService(store)
	if _, err := departments.CreateDepartment(ctx, dto.DepartmentRequest{Name: "Mathematics"}); err != nil {
		t.Fatalf("CreateDepartment: %v", err)
	}

	svc := NewProfessorService(store)
	if err := svc.AddProfessor(ctx, professorRequest("john@example.com", "+40711111111", "Algebra")); err != nil {
		t.Fatalf("AddProfessor: %v", err)
	}

	page, _, err := svc.GetProfessors(ctx, 1, 10)
	if err != nil {
		t.Fatalf("GetProfessors: %v", err)
	}
	id := page[0].ID

	update := dto.ProfessorUpdateRequest{
		Email:       "john.smith@example.com",
		PhoneNumber: "+40733333333",
		Department:  "Mathematics",
	}
	if err := svc.UpdateProfessorDetails(ctx, id, update); err != nil {
		t.Fatalf("UpdateProfessorDetails: %v", err)
	}

	professor, err := svc.GetProfessor(ctx, id)
	if err != nil {
		t.Fatalf("GetProfessor: %v", err)
	}
	if professor.Email != update.Email || professor.PhoneNumber != update.PhoneNumber {
		t.Errorf("contact details not overwritten: %+v", professor)
	}
	if professor.Department == nil || professor.Department.Name != "Mathematics" {
		t.Errorf("department not updated: %+v", professor.Department)
	}

	missing := dto.ProfessorUpdateRequest{Email: "x@example.com", PhoneNumber: "+40744444444", Department: "History"}
	if err := svc.UpdateProfessorDetails(ctx, id, missing); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found for unknown department, got %v", err)
	}

	if err := svc.UpdateProfessorDetails(ctx, uuid.New(), update); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found for unknown professor, got %v", err)
	}
}
