package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
)

func studentRequest(email string, titles ...string) dto.StudentRequest {
	return dto.StudentRequest{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        email,
		CourseTitles: titles,
		Address:      "12 Main St",
		PhoneNumber:  "+40700000000",
	}
}

func TestAddStudentCreatesProfileAndEnrollment(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	courses := NewCourseService(store)
	svc := NewStudentService(store, courses)

	if err := svc.AddStudent(ctx, studentRequest("jane@example.com", "Math", "Physics")); err != nil {
		t.Fatalf("AddStudent: %v", err)
	}

	students, _, err := svc.GetStudents(ctx, 1, 10)
	if err != nil {
		t.Fatalf("GetStudents: %v", err)
	}
	if len(students) != 1 {
		t.Fatalf("expected 1 student, got %d", len(students))
	}
	if len(students[0].Courses) != 2 {
		t.Errorf("expected 2 enrolled courses, got %d", len(students[0].Courses))
	}

	profiles := NewProfileService(store)
	profile, err := profiles.GetProfile(ctx, students[0].ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Address != "12 Main St" {
		t.Errorf("profile address = %q, want %q", profile.Address, "12 Main St")
	}
}

func TestAddStudentDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewStudentService(store, NewCourseService(store))

	if err := svc.AddStudent(ctx, studentRequest("jane@example.com", "Math")); err != nil {
		t.Fatalf("AddStudent: %v", err)
	}

	err := svc.AddStudent(ctx, studentRequest("jane@example.com", "Physics"))
	if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Fatalf("expected duplicate-entity error, got %v", err)
	}

	_, total, err := store.Students().FindPage(ctx, 0, 10)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 1 {
		t.Errorf("expected a single student after the rejected duplicate, got %d", total)
	}
}

func TestGetStudentNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewStudentService(newTestStore(), nil)

	_, err := svc.GetStudent(ctx, uuid.New())
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteStudentKeepsCourses(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewStudentService(store, NewCourseService(store))

	if err := svc.AddStudent(ctx, studentRequest("jane@example.com", "Math")); err != nil {
		t.Fatalf("AddStudent: %v", err)
	}

	students, _, err := svc.GetStudents(ctx, 1, 10)
	if err != nil {
		t.Fatalf("GetStudents: %v", err)
	}

	if err := svc.DeleteStudent(ctx, students[0].ID); err != nil {
		t.Fatalf("DeleteStudent: %v", err)
	}

	_, total, err := store.Students().FindPage(ctx, 0, 10)
	if err != nil {
		t.Fatalf("FindPage students: %v", err)
	}
	if total != 0 {
		t.Errorf("expected no students, got %d", total)
	}

	course, err := store.Courses().GetByTitle(ctx, "Math")
	if err != nil {
		t.Fatalf("GetByTitle: %v", err)
	}
	if course == nil {
		t.Error("deleting a student must not delete the courses they were enrolled in")
	}
}

func TestDeleteStudentNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewStudentService(store, NewCourseService(store))

	if err := svc.AddStudent(ctx, studentRequest("jane@example.com", "Math")); err != nil {
		t.Fatalf("AddStudent: %v", err)
	}

	err := svc.DeleteStudent(ctx, uuid.New())
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	_, total, err := store.Students().FindPage(ctx, 0, 10)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 1 {
		t.Errorf("failed delete must leave the store unchanged, got %d students", total)
	}
}
