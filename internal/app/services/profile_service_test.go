package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"scholaris/internal/app/models"
	"scholaris/internal/app/models/dto"
	"scholaris/internal/pkg/apperrors"
)

func createStudent(t *testing.T, store Store) uuid.UUID {
	t.Helper()
	student := &models.Student{
		ID:        uuid.New(),
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	}
	if err := store.Students().Create(context.Background(), student); err != nil {
		t.Fatalf("create student: %v", err)
	}
	return student.ID
}

func TestAddProfileStudentNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newTestStore())

	err := svc.AddProfile(ctx, uuid.New(), dto.StudentProfileRequest{Address: "12 Main St", PhoneNumber: "+40700000000"})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestAddProfileConflictKeepsFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewProfileService(store)
	studentID := createStudent(t, store)

	first := dto.StudentProfileRequest{Address: "12 Main St", PhoneNumber: "+40700000000"}
	if err := svc.AddProfile(ctx, studentID, first); err != nil {
		t.Fatalf("AddProfile: %v", err)
	}

	second := dto.StudentProfileRequest{Address: "99 Other St", PhoneNumber: "+40799999999"}
	err := svc.AddProfile(ctx, studentID, second)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	profile, err := svc.GetProfile(ctx, studentID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Address != first.Address {
		t.Errorf("the student must keep the first profile, got address %q", profile.Address)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewProfileService(store)
	studentID := createStudent(t, store)

	_, err := svc.GetProfile(ctx, studentID)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
