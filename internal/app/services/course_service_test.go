package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"scholaris/internal/app/models/dto"
	"scholaris/internal/app/repositories/memory"
	"scholaris/internal/pkg/apperrors"
)

func newTestStore() Store {
	return memory.NewStore()
}

func TestGetOrCreateCoursesReusesExisting(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewCourseService(store)

	first, err := svc.GetOrCreateCourses(ctx, store, []string{"Math", "Physics"})
	if err != nil {
		t.Fatalf("GetOrCreateCourses: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(first))
	}

	second, err := svc.GetOrCreateCourses(ctx, store, []string{"Math", "Chemistry"})
	if err != nil {
		t.Fatalf("GetOrCreateCourses second call: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(second))
	}
	if second[0].ID != first[0].ID {
		t.Errorf("Math should resolve to the existing course: got id %d, want %d", second[0].ID, first[0].ID)
	}

	_, total, err := store.Courses().FindPage(ctx, 0, 10)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 3 {
		t.Errorf("expected 3 distinct courses, got %d", total)
	}
}

func TestGetOrCreateCoursesDeduplicatesInput(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewCourseService(store)

	courses, err := svc.GetOrCreateCourses(ctx, store, []string{"Math", "Math", "Math"})
	if err != nil {
		t.Fatalf("GetOrCreateCourses: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected 1 course for repeated title, got %d", len(courses))
	}
}

func TestGetOrCreateCoursesEmptyInput(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewCourseService(store)

	courses, err := svc.GetOrCreateCourses(ctx, store, nil)
	if err != nil {
		t.Fatalf("GetOrCreateCourses: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("expected no courses, got %d", len(courses))
	}
}

func TestGetOrCreateCoursesConcurrent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewCourseService(store)

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.GetOrCreateCourses(ctx, store, []string{"Race"})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			t.Errorf("worker %d: unexpected error %v", i, err)
		}
	}

	_, total, err := store.Courses().FindPage(ctx, 0, 10)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 1 {
		t.Errorf("expected exactly one winner, got %d courses", total)
	}
}

func TestAddCourseDuplicateTitle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewCourseService(store)

	if _, err := svc.AddCourse(ctx, dto.CourseRequest{Title: "Math"}); err != nil {
		t.Fatalf("AddCourse: %v", err)
	}

	_, err := svc.AddCourse(ctx, dto.CourseRequest{Title: "Math"})
	if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Fatalf("expected duplicate-entity error, got %v", err)
	}
}

func TestDeleteCourseNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewCourseService(store)

	if _, err := svc.AddCourse(ctx, dto.CourseRequest{Title: "Math"}); err != nil {
		t.Fatalf("AddCourse: %v", err)
	}

	err := svc.DeleteCourse(ctx, 999)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	_, total, err := store.Courses().FindPage(ctx, 0, 10)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 1 {
		t.Errorf("failed delete must leave the store unchanged, got %d courses", total)
	}
}
