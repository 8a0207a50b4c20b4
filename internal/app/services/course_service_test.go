package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecesahin/registrar/internal/app/models"
	"github.com/ecesahin/registrar/internal/app/models/dto"
	"github.com/ecesahin/registrar/internal/pkg/apperrors"
)

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64

	deletedWithRegistrations []int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: map[int64]*models.Course{}, nextID: 1}
}

func (f *fakeCourseStore) add(code, name string, credits int) *models.Course {
	c := &models.Course{ID: f.nextID, Code: code, Name: name, Credits: credits}
	f.courses[c.ID] = c
	f.nextID++
	return c
}

func (f *fakeCourseStore) Create(ctx context.Context, course *models.Course) error {
	course.ID = f.nextID
	f.courses[course.ID] = course
	f.nextID++
	return nil
}

func (f *fakeCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if c, ok := f.courses[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseStore) GetAll(ctx context.Context) ([]*models.Course, error) {
	all := make([]*models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		all = append(all, c)
	}
	return all, nil
}

func (f *fakeCourseStore) CodeExists(ctx context.Context, code string) (bool, error) {
	for _, c := range f.courses {
		if c.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseStore) Update(ctx context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) DeleteWithRegistrations(ctx context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	f.deletedWithRegistrations = append(f.deletedWithRegistrations, id)
	return nil
}

func courseRequest(code string) *dto.CourseRequest {
	return &dto.CourseRequest{Code: code, Name: "Algorithms", Credits: 4}
}

func TestCreateCourse(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store, zerolog.Nop())

	course, err := svc.CreateCourse(context.Background(), courseRequest("CS201"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if course.ID == 0 {
		t.Error("course not assigned an id")
	}
	if course.Code != "CS201" || course.Credits != 4 {
		t.Errorf("unexpected course: %+v", course)
	}
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	store := newFakeCourseStore()
	store.add("CS201", "Algorithms", 4)
	svc := NewCourseService(store, zerolog.Nop())

	_, err := svc.CreateCourse(context.Background(), courseRequest("CS201"))
	if !errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
		t.Errorf("err = %v, want ErrCourseCodeAlreadyExists", err)
	}
}

func TestUpdateCourse(t *testing.T) {
	store := newFakeCourseStore()
	c := store.add("CS201", "Algorithms", 4)
	svc := NewCourseService(store, zerolog.Nop())

	updated, err := svc.UpdateCourse(context.Background(), c.ID, &dto.CourseRequest{
		Code: "CS201", Name: "Advanced Algorithms", Credits: 5,
	})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated.Name != "Advanced Algorithms" || updated.Credits != 5 {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestUpdateCourseCodeConflict(t *testing.T) {
	store := newFakeCourseStore()
	c := store.add("CS201", "Algorithms", 4)
	store.add("CS301", "Compilers", 4)
	svc := NewCourseService(store, zerolog.Nop())

	_, err := svc.UpdateCourse(context.Background(), c.ID, &dto.CourseRequest{
		Code: "CS301", Name: "Algorithms", Credits: 4,
	})
	if !errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
		t.Errorf("err = %v, want ErrCourseCodeAlreadyExists", err)
	}
}

func TestUpdateCourseKeepingOwnCode(t *testing.T) {
	// Re-submitting the current code must not trip the uniqueness check
	store := newFakeCourseStore()
	c := store.add("CS201", "Algorithms", 4)
	svc := NewCourseService(store, zerolog.Nop())

	if _, err := svc.UpdateCourse(context.Background(), c.ID, courseRequest("CS201")); err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
}

func TestUpdateCourseNotFound(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), zerolog.Nop())

	_, err := svc.UpdateCourse(context.Background(), 42, courseRequest("CS201"))
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestDeleteCourseRemovesRegistrations(t *testing.T) {
	store := newFakeCourseStore()
	c := store.add("CS201", "Algorithms", 4)
	svc := NewCourseService(store, zerolog.Nop())

	if err := svc.DeleteCourse(context.Background(), c.ID); err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}
	if len(store.deletedWithRegistrations) != 1 || store.deletedWithRegistrations[0] != c.ID {
		t.Error("delete did not go through the registration-cascading path")
	}
}

func TestDeleteCourseNotFound(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), zerolog.Nop())

	if err := svc.DeleteCourse(context.Background(), 42); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("err = %v, want ErrCourseNotFound", err)
	}
}
