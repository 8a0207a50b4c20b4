package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecesahin/registrar/internal/app/models"
	"github.com/ecesahin/registrar/internal/pkg/apperrors"
)

func (f *fakeCourseStore) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	for _, c := range f.courses {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

type pair struct {
	studentID, courseID int64
}

type fakeRegistrationStore struct {
	registrations map[pair]*models.CourseRegistration
	courses       map[int64]*models.Course
	nextID        int64
}

func newFakeRegistrationStore(courses *fakeCourseStore) *fakeRegistrationStore {
	return &fakeRegistrationStore{
		registrations: map[pair]*models.CourseRegistration{},
		courses:       courses.courses,
		nextID:        1,
	}
}

func (f *fakeRegistrationStore) Create(ctx context.Context, r *models.CourseRegistration) error {
	key := pair{r.StudentID, r.CourseID}
	if _, ok := f.registrations[key]; ok {
		return apperrors.ErrRegistrationAlreadyExists
	}
	r.ID = f.nextID
	f.nextID++
	f.registrations[key] = r
	return nil
}

func (f *fakeRegistrationStore) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	_, ok := f.registrations[pair{studentID, courseID}]
	return ok, nil
}

func (f *fakeRegistrationStore) DeletePair(ctx context.Context, studentID, courseID int64) error {
	key := pair{studentID, courseID}
	if _, ok := f.registrations[key]; !ok {
		return apperrors.ErrRegistrationNotFound
	}
	delete(f.registrations, key)
	return nil
}

func (f *fakeRegistrationStore) ListByStudent(ctx context.Context, studentID int64) ([]*models.CourseRegistration, error) {
	var out []*models.CourseRegistration
	for key, r := range f.registrations {
		if key.studentID == studentID {
			joined := *r
			joined.Course = f.courses[key.courseID]
			out = append(out, &joined)
		}
	}
	return out, nil
}

type registrationFixture struct {
	svc      *RegistrationService
	students *fakeStudentStore
	courses  *fakeCourseStore
	regs     *fakeRegistrationStore
	now      time.Time
}

func newRegistrationFixture() *registrationFixture {
	students := newFakeStudentStore()
	courses := newFakeCourseStore()
	regs := newFakeRegistrationStore(courses)
	svc := NewRegistrationService(regs, students, courses, zerolog.Nop())
	now := time.Date(2025, 4, 23, 12, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	return &registrationFixture{svc: svc, students: students, courses: courses, regs: regs, now: now}
}

func TestRegisterByKeys(t *testing.T) {
	fx := newRegistrationFixture()
	fx.students.add("STU001", "a@school.edu")
	fx.courses.add("CS201", "Algorithms", 4)

	resp, err := fx.svc.RegisterByKeys(context.Background(), "STU001", "CS201")
	if err != nil {
		t.Fatalf("RegisterByKeys: %v", err)
	}
	if resp.CourseCode != "CS201" || resp.CourseName != "Algorithms" || resp.Credits != 4 {
		t.Errorf("unexpected projection: %+v", resp)
	}
	if !resp.RegisteredAt.Equal(fx.now) {
		t.Errorf("RegisteredAt = %v, want %v", resp.RegisteredAt, fx.now)
	}
}

func TestRegisterByIDs(t *testing.T) {
	fx := newRegistrationFixture()
	s := fx.students.add("STU001", "a@school.edu")
	c := fx.courses.add("CS201", "Algorithms", 4)

	resp, err := fx.svc.RegisterByIDs(context.Background(), s.ID, c.ID)
	if err != nil {
		t.Fatalf("RegisterByIDs: %v", err)
	}
	if resp.CourseCode != "CS201" {
		t.Errorf("CourseCode = %q, want CS201", resp.CourseCode)
	}
}

func TestRegisterDuplicatePair(t *testing.T) {
	fx := newRegistrationFixture()
	fx.students.add("STU001", "a@school.edu")
	fx.courses.add("CS201", "Algorithms", 4)

	if _, err := fx.svc.RegisterByKeys(context.Background(), "STU001", "CS201"); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	_, err := fx.svc.RegisterByKeys(context.Background(), "STU001", "CS201")
	if !errors.Is(err, apperrors.ErrRegistrationAlreadyExists) {
		t.Errorf("err = %v, want ErrRegistrationAlreadyExists", err)
	}
}

func TestRegisterUnknownStudent(t *testing.T) {
	fx := newRegistrationFixture()
	fx.courses.add("CS201", "Algorithms", 4)

	_, err := fx.svc.RegisterByKeys(context.Background(), "STU999", "CS201")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestRegisterUnknownCourse(t *testing.T) {
	fx := newRegistrationFixture()
	fx.students.add("STU001", "a@school.edu")

	_, err := fx.svc.RegisterByKeys(context.Background(), "STU001", "NOPE101")
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestUnregisterByKeys(t *testing.T) {
	fx := newRegistrationFixture()
	s := fx.students.add("STU001", "a@school.edu")
	c := fx.courses.add("CS201", "Algorithms", 4)

	if _, err := fx.svc.RegisterByKeys(context.Background(), "STU001", "CS201"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := fx.svc.UnregisterByKeys(context.Background(), "STU001", "CS201"); err != nil {
		t.Fatalf("UnregisterByKeys: %v", err)
	}
	if exists, _ := fx.regs.Exists(context.Background(), s.ID, c.ID); exists {
		t.Error("registration still present after unregister")
	}
}

func TestUnregisterAbsentPair(t *testing.T) {
	fx := newRegistrationFixture()
	fx.students.add("STU001", "a@school.edu")
	fx.courses.add("CS201", "Algorithms", 4)

	err := fx.svc.UnregisterByKeys(context.Background(), "STU001", "CS201")
	if !errors.Is(err, apperrors.ErrRegistrationNotFound) {
		t.Errorf("err = %v, want ErrRegistrationNotFound", err)
	}
}

func TestUnregisterByIDs(t *testing.T) {
	fx := newRegistrationFixture()
	s := fx.students.add("STU001", "a@school.edu")
	c := fx.courses.add("CS201", "Algorithms", 4)

	if _, err := fx.svc.RegisterByIDs(context.Background(), s.ID, c.ID); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := fx.svc.UnregisterByIDs(context.Background(), s.ID, c.ID); err != nil {
		t.Fatalf("UnregisterByIDs: %v", err)
	}
}

func TestGetStudentCourses(t *testing.T) {
	fx := newRegistrationFixture()
	s := fx.students.add("STU001", "a@school.edu")
	fx.courses.add("CS201", "Algorithms", 4)
	fx.courses.add("MA101", "Calculus", 3)

	for _, code := range []string{"CS201", "MA101"} {
		if _, err := fx.svc.RegisterByKeys(context.Background(), "STU001", code); err != nil {
			t.Fatalf("register %s: %v", code, err)
		}
	}

	byKey, err := fx.svc.GetStudentCoursesByKey(context.Background(), "STU001")
	if err != nil {
		t.Fatalf("GetStudentCoursesByKey: %v", err)
	}
	if len(byKey) != 2 {
		t.Fatalf("got %d registrations, want 2", len(byKey))
	}
	for _, r := range byKey {
		if r.CourseCode == "" || r.CourseName == "" {
			t.Errorf("joined course fields missing: %+v", r)
		}
	}

	byID, err := fx.svc.GetStudentCoursesByID(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("GetStudentCoursesByID: %v", err)
	}
	if len(byID) != len(byKey) {
		t.Errorf("id shape returned %d registrations, key shape %d", len(byID), len(byKey))
	}
}

func TestGetStudentCoursesUnknownStudent(t *testing.T) {
	fx := newRegistrationFixture()

	_, err := fx.svc.GetStudentCoursesByKey(context.Background(), "STU999")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("err = %v, want ErrStudentNotFound", err)
	}
}
