package services

import (
	"context"
	"errors"

	"github.com/prs/studentmanagement/internal/app/models"
)

// In-memory fakes for the store contracts. Finders mirror the repository
// behavior of returning (nil, nil) when nothing matches.

var errStoreDown = errors.New("store unavailable")

type fakeStudentStore struct {
	students map[string]*models.Student
	failAll  bool
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	s := &fakeStudentStore{students: make(map[string]*models.Student)}
	for _, student := range students {
		s.students[student.ID] = student
	}
	return s
}

func (s *fakeStudentStore) FindByID(_ context.Context, id string) (*models.Student, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	return s.students[id], nil
}

func (s *fakeStudentStore) FindByEmail(_ context.Context, email string) (*models.Student, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	for _, student := range s.students {
		if student.Email == email {
			return student, nil
		}
	}
	return nil, nil
}

func (s *fakeStudentStore) FindAll(_ context.Context) ([]*models.Student, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	all := make([]*models.Student, 0, len(s.students))
	for _, student := range s.students {
		all = append(all, student)
	}
	return all, nil
}

func (s *fakeStudentStore) Save(_ context.Context, student *models.Student) error {
	if s.failAll {
		return errStoreDown
	}
	s.students[student.ID] = student
	return nil
}

func (s *fakeStudentStore) DeleteByID(_ context.Context, id string) error {
	if s.failAll {
		return errStoreDown
	}
	delete(s.students, id)
	return nil
}

type fakeCourseStore struct {
	courses map[string]*models.Course
}

func newFakeCourseStore(courses ...*models.Course) *fakeCourseStore {
	s := &fakeCourseStore{courses: make(map[string]*models.Course)}
	for _, course := range courses {
		s.courses[course.CourseCode] = course
	}
	return s
}

func (s *fakeCourseStore) FindByCourseCode(_ context.Context, courseCode string) (*models.Course, error) {
	return s.courses[courseCode], nil
}

func (s *fakeCourseStore) FindAll(_ context.Context) ([]*models.Course, error) {
	all := make([]*models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		all = append(all, course)
	}
	return all, nil
}

func (s *fakeCourseStore) Save(_ context.Context, course *models.Course) error {
	s.courses[course.CourseCode] = course
	return nil
}

func (s *fakeCourseStore) Delete(_ context.Context, courseCode string) error {
	delete(s.courses, courseCode)
	return nil
}

type fakeEnrollmentStore struct {
	enrollments []*models.Enrollment
	nextID      int64
}

func newFakeEnrollmentStore(enrollments ...*models.Enrollment) *fakeEnrollmentStore {
	s := &fakeEnrollmentStore{nextID: 1}
	for _, e := range enrollments {
		e.ID = s.nextID
		s.nextID++
		s.enrollments = append(s.enrollments, e)
	}
	return s
}

func (s *fakeEnrollmentStore) FindByStudentIDAndCourseCode(_ context.Context, studentID, courseCode string) (*models.Enrollment, error) {
	for _, e := range s.enrollments {
		if e.StudentID == studentID && e.CourseCode == courseCode {
			return e, nil
		}
	}
	return nil, nil
}

func (s *fakeEnrollmentStore) FindByStudentID(_ context.Context, studentID string) ([]*models.Enrollment, error) {
	var matched []*models.Enrollment
	for _, e := range s.enrollments {
		if e.StudentID == studentID {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (s *fakeEnrollmentStore) Save(_ context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID != 0 {
		for i, e := range s.enrollments {
			if e.ID == enrollment.ID {
				s.enrollments[i] = enrollment
				return nil
			}
		}
	}
	enrollment.ID = s.nextID
	s.nextID++
	s.enrollments = append(s.enrollments, enrollment)
	return nil
}

type fakeFeeStore struct {
	fees   map[int64]*models.Fee
	nextID int64
}

func newFakeFeeStore(fees ...*models.Fee) *fakeFeeStore {
	s := &fakeFeeStore{fees: make(map[int64]*models.Fee), nextID: 1}
	for _, fee := range fees {
		fee.FeeID = s.nextID
		s.nextID++
		s.fees[fee.FeeID] = fee
	}
	return s
}

func (s *fakeFeeStore) FindByID(_ context.Context, feeID int64) (*models.Fee, error) {
	return s.fees[feeID], nil
}

func (s *fakeFeeStore) FindByStudentID(_ context.Context, studentID string) ([]*models.Fee, error) {
	var matched []*models.Fee
	for _, fee := range s.fees {
		if fee.StudentID == studentID {
			matched = append(matched, fee)
		}
	}
	return matched, nil
}

func (s *fakeFeeStore) Save(_ context.Context, fee *models.Fee) error {
	if fee.FeeID == 0 {
		fee.FeeID = s.nextID
		s.nextID++
	}
	if fee.Status == "" {
		fee.Status = models.FeeStatusPending
	}
	s.fees[fee.FeeID] = fee
	return nil
}

type fakeParentChildrenStore struct {
	links []*models.ParentChildren
}

func (s *fakeParentChildrenStore) FindByParentID(_ context.Context, parentID string) ([]*models.ParentChildren, error) {
	var matched []*models.ParentChildren
	for _, link := range s.links {
		if link.ParentID == parentID {
			matched = append(matched, link)
		}
	}
	return matched, nil
}

// fakeHasher marks hashes with a prefix so tests can tell hashed values from
// plaintext without touching bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hashedPassword string) bool {
	return hashedPassword == "hashed:"+password
}
