package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/pkg/apperrors"
)

func newTestStudent() *models.Student {
	return &models.Student{
		ID:        "S1001",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@school.edu",
		Password:  "hashed:secret",
		Major:     "Mathematics",
		Year:      2,
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentStore(newTestStudent()), fakeHasher{})

		student, ok, err := svc.Authenticate(ctx, "ada@school.edu", "secret")
		require.NoError(t, err)
		assert.True(t, ok)
		require.NotNil(t, student)
		assert.Equal(t, "S1001", student.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentStore(newTestStudent()), fakeHasher{})

		student, ok, err := svc.Authenticate(ctx, "nobody@school.edu", "secret")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, student)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentStore(newTestStudent()), fakeHasher{})

		student, ok, err := svc.Authenticate(ctx, "ada@school.edu", "wrong")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, student)
	})

	t.Run("student without stored hash cannot log in", func(t *testing.T) {
		noPassword := newTestStudent()
		noPassword.Password = ""
		svc := NewStudentService(newFakeStudentStore(noPassword), fakeHasher{})

		student, ok, err := svc.Authenticate(ctx, "ada@school.edu", "")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, student)
	})

	t.Run("store failure surfaces as error", func(t *testing.T) {
		store := newFakeStudentStore()
		store.failAll = true
		svc := NewStudentService(store, fakeHasher{})

		_, ok, err := svc.Authenticate(ctx, "ada@school.edu", "secret")
		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestGetStudentByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentStore(newTestStudent()), fakeHasher{})

		student, err := svc.GetStudentByID(ctx, "S1001")
		require.NoError(t, err)
		assert.Equal(t, "Ada", student.FirstName)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentStore(), fakeHasher{})

		student, err := svc.GetStudentByID(ctx, "S9999")
		require.Error(t, err)
		assert.Nil(t, student)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		assert.Equal(t, "Student not found with ID: S9999", err.Error())
	})
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes supplied password", func(t *testing.T) {
		store := newFakeStudentStore()
		svc := NewStudentService(store, fakeHasher{})

		created, err := svc.CreateStudent(ctx, &models.Student{
			ID:       "S2001",
			Email:    "new@school.edu",
			Password: "plaintext",
		})
		require.NoError(t, err)
		assert.Equal(t, "hashed:plaintext", created.Password)
		assert.Equal(t, "hashed:plaintext", store.students["S2001"].Password)
	})

	t.Run("empty password stays empty", func(t *testing.T) {
		store := newFakeStudentStore()
		svc := NewStudentService(store, fakeHasher{})

		created, err := svc.CreateStudent(ctx, &models.Student{
			ID:    "S2002",
			Email: "pwless@school.edu",
		})
		require.NoError(t, err)
		assert.Empty(t, created.Password)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentStore(), fakeHasher{})

		_, err := svc.CreateStudent(ctx, &models.Student{ID: "S2003", Email: "not-an-email"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects malformed student ID", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentStore(), fakeHasher{})

		_, err := svc.CreateStudent(ctx, &models.Student{ID: "bad id!", Email: "ok@school.edu"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites fields and preserves hash on blank password", func(t *testing.T) {
		store := newFakeStudentStore(newTestStudent())
		svc := NewStudentService(store, fakeHasher{})

		updated, err := svc.UpdateStudent(ctx, "S1001", &models.Student{
			FirstName: "Augusta",
			LastName:  "King",
			Email:     "augusta@school.edu",
			Major:     "Computer Science",
			Year:      3,
		})
		require.NoError(t, err)
		assert.Equal(t, "Augusta", updated.FirstName)
		assert.Equal(t, "augusta@school.edu", updated.Email)
		assert.Equal(t, 3, updated.Year)
		// Blank password in the update must not wipe the stored hash
		assert.Equal(t, "hashed:secret", updated.Password)
	})

	t.Run("re-hashes a supplied password", func(t *testing.T) {
		store := newFakeStudentStore(newTestStudent())
		svc := NewStudentService(store, fakeHasher{})

		updated, err := svc.UpdateStudent(ctx, "S1001", &models.Student{
			FirstName: "Ada",
			Email:     "ada@school.edu",
			Password:  "newsecret",
		})
		require.NoError(t, err)
		assert.Equal(t, "hashed:newsecret", updated.Password)
	})

	t.Run("unknown student", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentStore(), fakeHasher{})

		_, err := svc.UpdateStudent(ctx, "S9999", newTestStudent())
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		assert.Equal(t, "Student not found with ID: S9999", err.Error())
	})
}

func TestDeleteStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("removes existing student", func(t *testing.T) {
		store := newFakeStudentStore(newTestStudent())
		svc := NewStudentService(store, fakeHasher{})

		require.NoError(t, svc.DeleteStudent(ctx, "S1001"))
		assert.NotContains(t, store.students, "S1001")
	})

	t.Run("deleting an absent student succeeds", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentStore(), fakeHasher{})

		assert.NoError(t, svc.DeleteStudent(ctx, "S9999"))
	})
}
