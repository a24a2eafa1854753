package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prs/studentmanagement/internal/app/models"
)

func TestGetChildrenForParent(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves linked children", func(t *testing.T) {
		links := &fakeParentChildrenStore{links: []*models.ParentChildren{
			{ParentID: "P1", ChildID: "S1001"},
			{ParentID: "P1", ChildID: "S1002"},
			{ParentID: "P2", ChildID: "S2001"},
		}}
		students := newFakeStudentStore(
			&models.Student{ID: "S1001", FirstName: "Ada", LastName: "Lovelace", Email: "ada@school.edu"},
			&models.Student{ID: "S1002", FirstName: "Alan", LastName: "Turing", Email: "alan@school.edu"},
		)
		svc := NewParentService(links, students, zerolog.Nop())

		children, err := svc.GetChildrenForParent(ctx, "P1")
		require.NoError(t, err)
		require.Len(t, children, 2)
		assert.Equal(t, "S1001", children[0].ID)
		assert.Equal(t, "Ada", children[0].FirstName)
		assert.Equal(t, "S1002", children[1].ID)
	})

	t.Run("skips links whose student no longer exists", func(t *testing.T) {
		links := &fakeParentChildrenStore{links: []*models.ParentChildren{
			{ParentID: "P1", ChildID: "S1001"},
			{ParentID: "P1", ChildID: "S-deleted"},
		}}
		students := newFakeStudentStore(
			&models.Student{ID: "S1001", FirstName: "Ada", Email: "ada@school.edu"},
		)
		svc := NewParentService(links, students, zerolog.Nop())

		children, err := svc.GetChildrenForParent(ctx, "P1")
		require.NoError(t, err)
		require.Len(t, children, 1)
		assert.Equal(t, "S1001", children[0].ID)
	})

	t.Run("parent without links yields an empty list", func(t *testing.T) {
		svc := NewParentService(&fakeParentChildrenStore{}, newFakeStudentStore(), zerolog.Nop())

		children, err := svc.GetChildrenForParent(ctx, "P9")
		require.NoError(t, err)
		assert.NotNil(t, children)
		assert.Empty(t, children)
	})
}
