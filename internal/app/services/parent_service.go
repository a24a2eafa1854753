package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/prs/studentmanagement/internal/app/models/dto"
)

// ParentService resolves a parent's linked children into summary records
type ParentService interface {
	GetChildrenForParent(ctx context.Context, parentID string) ([]dto.StudentSummary, error)
}

type parentService struct {
	parentChildrenStore ParentChildrenStore
	studentStore        StudentStore
	logger              zerolog.Logger
}

// NewParentService creates a new parent service instance
func NewParentService(parentChildrenStore ParentChildrenStore, studentStore StudentStore, logger zerolog.Logger) ParentService {
	return &parentService{
		parentChildrenStore: parentChildrenStore,
		studentStore:        studentStore,
		logger:              logger,
	}
}

// GetChildrenForParent fetches the parent's child links and resolves each into
// a student summary. A link whose student no longer exists is skipped rather
// than failing the whole family view; such dangling links are logged but not
// reported to the caller. Order follows the link query.
func (s *parentService) GetChildrenForParent(ctx context.Context, parentID string) ([]dto.StudentSummary, error) {
	links, err := s.parentChildrenStore.FindByParentID(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving parent links: %w", err)
	}

	summaries := make([]dto.StudentSummary, 0, len(links))
	for _, link := range links {
		student, err := s.studentStore.FindByID(ctx, link.ChildID)
		if err != nil {
			return nil, fmt.Errorf("error resolving child %s: %w", link.ChildID, err)
		}

		if student == nil {
			// Dangling link: the child was deleted after the link was created
			s.logger.Debug().Str("parentID", parentID).Str("childID", link.ChildID).Msg("Skipping dangling parent-child link")
			continue
		}

		summaries = append(summaries, dto.NewStudentSummary(link.ChildID, student))
	}

	return summaries, nil
}
