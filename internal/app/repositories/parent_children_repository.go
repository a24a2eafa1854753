package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prs/studentmanagement/internal/app/models"
)

// ParentChildrenRepository handles parent-child link database operations.
// Links are read-only in this layer.
type ParentChildrenRepository struct {
	db *pgxpool.Pool
}

// NewParentChildrenRepository creates a new parent-children repository
func NewParentChildrenRepository(db *pgxpool.Pool) *ParentChildrenRepository {
	return &ParentChildrenRepository{
		db: db,
	}
}

// FindByParentID retrieves all child links of a parent
func (r *ParentChildrenRepository) FindByParentID(ctx context.Context, parentID string) ([]*models.ParentChildren, error) {
	query := `SELECT parent_id, child_id FROM parent_children WHERE parent_id = $1`

	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*models.ParentChildren
	for rows.Next() {
		var link models.ParentChildren
		if err := rows.Scan(&link.ParentID, &link.ChildID); err != nil {
			return nil, err
		}
		links = append(links, &link)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return links, nil
}
