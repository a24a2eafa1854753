package models

// ParentChildren maps a parent to one linked child, one row per child.
// Read-only in this layer; rows are managed by the admissions flow.
type ParentChildren struct {
	ParentID string `json:"parentId" db:"parent_id"`
	ChildID  string `json:"childId" db:"child_id"`
}
