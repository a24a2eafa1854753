package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prs/studentmanagement/internal/app/models/dto"
	"github.com/prs/studentmanagement/internal/app/services"
	"github.com/prs/studentmanagement/internal/middleware"
)

// ParentController exposes the family view
type ParentController struct {
	parentService services.ParentService
}

// NewParentController creates a new ParentController
func NewParentController(parentService services.ParentService) *ParentController {
	return &ParentController{
		parentService: parentService,
	}
}

// GetChildren lists the children linked to a parent
// @Summary List children of a parent
// @Description Resolves the parent's child links into student summaries; links whose student no longer exists are skipped
// @Tags parents
// @Produce json
// @Security BearerAuth
// @Param parentId path string true "Parent ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentSummary} "Children retrieved"
// @Router /parents/{parentId}/children [get]
func (c *ParentController) GetChildren(ctx *gin.Context) {
	children, err := c.parentService.GetChildrenForParent(ctx, ctx.Param("parentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(children))
}
