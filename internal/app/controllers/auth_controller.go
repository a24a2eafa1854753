package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/prs/studentmanagement/internal/app/models/dto"
	"github.com/prs/studentmanagement/internal/app/services"
	"github.com/prs/studentmanagement/internal/middleware"
	"github.com/prs/studentmanagement/internal/pkg/apperrors"
	"github.com/prs/studentmanagement/internal/pkg/auth"
)

// AuthController handles authentication operations
type AuthController struct {
	studentService services.StudentService
	jwtService     *auth.JWTService
	logger         zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(studentService services.StudentService, jwtService *auth.JWTService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		studentService: studentService,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// Login authenticates a student by email and password
// @Summary Student login
// @Description Authenticates a student with email and password, returns a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Authenticated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, ok, err := c.studentService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		c.logger.Error().Err(err).Msg("Authentication lookup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	// "No such student" and "wrong password" come out identical here
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials)
		return
	}

	token, expiresIn, err := c.jwtService.GenerateToken(student)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to generate access token")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Student: dto.NewStudentResponse(student),
	}))
}
