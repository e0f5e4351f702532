package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/church-ledger/backend/internal/application/usecase/auth"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/church-ledger/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user management endpoints.
type UserController struct {
	createUserUseCase     *auth.CreateUserUseCase
	getCurrentUserUseCase *auth.GetCurrentUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUserUseCase *auth.CreateUserUseCase,
	getCurrentUserUseCase *auth.GetCurrentUserUseCase,
) *UserController {
	return &UserController{
		createUserUseCase:     createUserUseCase,
		getCurrentUserUseCase: getCurrentUserUseCase,
	}
}

// Create handles POST /users requests. Only administrators reach it.
func (c *UserController) Create(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUserUseCase.Execute(ctx.Request.Context(), auth.CreateUserInput{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		Role:      req.Role,
		CreatedBy: email,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// Me handles GET /users/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	user, err := c.getCurrentUserUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}
