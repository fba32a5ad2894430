package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
	"github.com/SscSPs/crypto_wallet_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService   portssvc.UserSvcFacade
	walletService portssvc.WalletReaderSvc
}

func newUserHandler(us portssvc.UserSvcFacade, ws portssvc.WalletReaderSvc) *userHandler {
	return &userHandler{
		userService:   us,
		walletService: ws,
	}
}

// registerUserRoutes registers the read routes on rg and the create route on admin.
func registerUserRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup, userService portssvc.UserSvcFacade, walletService portssvc.WalletReaderSvc) {
	h := newUserHandler(userService, walletService)

	admin.POST("/users", h.createUser)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/:userID", h.getUser)
		users.GET("/:userID/wallets", h.listUserWallets)
	}
}

// createUser godoc
// @Summary Create a new user
// @Description Registers a user with a unique username (admin operation)
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Username already exists"
// @Failure 500 {object} map[string]string "Failed to create user"
// @Router /admin/users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce  json
// @Param   userID path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to retrieve user"
// @Router /users/{userID} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger.With(slog.Int64("user_id", userID)), err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Description Lists users ordered by ID using keyset pagination
// @Tags users
// @Produce  json
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListUsersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list users"
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListUsers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	users, nextToken, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserResponse(users, nextToken))
}

// listUserWallets godoc
// @Summary List a user's wallets
// @Tags users
// @Produce  json
// @Param   userID path int true "User ID"
// @Success 200 {array} dto.WalletResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to list wallets"
// @Router /users/{userID}/wallets [get]
func (h *userHandler) listUserWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	wallets, err := h.walletService.ListUserWallets(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger.With(slog.Int64("user_id", userID)), err, "Failed to list wallets")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWalletResponse(wallets))
}
