package handlers

import (
	"errors"
	"net/http"

	"food-donation-backend/internal/auth"
	apperrors "food-donation-backend/internal/errors"
	"food-donation-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user accounts
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// VerifyAccountBody represents the expected request body for POST /verify-account
type VerifyAccountBody struct {
	SecretCode string `json:"secretCode" binding:"required"`
}

// Register handles POST /api/users/register
// @Summary Register a new user
// @Description Create an unverified user account and send a verification email
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.RegisterUserRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "Successfully created user"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 422 {object} map[string]interface{} "Validation errors"
// @Router /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body", "success": false})
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		if vle, ok := service.AsValidationList(err); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": vle.Errors, "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create user", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":     "User was successfully created",
		"success": true,
		"data":    user,
	})
}

// Login handles POST /api/users/login
// @Summary Log in
// @Description Authenticate with email and password, returning a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Successfully logged in"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body", "success": false})
		return
	}

	result, err := h.userService.Login(&req)
	if err != nil {
		// Unknown email and wrong password produce the same response so the
		// endpoint cannot be used to probe which addresses are registered.
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid email or password", "success": false})
			return
		}
		if vle, ok := service.AsValidationList(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": vle.Errors, "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to log in", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    result.User,
		"token":   result.Token,
		"msg":     "User successfully logged in",
	})
}

// Profile handles GET /api/users/profile
// @Summary Get the logged in user's profile
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "User profile"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Security BearerAuth
// @Router /users/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Authentication required", "success": false})
		return
	}

	user, err := h.userService.Profile(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User was not found", "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to get profile", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// VerifyAccount handles POST /api/users/verify-account
// @Summary Verify an account
// @Description Mark the account holding the given verification token as verified
// @Tags users
// @Accept json
// @Produce json
// @Param body body VerifyAccountBody true "Verification token"
// @Success 200 {object} map[string]interface{} "Account verified"
// @Failure 404 {object} map[string]interface{} "Unknown token"
// @Router /users/verify-account [post]
func (h *UserHandler) VerifyAccount(c *gin.Context) {
	var body VerifyAccountBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "secretCode is required", "success": false})
		return
	}

	if err := h.userService.VerifyAccount(body.SecretCode); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Verification token was not found", "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to verify account", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Account was successfully verified", "success": true})
}

// ResendConfirmationEmail handles GET /api/users/resend-confirmation-email
// @Summary Resend the verification email
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "Email sent"
// @Failure 400 {object} map[string]interface{} "Already verified or delivery failed"
// @Security BearerAuth
// @Router /users/resend-confirmation-email [get]
func (h *UserHandler) ResendConfirmationEmail(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Authentication required", "success": false})
		return
	}

	if err := h.userService.ResendConfirmationEmail(userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyVerified):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Account is already verified", "success": false})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"msg": "User was not found", "success": false})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Failed to send confirmation email", "success": false})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Confirmation email was sent", "success": true})
}
