package handlers

import (
	"net/http"

	"food-donation-backend/internal/auth"
	apperrors "food-donation-backend/internal/errors"
	"food-donation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganisationHandler handles HTTP requests for organisations
type OrganisationHandler struct {
	orgService service.OrganisationServiceInterface
}

// NewOrganisationHandler creates a new organisation handler
func NewOrganisationHandler(orgService service.OrganisationServiceInterface) *OrganisationHandler {
	return &OrganisationHandler{orgService: orgService}
}

// Register handles POST /api/organisations/register
// @Summary Register an organisation
// @Description Create an organisation owned by the authenticated, verified user
// @Tags organisations
// @Accept json
// @Produce json
// @Param organisation body service.CreateOrganisationRequest true "Organisation data"
// @Success 201 {object} map[string]interface{} "Successfully created organisation"
// @Failure 400 {object} map[string]interface{} "Validation errors"
// @Failure 403 {object} map[string]interface{} "Account not verified"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /organisations/register [post]
func (h *OrganisationHandler) Register(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Authentication required", "success": false})
		return
	}

	var req service.CreateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body", "success": false})
		return
	}

	org, err := h.orgService.Create(userID, &req)
	if err != nil {
		if vle, ok := service.AsValidationList(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": vle.Errors, "success": false})
			return
		}
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"msg": "User was not found", "success": false})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"msg": "Please verify your account to proceed", "success": false})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create organisation", "success": false})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":          "Organisation was successfully created",
		"organisation": org,
	})
}

// MyOrganisations handles GET /api/organisations/my-organisations
// @Summary List the authenticated user's organisations
// @Tags organisations
// @Produce json
// @Success 200 {object} map[string]interface{} "Organisations retrieved"
// @Security BearerAuth
// @Router /organisations/my-organisations [get]
func (h *OrganisationHandler) MyOrganisations(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Authentication required", "success": false})
		return
	}

	orgs, err := h.orgService.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Failed to retrieve organisations", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organisations": orgs,
		"msg":           "Organisations retrieved",
		"success":       true,
	})
}

// GetByID handles GET /api/organisations/organisation/:id
// @Summary Get one organisation by id
// @Description Fetch an organisation owned by the authenticated user; other users' organisations are not found
// @Tags organisations
// @Produce json
// @Param id path string true "Organisation ID"
// @Success 200 {object} map[string]interface{} "Organisation"
// @Failure 404 {object} map[string]interface{} "Organisation not found"
// @Security BearerAuth
// @Router /organisations/organisation/{id} [get]
func (h *OrganisationHandler) GetByID(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Authentication required", "success": false})
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid organisation id", "success": false})
		return
	}

	org, err := h.orgService.GetForUser(orgID, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Organisation was not found", "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to get organisation", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organisation": org,
		"success":      true,
	})
}
