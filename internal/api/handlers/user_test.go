package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "food-donation-backend/internal/errors"
	"food-donation-backend/internal/mocks"
	"food-donation-backend/internal/service"
	"food-donation-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
	userID          uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = NewUserHandler(suite.mockUserService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	// Authenticated routes get the user id injected directly; token
	// verification is covered by the auth package tests.
	authed := func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	}

	users := suite.httpSuite.Router.Group("/api/users")
	{
		users.POST("/register", suite.handler.Register)
		users.POST("/login", suite.handler.Login)
		users.POST("/verify-account", suite.handler.VerifyAccount)
		users.GET("/profile", authed, suite.handler.Profile)
		users.GET("/resend-confirmation-email", authed, suite.handler.ResendConfirmationEmail)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) registrationBody() map[string]interface{} {
	return map[string]interface{}{
		"firstName":       "Jane",
		"lastName":        "Donor",
		"phoneNumber":     "0123456789",
		"email":           "jane@example.com",
		"password":        "Sup3rSecret",
		"confirmPassword": "Sup3rSecret",
		"country":         "Kenya",
	}
}

// TestRegister tests a successful registration
func (suite *UserHandlerTestSuite) TestRegister() {
	expected := &service.UserResponse{
		ID:         suite.userID,
		FirstName:  "Jane",
		LastName:   "Donor",
		Email:      "jane@example.com",
		Country:    "Kenya",
		IsVerified: false,
		CreatedOn:  "2026-01-01T00:00:00Z",
	}

	suite.mockUserService.EXPECT().
		Register(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users/register", suite.registrationBody())

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response struct {
		Msg     string               `json:"msg"`
		Success bool                 `json:"success"`
		Data    service.UserResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "User was successfully created", response.Msg)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), expected.Email, response.Data.Email)
	assert.False(suite.T(), response.Data.IsVerified)
}

// TestRegisterValidationErrors tests that field errors come back as 422
func (suite *UserHandlerTestSuite) TestRegisterValidationErrors() {
	suite.mockUserService.EXPECT().
		Register(gomock.Any()).
		Return(nil, &service.ValidationListError{Errors: []service.FieldError{
			{Field: "firstName", Message: "First name must be between 2 - 20 characters"},
			{Field: "phoneNumber", Message: "Phone number must be 10 digits"},
		}}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users/register", suite.registrationBody())

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)

	var response struct {
		Errors  []service.FieldError `json:"errors"`
		Success bool                 `json:"success"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.False(suite.T(), response.Success)
	assert.Len(suite.T(), response.Errors, 2)
	assert.Equal(suite.T(), "firstName", response.Errors[0].Field)
	assert.Equal(suite.T(), "First name must be between 2 - 20 characters", response.Errors[0].Message)
}

// TestRegisterDuplicateEmail tests that a taken email is a validation error
func (suite *UserHandlerTestSuite) TestRegisterDuplicateEmail() {
	suite.mockUserService.EXPECT().
		Register(gomock.Any()).
		Return(nil, &service.ValidationListError{Errors: []service.FieldError{
			{Field: "email", Message: "Email is already taken"},
		}}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users/register", suite.registrationBody())

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)

	var response struct {
		Errors []service.FieldError `json:"errors"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Email is already taken", response.Errors[0].Message)
}

// TestRegisterInvalidBody tests a malformed JSON body
func (suite *UserHandlerTestSuite) TestRegisterInvalidBody() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(
		"POST", "/api/users/register", nil,
		map[string]string{"Content-Type": "application/json"},
	)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestRegisterServiceError tests an unexpected failure during registration
func (suite *UserHandlerTestSuite) TestRegisterServiceError() {
	suite.mockUserService.EXPECT().
		Register(gomock.Any()).
		Return(nil, fmt.Errorf("database down")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users/register", suite.registrationBody())

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to create user")
}

// TestLogin tests a successful login
func (suite *UserHandlerTestSuite) TestLogin() {
	expected := &service.LoginResult{
		Token: "Bearer signed-token",
		User: &service.UserResponse{
			ID:         suite.userID,
			Email:      "jane@example.com",
			IsVerified: true,
		},
	}

	suite.mockUserService.EXPECT().
		Login(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users/login", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "Sup3rSecret",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Success bool                 `json:"success"`
		User    service.UserResponse `json:"user"`
		Token   string               `json:"token"`
		Msg     string               `json:"msg"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), "Bearer signed-token", response.Token)
	assert.Equal(suite.T(), "User successfully logged in", response.Msg)
	assert.Equal(suite.T(), "jane@example.com", response.User.Email)
}

// TestLoginInvalidCredentials tests that bad credentials return 401
func (suite *UserHandlerTestSuite) TestLoginInvalidCredentials() {
	suite.mockUserService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users/login", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "wrong",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid email or password")
}

// TestLoginUnknownEmailSameResponse tests that an unknown address is
// indistinguishable from a wrong password.
func (suite *UserHandlerTestSuite) TestLoginUnknownEmailSameResponse() {
	suite.mockUserService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "Sup3rSecret",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid email or password")
}

// TestProfile tests fetching the authenticated user's profile
func (suite *UserHandlerTestSuite) TestProfile() {
	expected := &service.UserResponse{
		ID:         suite.userID,
		FirstName:  "Jane",
		LastName:   "Donor",
		Email:      "jane@example.com",
		IsVerified: true,
	}

	suite.mockUserService.EXPECT().
		Profile(suite.userID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/profile", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		User service.UserResponse `json:"user"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), suite.userID, response.User.ID)
	assert.Equal(suite.T(), "jane@example.com", response.User.Email)
}

// TestProfileNotFound tests a profile request for a deleted account
func (suite *UserHandlerTestSuite) TestProfileNotFound() {
	suite.mockUserService.EXPECT().
		Profile(suite.userID).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/profile", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "User was not found")
}

// TestVerifyAccount tests a successful verification
func (suite *UserHandlerTestSuite) TestVerifyAccount() {
	suite.mockUserService.EXPECT().
		VerifyAccount("valid-token").
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users/verify-account", map[string]interface{}{
		"secretCode": "valid-token",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Msg     string `json:"msg"`
		Success bool   `json:"success"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Account was successfully verified", response.Msg)
	assert.True(suite.T(), response.Success)
}

// TestVerifyAccountUnknownToken tests that a bad token returns 404
func (suite *UserHandlerTestSuite) TestVerifyAccountUnknownToken() {
	suite.mockUserService.EXPECT().
		VerifyAccount("bogus").
		Return(apperrors.ErrVerificationToken).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users/verify-account", map[string]interface{}{
		"secretCode": "bogus",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Verification token was not found")
}

// TestVerifyAccountMissingCode tests that a body without secretCode is rejected
func (suite *UserHandlerTestSuite) TestVerifyAccountMissingCode() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/users/verify-account", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "secretCode is required")
}

// TestResendConfirmationEmail tests re-sending the verification mail
func (suite *UserHandlerTestSuite) TestResendConfirmationEmail() {
	suite.mockUserService.EXPECT().
		ResendConfirmationEmail(suite.userID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/resend-confirmation-email", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Msg     string `json:"msg"`
		Success bool   `json:"success"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Confirmation email was sent", response.Msg)
}

// TestResendConfirmationEmailAlreadyVerified tests resending for a verified account
func (suite *UserHandlerTestSuite) TestResendConfirmationEmailAlreadyVerified() {
	suite.mockUserService.EXPECT().
		ResendConfirmationEmail(suite.userID).
		Return(apperrors.ErrAlreadyVerified).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/resend-confirmation-email", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Account is already verified")
}

// TestResendConfirmationEmailDeliveryFailure tests a mail delivery failure
func (suite *UserHandlerTestSuite) TestResendConfirmationEmailDeliveryFailure() {
	suite.mockUserService.EXPECT().
		ResendConfirmationEmail(suite.userID).
		Return(fmt.Errorf("smtp connection refused")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/resend-confirmation-email", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Failed to send confirmation email")
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
