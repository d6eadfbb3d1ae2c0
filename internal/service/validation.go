package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single caller-fixable validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationListError carries the structured list of field errors returned to
// the caller with 400/422. Every failed field appears exactly once.
type ValidationListError struct {
	Errors []FieldError
}

func (e *ValidationListError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Errors))
}

// AsValidationList extracts a ValidationListError if err carries one
func AsValidationList(err error) (*ValidationListError, bool) {
	var vle *ValidationListError
	if errors.As(err, &vle) {
		return vle, true
	}
	return nil, false
}

// NewValidator builds the shared validator instance with custom rules registered
func NewValidator() *validator.Validate {
	v := validator.New()
	// password: at least one digit, one lowercase and one uppercase letter
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var hasDigit, hasLower, hasUpper bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsDigit(r):
				hasDigit = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsUpper(r):
				hasUpper = true
			}
		}
		return hasDigit && hasLower && hasUpper
	})
	return v
}

// fieldMessages maps request type, struct field and rule to the caller-facing
// message. Keying by request type keeps shared field names like Address from
// borrowing another request's wording.
var fieldMessages = map[string]map[string]map[string]string{
	"RegisterUserRequest": {
		"FirstName": {
			"required": "First name is required",
			"min":      "First name must be between 2 - 20 characters",
			"max":      "First name must be between 2 - 20 characters",
		},
		"LastName": {
			"required": "Last name is required",
			"min":      "Last name must be between 2 - 20 characters",
			"max":      "Last name must be between 2 - 20 characters",
		},
		"PhoneNumber": {
			"required": "Phone number is required",
			"len":      "Phone number must be 10 digits",
			"numeric":  "Phone number must be 10 digits",
		},
		"Email": {
			"required": "Email is required",
			"email":    "Please enter a valid email address",
		},
		"Password": {
			"required": "Password is required",
			"min":      "Password must be at least 8 characters",
			"password": "Password must contain a digit, a lowercase and an uppercase letter",
		},
		"ConfirmPassword": {
			"required": "Confirm password is required",
			"eqfield":  "Passwords do not match",
		},
		"Country": {
			"required": "Country is required",
		},
		"Address": {
			"max": "Address is too long",
		},
	},
	"LoginRequest": {
		"Email": {
			"required": "Email is required",
			"email":    "Please enter a valid email address",
		},
		"Password": {
			"required": "Password is required",
		},
	},
	"CreateOrganisationRequest": {
		"Name": {
			"required": "Organisation name is required",
			"max":      "Organisation name is too long",
		},
		"Type": {
			"required": "Organisation type is required",
		},
		"Email": {
			"required": "Email is required",
			"email":    "Please enter a valid email address",
		},
		"PhoneNumber": {
			"required": "Phone number is required",
			"max":      "Phone number is too long",
		},
		"Address": {
			"required": "Organisation address is required",
			"max":      "Organisation address is too long",
		},
	},
}

// jsonFieldNames maps struct field names to their wire names
var jsonFieldNames = map[string]string{
	"FirstName":       "firstName",
	"LastName":        "lastName",
	"PhoneNumber":     "phoneNumber",
	"Email":           "email",
	"Password":        "password",
	"ConfirmPassword": "confirmPassword",
	"Country":         "country",
	"Address":         "address",
	"Name":            "name",
	"Type":            "organisationType",
}

// toValidationList converts validator.ValidationErrors into the structured
// field error list; unknown fields fall back to a generic message.
func toValidationList(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	list := &ValidationListError{}
	for _, fe := range verrs {
		requestType, _, _ := strings.Cut(fe.StructNamespace(), ".")
		field := fe.StructField()
		name, ok := jsonFieldNames[field]
		if !ok {
			name = field
		}
		msg := fieldMessages[requestType][field][fe.Tag()]
		if msg == "" {
			msg = fmt.Sprintf("%s is invalid", name)
		}
		list.Errors = append(list.Errors, FieldError{Field: name, Message: msg})
	}
	return list
}
