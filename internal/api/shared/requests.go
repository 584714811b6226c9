package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration cannot fail for a func with a valid tag name.
	_ = v.RegisterValidation("strongpassword", validStrongPassword)
	return v
}

// validStrongPassword requires at least one uppercase letter, one lowercase
// letter, one digit and one special character. Length is enforced
// separately with the min tag.
func validStrongPassword(fl validator.FieldLevel) bool {
	var upper, lower, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct. Types with their own
// Validate method use that; everything else goes through the tag-based
// struct validator.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return validate.Struct(v)
}

// ValidationMessage flattens a validator error into a short human-readable
// description of the first failing field.
func ValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid request payload."
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

	switch fe.Tag() {
	case "required":
		return "Field '" + field + "' is required."
	case "email":
		return "Field '" + field + "' must be a valid email address."
	case "min":
		return "Field '" + field + "' is too short."
	case "max":
		return "Field '" + field + "' is too long."
	case "len":
		return "Field '" + field + "' has the wrong length."
	case "eqfield":
		return "Field '" + field + "' must match '" + strings.ToLower(fe.Param()[:1]) + fe.Param()[1:] + "'."
	case "strongpassword":
		return "Field '" + field + "' must contain upper and lower case letters, a digit and a special character."
	default:
		return "Field '" + field + "' is invalid."
	}
}
