package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate returns a 400 HTTPError naming the first failing rule.
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s=%v failed the %s rule", first.Field(), first.Value(), first.Tag()))
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

// SetupValidator installs the validator on e.
func SetupValidator(e *echo.Echo) {
	e.Validator = NewRequestValidator()
}
