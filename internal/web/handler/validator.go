package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	// FieldError describes a single failed validation.
	FieldError struct {
		FailedField string      `json:"field"`
		Tag         string      `json:"tag"`
		Value       interface{} `json:"value"`
	}

	// ErrorResponse is the json body of a failed api call.
	ErrorResponse struct {
		Error  string       `json:"error"`
		Fields []FieldError `json:"fields,omitempty"`
	}

	// XValidator wraps go-playground/validator for the api handlers.
	XValidator struct {
		validator *validator.Validate
	}
)

// NewValidator returns a XValidator.
func NewValidator() *XValidator {
	return &XValidator{validator: validator.New()}
}

// Validate validates data and returns the failed fields, nil if valid.
func (v *XValidator) Validate(data interface{}) []FieldError {
	var (
		fieldErrors []FieldError
		errs        validator.ValidationErrors
	)

	if err := v.validator.Struct(data); err != nil && errors.As(err, &errs) {
		for _, err := range errs {
			fieldErrors = append(fieldErrors, FieldError{
				FailedField: err.Field(),
				Tag:         err.Tag(),
				Value:       err.Value(),
			})
		}
	}

	return fieldErrors
}

// BadRequest answers with 400 and an ErrorResponse.
func BadRequest(c *fiber.Ctx, msg string, fields ...FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg, Fields: fields})
}
