// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

// Package validation provides struct validation using go-playground/validator
// v10. A thread-safe singleton validator carries custom rules for gift
// request fields (style tags, budget ranges, rejection reasons) and
// translates failures into the API's VALIDATION_ERROR shape.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/giftwise/internal/catalog"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single field validation failure.
type FieldError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the struct field name that failed validation.
func (e *FieldError) Field() string { return e.field }

// Tag returns the validation tag that failed.
func (e *FieldError) Tag() string { return e.tag }

// Error returns a human-readable message.
func (e *FieldError) Error() string { return e.message }

// RequestError is a collection of field validation failures for one request.
type RequestError struct {
	errors []FieldError
}

// Errors returns the individual field failures.
func (ve *RequestError) Errors() []FieldError { return ve.errors }

// Error implements the error interface.
func (ve *RequestError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.errors))
	for i, err := range ve.errors {
		messages[i] = err.message
	}
	return strings.Join(messages, "; ")
}

// Details returns a map suitable for the API error details field.
func (ve *RequestError) Details() map[string]interface{} {
	if len(ve.errors) == 1 {
		err := ve.errors[0]
		return map[string]interface{}{
			"field": err.field,
			"tag":   err.tag,
			"value": err.value,
		}
	}

	fields := make([]map[string]interface{}, len(ve.errors))
	for i, err := range ve.errors {
		fields[i] = map[string]interface{}{
			"field":   err.field,
			"tag":     err.tag,
			"message": err.message,
		}
	}
	return map[string]interface{}{"fields": fields}
}

// GetValidator returns the singleton validator, initialized on first use
// with the gift-domain custom rules.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Domain value sets. Registration errors only occur for empty tag
		// names, so they are safe to ignore here.
		_ = validate.RegisterValidation("styletag", func(fl validator.FieldLevel) bool {
			_, ok := catalog.ParseStyleTag(fl.Field().String())
			return ok
		})
		_ = validate.RegisterValidation("budgetrange", func(fl validator.FieldLevel) bool {
			switch strings.ToUpper(fl.Field().String()) {
			case "LOW", "MEDIUM", "HIGH", "LUXURY":
				return true
			}
			return false
		})
		_ = validate.RegisterValidation("rejectionreason", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case "NOT_INTERESTED", "ALREADY_OWNS", "TOO_EXPENSIVE", "DISLIKED", "OTHER":
				return true
			}
			return false
		})
	})

	return validate
}

// ValidateStruct validates a struct using the singleton validator. Returns
// nil on success or a *RequestError describing every failing field.
func ValidateStruct(s interface{}) *RequestError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestError{errors: []FieldError{{
			field:   "unknown",
			tag:     "unknown",
			message: err.Error(),
		}}}
	}

	fieldErrors := make([]FieldError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = FieldError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr),
		}
	}
	return &RequestError{errors: fieldErrors}
}

var errorMessageTemplates = map[string]string{
	"required":        "%s is required",
	"styletag":        "%s must be a known style tag",
	"budgetrange":     "%s must be one of: LOW, MEDIUM, HIGH, LUXURY",
	"rejectionreason": "%s must be a known rejection reason",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}
	return translateMinMax(fe, field, tag, param)
}

func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	isString := fe.Kind().String() == "string"

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
