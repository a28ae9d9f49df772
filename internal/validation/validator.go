// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single failed rule.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

// Error returns the human-readable message.
func (e FieldError) Error() string {
	return e.Message
}

// Error collects every failed rule of a struct.
type Error struct {
	Fields []FieldError
}

// Error joins all field messages.
func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		messages[i] = fe.Message
	}
	return strings.Join(messages, "; ")
}

// HasTag reports whether any field failed the given rule.
func (e *Error) HasTag(tag string) bool {
	for _, fe := range e.Fields {
		if fe.Tag == tag {
			return true
		}
	}
	return false
}

// GetValidator returns the singleton validator instance.
// Field names in errors come from the json tag when present, then the koanf tag.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "koanf"} {
				name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		//nolint:errcheck // tag name and func are static
		validate.RegisterValidation("mongodb_uri", validateMongoURI)
	})

	return validate
}

// validateMongoURI accepts mongodb:// and mongodb+srv:// connection strings.
func validateMongoURI(fl validator.FieldLevel) bool {
	uri := fl.Field().String()
	for _, scheme := range []string{"mongodb://", "mongodb+srv://"} {
		if strings.HasPrefix(uri, scheme) && len(uri) > len(scheme) {
			return true
		}
	}
	return false
}

// ValidateStruct validates s with the singleton validator.
// It returns nil when every rule passes.
//
//	if err := validation.ValidateStruct(&cfg.Mongo); err != nil {
//	    return fmt.Errorf("mongo config: %w", err)
//	}
func ValidateStruct(s interface{}) *Error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &Error{Fields: []FieldError{{
			Field:   "unknown",
			Tag:     "unknown",
			Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: translateError(fe),
		}
	}
	return &Error{Fields: fields}
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required":    "%s is required",
	"mongodb_uri": "%s must start with mongodb:// or mongodb+srv://",
	"hostname":    "%s must be a valid hostname",
	"ip":          "%s must be a valid IP address",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
}

func translateError(fe validator.FieldError) string {
	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, fe.Field())
	}
	if template, ok := errorMessageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(template, fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}
