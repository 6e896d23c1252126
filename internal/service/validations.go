package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// At least one upper, lower, digit and special character
		validate.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
			var upper, lower, digit, special bool
			for _, char := range fl.Field().String() {
				switch {
				case unicode.IsUpper(char):
					upper = true
				case unicode.IsLower(char):
					lower = true
				case unicode.IsDigit(char):
					digit = true
				case unicode.IsPunct(char) || unicode.IsSymbol(char):
					special = true
				}
			}
			return upper && lower && digit && special
		})
		validate.RegisterValidation("schedule_status", func(fl validator.FieldLevel) bool {
			return entity.ScheduleStatus(fl.Field().String()).Valid()
		})
	})
}

func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fieldErr.Namespace(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %s", errorvalues.ErrValidation, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %s", errorvalues.ErrValidation, err.Error())
}
