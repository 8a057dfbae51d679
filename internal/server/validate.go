package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/cadencehq/cadence/internal/entities"
)

// nolint:gochecknoglobals
var validate = newValidator()

// fieldMessages are keyed by "<json field>.<tag>" and take precedence over tagMessages.
// nolint:gochecknoglobals
var fieldMessages = map[string]string{
	"content.notblank":     "Content is required",
	"content.max":          fmt.Sprintf("Content must be less than %d characters", maxContentLength),
	"headline.max":         fmt.Sprintf("Headline must be less than %d characters", maxHeadlineLength),
	"platform.required":    "Platform is required",
	"publishedAt.required": "Published date is required",
	"scheduledAt.required": "Scheduled time is required",
	"startDate.isodate":    "Invalid start date format",
	"endDate.isodate":      "Invalid end date format",
	"count.min":            "Count must be between 1 and 10",
	"count.max":            "Count must be between 1 and 10",
	"impressions.min":      "Impressions must be at least 1",
	"id.required":          "Content ID is required",
}

// nolint:gochecknoglobals
var tagMessages = map[string]string{
	"platform": "Invalid platform",
	"tone":     "Invalid tone",
	"status":   "Invalid status",
	"isodate":  "Invalid date format",
}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "platform", func(fl validator.FieldLevel) bool {
		_, err := entities.ParsePlatform(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "tone", func(fl validator.FieldLevel) bool {
		_, err := entities.ParseTone(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "status", func(fl validator.FieldLevel) bool {
		_, err := entities.ParseStatus(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := parseTime(fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %s validation: %s", tag, err))
	}
}

// validateRequest validates request struct by its validate tags and converts failures to validation.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fe validator.ValidationErrors
	if !errors.As(err, &fe) {
		return fmt.Errorf("%w: %s", errInvalidRequest, err.Error())
	}

	out := make(validation, len(fe))
	for i, e := range fe {
		out[i] = FieldError{
			Field:   fieldPath(e.Namespace()),
			Message: fieldMessage(e),
		}
	}

	return out
}

// fieldPath strips request type name from namespace, e.g. "ImportPostsRequest.posts[0].content".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(e validator.FieldError) string {
	if m, ok := fieldMessages[e.Field()+"."+e.Tag()]; ok {
		return m
	}
	if m, ok := tagMessages[e.Tag()]; ok {
		return m
	}
	return fmt.Sprintf("Invalid %s", e.Field())
}

// The following helpers convert values which have already passed validation.

func optPlatform(s string) *entities.Platform {
	if s == "" {
		return nil
	}

	p, _ := entities.ParsePlatform(s) // err is nil after validation
	return &p
}

func optTone(s string) entities.Tone {
	if s == "" {
		return ""
	}

	t, _ := entities.ParseTone(s) // err is nil after validation
	return t
}

func optStatus(s string) *entities.Status {
	if s == "" {
		return nil
	}

	st, _ := entities.ParseStatus(s) // err is nil after validation
	return &st
}

func optTime(s string) *time.Time {
	if s == "" {
		return nil
	}

	t, _ := parseTime(s) // err is nil after validation
	return &t
}
