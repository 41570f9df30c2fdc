package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vango-dev/toastui/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	metricNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			d, err := time.ParseDuration(fl.Field().String())
			return err == nil && d > 0
		})

		_ = v.RegisterValidation("metric_name", func(fl validator.FieldLevel) bool {
			return metricNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration. The first failing field is reported
// as an E121 error naming the field by its JSON path.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return errors.New("E121").Wrap(err)
	}

	fe := ves[0]
	return errors.New("E121").
		WithDetail(fmt.Sprintf("%s failed validation for tag '%s'", jsonFieldName(fe), fe.Tag())).
		WithSuggestion("Fix the value in " + ConfigFileName)
}

// jsonFieldName turns Config.server.port into server.port. Field names
// already come from the json tags.
func jsonFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
