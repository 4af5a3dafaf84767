package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config is the run configuration of the console game
type Config struct {
	// Theme is empty to pick one from the terminal
	Theme       string `validate:"omitempty,oneof=off green gray"`
	LogLevel    string `validate:"required,oneof=debug info warn error"`
	LogFile     string `validate:"omitempty,max=4096"`
	HistoryFile string `validate:"omitempty,max=4096"`
}

func Default() Config {
	return Config{
		LogLevel: "warn",
	}
}

var validate = validator.New()

// Validate checks the configuration and reports every failing field in one error
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	var details strings.Builder
	for _, e := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch e.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", e.Field()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param()))
		case "max":
			if e.Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at most %s", e.Field(), e.Param()))
			}
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", e.Field(), e.Tag()))
		}
	}

	return fmt.Errorf("invalid configuration: %s", details.String())
}
