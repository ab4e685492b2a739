package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lukaspustina/fastfile/internal/pagesize"
	"github.com/lukaspustina/fastfile/pkg/fastfile"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterStructValidation(validateReaderConfig, ReaderConfig{})
	})
	return validate
}

// Validate checks the configuration against its struct tags and the
// cross-field rules of the reader settings.
func Validate(cfg *Config) error {
	if err := getValidator().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return formatValidationErrors(verrs)
		}
		return err
	}
	return nil
}

// validateReaderConfig checks thresholds and buffer bounds together.
func validateReaderConfig(sl validator.StructLevel) {
	rc := sl.Current().Interface().(ReaderConfig)

	if rc.RangeAdviseAbove < rc.NoHintBelow {
		sl.ReportError(rc.RangeAdviseAbove, "RangeAdviseAbove", "range_advise_above", "gtefield", "NoHintBelow")
	}

	aligned := true
	if rc.MinBuffer.Uint64()%uint64(pagesize.Get()) != 0 {
		sl.ReportError(rc.MinBuffer, "MinBuffer", "min_buffer", "pagealigned", "")
		aligned = false
	}
	if rc.MaxBuffer.Uint64()%uint64(pagesize.Get()) != 0 {
		sl.ReportError(rc.MaxBuffer, "MaxBuffer", "max_buffer", "pagealigned", "")
		aligned = false
	}
	if !aligned {
		return
	}

	if err := fastfile.CheckBufferBounds(pagesize.Get(), rc.MinBuffer.Int(), rc.MaxBuffer.Int()); err != nil {
		sl.ReportError(rc.MaxBuffer, "MaxBuffer", "max_buffer", "bufferbounds", "")
	}
}

func formatValidationErrors(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed '%s=%s' (value: %v)", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed '%s' (value: %v)", field, fe.Tag(), fe.Value()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
