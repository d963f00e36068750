// Package validate provides a validator singleton used to check caller-supplied
// query parameters before any I/O happens
package validate

import (
	"reflect"
	"strings"
	"sync"

	perr "polittrack/internal/platform/errors"
	"polittrack/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Svc holds a singleton validator and translator
type Svc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *Svc
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *Svc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		vSvc = &Svc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *Svc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// Struct validates v and maps the first failure to a project Validation error
// with the offending field attached
func Struct(v any) error {
	if err := Get().Validator.Struct(v); err != nil {
		if inv, ok := err.(*validator.InvalidValidationError); ok {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return perr.Validationf("validation error")
		}
		field, msg := FieldAndMessage(err)
		return perr.WithField(perr.Validationf("%s", msg), field)
	}
	return nil
}

// FieldAndMessage returns the first field and translated message
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return "", inv.Error()
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}
