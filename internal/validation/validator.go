package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const maxTagNameLength = 100

var (
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	bankNamePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} &.,'()/-]*$`)
)

// Validator wraps the go-playground validator with the ledger's custom rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("tag_name", validateTagName)
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("bank_name", validateBankName)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateTagName accepts 1-100 characters after trimming, without control characters
func validateTagName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" || utf8.RuneCountInString(name) > maxTagNameLength {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// validateHexColor accepts #RGB and #RRGGBB
func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorPattern.MatchString(fl.Field().String())
}

// validateBankName requires a letter or digit first; the rest may add common punctuation
func validateBankName(fl validator.FieldLevel) bool {
	return bankNamePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// FieldErrors flattens validator errors into field -> message pairs
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["request"] = err.Error()
		return out
	}

	for _, fe := range validationErrors {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "tag_name":
		return "must be 1-100 characters without control characters"
	case "hex_color":
		return "must be a hex color such as #1A2B3C"
	case "bank_name":
		return "must start with a letter or digit"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	default:
		return "is invalid"
	}
}
