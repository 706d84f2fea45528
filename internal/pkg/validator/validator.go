package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	cardNumberRe  = regexp.MustCompile(`^\d{16}$`)
	expiryMonthRe = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	expiryYearRe  = regexp.MustCompile(`^\d{4}$`)
	zipcodeRe     = regexp.MustCompile(`^\d{4,10}$`)
)

// Validator wraps go-playground/validator with the checkout-specific rules.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with JSON tag names and custom validations.
func New() *Validator {
	validate := validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Card fields get format checks only; real verification is the payment
	// backend's job.
	validate.RegisterValidation("card_number", func(fl validator.FieldLevel) bool {
		return cardNumberRe.MatchString(fl.Field().String())
	})

	validate.RegisterValidation("expiry_month", func(fl validator.FieldLevel) bool {
		return expiryMonthRe.MatchString(fl.Field().String())
	})

	validate.RegisterValidation("expiry_year", func(fl validator.FieldLevel) bool {
		return expiryYearRe.MatchString(fl.Field().String())
	})

	validate.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipcodeRe.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate validates a struct and returns a map of field errors
func (v *Validator) Validate(s interface{}) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "card_number":
			errors[field] = "Card number must be 16 digits"
		case "expiry_month":
			errors[field] = "Expiry month must be 01-12"
		case "expiry_year":
			errors[field] = "Expiry year must be a 4-digit year"
		case "zipcode":
			errors[field] = "Invalid zipcode"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}
