package checkout

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/novamart-dev/storefront-session/pkg/enums"
	pkgerrors "github.com/novamart-dev/storefront-session/pkg/errors"
)

// Form carries the checkout page's shipping and payment fields.
type Form struct {
	FullName      string              `json:"full_name" validate:"required"`
	Email         string              `json:"email" validate:"required,email"`
	Address       string              `json:"address" validate:"required"`
	City          string              `json:"city" validate:"required"`
	ZipCode       string              `json:"zip_code" validate:"required"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// ValidateForm checks the form fields without touching the cart or the
// network. Failures carry a per-field details map. The empty payment method
// resolves to cash on delivery; an unknown one fails validation.
func ValidateForm(form *Form) error {
	if form == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "form is required")
	}

	if form.PaymentMethod == "" {
		form.PaymentMethod = enums.PaymentMethodCashOnDelivery
	}
	if !form.PaymentMethod.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"payment_method": "is invalid"})
	}

	if err := validate.Struct(form); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return "is invalid"
}
