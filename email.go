package schemarule

import (
	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type emailRule struct {
	validation.StringRule
}

var email = emailRule{
	validation.NewStringRuleWithError(
		govalidator.IsEmail,
		validation.NewError("validation_is_email", "must be a valid email address"),
	),
}

func (r emailRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = "email"
	return nil
}
