package submission

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formgate/pkg/rules"
)

// Contract returns the OpenAPI schema of a Registration payload.
func Contract() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema().WithMinLength(rules.MinNameLength)).
		WithProperty("email", openapi3.NewStringSchema().WithPattern(rules.EmailPattern)).
		WithProperty("age", openapi3.NewInt64Schema().WithMin(rules.MinAge))
	schema.Required = []string{"name", "email", "age"}
	schema.Title = "Registration"
	return schema
}

// CheckContract validates r against Contract.
func CheckContract(r Registration) error {
	payload := map[string]any{
		"name":  r.Name,
		"email": r.Email,
		"age":   float64(r.Age),
	}
	if err := Contract().VisitJSON(payload, openapi3.MultiErrors()); err != nil {
		var multi openapi3.MultiError
		if errors.As(err, &multi) && len(multi) == 1 {
			err = multi[0]
		}
		return fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
	}
	return nil
}
