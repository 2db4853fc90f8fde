package submission

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formgate/pkg/rules"
)

// ErrInvalidRegistration wraps every payload validation failure.
var ErrInvalidRegistration = errors.New("submission: invalid registration")

// Registration is the payload handed to the transport collaborator.
type Registration struct {
	Name  string `json:"name" validate:"fg_name"`
	Email string `json:"email" validate:"fg_email"`
	Age   int64  `json:"age" validate:"gte=18"`
}

// FromValues builds a Registration from raw form values keyed by field
// identifier. Age takes the numeric prefix of the raw value, matching the
// age rule; a value with no digits yields zero.
func FromValues(values map[string]string) Registration {
	age, _ := rules.LeadingInt(values["age"])
	return Registration{
		Name:  values["name"],
		Email: values["email"],
		Age:   age,
	}
}

// Values returns the payload as a JSON-shaped map.
func (r Registration) Values() map[string]any {
	return map[string]any{
		"name":  r.Name,
		"email": r.Email,
		"age":   r.Age,
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
	validateErr  error
)

func payloadValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		for tag, name := range map[string]string{"fg_name": "name", "fg_email": "email"} {
			rule, ok := rules.Lookup(name)
			if !ok {
				validateErr = fmt.Errorf("submission: rule %q is not registered", name)
				return
			}
			if err := v.RegisterValidation(tag, ruleValidation(rule)); err != nil {
				validateErr = fmt.Errorf("submission: register %s: %w", tag, err)
				return
			}
		}
		validate = v
	})
	return validate, validateErr
}

func ruleValidation(rule rules.Rule) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return rule(fl.Field().String())
	}
}

// Validate re-checks r against the form rules.
func Validate(r Registration) error {
	v, err := payloadValidator()
	if err != nil {
		return err
	}
	if err := v.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidRegistration, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
	}
	return nil
}
