package form

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Validator produces the feedback for a single field value.
type Validator interface {
	ValidateField(spec FieldSpec, value string) field.Feedback
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(spec FieldSpec, value string) field.Feedback

// ValidateField calls fn.
func (fn ValidatorFunc) ValidateField(spec FieldSpec, value string) field.Feedback {
	return fn(spec, value)
}

// RuleValidator evaluates FieldSpec.Rules with go-playground/validator.
// Optional rules are skipped for empty values unless the tag list contains
// "required".
type RuleValidator struct {
	validate *validator.Validate
}

// NewRuleValidator returns a RuleValidator backed by a fresh validator
// instance.
func NewRuleValidator() *RuleValidator {
	return &RuleValidator{validate: validator.New()}
}

// ValidateField implements Validator. Tags are evaluated before the Enum
// membership check.
func (r *RuleValidator) ValidateField(spec FieldSpec, value string) field.Feedback {
	rules := strings.TrimSpace(spec.Rules)
	if r == nil || r.validate == nil || (rules == "" && len(spec.Enum) == 0) {
		return field.NoError{}
	}
	if strings.TrimSpace(value) == "" && !hasTag(rules, "required") {
		return field.NoError{}
	}

	if rules != "" {
		if err := r.validate.Var(value, rules); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) || len(verrs) == 0 {
				return field.HasError{Message: err.Error()}
			}
			first := verrs[0]
			return field.HasError{Message: messageFor(spec, first.Tag(), ruleMessage(first.Tag(), first.Param()))}
		}
	}

	if len(spec.Enum) > 0 && !contains(spec.Enum, value) {
		return field.HasError{Message: messageFor(spec, "oneof", "Must be one of: "+strings.Join(spec.Enum, ", "))}
	}
	return field.NoError{}
}

var (
	checkOnce     sync.Once
	checkValidate *validator.Validate
)

// CheckRules reports whether rules is a tag list the validator can evaluate.
// Undefined tags and malformed parameters make validator panic at
// evaluation time; CheckRules dry-runs the list and turns the panic into an
// error.
func CheckRules(rules string) (err error) {
	rules = strings.TrimSpace(rules)
	if rules == "" {
		return nil
	}
	checkOnce.Do(func() {
		checkValidate = validator.New()
	})
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%q: %v", rules, rec)
		}
	}()
	for _, sample := range []string{"", "x"} {
		_ = checkValidate.Var(sample, rules)
	}
	return nil
}

func messageFor(spec FieldSpec, tag, fallback string) string {
	if custom := strings.TrimSpace(spec.Messages[tag]); custom != "" {
		return custom
	}
	return fallback
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}

func hasTag(rules, tag string) bool {
	for _, part := range strings.Split(rules, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(part), "=")
		if name == tag {
			return true
		}
	}
	return false
}

func ruleMessage(tag, param string) string {
	switch tag {
	case "required":
		return "Required"
	case "email":
		return "Invalid email address"
	case "url", "uri":
		return "Invalid URL"
	case "numeric", "number":
		return "Must be a number"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", param)
	case "max":
		return fmt.Sprintf("Must be at most %s characters", param)
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", param)
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Join(strings.Fields(param), ", "))
	case "alphanum":
		return "Only letters and digits are allowed"
	default:
		return fmt.Sprintf("Failed %s validation", tag)
	}
}
