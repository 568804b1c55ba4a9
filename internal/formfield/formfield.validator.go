package formfield

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// SchemaRepository lists a category's active field definitions in stored
// order. One fetch per validation call; iteration happens in memory.
type SchemaRepository interface {
	ListActiveFields(ctx context.Context, categoryID int64) ([]FieldDefinition, error)
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Outcome is the complete result of one validation pass. Values contains
// only fields that were present and passed every applicable check, copied
// verbatim from the submission.
type Outcome struct {
	Valid  bool                   `json:"valid"`
	Errors []FieldError           `json:"errors"`
	Values map[string]interface{} `json:"values"`
}

type Validator struct {
	repo   SchemaRepository
	logger *zap.Logger
}

func NewValidator(repo SchemaRepository, logger *zap.Logger) *Validator {
	return &Validator{repo: repo, logger: logger}
}

var serviceErrorOutcome = Outcome{
	Errors: []FieldError{{Field: "general", Message: "Validation service error"}},
	Values: map[string]interface{}{},
}

// Validate checks the submitted values against the category's active
// fields. At most one error is reported per field (first failing check
// wins). Submitted keys with no matching active field are ignored.
func (v *Validator) Validate(ctx context.Context, categoryID int64, values map[string]interface{}) Outcome {
	fields, err := v.repo.ListActiveFields(ctx, categoryID)
	if err != nil {
		v.logger.Error("form field lookup failed",
			zap.Int64("category_id", categoryID), zap.Error(err))
		return serviceErrorOutcome
	}

	errs := []FieldError{}
	accepted := map[string]interface{}{}

	for _, field := range fields {
		value := values[field.Name]

		if field.Required && (isEmpty(value) || strings.TrimSpace(stringify(value)) == "") {
			errs = append(errs, FieldError{Field: field.Name, Message: field.Label + " is required"})
			continue
		}

		// Optional fields are only checked when a value was actually
		// submitted. Note no trimming happens on this path.
		if isEmpty(value) {
			continue
		}

		if msg, ok := checkKind(field, value); !ok {
			errs = append(errs, FieldError{Field: field.Name, Message: msg})
			continue
		}

		msg, ok, err := checkRules(field, value)
		if err != nil {
			v.logger.Error("unusable validation rule",
				zap.Int64("category_id", categoryID),
				zap.String("field", field.Name), zap.Error(err))
			return serviceErrorOutcome
		}
		if !ok {
			errs = append(errs, FieldError{Field: field.Name, Message: msg})
			continue
		}

		accepted[field.Name] = value
	}

	return Outcome{Valid: len(errs) == 0, Errors: errs, Values: accepted}
}
