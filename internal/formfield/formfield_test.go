package formfield

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSchemaRepo struct {
	fields []FieldDefinition
	err    error
}

func (f *fakeSchemaRepo) ListActiveFields(_ context.Context, _ int64) ([]FieldDefinition, error) {
	return f.fields, f.err
}

func newTestValidator(fields ...FieldDefinition) *Validator {
	return NewValidator(&fakeSchemaRepo{fields: fields}, zap.NewNop())
}

func findError(t *testing.T, out Outcome, field string) string {
	t.Helper()
	for _, e := range out.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	t.Fatalf("no error for field %q in %v", field, out.Errors)
	return ""
}

func TestValidateHappyPath(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "age", Label: "Age", Kind: KindNumber, Required: true, Rules: Rules{Min: 18}},
		FieldDefinition{Name: "color", Label: "Favorite Color", Kind: KindSelect, Options: []string{"red", "blue"}},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{
		"age":   float64(25),
		"color": "red",
	})
	assert.True(t, out.Valid)
	assert.Empty(t, out.Errors)
	assert.Equal(t, float64(25), out.Values["age"])
	assert.Equal(t, "red", out.Values["color"])
}

func TestRequiredFieldMissing(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "budget", Label: "Budget", Kind: KindNumber, Required: true},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{})
	assert.False(t, out.Valid)
	assert.Equal(t, "Budget is required", findError(t, out, "budget"))
}

func TestRequiredFieldWhitespaceOnly(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "title", Label: "Title", Kind: KindText, Required: true},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{"title": "   "})
	assert.False(t, out.Valid)
	assert.Equal(t, "Title is required", findError(t, out, "title"))
}

func TestOptionalEmptyValuesAreSkipped(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "notes", Label: "Notes", Kind: KindText, Rules: Rules{MinLength: 10}},
		FieldDefinition{Name: "count", Label: "Count", Kind: KindNumber, Rules: Rules{Min: 5}},
		FieldDefinition{Name: "agree", Label: "Agree", Kind: KindCheckbox},
	)

	// "", 0 and false all count as not submitted
	out := v.Validate(context.Background(), 1, map[string]interface{}{
		"notes": "",
		"count": float64(0),
		"agree": false,
	})
	assert.True(t, out.Valid)
	assert.Empty(t, out.Values)
}

func TestNumberKind(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "age", Label: "Age", Kind: KindNumber},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{"age": "abc"})
	assert.False(t, out.Valid)
	assert.Equal(t, "Age must be a valid number", findError(t, out, "age"))

	out = v.Validate(context.Background(), 1, map[string]interface{}{"age": "42"})
	assert.True(t, out.Valid)
}

func TestNumberMinMaxMessages(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "age", Label: "Age", Kind: KindNumber, Rules: Rules{Min: 18, Max: 99}},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{"age": float64(15)})
	assert.Equal(t, "Age must be at least 18", findError(t, out, "age"))

	out = v.Validate(context.Background(), 1, map[string]interface{}{"age": float64(120)})
	assert.Equal(t, "Age must not exceed 99", findError(t, out, "age"))
}

func TestDateKind(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "deadline", Label: "Deadline", Kind: KindDate},
	)

	for _, good := range []string{"2026-03-15", "2026-03-15T10:30:00Z", "03/15/2026"} {
		out := v.Validate(context.Background(), 1, map[string]interface{}{"deadline": good})
		assert.True(t, out.Valid, "expected %q to parse", good)
	}

	out := v.Validate(context.Background(), 1, map[string]interface{}{"deadline": "not-a-date"})
	assert.Equal(t, "Deadline must be a valid date", findError(t, out, "deadline"))
}

func TestChoiceKinds(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "color", Label: "Color", Kind: KindSelect, Options: []string{"red", "blue"}},
		FieldDefinition{Name: "size", Label: "Size", Kind: KindRadio, Options: []string{"S", "M", "L"}},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{
		"color": "green",
		"size":  "M",
	})
	assert.False(t, out.Valid)
	assert.Equal(t, "Color must be one of: red, blue", findError(t, out, "color"))
	assert.Len(t, out.Errors, 1)
}

func TestCheckboxKind(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "urgent", Label: "Urgent", Kind: KindCheckbox},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{"urgent": true})
	assert.True(t, out.Valid)

	out = v.Validate(context.Background(), 1, map[string]interface{}{"urgent": "true"})
	assert.True(t, out.Valid)

	out = v.Validate(context.Background(), 1, map[string]interface{}{"urgent": "yes"})
	assert.Equal(t, "Urgent must be true or false", findError(t, out, "urgent"))
}

func TestLengthRules(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "desc", Label: "Description", Kind: KindTextarea, Rules: Rules{MinLength: 5, MaxLength: 10}},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{"desc": "hip"})
	assert.Equal(t, "Description must be at least 5 characters long", findError(t, out, "desc"))

	out = v.Validate(context.Background(), 1, map[string]interface{}{"desc": "way too long a value"})
	assert.Equal(t, "Description must not exceed 10 characters", findError(t, out, "desc"))
}

func TestRuleOrderFirstFailureWins(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "code", Label: "Code", Kind: KindText,
			Rules: Rules{MinLength: 5, Pattern: `^[A-Z]+$`}},
	)

	// fails both minLength and pattern; only the length error surfaces
	out := v.Validate(context.Background(), 1, map[string]interface{}{"code": "ab"})
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "Code must be at least 5 characters long", out.Errors[0].Message)
}

func TestPatternRule(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "pin", Label: "PIN Code", Kind: KindText,
			Rules: Rules{Pattern: `^\d{6}$`, PatternMessage: "PIN must be 6 digits"}},
		FieldDefinition{Name: "ref", Label: "Reference", Kind: KindText,
			Rules: Rules{Pattern: `^[A-Z]{3}-\d+$`}},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{
		"pin": "12ab56",
		"ref": "bad ref",
	})
	assert.Equal(t, "PIN must be 6 digits", findError(t, out, "pin"))
	assert.Equal(t, "Reference format is invalid", findError(t, out, "ref"))
}

func TestUnknownSubmittedKeysAreIgnored(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "age", Label: "Age", Kind: KindNumber},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{
		"age":      float64(30),
		"stray":    "anything",
		"injected": map[string]interface{}{"x": 1},
	})
	assert.True(t, out.Valid)
	assert.Equal(t, map[string]interface{}{"age": float64(30)}, out.Values)
}

func TestMultipleErrorsReported(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "age", Label: "Age", Kind: KindNumber, Required: true},
		FieldDefinition{Name: "color", Label: "Color", Kind: KindSelect, Required: true, Options: []string{"red", "blue"}},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{"color": "green"})
	assert.False(t, out.Valid)
	assert.Len(t, out.Errors, 2)
	assert.Equal(t, "Age is required", findError(t, out, "age"))
	assert.Equal(t, "Color must be one of: red, blue", findError(t, out, "color"))
}

func TestRepositoryFailure(t *testing.T) {
	v := NewValidator(&fakeSchemaRepo{err: errors.New("db down")}, zap.NewNop())

	out := v.Validate(context.Background(), 1, map[string]interface{}{"age": float64(30)})
	assert.False(t, out.Valid)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "general", out.Errors[0].Field)
	assert.Equal(t, "Validation service error", out.Errors[0].Message)
}

func TestBadPatternAbortsPass(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "a", Label: "A", Kind: KindText, Rules: Rules{Pattern: `([`}},
		FieldDefinition{Name: "b", Label: "B", Kind: KindText, Required: true},
	)

	out := v.Validate(context.Background(), 1, map[string]interface{}{"a": "x"})
	assert.False(t, out.Valid)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "Validation service error", out.Errors[0].Message)
}

func TestZeroValuedRulesAreAbsent(t *testing.T) {
	v := newTestValidator(
		FieldDefinition{Name: "qty", Label: "Quantity", Kind: KindNumber, Rules: Rules{}},
	)

	// with no rules set, any valid number passes, including negatives
	out := v.Validate(context.Background(), 1, map[string]interface{}{"qty": float64(-5)})
	assert.True(t, out.Valid)
}
