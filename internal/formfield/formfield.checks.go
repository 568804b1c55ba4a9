package formfield

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// checkKind dispatches to the per-kind check. Returns (message, false) on
// the first failure; text and textarea have no kind-level check.
func checkKind(field FieldDefinition, value interface{}) (string, bool) {
	switch field.Kind {
	case KindNumber:
		return checkNumber(field, value)
	case KindDate:
		return checkDate(field, value)
	case KindSelect, KindRadio:
		return checkChoice(field, value)
	case KindCheckbox:
		return checkCheckbox(field, value)
	default:
		return "", true
	}
}

func checkNumber(field FieldDefinition, value interface{}) (string, bool) {
	if _, ok := parseNumber(value); !ok {
		return field.Label + " must be a valid number", false
	}
	return "", true
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

func checkDate(field FieldDefinition, value interface{}) (string, bool) {
	s := strings.TrimSpace(stringify(value))
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return "", true
		}
	}
	return field.Label + " must be a valid date", false
}

func checkChoice(field FieldDefinition, value interface{}) (string, bool) {
	if len(field.Options) == 0 {
		return "", true
	}
	if s, ok := value.(string); ok {
		for _, opt := range field.Options {
			if s == opt {
				return "", true
			}
		}
	}
	return field.Label + " must be one of: " + strings.Join(field.Options, ", "), false
}

func checkCheckbox(field FieldDefinition, value interface{}) (string, bool) {
	switch v := value.(type) {
	case bool:
		return "", true
	case string:
		if v == "true" || v == "false" {
			return "", true
		}
	}
	return field.Label + " must be true or false", false
}

// checkRules applies the optional constraints in a fixed order and stops
// at the first failure. A pattern that does not compile aborts the whole
// validation pass via the error return.
func checkRules(field FieldDefinition, value interface{}) (string, bool, error) {
	rules := field.Rules
	s := stringify(value)

	if rules.MinLength > 0 && utf8.RuneCountInString(s) < rules.MinLength {
		return fmt.Sprintf("%s must be at least %d characters long", field.Label, rules.MinLength), false, nil
	}
	if rules.MaxLength > 0 && utf8.RuneCountInString(s) > rules.MaxLength {
		return fmt.Sprintf("%s must not exceed %d characters", field.Label, rules.MaxLength), false, nil
	}
	if rules.Min != 0 && field.Kind == KindNumber {
		if n, ok := parseNumber(value); ok && n < rules.Min {
			return fmt.Sprintf("%s must be at least %s", field.Label, formatNumber(rules.Min)), false, nil
		}
	}
	if rules.Max != 0 && field.Kind == KindNumber {
		if n, ok := parseNumber(value); ok && n > rules.Max {
			return fmt.Sprintf("%s must not exceed %s", field.Label, formatNumber(rules.Max)), false, nil
		}
	}
	if rules.Pattern != "" {
		re, err := regexp.Compile(rules.Pattern)
		if err != nil {
			return "", false, err
		}
		if !re.MatchString(s) {
			msg := rules.PatternMessage
			if msg == "" {
				msg = field.Label + " format is invalid"
			}
			return msg, false, nil
		}
	}
	return "", true, nil
}

func parseNumber(value interface{}) (float64, bool) {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatNumber(v)
	default:
		return fmt.Sprint(v)
	}
}

// isEmpty mirrors the submission format's notion of "nothing here": a key
// that is missing or nil, an empty string, false, or a zero number.
func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	}
	return false
}
