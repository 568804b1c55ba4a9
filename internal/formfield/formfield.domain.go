package formfield

// Kind is the closed set of supported input types. Adding a kind means
// adding a case to checkKind and nothing else.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindRadio    Kind = "radio"
	KindCheckbox Kind = "checkbox"
)

// Rules carries the optional per-field constraints. Zero values mean the
// rule is absent; a stored min of 0 is therefore never enforced, matching
// how the stored schemas have always behaved.
type Rules struct {
	MinLength      int     `json:"minLength,omitempty"`
	MaxLength      int     `json:"maxLength,omitempty"`
	Min            float64 `json:"min,omitempty"`
	Max            float64 `json:"max,omitempty"`
	Pattern        string  `json:"pattern,omitempty"`
	PatternMessage string  `json:"patternMessage,omitempty"`
}

// FieldDefinition describes one configurable form field of a category.
// Owned by the schema repository; read-only here.
type FieldDefinition struct {
	ID          int64    `json:"id"`
	CategoryID  int64    `json:"category_id"`
	Name        string   `json:"field_name"`
	Label       string   `json:"field_label"`
	Kind        Kind     `json:"field_type"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"is_required"`
	Rules       Rules    `json:"validation_rules"`
	Options     []string `json:"options,omitempty"`
	SortOrder   int      `json:"sort_order"`
	Active      bool     `json:"is_active"`
}
