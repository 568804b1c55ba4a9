package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajat8876/VendorIQ2/internal/formfield"
)

// FormFieldRepository is the schema repository behind the form validator.
type FormFieldRepository struct {
	db *pgxpool.Pool
}

func NewFormFieldRepository(db *pgxpool.Pool) *FormFieldRepository {
	return &FormFieldRepository{db: db}
}

func (r *FormFieldRepository) ListActiveFields(ctx context.Context, categoryID int64) ([]formfield.FieldDefinition, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, category_id, field_name, field_label, field_type, COALESCE(placeholder, ''),
			is_required, COALESCE(validation_rules, '{}'::jsonb), COALESCE(options, '[]'::jsonb),
			sort_order, is_active
		FROM form_fields
		WHERE category_id=$1 AND is_active=TRUE
		ORDER BY sort_order, id
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []formfield.FieldDefinition
	for rows.Next() {
		var (
			f          formfield.FieldDefinition
			rulesRaw   []byte
			optionsRaw []byte
		)
		if err := rows.Scan(&f.ID, &f.CategoryID, &f.Name, &f.Label, &f.Kind, &f.Placeholder,
			&f.Required, &rulesRaw, &optionsRaw, &f.SortOrder, &f.Active); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rulesRaw, &f.Rules); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(optionsRaw, &f.Options); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}
