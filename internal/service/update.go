package service

// updatableColumn describes one field a partial update may touch: the
// database column it maps to and whether an explicit null is acceptable.
type updatableColumn struct {
	column   string
	nullable bool
}

// filterUpdate converts a raw request body into column assignments.
// The id key is dropped (it addresses the row, it is not a change), every
// other key must appear in the resource's allow-list, and a status value
// must be a member of the resource's enum. Unknown keys are rejected
// rather than written through to SQL.
func filterUpdate(body map[string]any, allowed map[string]updatableColumn, validStatus func(string) bool) (map[string]any, error) {
	fields := make(map[string]any, len(body))
	for key, value := range body {
		if key == "id" {
			continue
		}

		col, ok := allowed[key]
		if !ok {
			return nil, &ValidationError{Field: key, Reason: "unknown field"}
		}

		if value == nil {
			if !col.nullable {
				return nil, &ValidationError{Field: key, Reason: "must not be null"}
			}
			fields[col.column] = nil
			continue
		}

		str, ok := value.(string)
		if !ok {
			return nil, &ValidationError{Field: key, Reason: "must be a string"}
		}

		if key == "status" && !validStatus(str) {
			return nil, &ValidationError{Field: key, Reason: "invalid status value"}
		}

		fields[col.column] = str
	}
	return fields, nil
}

// optional maps an empty form value to NULL.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
