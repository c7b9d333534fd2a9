package domain

import "time"

// Resume represents one candidate document in the corpus.
// The Fields tree is schema-free: any nesting of maps, slices and scalars
// as decoded from JSON. The search core only ever sees the flattened text
// of the tree; named fields exist for display layers.
type Resume struct {
	// ID is the unique identifier for the resume.
	ID string

	// URI is the original location (file path, import source).
	URI string

	// Fields is the raw document tree as imported.
	Fields map[string]any

	// Position is the ordinal position within the corpus.
	// Search results preserve this order.
	Position int

	// CreatedAt is when the resume was first imported.
	CreatedAt time.Time

	// UpdatedAt is when the resume was last updated.
	UpdatedAt time.Time
}

// Name returns the candidate name if the document carries one.
func (r Resume) Name() string {
	return r.stringField("name")
}

// Email returns the contact email if present.
func (r Resume) Email() string {
	return r.stringField("email")
}

// Phone returns the contact phone number if present.
func (r Resume) Phone() string {
	return r.stringField("phone")
}

// Location returns the candidate location if present.
func (r Resume) Location() string {
	return r.stringField("location")
}

// Skills returns the skills list if the document carries one.
// A scalar skills field is returned as a single-element slice.
func (r Resume) Skills() []string {
	v, ok := r.Fields["skills"]
	if !ok {
		return nil
	}
	switch s := v.(type) {
	case string:
		return []string{s}
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	case []string:
		return s
	default:
		return nil
	}
}

func (r Resume) stringField(key string) string {
	if r.Fields == nil {
		return ""
	}
	s, _ := r.Fields[key].(string)
	return s
}
