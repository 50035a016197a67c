package soccerwiki

import (
	"bytes"
	"encoding/json"
)

// internalKeys is the fixed set of internal-only keys stripped from the
// externally persisted form of a record. Everything else passes through
// unchanged, empty strings included; the external form does not
// distinguish "absent" from "not applicable".
var internalKeys = map[string]struct{}{
	"currentClubId": {},
	"preferredFoot": {},
	"hairColour":    {},
	"hairstyle":     {},
	"skinColour":    {},
	"facialHair":    {},
	"url":           {},
	"playerId":      {},
	"squadNumber":   {},
}

// Project applies the field-exclusion policy to the serialized (generic)
// form of a record, recursing through nested objects and lists so a
// roster's player list is projected element-wise. Applying Project twice
// yields the same result.
func Project(v any) any {
	switch val := v.(type) {
	case map[string]any:
		filtered := make(map[string]any, len(val))
		for key, value := range val {
			if _, excluded := internalKeys[key]; excluded {
				continue
			}
			filtered[key] = Project(value)
		}
		return filtered
	case []any:
		projected := make([]any, len(val))
		for i, item := range val {
			projected[i] = Project(item)
		}
		return projected
	}
	return v
}

// ExportJSON renders a record in its external byte form: projection
// applied, UTF-8, two-space indentation, stable key order, and non-ASCII
// characters left unescaped so player and club names stay readable.
func ExportJSON(record any) ([]byte, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, Errorf(EINTERNAL, "encode record: %v", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, Errorf(EINTERNAL, "decode record: %v", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Project(generic)); err != nil {
		return nil, Errorf(EINTERNAL, "encode projection: %v", err)
	}
	return buf.Bytes(), nil
}
