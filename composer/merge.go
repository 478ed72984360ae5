package composer

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// Merger recursively merges override into base. Override wins on conflicts.
type Merger interface {
	Merge(base, override map[string]any) (map[string]any, error)
}

// MergePatch merges with JSON Merge Patch semantics (RFC 7386): objects merge
// recursively, scalars and arrays in override replace those in base, and a
// null in override removes the key.
type MergePatch struct{}

// Merge returns a new map. Neither argument is modified.
func (MergePatch) Merge(base, override map[string]any) (map[string]any, error) {
	if base == nil {
		base = map[string]any{}
	}

	doc, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("encoding merge base: %w", err)
	}

	if override != nil {
		patch, err := json.Marshal(override)
		if err != nil {
			return nil, fmt.Errorf("encoding merge override: %w", err)
		}

		doc, err = jsonpatch.MergePatch(doc, patch)
		if err != nil {
			return nil, fmt.Errorf("merging: %w", err)
		}
	}

	var merged map[string]any

	err = json.Unmarshal(doc, &merged)
	if err != nil {
		return nil, fmt.Errorf("decoding merge result: %w", err)
	}

	if merged == nil {
		merged = map[string]any{}
	}

	return merged, nil
}
