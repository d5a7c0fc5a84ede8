// Package content persists the file-backed site content as JSON documents
// under a single configured content root and validates every document against
// its embedded JSON Schema.
package content

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/qri-io/jsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrInvalid wraps every schema-validation rejection so callers can map it to
// a 400 without inspecting message text.
var ErrInvalid = errors.New("content does not match schema")

// Validator holds the compiled entity schemas. Schema names are the embedded
// filenames without extension ("service", "team-member", ...).
type Validator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// NewValidator compiles all embedded schemas.
func NewValidator(ctx context.Context) (*Validator, error) {
	v := &Validator{cache: make(map[string]*jsonschema.Schema)}

	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read schemas dir: %w", err)
	}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		b, err := fs.ReadFile(schemaFS, path.Join("schemas", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(b, rs); err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		v.cache[name] = rs
	}

	return v, nil
}

// Schema returns the compiled schema for a name.
func (v *Validator) Schema(name string) (*jsonschema.Schema, bool) {
	v.mu.RLock()
	s, ok := v.cache[name]
	v.mu.RUnlock()

	return s, ok
}

// Validate checks doc against the named schema and returns ErrInvalid with
// the offending keys on rejection.
func (v *Validator) Validate(ctx context.Context, name string, doc []byte) error {
	rs, ok := v.Schema(name)
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	keyErrs, err := rs.ValidateBytes(ctx, doc)
	if err != nil {
		return fmt.Errorf("validate against %s: %w", name, err)
	}
	if len(keyErrs) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrInvalid, name, formatKeyErrors(keyErrs))
	}

	return nil
}

// ValidateValue marshals val and validates the result.
func (v *Validator) ValidateValue(ctx context.Context, name string, val any) error {
	b, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("marshal for validation: %w", err)
	}

	return v.Validate(ctx, name, b)
}

func formatKeyErrors(keyErrs []jsonschema.KeyError) string {
	parts := make([]string, 0, len(keyErrs))
	for _, ke := range keyErrs {
		parts = append(parts, fmt.Sprintf("%s: %s", ke.PropertyPath, ke.Message))
	}

	return strings.Join(parts, "; ")
}
