package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchema []byte

const schemaURL = "https://github.com/nibzard/hyprhelp/config.schema.json"

var (
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
	compiledSchemaOnce sync.Once
)

func loadSchema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(configSchema)); err != nil {
			compiledSchemaErr = fmt.Errorf("add config schema: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, compiledSchemaErr
}

// SchemaError lists every violation found in a config file.
type SchemaError struct {
	Path   string
	Issues []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Path, strings.Join(e.Issues, "; "))
}

// validateRaw checks a decoded TOML document against the config schema.
func validateRaw(path string, raw map[string]interface{}) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so values have the types the validator expects.
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config for validation: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal config for validation: %w", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	schemaErr := &SchemaError{Path: path}
	collectIssues(ve, &schemaErr.Issues)
	return schemaErr
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]string) {
	if len(ve.Causes) == 0 {
		*issues = append(*issues, fmt.Sprintf("%s: %s", pointerToKey(ve.InstanceLocation), ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectIssues(cause, issues)
	}
}

// pointerToKey converts a JSON pointer such as "/candidate_paths/0" to
// "candidate_paths[0]".
func pointerToKey(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return "(root)"
	}
	var b strings.Builder
	for i, part := range strings.Split(ptr, "/") {
		if part != "" && strings.Trim(part, "0123456789") == "" {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
