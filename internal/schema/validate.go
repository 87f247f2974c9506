// Package schema provides JSON schema validation for shaping results.
package schema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/typemark/shapediff/schema"
)

var (
	shapingSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		data, err := schemafs.FS.ReadFile("shaping-result.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read shaping-result schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal shaping-result schema: %w", err)
			return
		}

		if err := compiler.AddResource("shaping-result.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add shaping-result schema resource: %w", err)
			return
		}

		shapingSchema, err = compiler.Compile("shaping-result.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile shaping-result schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateShapingResult validates a parsed document against the
// shaping-result schema.
func ValidateShapingResult(doc interface{}) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	if err := shapingSchema.Validate(doc); err != nil {
		return fmt.Errorf("shaping result validation failed: %w", err)
	}

	return nil
}
