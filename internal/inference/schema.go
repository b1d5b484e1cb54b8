// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

package inference

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed artifact.schema.json
var artifactSchemaJSON []byte

const artifactSchemaURL = "https://github.com/tomtom215/scorecast/artifact.schema.json"

var (
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
	compileOnce       sync.Once
)

func artifactSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(artifactSchemaJSON))
		if err != nil {
			compiledSchemaErr = fmt.Errorf("parse artifact schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(artifactSchemaURL, doc); err != nil {
			compiledSchemaErr = fmt.Errorf("add artifact schema: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = c.Compile(artifactSchemaURL)
	})
	return compiledSchema, compiledSchemaErr
}

// validateSchema checks raw artifact bytes against the embedded schema.
func validateSchema(data []byte) error {
	schema, err := artifactSchema()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}
