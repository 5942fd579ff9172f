package config

import (
	"embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaFS embed.FS

// Validate checks raw config JSON against the embedded CUE schema before
// it is ever unmarshalled into a Config: a "crash early, crash loud"
// contract check, the same way a mistyped policy-input field fails fast
// rather than silently zero-valuing later. An unrecognised or mistyped
// field fails here, with a precise diagnostic.
func Validate(jsonBytes []byte) error {
	ctx := cuecontext.New()

	schemaBytes, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return fmt.Errorf("loading embedded config schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return fmt.Errorf("compiling config schema: %w", schema.Err())
	}

	data := ctx.CompileBytes(jsonBytes)
	if data.Err() != nil {
		return fmt.Errorf("compiling config as CUE: %w", data.Err())
	}

	inputDef := schema.LookupPath(cue.ParsePath("#Input"))
	if inputDef.Err() != nil {
		return fmt.Errorf("looking up #Input definition: %w", inputDef.Err())
	}

	unified := inputDef.Unify(data)
	if err := unified.Validate(); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}
