package content

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/questions.schema.json
var questionsSchema string

//go:embed schemas/gestures.schema.json
var gesturesSchema string

//go:embed schemas/conversations.schema.json
var conversationsSchema string

var schemaTexts = map[string]string{
	questionsFile:     questionsSchema,
	gesturesFile:      gesturesSchema,
	conversationsFile: conversationsSchema,
}

var (
	schemaOnce sync.Once
	schemaErr  error
	compiled   map[string]*jsonschema.Schema
)

func compileSchemas() {
	compiled = make(map[string]*jsonschema.Schema)
	c := jsonschema.NewCompiler()
	for name, text := range schemaTexts {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(text))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema for %s: %w", name, err)
			return
		}
		if err := c.AddResource(name, doc); err != nil {
			schemaErr = fmt.Errorf("register schema for %s: %w", name, err)
			return
		}
	}
	for name := range schemaTexts {
		sch, err := c.Compile(name)
		if err != nil {
			schemaErr = fmt.Errorf("compile schema for %s: %w", name, err)
			return
		}
		compiled[name] = sch
	}
}

// validate checks raw bank content against the embedded schema for the
// named content file. Schemas are compiled once on first use.
func validate(name string, raw []byte) error {
	schemaOnce.Do(compileSchemas)
	if schemaErr != nil {
		return schemaErr
	}

	sch, ok := compiled[name]
	if !ok {
		return fmt.Errorf("no schema for content file %s", name)
	}

	instance, err := decodeInstance(raw)
	if err != nil {
		return err
	}
	return sch.Validate(instance)
}
