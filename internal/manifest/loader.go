package manifest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed lessons/intro.json
var builtinLessonJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads and parses a lesson manifest from disk.
func Load(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lesson manifest: %w", err)
	}
	lesson, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("lesson manifest %s: %w", path, err)
	}
	return lesson, nil
}

// Builtin returns the embedded starter lesson.
func Builtin() *Lesson {
	lesson, err := Parse(builtinLessonJSON)
	if err != nil {
		// The embedded manifest is validated by tests; a failure here
		// is a build defect.
		panic(fmt.Sprintf("builtin lesson manifest invalid: %v", err))
	}
	return lesson
}

// Parse validates raw manifest JSON against the lesson schema, decodes
// it, and applies semantic checks the schema cannot express.
func Parse(data []byte) (*Lesson, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := lessonSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var lesson Lesson
	if err := json.Unmarshal(data, &lesson); err != nil {
		return nil, fmt.Errorf("decoding lesson: %w", err)
	}

	if err := checkSemantics(&lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// checkSemantics enforces cross-field rules: unique widget and
// challenge IDs within a lesson.
func checkSemantics(lesson *Lesson) error {
	widgetIDs := make(map[string]bool, len(lesson.Widgets))
	for _, w := range lesson.Widgets {
		if widgetIDs[w.ID] {
			return fmt.Errorf("duplicate widget id %q", w.ID)
		}
		widgetIDs[w.ID] = true

		challengeIDs := make(map[string]bool, len(w.Challenges))
		for _, c := range w.Challenges {
			if challengeIDs[c.ID] {
				return fmt.Errorf("widget %q: duplicate challenge id %q", w.ID, c.ID)
			}
			challengeIDs[c.ID] = true
		}
	}
	return nil
}

func lessonSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(lessonSchemaDef)
		if err != nil {
			compileErr = fmt.Errorf("marshal lesson schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse lesson schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lesson.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
