package solutions

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/solutionops/solutions-check/pkg/fileutil"
	"github.com/solutionops/solutions-check/pkg/logger"
)

var loaderLog = logger.New("solutions:loader")

//go:embed schemas/solutions.schema.json
var solutionsSchemaJSON string

const solutionsSchemaURL = "https://solutions-check.local/schemas/solutions.schema.json"

var compileSolutionsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(solutionsSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded solutions schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(solutionsSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add embedded solutions schema: %w", err)
	}
	return compiler.Compile(solutionsSchemaURL)
})

// LoadDeclaredSolutions reads the declared-solutions JSON file at path.
//
// The result keeps file order, with every entry trimmed and blank entries
// dropped. Any problem with the file is returned as a *ConfigError.
func LoadDeclaredSolutions(path string) ([]string, error) {
	label := filepath.Base(path)
	loaderLog.Printf("Loading declared solutions: %s", path)

	if !fileutil.FileExists(path) {
		return nil, &ConfigError{Kind: ConfigNotFound, File: label}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Kind: ConfigUnparsable, File: label, Err: err}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(content))
	if err != nil {
		loaderLog.Printf("JSON parse failed: %v", err)
		return nil, &ConfigError{Kind: ConfigUnparsable, File: label, Err: err}
	}

	schema, err := compileSolutionsSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		loaderLog.Printf("Schema validation failed: %v", err)
		return nil, &ConfigError{Kind: ConfigInvalidShape, File: label, Err: err}
	}

	// The schema guarantees an array of strings.
	items, _ := doc.([]any)
	declared := make([]string, 0, len(items))
	for _, item := range items {
		name, _ := item.(string)
		if name = strings.TrimSpace(name); name != "" {
			declared = append(declared, name)
		}
	}

	loaderLog.Printf("Loaded %d declared solutions (%d raw entries)", len(declared), len(items))
	return declared, nil
}
