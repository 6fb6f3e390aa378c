package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaResource = "registry.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a registry validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/templates/0/tags")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed, or the consistency check name
}

// getSchema generates and compiles the registry JSON schema once.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		schemaBytes, err := GenerateSchema("")
		if err != nil {
			compileErr = err
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaResource, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaResource)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw registry JSON against the registry schema, then checks
// that the version is semantic and template ids are sorted and unique.
// The error return is for parse or schema compilation failures; validation
// issues are returned in the ValidationResult.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing registry JSON: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		validationErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		return &ValidationResult{Valid: false, Issues: extractIssues(validationErr)}, nil
	}

	// Schema-valid documents decode cleanly into Registry.
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("decoding registry: %w", err)
	}
	issues := checkConsistency(&reg)
	return &ValidationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

// ValidateFile reads a file and validates it as a registry.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// checkConsistency covers the invariants a JSON schema cannot express.
func checkConsistency(reg *Registry) []ValidationIssue {
	var issues []ValidationIssue

	if _, err := semver.StrictNewVersion(reg.Version); err != nil {
		issues = append(issues, ValidationIssue{
			Path:    "/version",
			Message: fmt.Sprintf("%q is not a semantic version: %v", reg.Version, err),
			Keyword: "semver",
		})
	}

	seen := make(map[string]bool, len(reg.Templates))
	for i, t := range reg.Templates {
		path := fmt.Sprintf("/templates/%d/id", i)
		if seen[t.ID] {
			issues = append(issues, ValidationIssue{
				Path:    path,
				Message: fmt.Sprintf("duplicate template id %q", t.ID),
				Keyword: "unique",
			})
		}
		seen[t.ID] = true
	}

	sorted := slices.IsSortedFunc(reg.Templates, func(a, b TemplateEntry) int {
		return strings.Compare(a.ID, b.ID)
	})
	if !sorted {
		issues = append(issues, ValidationIssue{
			Path:    "/templates",
			Message: "templates are not sorted by id",
			Keyword: "sorted",
		})
	}

	return issues
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{
			Message: ve.Error(),
		}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf errors
// with specific property information.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
