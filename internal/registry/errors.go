package registry

// ErrorKind classifies a template directory failure.
type ErrorKind int

const (
	// MissingFile means a required file is absent from the template directory.
	MissingFile ErrorKind = iota
	// InvalidMetadata means template.json could not be parsed or a field is invalid.
	InvalidMetadata
)

func (k ErrorKind) String() string {
	switch k {
	case MissingFile:
		return "missing file"
	case InvalidMetadata:
		return "invalid metadata"
	default:
		return "unknown"
	}
}

// TemplateError reports why a template directory aborted the build.
type TemplateError struct {
	Kind ErrorKind
	// Dir is the template directory name as found on disk.
	Dir string
	// Path is the offending file, or the directory when no single file applies.
	Path string
	// Field is the template.json field at fault, for InvalidMetadata.
	Field string
	// Message is the complete human-readable message.
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *TemplateError) Unwrap() error {
	return e.Cause
}
