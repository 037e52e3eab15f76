package errors

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Tree construction (E100-E119)
	// ============================================

	"E101": {
		Category:   CategoryPrecondition,
		Message:    "Invalid tag name",
		Suggestion: "Tag names must not contain whitespace, quotes, '<', '>', '/' or '='",
	},
	"E102": {
		Category:   CategoryPrecondition,
		Message:    "Invalid attribute name",
		Suggestion: "Attribute names must be non-empty and must not contain whitespace, quotes, '<', '>', '/' or '='",
	},
	"E103": {
		Category: CategoryPrecondition,
		Message:  "Nil child",
		Detail:   "A nil node cannot be appended to an element.",
	},
	"E104": {
		Category:   CategoryPrecondition,
		Message:    "Child already attached",
		Detail:     "A node is owned by exactly one parent.",
		Suggestion: "Build a new node instead of appending the same one twice",
	},
	"E105": {
		Category: CategoryPrecondition,
		Message:  "Cycle detected",
		Detail:   "An element cannot be appended inside its own subtree.",
	},
	"E106": {
		Category: CategoryPrecondition,
		Message:  "Text node cannot have children",
	},
	"E110": {
		Category:   CategoryStructure,
		Message:    "Child kind not allowed",
		Suggestion: "Tables accept rows, rows accept cells, lists accept list items and the head accepts metadata elements only",
	},

	// ============================================
	// Configuration (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
	},
	"E121": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Suggestion: "Create htmlbuilder.json or pass --config",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// ============================================
	// Document descriptions (E130-E139)
	// ============================================

	"E130": {
		Category:   CategoryLayout,
		Message:    "Invalid document description",
		Suggestion: "Check that the file is valid YAML or JSON",
	},
	"E131": {
		Category:   CategoryLayout,
		Message:    "Unknown element type",
		Suggestion: "Use a known HTML tag or a custom element name containing '-'",
	},
	"E132": {
		Category: CategoryLayout,
		Message:  "Child kind not allowed",
	},
	"E133": {
		Category: CategoryLayout,
		Message:  "Invalid element parameter",
	},
	"E134": {
		Category: CategoryLayout,
		Message:  "Document description not found",
	},

	// ============================================
	// Publishing (E150-E159)
	// ============================================

	"E150": {
		Category: CategoryPublish,
		Message:  "Upload failed",
	},
	"E151": {
		Category:   CategoryPublish,
		Message:    "No bucket configured",
		Suggestion: "Set publish.bucket in htmlbuilder.json or pass --bucket",
	},

	// ============================================
	// CLI (E160-E169)
	// ============================================

	"E160": {
		Category: CategoryCLI,
		Message:  "Cannot write output",
	},
	"E161": {
		Category:   CategoryCLI,
		Message:    "Directory already exists",
		Suggestion: "Choose a different name or remove the existing directory",
	},
	"E162": {
		Category:   CategoryCLI,
		Message:    "Unknown project template",
		Suggestion: "Available templates: minimal, site",
	},
	"E163": {
		Category:   CategoryCLI,
		Message:    "Invalid project name",
		Suggestion: "Use letters, numbers, dots, underscores and hyphens",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
