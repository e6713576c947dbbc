package format

// Version constants for the formatter and tool.
const (
	// FormatterVersion is the formatter compatibility version probed by
	// callers. Bumped only when the rendered text format changes.
	FormatterVersion = 1

	// ToolVersion is the pgexprfmt release version.
	ToolVersion = "0.1.0"
)

// Version reports the formatter compatibility version.
func Version() int {
	return FormatterVersion
}
