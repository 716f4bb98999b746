package tools

// Common JSON Schema building blocks

// StringSchema creates a JSON schema for a string field
func StringSchema(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

// IntegerSchema creates a JSON schema for an integer field with optional min/max
func IntegerSchema(description string, min, max *int) map[string]any {
	schema := map[string]any{
		"type":        "integer",
		"description": description,
	}
	if min != nil {
		schema["minimum"] = *min
	}
	if max != nil {
		schema["maximum"] = *max
	}
	return schema
}

// BooleanSchema creates a JSON schema for a boolean field
func BooleanSchema(description string) map[string]any {
	return map[string]any{
		"type":        "boolean",
		"description": description,
	}
}

// BuildSchema creates a complete JSON schema object with properties and required fields
func BuildSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Per-tool input schemas

func GetFileTextSchema() map[string]any {
	return BuildSchema(map[string]any{
		"path":      StringSchema("Path of the file to read, relative to the workspace root"),
		"forceUtf8": BooleanSchema("Replace undecodable bytes instead of failing on non-UTF-8 content"),
	}, []string{"path"})
}

func CreateFileSchema() map[string]any {
	return BuildSchema(map[string]any{
		"path":      StringSchema("Path of the file to create, relative to the workspace root"),
		"text":      StringSchema("Full content of the new file"),
		"overwrite": BooleanSchema("Replace the file if it already exists"),
	}, []string{"path", "text"})
}

func ReplaceFileTextSchema() map[string]any {
	return BuildSchema(map[string]any{
		"path": StringSchema("Path of the file to rewrite, relative to the workspace root"),
		"text": StringSchema("New content for the whole file"),
	}, []string{"path", "text"})
}

func ReplaceLinesSchema() map[string]any {
	min1, min0 := 1, 0
	return BuildSchema(map[string]any{
		"path":      StringSchema("Path of the file to edit, relative to the workspace root"),
		"startLine": IntegerSchema("First line of the range to replace (1-based, inclusive)", &min1, nil),
		"endLine":   IntegerSchema("Last line of the range to replace (1-based, inclusive)", &min1, nil),
		"offset":    IntegerSchema("Character offset for a single-line overwrite", &min0, nil),
		"text":      StringSchema("Replacement text for the range"),
	}, []string{"path", "startLine", "endLine", "text"})
}

func ReplaceTextSchema() map[string]any {
	return BuildSchema(map[string]any{
		"path":    StringSchema("Path of the file to edit, relative to the workspace root"),
		"oldText": StringSchema("Literal text to find (no pattern matching)"),
		"newText": StringSchema("Text to substitute for every occurrence"),
	}, []string{"path", "oldText", "newText"})
}

func AppendSchema() map[string]any {
	return BuildSchema(map[string]any{
		"path": StringSchema("Path of the file to append to, relative to the workspace root"),
		"text": StringSchema("Text to add at the end of the file"),
	}, []string{"path", "text"})
}

func ListDirectorySchema() map[string]any {
	return BuildSchema(map[string]any{
		"path": StringSchema("Directory to list, relative to the workspace root (defaults to the root)"),
	}, nil)
}

func OpenInEditorSchema() map[string]any {
	return BuildSchema(map[string]any{
		"path": StringSchema("Path of the file to open, relative to the workspace root"),
	}, []string{"path"})
}

func TerminalCommandSchema() map[string]any {
	min1, maxTimeout := 1, maxCommandTimeoutMs
	return BuildSchema(map[string]any{
		"command":   StringSchema("Shell command line to run"),
		"cwd":       StringSchema("Working directory relative to the workspace root (defaults to the root)"),
		"timeoutMs": IntegerSchema("Maximum run time in milliseconds", &min1, &maxTimeout),
	}, []string{"command"})
}

func WorkspaceInfoSchema() map[string]any {
	return BuildSchema(map[string]any{}, nil)
}

// Per-tool output schemas (tools that return structured content)

func TerminalCommandOutputSchema() map[string]any {
	return BuildSchema(map[string]any{
		"command":  StringSchema("Command line that was run"),
		"exitCode": IntegerSchema("Process exit code, -1 when the process was killed", nil, nil),
		"stdout":   StringSchema("Captured standard output"),
		"stderr":   StringSchema("Captured standard error"),
		"timedOut": BooleanSchema("Whether the command was killed at the timeout"),
	}, []string{"command", "exitCode", "stdout", "stderr", "timedOut"})
}

func WorkspaceInfoOutputSchema() map[string]any {
	return BuildSchema(map[string]any{
		"root":          StringSchema("Absolute path of the workspace root"),
		"serverName":    StringSchema("Server implementation name"),
		"serverVersion": StringSchema("Server implementation version"),
		"toolCount":     IntegerSchema("Number of registered tools", nil, nil),
	}, []string{"root", "serverName", "serverVersion", "toolCount"})
}
