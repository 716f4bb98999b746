package tools

// RegisterAll registers every built-in tool with the registry
func RegisterAll(r *Registry) {
	// File content tools
	registerFileTools(r)

	// Positional edit tools
	registerEditTools(r)

	// Workspace tools
	registerWorkspaceTools(r)

	// Terminal tools
	registerTerminalTools(r)
}

func registerFileTools(r *Registry) {
	// get_file_text
	r.MustRegister(ToolDefinition{
		Name:        "get_file_text",
		Description: "Read the full text of a file in the workspace",
		InputSchema: GetFileTextSchema(),
		Annotations: &Annotations{
			Title:          "Read file",
			ReadOnlyHint:   true,
			IdempotentHint: true,
		},
	}, HandleGetFileText)

	// create_file
	r.MustRegister(ToolDefinition{
		Name:        "create_file",
		Description: "Create a file with the given content, optionally replacing an existing one",
		InputSchema: CreateFileSchema(),
		Annotations: &Annotations{
			Title:           "Create file",
			DestructiveHint: true,
		},
	}, HandleCreateFile)

	// replace_file_text
	r.MustRegister(ToolDefinition{
		Name:        "replace_file_text",
		Description: "Replace the entire content of an existing file",
		InputSchema: ReplaceFileTextSchema(),
		Annotations: &Annotations{
			Title:           "Rewrite file",
			DestructiveHint: true,
			IdempotentHint:  true,
		},
	}, HandleReplaceFileText)

	// append_to_file
	r.MustRegister(ToolDefinition{
		Name:        "append_to_file",
		Description: "Append text to a file, creating it when missing",
		InputSchema: AppendSchema(),
		Annotations: &Annotations{
			Title:           "Append to file",
			DestructiveHint: true,
		},
	}, HandleAppendToFile)
}

func registerEditTools(r *Registry) {
	// replace_lines_in_file
	r.MustRegister(ToolDefinition{
		Name:        "replace_lines_in_file",
		Description: "Replace a 1-based inclusive line range of a file; equal start and end lines overwrite characters in place at the given offset",
		InputSchema: ReplaceLinesSchema(),
		Annotations: &Annotations{
			Title:           "Replace lines",
			DestructiveHint: true,
		},
	}, HandleReplaceLinesInFile)

	// replace_text_in_file
	r.MustRegister(ToolDefinition{
		Name:        "replace_text_in_file",
		Description: "Replace every literal occurrence of a string in a file and report the count",
		InputSchema: ReplaceTextSchema(),
		Annotations: &Annotations{
			Title:           "Replace text",
			DestructiveHint: true,
		},
	}, HandleReplaceTextInFile)
}

func registerWorkspaceTools(r *Registry) {
	// list_directory
	r.MustRegister(ToolDefinition{
		Name:        "list_directory",
		Description: "List the entries of a workspace directory",
		InputSchema: ListDirectorySchema(),
		Annotations: &Annotations{
			Title:          "List directory",
			ReadOnlyHint:   true,
			IdempotentHint: true,
		},
	}, HandleListDirectory)

	// open_in_editor
	r.MustRegister(ToolDefinition{
		Name:        "open_in_editor",
		Description: "Open a workspace file in the configured editor",
		InputSchema: OpenInEditorSchema(),
		Annotations: &Annotations{
			Title:          "Open in editor",
			IdempotentHint: true,
		},
	}, HandleOpenInEditor)

	// get_workspace_info
	r.MustRegister(ToolDefinition{
		Name:         "get_workspace_info",
		Description:  "Describe the workspace root and the serving tool set",
		InputSchema:  WorkspaceInfoSchema(),
		OutputSchema: WorkspaceInfoOutputSchema(),
		Annotations: &Annotations{
			Title:          "Workspace info",
			ReadOnlyHint:   true,
			IdempotentHint: true,
		},
	}, HandleGetWorkspaceInfo)
}

func registerTerminalTools(r *Registry) {
	// execute_terminal_command
	r.MustRegister(ToolDefinition{
		Name:         "execute_terminal_command",
		Description:  "Run a shell command inside the workspace and capture its output",
		InputSchema:  TerminalCommandSchema(),
		OutputSchema: TerminalCommandOutputSchema(),
		Annotations: &Annotations{
			Title:           "Run command",
			DestructiveHint: true,
			OpenWorldHint:   true,
		},
	}, HandleExecuteTerminalCommand)
}
