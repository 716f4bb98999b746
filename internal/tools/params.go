package tools

import "fmt"

const (
	defaultCommandTimeoutMs = 15000
	maxCommandTimeoutMs     = 300000
)

type GetFileTextParams struct {
	Path      string `json:"path"`
	ForceUTF8 bool   `json:"forceUtf8,omitempty"`
}

func (p *GetFileTextParams) Validate() error {
	if p.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

type CreateFileParams struct {
	Path      string `json:"path"`
	Text      string `json:"text"`
	Overwrite bool   `json:"overwrite,omitempty"`
}

func (p *CreateFileParams) Validate() error {
	if p.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

type ReplaceFileTextParams struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

func (p *ReplaceFileTextParams) Validate() error {
	if p.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

type ReplaceLinesParams struct {
	Path      string `json:"path"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	Offset    int    `json:"offset,omitempty"`
	Text      string `json:"text"`
}

func (p *ReplaceLinesParams) Validate() error {
	if p.Path == "" {
		return fmt.Errorf("path is required")
	}
	if p.StartLine < 1 {
		return fmt.Errorf("startLine must be at least 1")
	}
	if p.EndLine < p.StartLine {
		return fmt.Errorf("endLine must not be before startLine")
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	return nil
}

type ReplaceTextParams struct {
	Path    string `json:"path"`
	OldText string `json:"oldText"`
	NewText string `json:"newText"`
}

func (p *ReplaceTextParams) Validate() error {
	if p.Path == "" {
		return fmt.Errorf("path is required")
	}
	if p.OldText == "" {
		return fmt.Errorf("oldText is required")
	}
	return nil
}

type AppendParams struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

func (p *AppendParams) Validate() error {
	if p.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

type ListDirectoryParams struct {
	Path string `json:"path,omitempty"`
}

func (p *ListDirectoryParams) Validate() error {
	return nil
}

type OpenInEditorParams struct {
	Path string `json:"path"`
}

func (p *OpenInEditorParams) Validate() error {
	if p.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

type TerminalCommandParams struct {
	Command   string `json:"command"`
	Cwd       string `json:"cwd,omitempty"`
	TimeoutMs int    `json:"timeoutMs,omitempty"`
}

func (p *TerminalCommandParams) Validate() error {
	if p.Command == "" {
		return fmt.Errorf("command is required")
	}
	if p.TimeoutMs < 1 || p.TimeoutMs > maxCommandTimeoutMs {
		return fmt.Errorf("timeoutMs must be between 1 and %d", maxCommandTimeoutMs)
	}
	return nil
}
