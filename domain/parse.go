package domain

type ParseRequest struct {
	InputURL string `json:"input_url" validate:"required,http_url,max=2048"`
}

type ParseResult struct {
	File         string     `json:"file"`
	MimeType     string     `json:"mime_type"`
	Summary      Summary    `json:"summary"`
	ColumnsFound []string   `json:"columns_found"`
	RawPreview   []any      `json:"raw_preview"`
	TotalLines   *int       `json:"total_lines,omitempty"`
	Records      []TextLine `json:"records,omitempty"`
}
