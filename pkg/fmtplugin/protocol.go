package fmtplugin

// Info identifies a plugin to a host framework.
type Info struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ConfigKey       string `json:"configKey"`
	HelpURL         string `json:"helpUrl,omitempty"`
	ConfigSchemaURL string `json:"configSchemaUrl,omitempty"`
	UpdateURL       string `json:"updateUrl,omitempty"`
}

// FileMatching tells the host which files to route to a plugin.
type FileMatching struct {
	FileExtensions []string `json:"fileExtensions"`
	FileNames      []string `json:"fileNames"`
}

// Diagnostic reports a problem with a configuration property.
type Diagnostic struct {
	PropertyName string `json:"propertyName"`
	Message      string `json:"message"`
}

// ResolveResult is the outcome of resolving plugin configuration.
type ResolveResult struct {
	FileMatching FileMatching `json:"fileMatching"`
	Diagnostics  []Diagnostic `json:"diagnostics,omitempty"`
}

// Manifest is the metadata-mode payload: plugin identity plus the file
// types the plugin wants routed to it.
type Manifest struct {
	Info         Info         `json:"info"`
	FileMatching FileMatching `json:"fileMatching"`
}

// Range selects a byte range of the file to format. Hosts send it for
// partial-format requests.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FormatRequest asks the plugin to format one file. Path is used for
// file-type gating only; Content carries the complete file text.
type FormatRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Range   *Range `json:"range,omitempty"`
}

// FormatResponse answers one FormatRequest. Content is set only when
// Changed is true.
type FormatResponse struct {
	Changed bool   `json:"changed"`
	Content string `json:"content,omitempty"`
}
