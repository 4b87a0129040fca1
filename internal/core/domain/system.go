package domain

// OllamaStatus describes the model backend seen by the Analysis Service.
type OllamaStatus struct {
	Available bool   `json:"available"`
	Host      string `json:"host"`
	Model     string `json:"model"`
}

// SystemStatus is the global status of the Analysis Service.
type SystemStatus struct {
	TotalJobs       int          `json:"total_jobs"`
	TotalCandidates int          `json:"total_candidates"`
	TotalAnalyzed   int          `json:"total_analyzed"`
	Ollama          OllamaStatus `json:"ollama"`
}

// HealthServices reports the state of each service dependency.
type HealthServices struct {
	API      string `json:"api"`
	Database string `json:"database"`
	Ollama   string `json:"ollama"`
}

// HealthCheck is the liveness report of the Analysis Service.
type HealthCheck struct {
	Status   string         `json:"status"`
	Services HealthServices `json:"services"`
}

// Healthy reports whether the service declared itself healthy.
func (h HealthCheck) Healthy() bool {
	return h.Status == "healthy"
}

// Settings are the tunable analysis parameters.
type Settings struct {
	OllamaModel  string  `json:"ollama_model,omitempty"  yaml:"ollama_model"`
	SystemPrompt string  `json:"system_prompt,omitempty" yaml:"system_prompt"`
	Temperature  float64 `json:"temperature"             yaml:"temperature"   validate:"gte=0,lte=2"`
}

// SettingsResponse is the settings payload with the model catalog.
type SettingsResponse struct {
	Settings        Settings `json:"settings"`
	AvailableModels []string `json:"available_models"`
	OllamaConnected bool     `json:"ollama_connected"`
}
