package genaiclient

// Config identifies the remote account, region and model that serve requests.
// It is loaded once at process start and passed around by reference; there is
// no process-wide session singleton.
type Config struct {
	Project  string `yaml:"project"`
	Location string `yaml:"location"`
	Model    string `yaml:"model"`
	Prompt   string `yaml:"prompt"`

	// APIKey switches the client to express mode; Project/Location are not
	// required then. BaseURL overrides the service endpoint.
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`

	Temperature float32 `yaml:"temperature"`

	// ModelAllowlist extends the built-in model patterns. The remote service
	// stays the source of truth for what actually exists.
	ModelAllowlist []string `yaml:"model_allowlist"`
}
