package providers

// AIProviderConfig holds the connection settings for the local inference endpoint.
type AIProviderConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}
