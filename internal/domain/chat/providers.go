package chat

// Provider is a named LLM backend configuration.
type Provider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Vendor      string `json:"-"`
	Model       string `json:"-"`
}

// DefaultProviderID is used when the caller names no provider, or an unknown one.
const DefaultProviderID = "groq"

var providerRegistry = []Provider{
	{
		ID:          "groq",
		Name:        "Groq (Fast)",
		Description: "Ultra-fast inference",
		Vendor:      "openai",
		Model:       "gpt-4o-mini",
	},
	{
		ID:          "openai",
		Name:        "OpenAI GPT-4",
		Description: "High-quality responses",
		Vendor:      "openai",
		Model:       "gpt-4o",
	},
	{
		ID:          "claude",
		Name:        "Claude",
		Description: "Excellent reasoning",
		Vendor:      "anthropic",
		Model:       "claude-3-5-sonnet-20241022",
	},
}

// ResolveProvider maps a caller-supplied provider id to its configuration.
// Unknown or empty ids fall back to the default silently.
func ResolveProvider(id string) Provider {
	for _, p := range providerRegistry {
		if p.ID == id {
			return p
		}
	}
	return ResolveProvider(DefaultProviderID)
}

// Providers returns the static provider listing in registration order.
func Providers() []Provider {
	return append([]Provider(nil), providerRegistry...)
}
