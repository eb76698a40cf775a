package openai

const (
	ResponsesURL = "https://api.openai.com/v1/responses"
	// DefaultModel is the only model queried, change it to whatever you have access to
	DefaultModel = "gpt-4.1-mini"
	APIKeyEnv    = "OPENAI_API_KEY"
	URLEnv       = "GPT_RESPONSES_URL"
	// NoTextPlaceholder replaces the reply of a successful response which carries no text.
	NoTextPlaceholder = "<no text in response>"
)
