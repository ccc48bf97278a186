package aiEndpoint

import "context"

// AIEngine defines the interface for interacting with an AI endpoint.
// Implementations handle the specific communication details (authentication,
// transport, response decoding) for a given model or service.
type AIEngine interface {
	// SendPrompt sends a string prompt to the AI endpoint and returns
	// the AI's response as a string.
	// It returns an error if the communication or AI processing fails.
	SendPrompt(ctx context.Context, prompt string) (string, error)
}
