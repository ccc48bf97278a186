package gemini

import (
	"fmt"

	"google.golang.org/genai"
)

// usageSummary formats the token counts reported with a response for logging.
func usageSummary(usage *genai.GenerateContentResponseUsageMetadata) string {
	if usage == nil {
		return "usage unavailable"
	}
	return fmt.Sprintf("tokens: prompt=%d candidates=%d total=%d",
		usage.PromptTokenCount, usage.CandidatesTokenCount, usage.TotalTokenCount)
}
