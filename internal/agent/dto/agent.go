package dto

type PromptRequest struct {
	Prompt string `json:"prompt"`
}

type AgentPromptRequest struct {
	Prompt       string `json:"prompt"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// PromptResponse duplicates the text under both keys for compatibility with
// older frontend builds that read `response` instead of `result`.
type PromptResponse struct {
	Result    string `json:"result"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}
