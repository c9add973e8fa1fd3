package ai

// apiRequest represents the generateContent request body.
type apiRequest struct {
	Contents          []apiContent `json:"contents"`
	SystemInstruction *apiContent  `json:"systemInstruction,omitempty"`
}

type apiContent struct {
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text"`
}

// apiResponse represents the generateContent response body.
type apiResponse struct {
	Candidates []apiCandidate `json:"candidates"`
}

type apiCandidate struct {
	Content apiContent `json:"content"`
}
