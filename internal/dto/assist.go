package dto

import "pay-assist/internal/assist"

// ExtractRequest is the body of the extract and infer endpoints.
type ExtractRequest struct {
	Input  string `json:"input"`
	Action string `json:"action,omitempty"`
}

type ExecuteRequest struct {
	Action    string          `json:"action"`
	Input     string          `json:"input,omitempty"`
	Fields    assist.FieldBag `json:"fields,omitempty"`
	Overrides assist.FieldBag `json:"overrides,omitempty"`
	Confirm   bool            `json:"confirm"`
}

// ExecuteResponse is either a confirmation request or an executed result.
type ExecuteResponse struct {
	Executed     bool                 `json:"executed"`
	Action       assist.ActionKind    `json:"action"`
	Result       any                  `json:"result,omitempty"`
	Confirmation *assist.Confirmation `json:"confirmation,omitempty"`
}
