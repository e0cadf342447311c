// Package dialog models the questions an admin must answer before certain
// mutations run. A Prompt is what the caller shows; an Answer or Confirmation
// is what comes back. Cancelling is an ordinary outcome, not an error.
package dialog

type Kind string

const (
	KindConfirm Kind = "confirm"
	KindPrompt  Kind = "prompt"
)

type Prompt struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Default string `json:"default,omitempty"`
}

// Answer is the response to a KindPrompt dialog.
type Answer struct {
	Value     string `json:"value"`
	Cancelled bool   `json:"cancelled"`
}

// Confirmation is the response to a KindConfirm dialog.
type Confirmation struct {
	Confirmed bool `json:"confirmed"`
}

type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeCancelled Outcome = "cancelled"
)

type Result struct {
	Outcome Outcome `json:"outcome"`
}

func Applied() Result {
	return Result{Outcome: OutcomeApplied}
}

func Cancelled() Result {
	return Result{Outcome: OutcomeCancelled}
}

func Confirm(message string) Prompt {
	return Prompt{Kind: KindConfirm, Message: message}
}

func Ask(message, defaultValue string) Prompt {
	return Prompt{Kind: KindPrompt, Message: message, Default: defaultValue}
}
