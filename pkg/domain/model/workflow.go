package model

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/domain/types"
)

// WorkflowState is a step of the scan → confirm → remove interaction
type WorkflowState int

const (
	WorkflowIdle WorkflowState = iota
	WorkflowScanned
	WorkflowConfirmPending
	WorkflowRemoving
	WorkflowDone
)

// String returns the string representation
func (s WorkflowState) String() string {
	switch s {
	case WorkflowIdle:
		return "idle"
	case WorkflowScanned:
		return "scanned"
	case WorkflowConfirmPending:
		return "confirm_pending"
	case WorkflowRemoving:
		return "removing"
	case WorkflowDone:
		return "done"
	default:
		return "unknown"
	}
}

// WorkflowAction is the fixed action_id of an interactive control
type WorkflowAction string

const (
	ActionRemoveGhosts  WorkflowAction = "remove_ghosts"
	ActionConfirmRemove WorkflowAction = "confirm_remove"
	ActionCancelRemove  WorkflowAction = "cancel_remove"
)

// String returns the string representation
func (a WorkflowAction) String() string {
	return string(a)
}

// IsValid checks if the action is one of the known controls
func (a WorkflowAction) IsValid() bool {
	switch a {
	case ActionRemoveGhosts, ActionConfirmRemove, ActionCancelRemove:
		return true
	default:
		return false
	}
}

// NextState returns the state a control leads to from the state it was rendered in.
// Confirm lands on Removing; the run itself moves to Done when the loop finishes.
func NextState(from WorkflowState, action WorkflowAction) (WorkflowState, error) {
	switch {
	case from == WorkflowScanned && action == ActionRemoveGhosts:
		return WorkflowConfirmPending, nil
	case from == WorkflowConfirmPending && action == ActionConfirmRemove:
		return WorkflowRemoving, nil
	case from == WorkflowConfirmPending && action == ActionCancelRemove:
		return WorkflowIdle, nil
	default:
		return from, goerr.Wrap(ErrInvalidTransition, "no transition for action",
			goerr.V("from", from.String()),
			goerr.V("action", action.String()))
	}
}

// WorkflowToken is the state carried by a button's value field.
// The message holding the buttons is the only state carrier of the workflow.
type WorkflowToken struct {
	Action     WorkflowAction  `json:"a"`
	State      WorkflowState   `json:"s"`
	ChannelID  types.ChannelID `json:"c"`
	ScanID     types.ScanID    `json:"i"`
	GhostCount int             `json:"g"`
	ScannedAt  int64           `json:"t"`
}

// NewWorkflowToken creates the token for a control rendered in the given state
func NewWorkflowToken(action WorkflowAction, state WorkflowState, scan *ScanResult) *WorkflowToken {
	return &WorkflowToken{
		Action:     action,
		State:      state,
		ChannelID:  scan.ChannelID,
		ScanID:     scan.ID,
		GhostCount: scan.GhostCount,
		ScannedAt:  scan.ScannedAt.Unix(),
	}
}

// WithAction derives the token for another control of the same scan
func (t *WorkflowToken) WithAction(action WorkflowAction, state WorkflowState) *WorkflowToken {
	next := *t
	next.Action = action
	next.State = state
	return &next
}

// Next returns the state this token's action leads to
func (t *WorkflowToken) Next() (WorkflowState, error) {
	return NextState(t.State, t.Action)
}

// ScanTime returns the time of the scan the token derives from
func (t *WorkflowToken) ScanTime() time.Time {
	return time.Unix(t.ScannedAt, 0).UTC()
}

// Encode serialises the token into a button value
func (t *WorkflowToken) Encode() (string, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal workflow token")
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeWorkflowToken parses a button value. The token's action must match the
// action_id of the control that delivered it.
func DecodeWorkflowToken(actionID, value string) (*WorkflowToken, error) {
	if value == "" {
		return nil, goerr.Wrap(ErrInvalidToken, "empty token", goerr.V("actionID", actionID))
	}

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidToken, "failed to decode token",
			goerr.V("actionID", actionID),
			goerr.V("cause", err.Error()))
	}

	var token WorkflowToken
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, goerr.Wrap(ErrInvalidToken, "failed to unmarshal token",
			goerr.V("actionID", actionID),
			goerr.V("cause", err.Error()))
	}

	if !token.Action.IsValid() || token.Action.String() != actionID {
		return nil, goerr.Wrap(ErrInvalidToken, "token action does not match control",
			goerr.V("actionID", actionID),
			goerr.V("tokenAction", token.Action))
	}
	if token.ChannelID == "" {
		return nil, goerr.Wrap(ErrInvalidToken, "token has no channel", goerr.V("actionID", actionID))
	}

	return &token, nil
}
