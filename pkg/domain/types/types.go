package types

import (
	"strings"

	"github.com/google/uuid"
)

// SlackUserID represents a Slack user identifier
type SlackUserID string

// String returns the string representation
func (id SlackUserID) String() string {
	return string(id)
}

// ChannelID represents a Slack conversation identifier
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// IsDirectMessage reports whether the ID belongs to a one-to-one IM conversation.
// Slack prefixes IM conversation IDs with "D".
func (id ChannelID) IsDirectMessage() bool {
	return strings.HasPrefix(string(id), "D")
}

// MessageTS represents a Slack message timestamp
type MessageTS string

// String returns the string representation
func (ts MessageTS) String() string {
	return string(ts)
}

// TeamID represents a Slack workspace identifier
type TeamID string

// String returns the string representation
func (id TeamID) String() string {
	return string(id)
}

// ScanID identifies a single scan pass
type ScanID string

// String returns the string representation
func (id ScanID) String() string {
	return string(id)
}

// NewScanID creates a new ScanID
func NewScanID() ScanID {
	return ScanID(uuid.New().String())
}

// RunID identifies a single removal run
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(uuid.New().String())
}
