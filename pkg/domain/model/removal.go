package model

import (
	"time"

	"github.com/secmon-lab/specter/pkg/domain/types"
)

// RemovalOutcomeKind is the result of one removal attempt
type RemovalOutcomeKind string

const (
	RemovalRemoved RemovalOutcomeKind = "removed"
	// RemovalAlreadyGone means the member left between enumeration and kick
	RemovalAlreadyGone RemovalOutcomeKind = "already_gone"
	RemovalFailed      RemovalOutcomeKind = "failed"
)

// RemovalResult records the attempt for a single member
type RemovalResult struct {
	MemberID types.SlackUserID
	Outcome  RemovalOutcomeKind
	Err      error
}

// RemovalOutcome is the structured result of one confirmed removal run
type RemovalOutcome struct {
	RunID        types.RunID
	ChannelID    types.ChannelID
	GhostsAtScan int
	Results      []RemovalResult
	StartedAt    time.Time
	FinishedAt   time.Time
}

// NewRemovalOutcome starts a removal run record
func NewRemovalOutcome(channelID types.ChannelID, ghostsAtScan int, now time.Time) *RemovalOutcome {
	return &RemovalOutcome{
		RunID:        types.NewRunID(),
		ChannelID:    channelID,
		GhostsAtScan: ghostsAtScan,
		StartedAt:    now,
	}
}

// Record appends the result of one attempt
func (o *RemovalOutcome) Record(memberID types.SlackUserID, outcome RemovalOutcomeKind, err error) {
	o.Results = append(o.Results, RemovalResult{
		MemberID: memberID,
		Outcome:  outcome,
		Err:      err,
	})
}

func (o *RemovalOutcome) count(kind RemovalOutcomeKind) int {
	n := 0
	for _, r := range o.Results {
		if r.Outcome == kind {
			n++
		}
	}
	return n
}

// Attempted returns the number of ghosts found at removal time
func (o *RemovalOutcome) Attempted() int {
	return len(o.Results)
}

// RemovedCount returns the number of members actually removed
func (o *RemovalOutcome) RemovedCount() int {
	return o.count(RemovalRemoved)
}

// GoneCount returns the number of members that had already left
func (o *RemovalOutcome) GoneCount() int {
	return o.count(RemovalAlreadyGone)
}

// FailedCount returns the number of attempts that failed
func (o *RemovalOutcome) FailedCount() int {
	return o.count(RemovalFailed)
}

// Failures returns the failed attempts
func (o *RemovalOutcome) Failures() []RemovalResult {
	var failures []RemovalResult
	for _, r := range o.Results {
		if r.Outcome == RemovalFailed {
			failures = append(failures, r)
		}
	}
	return failures
}

// Duration returns how long the run took
func (o *RemovalOutcome) Duration() time.Duration {
	if o.FinishedAt.IsZero() {
		return 0
	}
	return o.FinishedAt.Sub(o.StartedAt)
}
