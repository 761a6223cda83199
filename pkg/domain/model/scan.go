package model

import (
	"fmt"
	"time"

	"github.com/secmon-lab/specter/pkg/domain/types"
)

// ScanResult is the immutable summary of one full enumeration of a channel
type ScanResult struct {
	ID          types.ScanID
	ChannelID   types.ChannelID
	Title       string
	GhostCount  int
	ActiveCount int
	ScannedAt   time.Time
}

// Total returns the number of individual members seen. Non-individuals are not counted.
func (r *ScanResult) Total() int {
	return r.GhostCount + r.ActiveCount
}

// HasGhosts reports whether at least one deactivated member was found
func (r *ScanResult) HasGhosts() bool {
	return r.GhostCount > 0
}

// GhostRatio returns the ghost percentage; 0 for an empty chat
func (r *ScanResult) GhostRatio() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.GhostCount) / float64(total) * 100
}

// FormatGhostRatio renders the ratio with one decimal digit, e.g. "30.0%".
// Halves round to even.
func (r *ScanResult) FormatGhostRatio() string {
	return fmt.Sprintf("%.1f%%", r.GhostRatio())
}

// ScanTally accumulates member classifications during an enumeration
type ScanTally struct {
	ghosts int
	active int
}

// Add classifies one member. It returns false for members that are not counted.
func (t *ScanTally) Add(m *Member) bool {
	if !m.IsIndividual() {
		return false
	}
	if m.IsDeactivated {
		t.ghosts++
	} else {
		t.active++
	}
	return true
}

// Result freezes the tally into a ScanResult for the given chat
func (t *ScanTally) Result(chat *Chat, scannedAt time.Time) *ScanResult {
	return &ScanResult{
		ID:          types.NewScanID(),
		ChannelID:   chat.ID,
		Title:       chat.DisplayTitle(),
		GhostCount:  t.ghosts,
		ActiveCount: t.active,
		ScannedAt:   scannedAt,
	}
}
