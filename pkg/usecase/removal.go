package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/domain/interfaces"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
)

// channelLocks holds one removal run per channel at a time
type channelLocks struct {
	mu     sync.Mutex
	active map[types.ChannelID]struct{}
}

func (l *channelLocks) tryLock(channelID types.ChannelID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.active[channelID]; busy {
		return false
	}
	l.active[channelID] = struct{}{}
	return true
}

func (l *channelLocks) unlock(channelID types.ChannelID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.active, channelID)
}

// Removal kicks the deactivated members of a channel after confirmation
type Removal struct {
	slackClient interfaces.SlackClient
	scanner     interfaces.Scanner
	notifier    interfaces.Notifier
	locks       *channelLocks
	now         func() time.Time
}

var _ interfaces.Removal = (*Removal)(nil)

// NewRemoval creates a new Removal use case
func NewRemoval(slackClient interfaces.SlackClient, scanner interfaces.Scanner, notifier interfaces.Notifier) *Removal {
	return &Removal{
		slackClient: slackClient,
		scanner:     scanner,
		notifier:    notifier,
		locks:       &channelLocks{active: make(map[types.ChannelID]struct{})},
		now:         time.Now,
	}
}

// Remove enumerates the channel again and kicks every member deactivated at this
// moment. Each kick is independent; a member that already left is recorded as
// gone, other failures are logged and recorded without stopping the loop.
// A second call for a channel with a run in flight returns ErrRemovalInProgress.
func (r *Removal) Remove(ctx context.Context, token *model.WorkflowToken) (*model.RemovalOutcome, error) {
	channelID := token.ChannelID
	if !r.locks.tryLock(channelID) {
		return nil, goerr.Wrap(model.ErrRemovalInProgress, "removal already running", goerr.V("channelID", channelID))
	}
	defer r.locks.unlock(channelID)

	outcome := model.NewRemovalOutcome(channelID, token.GhostCount, r.now())
	logger := ctxlog.From(ctx).With("runID", outcome.RunID, "channelID", channelID)
	logger.Info("Ghost removal started", "scanID", token.ScanID, "ghostsAtScan", token.GhostCount)

	err := r.scanner.ForEachGhost(ctx, channelID, func(ctx context.Context, member *model.Member) error {
		kickErr := r.slackClient.KickUserFromConversation(ctx, channelID.String(), member.ID.String())
		switch {
		case kickErr == nil:
			outcome.Record(member.ID, model.RemovalRemoved, nil)
		case errors.Is(kickErr, model.ErrMemberGone):
			logger.Debug("Member already gone", "userID", member.ID)
			outcome.Record(member.ID, model.RemovalAlreadyGone, nil)
		default:
			logger.Error("Failed to remove member", "userID", member.ID, "error", kickErr)
			outcome.Record(member.ID, model.RemovalFailed, kickErr)
		}
		return nil
	})
	outcome.FinishedAt = r.now()

	logger.Info("Ghost removal finished",
		"attempted", outcome.Attempted(),
		"removed", outcome.RemovedCount(),
		"alreadyGone", outcome.GoneCount(),
		"failed", outcome.FailedCount(),
		"duration", outcome.Duration(),
	)

	if outcome.FailedCount() > 0 {
		r.notifier.NotifyRemovalFailures(ctx, outcome)
	}

	if err != nil {
		return outcome, goerr.Wrap(err, "removal enumeration failed", goerr.V("runID", outcome.RunID))
	}
	return outcome, nil
}
