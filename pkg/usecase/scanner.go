package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/domain/interfaces"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/secmon-lab/specter/pkg/domain/types"
	"github.com/slack-go/slack"
)

const (
	defaultMemberPageSize = 200
	usersInfoBatchSize    = 30
)

// Scanner enumerates channel members and classifies deactivated accounts
type Scanner struct {
	slackClient interfaces.SlackClient
	pageSize    int
	now         func() time.Time
}

var _ interfaces.Scanner = (*Scanner)(nil)

// ScannerOption configures Scanner
type ScannerOption func(*Scanner)

// WithPageSize overrides the conversations.members page size
func WithPageSize(size int) ScannerOption {
	return func(s *Scanner) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithScannerClock replaces the time source used for ScannedAt
func WithScannerClock(now func() time.Time) ScannerOption {
	return func(s *Scanner) {
		s.now = now
	}
}

// NewScanner creates a new Scanner use case
func NewScanner(slackClient interfaces.SlackClient, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		slackClient: slackClient,
		pageSize:    defaultMemberPageSize,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveChat identifies the conversation kind and title. Direct message IDs are
// classified without an API call.
func (s *Scanner) ResolveChat(ctx context.Context, channelID types.ChannelID) (*model.Chat, error) {
	if channelID.IsDirectMessage() {
		return &model.Chat{ID: channelID, Kind: model.ChatKindPrivate}, nil
	}

	channel, err := s.slackClient.GetConversationInfo(ctx, channelID.String(), false)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve chat", goerr.V("channelID", channelID))
	}

	chat := &model.Chat{
		ID:    channelID,
		Title: channel.Name,
		Kind:  model.ChatKindGroup,
	}
	if channel.IsIM || channel.IsMpIM {
		chat.Kind = model.ChatKindPrivate
	}
	return chat, nil
}

// Scan enumerates every member of a group chat and returns the ghost summary.
// No partial result is returned when enumeration fails.
func (s *Scanner) Scan(ctx context.Context, chat *model.Chat) (*model.ScanResult, error) {
	if !chat.IsGroup() {
		return nil, goerr.Wrap(model.ErrNotGroupChat, "scan requires a group chat", goerr.V("channelID", chat.ID))
	}

	var tally model.ScanTally
	err := s.enumerate(ctx, chat.ID, func(_ context.Context, m *model.Member) error {
		tally.Add(m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := tally.Result(chat, s.now())
	ctxlog.From(ctx).Info("Scan completed",
		"scanID", result.ID,
		"channelID", result.ChannelID,
		"total", result.Total(),
		"ghosts", result.GhostCount,
		"ratio", result.FormatGhostRatio(),
	)
	return result, nil
}

// ForEachGhost walks a fresh enumeration and calls fn for each deactivated
// individual member. An error from fn stops the walk.
func (s *Scanner) ForEachGhost(ctx context.Context, channelID types.ChannelID, fn func(ctx context.Context, member *model.Member) error) error {
	return s.enumerate(ctx, channelID, func(ctx context.Context, m *model.Member) error {
		if !m.IsGhost() {
			return nil
		}
		return fn(ctx, m)
	})
}

func (s *Scanner) enumerate(ctx context.Context, channelID types.ChannelID, fn func(ctx context.Context, member *model.Member) error) error {
	cursor := ""
	for {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "enumeration canceled", goerr.V("channelID", channelID))
		}

		ids, next, err := s.slackClient.GetUsersInConversation(ctx, &slack.GetUsersInConversationParameters{
			ChannelID: channelID.String(),
			Cursor:    cursor,
			Limit:     s.pageSize,
		})
		if err != nil {
			return goerr.Wrap(err, "failed to enumerate members", goerr.V("channelID", channelID))
		}

		for start := 0; start < len(ids); start += usersInfoBatchSize {
			end := min(start+usersInfoBatchSize, len(ids))
			users, err := s.slackClient.GetUsersInfo(ctx, ids[start:end]...)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch member records", goerr.V("channelID", channelID))
			}

			for i := range users {
				if err := fn(ctx, toMember(&users[i])); err != nil {
					return err
				}
			}
		}

		if next == "" {
			return nil
		}
		cursor = next
	}
}

func toMember(user *slack.User) *model.Member {
	return &model.Member{
		ID:            types.SlackUserID(user.ID),
		Name:          user.Name,
		IsBot:         user.IsBot,
		IsAppUser:     user.IsAppUser,
		IsDeactivated: user.Deleted,
	}
}
