package usecase_test

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/specter/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/slack-go/slack"
)

const (
	testChannelID = "C0TEST"
	testBotUserID = "U0BOT"
	testAdminID   = "U0ADMIN"
	testUserID    = "U0USER"
)

// workspace is an in-memory Slack channel behind a SlackClientMock
type workspace struct {
	mu        sync.Mutex
	title     string
	botMember bool
	members   []string
	users     map[string]slack.User
	kickErrs  map[string]error
	userErr   error
	pageSize  int

	client *mocks.SlackClientMock
}

func newWorkspace() *workspace {
	w := &workspace{
		title:     "general",
		botMember: true,
		users:     map[string]slack.User{},
		kickErrs:  map[string]error{},
	}
	w.addUser(slack.User{ID: testAdminID, Name: "admin", IsAdmin: true})
	w.addUser(slack.User{ID: testUserID, Name: "user"})

	w.client = &mocks.SlackClientMock{
		AuthTestContextFunc: func(ctx context.Context) (*slack.AuthTestResponse, error) {
			return &slack.AuthTestResponse{UserID: testBotUserID, User: "specter", BotID: "B0BOT", TeamID: "T0TEAM"}, nil
		},
		GetBotInfoFunc: func(ctx context.Context, botID string) (*slack.Bot, error) {
			return &slack.Bot{ID: botID, AppID: "A0APP"}, nil
		},
		GetUserInfoFunc: func(ctx context.Context, userID string) (*slack.User, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			if w.userErr != nil {
				return nil, w.userErr
			}
			user, ok := w.users[userID]
			if !ok {
				return nil, goerr.New("user_not_found")
			}
			return &user, nil
		},
		GetUsersInfoFunc: func(ctx context.Context, users ...string) ([]slack.User, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			var result []slack.User
			for _, id := range users {
				if user, ok := w.users[id]; ok {
					result = append(result, user)
				}
			}
			return result, nil
		},
		GetConversationInfoFunc: func(ctx context.Context, channelID string, includeLocale bool) (*slack.Channel, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			channel := &slack.Channel{}
			channel.ID = channelID
			channel.Name = w.title
			channel.IsMember = w.botMember
			return channel, nil
		},
		GetUsersInConversationFunc: func(ctx context.Context, params *slack.GetUsersInConversationParameters) ([]string, string, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			start := 0
			if params.Cursor != "" {
				start, _ = strconv.Atoi(params.Cursor)
			}
			size := params.Limit
			if w.pageSize > 0 {
				size = w.pageSize
			}
			end := min(start+size, len(w.members))
			page := slices.Clone(w.members[start:end])
			next := ""
			if end < len(w.members) {
				next = strconv.Itoa(end)
			}
			return page, next, nil
		},
		KickUserFromConversationFunc: func(ctx context.Context, channelID, userID string) error {
			w.mu.Lock()
			defer w.mu.Unlock()
			if err, ok := w.kickErrs[userID]; ok {
				return err
			}
			idx := slices.Index(w.members, userID)
			if idx < 0 {
				return goerr.Wrap(model.ErrMemberGone, "member already absent", goerr.V("userID", userID))
			}
			w.members = slices.Delete(w.members, idx, idx+1)
			return nil
		},
		PostMessageFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
			return channelID, "1700000000.000100", nil
		},
		UpdateMessageFunc: func(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error) {
			return channelID, timestamp, "", nil
		},
	}
	return w
}

func (w *workspace) addUser(user slack.User) {
	w.users[user.ID] = user
}

// join adds members to the channel
func (w *workspace) join(users ...slack.User) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, u := range users {
		w.users[u.ID] = u
		w.members = append(w.members, u.ID)
	}
}

// leave removes a member from the channel without going through the bot
func (w *workspace) leave(userID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if idx := slices.Index(w.members, userID); idx >= 0 {
		w.members = slices.Delete(w.members, idx, idx+1)
	}
}

func (w *workspace) memberIDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.members)
}

// populate adds active and deactivated individual members plus one bot
func (w *workspace) populate(active, ghosts int) {
	for i := 0; i < active; i++ {
		w.join(slack.User{ID: fmt.Sprintf("UACTIVE%02d", i), Name: fmt.Sprintf("active%d", i)})
	}
	for i := 0; i < ghosts; i++ {
		w.join(slack.User{ID: fmt.Sprintf("UGHOST%02d", i), Name: fmt.Sprintf("ghost%d", i), Deleted: true})
	}
	w.join(slack.User{ID: "UBOTHELPER", Name: "helper", IsBot: true})
	w.join(slack.User{ID: "UDEADBOT", Name: "deadbot", IsBot: true, Deleted: true})
}

// messageContent renders MsgOptions to the text and blocks JSON that would be sent
func messageContent(t *testing.T, options []slack.MsgOption) (string, string) {
	t.Helper()
	_, values, err := slack.UnsafeApplyMsgOptions("", testChannelID, "", options...)
	gt.NoError(t, err).Required()
	return values.Get("text"), values.Get("blocks")
}
