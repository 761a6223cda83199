package model

import (
	"regexp"
	"strings"

	"github.com/secmon-lab/specter/pkg/domain/types"
)

// Command is a bot command recognised by the router
type Command string

const (
	CommandStart       Command = "start"
	CommandScanMembers Command = "scanmembers"
)

var (
	startPattern       = regexp.MustCompile(`^/start$`)
	scanMembersPattern = regexp.MustCompile(`^/scanmembers(?:@\w+)?$`)
)

// ParseCommand matches text against the literal command patterns
func ParseCommand(text string) (Command, bool) {
	text = strings.TrimSpace(text)
	switch {
	case startPattern.MatchString(text):
		return CommandStart, true
	case scanMembersPattern.MatchString(text):
		return CommandScanMembers, true
	default:
		return "", false
	}
}

// CommandRequest is a command delivered by a message event or a slash command
type CommandRequest struct {
	Command   Command
	ChannelID types.ChannelID
	UserID    types.SlackUserID
	// Private is set when the transport already knows the conversation is an IM
	Private bool
}

// ActionRequest is an interactive control activation
type ActionRequest struct {
	ActionID  string
	Value     string
	ChannelID types.ChannelID
	MessageTS types.MessageTS
	UserID    types.SlackUserID
}
