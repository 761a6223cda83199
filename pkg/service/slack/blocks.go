package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Block and Action ID constants for Slack interactions
const (
	BlockIDScanActions    = "scan_actions"
	BlockIDConfirmActions = "confirm_actions"
	BlockIDAddToChannel   = "add_to_channel"

	// ActionIDAddToChannel is a URL button; its interaction payload is ignored
	ActionIDAddToChannel = "add_to_channel"
)

// Fixed message texts
const (
	TextScanning          = "☠️ Scanning for ghost accounts..."
	TextCleaning          = "⏳ _Cleaning up... Hang tight, this might take a sec._"
	TextPrivateRejected   = "🚫 This command only works in channels, not in DMs."
	TextBotNotAdmin       = "❌ I need to be an admin to work properly!"
	TextInvokerNotAdmin   = "🛑 Only channel admins can use this command."
	TextPermissionQuery   = "❌ I need to be an admin to check permissions!"
	TextScanFailed        = "⚠️ Error while scanning. Make sure I have proper admin rights."
	TextCommandFailed     = "⚠️ An error occurred. Make sure I'm an admin in this channel."
	TextRemovalFailed     = "❌ Failed to remove ghosts. Make sure I have proper admin rights."
	TextRemovalInProgress = "⏳ A ghost removal is already running in this channel. Hang tight."
	TextActionExpired     = "⚠️ This button is no longer valid. Use /scanmembers to scan again."
	TextConfirmPrompt     = "⚔️ One last step. Send ghost accounts straight to hell?"
	TextCancelled         = "👍 Got it. Ghosts live to haunt another day.\nUse /scanmembers if you change your mind."
	TextAddToChannel      = "➕ Add me to your channel"
	TextRemoveGhosts      = "🔥 Remove Ghosts"
	TextConfirmRemove     = "✅ Yes, do it"
	TextCancelRemove      = "❌ Nah, chill"
)

const welcomeText = "🧟 *Specter Hunter Bot*\n\n" +
	"This bot sniffs out dead accounts (aka ghost users) haunting your Slack channels " +
	"and helps you purge 'em like a digital exorcist. 🔥\n\n" +
	"I can't haunt ghosts in your DMs. Add me to a channel, then run `/scanmembers`."

// Keeps the operator summary well below Slack's message text limit
const (
	maxListedFailures   = 20
	maxFailureReasonLen = 200
)

// BlockBuilder provides methods to build Slack message blocks
type BlockBuilder struct{}

// NewBlockBuilder creates a new BlockBuilder instance
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{}
}

func markdownSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(
		slack.NewTextBlockObject(
			slack.MarkdownType,
			text,
			false,
			false,
		),
		nil,
		nil,
	)
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}

// addToChannelBlock returns the add-me URL button, or nil when the app ID is unknown
func addToChannelBlock(bot *model.BotIdentity) slack.Block {
	link := bot.AddToChannelURL()
	if link == "" {
		return nil
	}

	button := slack.NewButtonBlockElement(ActionIDAddToChannel, "", plainText(TextAddToChannel))
	button.URL = link
	return slack.NewActionBlock(BlockIDAddToChannel, button)
}

// BuildTextBlocks wraps a plain message in a single section
func (b *BlockBuilder) BuildTextBlocks(text string) []slack.Block {
	return []slack.Block{markdownSection(text)}
}

// BuildWelcomeBlocks builds the /start reply sent in a direct conversation
func (b *BlockBuilder) BuildWelcomeBlocks(bot *model.BotIdentity) []slack.Block {
	blocks := []slack.Block{markdownSection(welcomeText)}
	if button := addToChannelBlock(bot); button != nil {
		blocks = append(blocks, button)
	}
	return blocks
}

// WelcomeText returns the fallback text of the welcome message
func (b *BlockBuilder) WelcomeText() string {
	return welcomeText
}

// BuildPrivateRejectedBlocks builds the reply to /scanmembers in a direct conversation
func (b *BlockBuilder) BuildPrivateRejectedBlocks(bot *model.BotIdentity) []slack.Block {
	blocks := []slack.Block{markdownSection(TextPrivateRejected)}
	if button := addToChannelBlock(bot); button != nil {
		blocks = append(blocks, button)
	}
	return blocks
}

// BuildScanningBlocks builds the placeholder shown while a scan runs
func (b *BlockBuilder) BuildScanningBlocks() []slack.Block {
	return b.BuildTextBlocks(TextScanning)
}

// ScanResultText renders the summary of a scan
func (b *BlockBuilder) ScanResultText(scan *model.ScanResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 *Scan Result* for *%s*\n\n", scan.Title)
	fmt.Fprintf(&sb, "📦 Total members: %d\n", scan.Total())
	fmt.Fprintf(&sb, "👻 Ghosts: %d\n", scan.GhostCount)
	fmt.Fprintf(&sb, "🧍 Active users: %d\n", scan.ActiveCount)
	fmt.Fprintf(&sb, "💀 Ghost Ratio: %s\n\n", scan.FormatGhostRatio())

	if scan.HasGhosts() {
		sb.WriteString("🔥 Click below to remove ghost accounts from this channel?")
	} else {
		sb.WriteString("👏 Looks clean. No ghost to banish. 🧹")
	}
	return sb.String()
}

// BuildScanResultBlocks builds the scan summary. A remove button carrying the
// workflow token is attached only when ghosts were found.
func (b *BlockBuilder) BuildScanResultBlocks(scan *model.ScanResult) ([]slack.Block, error) {
	blocks := []slack.Block{markdownSection(b.ScanResultText(scan))}
	if !scan.HasGhosts() {
		return blocks, nil
	}

	token := model.NewWorkflowToken(model.ActionRemoveGhosts, model.WorkflowScanned, scan)
	value, err := token.Encode()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode remove token", goerr.V("scanID", scan.ID))
	}

	blocks = append(blocks, slack.NewActionBlock(
		BlockIDScanActions,
		slack.NewButtonBlockElement(
			model.ActionRemoveGhosts.String(),
			value,
			plainText(TextRemoveGhosts),
		).WithStyle(slack.StyleDanger),
	))
	return blocks, nil
}

// BuildConfirmBlocks builds the confirmation prompt for a pending removal.
// The ghost count comes from the earlier scan and may be stale.
func (b *BlockBuilder) BuildConfirmBlocks(token *model.WorkflowToken) ([]slack.Block, error) {
	confirmValue, err := token.WithAction(model.ActionConfirmRemove, model.WorkflowConfirmPending).Encode()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode confirm token")
	}
	cancelValue, err := token.WithAction(model.ActionCancelRemove, model.WorkflowConfirmPending).Encode()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode cancel token")
	}

	note := fmt.Sprintf("👻 %d ghost(s) found in the scan at %s UTC. Membership is re-checked before removal.",
		token.GhostCount, token.ScanTime().Format(time.DateTime))

	return []slack.Block{
		markdownSection(TextConfirmPrompt),
		slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType, note, false, false)),
		slack.NewActionBlock(
			BlockIDConfirmActions,
			slack.NewButtonBlockElement(
				model.ActionConfirmRemove.String(),
				confirmValue,
				plainText(TextConfirmRemove),
			).WithStyle(slack.StyleDanger),
			slack.NewButtonBlockElement(
				model.ActionCancelRemove.String(),
				cancelValue,
				plainText(TextCancelRemove),
			),
		),
	}, nil
}

// BuildCleaningBlocks builds the interim message shown during the removal loop
func (b *BlockBuilder) BuildCleaningBlocks() []slack.Block {
	return b.BuildTextBlocks(TextCleaning)
}

// RemovalDoneText renders the completion message. Only removed members are counted.
func (b *BlockBuilder) RemovalDoneText(outcome *model.RemovalOutcome) string {
	return fmt.Sprintf("🔥 Mission complete. *%d* ghost(s) were banished to the afterlife.\n"+
		"Use /scanmembers anytime to scan again.", outcome.RemovedCount())
}

// BuildRemovalDoneBlocks builds the completion message of a removal run
func (b *BlockBuilder) BuildRemovalDoneBlocks(outcome *model.RemovalOutcome) []slack.Block {
	return b.BuildTextBlocks(b.RemovalDoneText(outcome))
}

// BuildCancelledBlocks builds the acknowledgement of a cancelled removal
func (b *BlockBuilder) BuildCancelledBlocks() []slack.Block {
	return b.BuildTextBlocks(TextCancelled)
}

// NewUserAlertText renders the operator alert for a user who contacted the bot
func (b *BlockBuilder) NewUserAlertText(user *model.User, at time.Time) string {
	handle := user.Name
	if handle == "" {
		handle = "No username"
	}

	return fmt.Sprintf("🎉 New User Alert!\n\n"+
		"Name: %s\n"+
		"Username: @%s\n"+
		"ID: %s\n"+
		"Time: %s UTC",
		user.DisplayName(), handle, user.ID, at.UTC().Format(time.DateTime))
}

// RemovalFailuresText renders the operator summary of a run with failed removals
func (b *BlockBuilder) RemovalFailuresText(outcome *model.RemovalOutcome) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "⚠️ Ghost removal in <#%s> finished with %d failure(s)\n\n",
		outcome.ChannelID, outcome.FailedCount())
	fmt.Fprintf(&sb, "Removed: %d\nAlready gone: %d\nFailed: %d\nRun: %s\n",
		outcome.RemovedCount(), outcome.GoneCount(), outcome.FailedCount(), outcome.RunID)

	failures := outcome.Failures()
	for i, f := range failures {
		if i == maxListedFailures {
			fmt.Fprintf(&sb, "…and %d more\n", len(failures)-maxListedFailures)
			break
		}
		reason := "unknown error"
		if f.Err != nil {
			reason = truncate(f.Err.Error(), maxFailureReasonLen)
		}
		fmt.Fprintf(&sb, "• <@%s>: %s\n", f.MemberID, reason)
	}
	return sb.String()
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "…"
}
