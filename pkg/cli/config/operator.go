package config

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/specter/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

var slackUserIDPattern = regexp.MustCompile(`^[UW][A-Z0-9]+$`)

// Operator holds the identity that receives bot alerts
type Operator struct {
	UserID string
}

// Flags returns CLI flags for Operator configuration
func (o *Operator) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "operator-id",
			Usage:       "Slack user ID that receives new-user and removal-failure alerts (empty disables alerts)",
			Category:    "Operator",
			Sources:     cli.EnvVars("SPECTER_OPERATOR_ID"),
			Destination: &o.UserID,
		},
	}
}

// ID returns the operator's user ID; empty when alerts are disabled
func (o *Operator) ID() types.SlackUserID {
	return types.SlackUserID(o.UserID)
}

// Validate checks the user ID format when one is set
func (o *Operator) Validate() error {
	if o.UserID != "" && !slackUserIDPattern.MatchString(o.UserID) {
		return goerr.New("invalid operator ID, expected a Slack user ID such as U012ABCDEF",
			goerr.V("operatorID", o.UserID))
	}
	return nil
}

// LogValue returns structured log value
func (o Operator) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("operator_id", o.UserID),
		slog.Bool("alerts_enabled", o.UserID != ""),
	)
}
