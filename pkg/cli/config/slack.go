package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	slackSvc "github.com/secmon-lab/specter/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	SigningSecret string
	OAuthToken    string
	AppID         string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack signing secret for request verification",
			Category:    "Slack",
			Sources:     cli.EnvVars("SPECTER_SLACK_SIGNING_SECRET"),
			Destination: &s.SigningSecret,
		},
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token (xoxb-) for API access",
			Category:    "Slack",
			Sources:     cli.EnvVars("SPECTER_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-app-id",
			Usage:       "Slack app ID for the add-to-channel link, used when bots.info does not provide one",
			Category:    "Slack",
			Sources:     cli.EnvVars("SPECTER_SLACK_APP_ID"),
			Destination: &s.AppID,
		},
	}
}

// Configure creates the Slack API service
func (s *Slack) Configure() (*slackSvc.Service, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return slackSvc.New(s.OAuthToken), nil
}

// IsConfigured checks if both the token and the signing secret are set
func (s *Slack) IsConfigured() bool {
	return s.SigningSecret != "" && s.OAuthToken != ""
}

// Validate reports the first missing required option
func (s *Slack) Validate() error {
	if s.OAuthToken == "" {
		return goerr.New("Slack OAuth token is required, set SPECTER_SLACK_OAUTH_TOKEN")
	}
	if s.SigningSecret == "" {
		return goerr.New("Slack signing secret is required, set SPECTER_SLACK_SIGNING_SECRET")
	}
	return nil
}

// LogValue returns structured log value without secrets
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_signing_secret", s.SigningSecret != ""),
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("app_id", s.AppID),
	)
}
