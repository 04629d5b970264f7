package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	slackSvc "github.com/opsnexus/opsnexus/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack digest configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token used to post digests",
			Category:    "Slack",
			Sources:     cli.EnvVars("OPSNEXUS_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Channel ID that receives digests",
			Category:    "Slack",
			Sources:     cli.EnvVars("OPSNEXUS_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// Configure verifies the token and returns a Slack client. A nil client
// without error means the digest is disabled.
func (s *Slack) Configure(ctx context.Context) (interfaces.SlackClient, error) {
	if !s.IsConfigured() {
		ctxlog.From(ctx).Info("Slack not configured, digest is disabled")
		return nil, nil
	}

	svc := slackSvc.New(s.OAuthToken)
	resp, err := svc.AuthTestContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to verify slack token")
	}

	ctxlog.From(ctx).Info("Slack digest enabled",
		slog.String("team", resp.Team),
		slog.String("bot", resp.User),
		slog.String("channel", s.Channel),
	)
	return svc, nil
}

// IsConfigured checks if both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
