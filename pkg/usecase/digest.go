package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/interfaces"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
	slackSvc "github.com/opsnexus/opsnexus/pkg/service/slack"
	"github.com/slack-go/slack"
)

// Digest implements DigestUseCase by posting the dashboard to a Slack channel
type Digest struct {
	dashboard DashboardUseCase
	client    interfaces.SlackClient
	channel   string
	builder   *slackSvc.BlockBuilder
}

// NewDigest creates a new Digest use case. A nil client or empty channel
// disables posting.
func NewDigest(dashboard DashboardUseCase, client interfaces.SlackClient, channel string, builder *slackSvc.BlockBuilder) DigestUseCase {
	if builder == nil {
		builder = slackSvc.NewBlockBuilder("")
	}
	return &Digest{
		dashboard: dashboard,
		client:    client,
		channel:   channel,
		builder:   builder,
	}
}

// IsEnabled reports whether a Slack channel is configured
func (d *Digest) IsEnabled() bool {
	return d.client != nil && d.channel != ""
}

// Post renders the dashboard of the range and posts it to the digest channel
func (d *Digest) Post(ctx context.Context, companyID types.CompanyID, r model.TimeRange) error {
	if !d.IsEnabled() {
		return goerr.Wrap(model.ErrDigestDisabled, "cannot post digest")
	}

	dashboard, err := d.dashboard.Build(ctx, companyID, r)
	if err != nil {
		return goerr.Wrap(err, "failed to build dashboard for digest", goerr.V("companyID", companyID))
	}

	channel, ts, err := d.client.PostMessage(ctx, d.channel,
		slack.MsgOptionText(d.builder.BuildFallbackText(dashboard), false),
		slack.MsgOptionBlocks(d.builder.BuildDigestBlocks(dashboard)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post digest",
			goerr.V("companyID", companyID),
			goerr.V("channel", d.channel))
	}

	ctxlog.From(ctx).Info("Posted dashboard digest",
		"companyID", companyID,
		"channel", channel,
		"ts", ts,
	)
	return nil
}
