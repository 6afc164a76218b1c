package contract

//go:generate go run go.uber.org/mock/mockgen -source=slack.go -destination=../../../mocks/mock_slack.go -package=mocks

import (
	"context"

	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier delivers a notification to a channel
type Notifier interface {
	Send(ctx context.Context, channelID string, n entity.Notification) error
}
