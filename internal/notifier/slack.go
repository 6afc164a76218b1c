package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/diegoclair/hackathon-bot/internal/domain/contract"
	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// Slack posts notifications as a text line followed by an attachment card.
type Slack struct {
	client contract.SlackClient
}

var _ contract.Notifier = (*Slack)(nil)

func NewSlack(client contract.SlackClient) *Slack {
	return &Slack{client: client}
}

func (s *Slack) Send(ctx context.Context, channelID string, n entity.Notification) error {
	options := []slack.MsgOption{
		slack.MsgOptionText(n.Text, false),
		slack.MsgOptionAsUser(false),
	}
	if n.Card != nil {
		options = append(options, slack.MsgOptionAttachments(Attachment(*n.Card)))
	}

	if _, _, err := s.client.PostMessageContext(ctx, channelID, options...); err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	return nil
}

// Attachment converts a card into a Slack attachment.
func Attachment(card entity.Card) slack.Attachment {
	att := slack.Attachment{
		Title:  card.Title,
		Color:  card.Color,
		Footer: card.Footer,
	}
	for _, f := range card.Fields {
		att.Fields = append(att.Fields, slack.AttachmentField{
			Title: f.Name,
			Value: f.Value,
			Short: f.Inline,
		})
	}
	if !card.Timestamp.IsZero() {
		att.Ts = json.Number(strconv.FormatInt(card.Timestamp.Unix(), 10))
	}
	return att
}
