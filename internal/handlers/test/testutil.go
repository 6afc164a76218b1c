package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/hackathon-bot/internal/handlers"
	"github.com/diegoclair/hackathon-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	HackathonServiceMock *mocks.MockHackathonService
	SlackClientMock      *mocks.MockSlackClient
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		HackathonServiceMock: mocks.NewMockHackathonService(ctrl),
		SlackClientMock:      mocks.NewMockSlackClient(ctrl),
	}

	handler = handlers.New(m.SlackClientMock, m.HackathonServiceMock, SigningSecret)

	return
}

// SlashCommand is the part of a /hackathon invocation the handler reads.
// Zero fields are left empty in the form, except Command which defaults to /hackathon.
type SlashCommand struct {
	Command   string
	Text      string
	TeamID    string
	ChannelID string
	UserID    string
}

func (c SlashCommand) form() url.Values {
	command := c.Command
	if command == "" {
		command = "/hackathon"
	}

	return url.Values{
		"team_id":      {c.TeamID},
		"channel_id":   {c.ChannelID},
		"channel_name": {"general"},
		"user_id":      {c.UserID},
		"command":      {command},
		"text":         {c.Text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}
}

// NewSlashRequest returns cmd as a request signed with SigningSecret just now.
func NewSlashRequest(t *testing.T, cmd SlashCommand) *http.Request {
	t.Helper()
	return SignedRequest(t, cmd, SigningSecret, time.Now())
}

// SignedRequest signs cmd with secret as if Slack had sent it at sentAt.
func SignedRequest(t *testing.T, cmd SlashCommand, secret string, sentAt time.Time) *http.Request {
	t.Helper()

	body := cmd.form().Encode()
	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	timestamp := strconv.FormatInt(sentAt.Unix(), 10)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", Signature(secret, timestamp, body))

	return req
}

// Signature computes the v0 request signature Slack puts in X-Slack-Signature.
func Signature(secret, timestamp, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("v0:" + timestamp + ":" + body))
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

// ExpectAdmin makes the permission check pass for userID.
func (m ServiceMocks) ExpectAdmin(userID string) {
	m.SlackClientMock.EXPECT().GetUserInfo(userID).Return(&slack.User{ID: userID, IsAdmin: true}, nil)
}

// ExpectMember makes userID a regular workspace member.
func (m ServiceMocks) ExpectMember(userID string) {
	m.SlackClientMock.EXPECT().GetUserInfo(userID).Return(&slack.User{ID: userID}, nil)
}
