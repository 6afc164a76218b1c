package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/diegoclair/hackathon-bot/internal/domain"
	"github.com/diegoclair/hackathon-bot/internal/domain/contract"
	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
	"github.com/diegoclair/hackathon-bot/internal/domain/hackathon"
	slackcmd "github.com/diegoclair/hackathon-bot/internal/domain/slack"
	"github.com/diegoclair/hackathon-bot/internal/notifier"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient      contract.SlackClient
	hackathonService contract.HackathonService
	signingSecret    string
}

func New(slackClient contract.SlackClient, hackathonService contract.HackathonService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:      slackClient,
		hackathonService: hackathonService,
		signingSecret:    signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, fmt.Sprintf("%s. Use `%s help` to see the available commands.", err.Error(), s.Command))
		return
	}

	if cmd.AdminOnly() {
		if msg := h.requireAdmin(s.UserID); msg != nil {
			h.respond(w, msg)
			return
		}
	}

	h.respond(w, h.handleCommand(r.Context(), cmd, &s))
}

// HandleHealth answers liveness probes.
func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func (h *SlackHandler) requireAdmin(userID string) *slack.Msg {
	user, err := h.slackClient.GetUserInfo(userID)
	if err != nil {
		log.Printf("Error getting user info for %s: %v", userID, err)
		return h.createErrorResponse("Could not verify your permissions, please try again.")
	}

	if !user.IsAdmin && !user.IsOwner && !user.IsPrimaryOwner {
		return h.createErrorResponse("You need administrator permissions to use this command!")
	}
	return nil
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSetup:
		return h.handleSetup(ctx, cmd, slashCmd)
	case slackcmd.CmdSetReminders:
		return h.handleSetReminders(ctx, cmd, slashCmd)
	case slackcmd.CmdHackathons:
		return h.handleHackathons(ctx, slashCmd)
	case slackcmd.CmdChangeSpreadsheet:
		return h.handleChangeSpreadsheet(ctx, cmd, slashCmd)
	case slackcmd.CmdViewConfig:
		return h.handleViewConfig(ctx, slashCmd)
	case slackcmd.CmdForceCheck:
		return h.handleForceCheck(ctx, slashCmd)
	case slackcmd.CmdDebugTracking:
		return h.handleDebugTracking(ctx, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleSetup(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 3 {
		return h.createErrorResponse(fmt.Sprintf("Usage: `%s setup SPREADSHEET_ID #channel @group [7,3,1]`", slashCmd.Command))
	}

	input := entity.SetupInput{
		SpreadsheetID:         cmd.Args[0],
		NotificationChannelID: slackcmd.ChannelID(cmd.Args[1]),
		HackathonRoleID:       slackcmd.GroupID(cmd.Args[2]),
		ReminderDays:          strings.Join(cmd.Args[3:], ""),
	}

	guild, err := h.hackathonService.Setup(ctx, slashCmd.TeamID, input)
	if err != nil {
		return h.serviceError("setup", slashCmd, err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("✅ Configuration complete!\n• Notifications will be sent to <#%s>\n• %s will be pinged for updates\n• Reminders will be sent %s days before deadlines",
			guild.NotificationChannelID, slackcmd.MentionGroup(guild.HackathonRoleID), hackathon.JoinDays(guild.ReminderDays)),
	}
}

func (h *SlackHandler) handleSetReminders(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse(fmt.Sprintf("Usage: `%s set_reminders 7,3,1`", slashCmd.Command))
	}

	days, err := h.hackathonService.SetReminders(ctx, slashCmd.TeamID, strings.Join(cmd.Args, ""))
	if err != nil {
		return h.serviceError("set_reminders", slashCmd, err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Reminder days updated!\nReminders will be sent %s days before deadlines", hackathon.JoinDays(days)),
	}
}

func (h *SlackHandler) handleHackathons(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	count, err := h.hackathonService.ShareHackathons(ctx, slashCmd.TeamID, slashCmd.ChannelID)
	if err != nil {
		return h.serviceError("hackathons", slashCmd, err)
	}

	if count == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No hackathons found!",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Shared %d hackathons in this channel.", count),
	}
}

func (h *SlackHandler) handleChangeSpreadsheet(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse(fmt.Sprintf("Usage: `%s change_spreadsheet SPREADSHEET_ID`", slashCmd.Command))
	}

	if err := h.hackathonService.ChangeSpreadsheet(ctx, slashCmd.TeamID, cmd.Args[0]); err != nil {
		return h.serviceError("change_spreadsheet", slashCmd, err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Successfully updated the spreadsheet ID!\nNew spreadsheet: `%s`", cmd.Args[0]),
	}
}

func (h *SlackHandler) handleViewConfig(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	guild, err := h.hackathonService.GetConfig(ctx, slashCmd.TeamID)
	if err != nil {
		return h.serviceError("view_config", slashCmd, err)
	}

	card := entity.Card{
		Title: "Bot Configuration",
		Color: domain.CardColor,
		Fields: []entity.CardField{
			{Name: "Spreadsheet ID", Value: orNotSet(guild.SpreadsheetID, guild.SpreadsheetID)},
			{Name: "Notification Channel", Value: orNotSet(guild.NotificationChannelID, "<#"+guild.NotificationChannelID+">"), Inline: true},
			{Name: "Hackathon Group", Value: orNotSet(guild.HackathonRoleID, slackcmd.MentionGroup(guild.HackathonRoleID)), Inline: true},
			{Name: "Reminder Days", Value: hackathon.JoinDays(guild.ReminderDays) + " days before deadline"},
		},
		Footer: "Guild ID: " + slashCmd.TeamID,
	}

	return h.cardResponse(card)
}

func (h *SlackHandler) handleForceCheck(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	result, err := h.hackathonService.ForceCheck(ctx, slashCmd.TeamID)
	if err != nil {
		return h.serviceError("force_check", slashCmd, err)
	}

	tracked := "None"
	if len(result.Tracked) > 0 {
		tracked = strings.Join(result.Tracked, ", ")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("🔄 Currently tracking %d hackathons. Running check...\n✅ Check complete!\nNow tracking %d hackathons.\nTracked hackathons: %s",
			result.Before, result.After, tracked),
	}
}

func (h *SlackHandler) handleDebugTracking(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	report, err := h.hackathonService.DebugTracking(ctx, slashCmd.TeamID)
	if err != nil {
		return h.serviceError("debug_tracking", slashCmd, err)
	}

	fields := []entity.CardField{
		{Name: fmt.Sprintf("Tracked Hackathons (%d)", len(report.Tracked)), Value: listOrNone(report.Tracked)},
	}

	switch {
	case !report.SheetChecked:
		fields = append(fields, entity.CardField{Name: "Spreadsheet", Value: "Not configured"})
	case report.FetchErr != nil:
		fields = append(fields, entity.CardField{Name: "Spreadsheet Error", Value: report.FetchErr.Error()})
	default:
		fields = append(fields,
			entity.CardField{Name: fmt.Sprintf("Current Sheet Hackathons (%d)", len(report.Current)), Value: listOrNone(report.Current)},
			entity.CardField{Name: fmt.Sprintf("Untracked Hackathons (%d)", len(report.Untracked)), Value: listOrNone(report.Untracked)},
		)
	}

	card := entity.Card{
		Title:  "Tracking Debug Info",
		Color:  domain.CardColor,
		Fields: fields,
		Footer: "Guild ID: " + report.GuildID,
	}

	return h.cardResponse(card)
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// serviceError turns a service failure into a user facing reply.
func (h *SlackHandler) serviceError(command string, slashCmd *slack.SlashCommand, err error) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		return h.createErrorResponse(fmt.Sprintf("This bot hasn't been configured yet! Ask an admin to run `%s setup`.", slashCmd.Command))
	case errors.Is(err, domain.ErrMissingSetupArgs):
		return h.createErrorResponse(fmt.Sprintf("Usage: `%s setup SPREADSHEET_ID #channel @group [7,3,1]`", slashCmd.Command))
	case errors.Is(err, domain.ErrSheetsUnavailable),
		errors.Is(err, hackathon.ErrInvalidReminderFormat),
		errors.Is(err, hackathon.ErrNonPositiveReminder),
		errors.Is(err, hackathon.ErrTooManyReminders):
		return h.createErrorResponse(capitalize(err.Error()))
	}

	log.Printf("Error handling %s for team %s: %v", command, slashCmd.TeamID, err)
	return h.createErrorResponse(fmt.Sprintf("Failed to run %s: %v", command, err))
}

func (h *SlackHandler) cardResponse(card entity.Card) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Attachments:  []slack.Attachment{notifier.Attachment(card)},
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	h.respond(w, h.createErrorResponse(message))
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Printf("Error encoding slack response: %v", err)
	}
}

func orNotSet(raw, rendered string) string {
	if raw == "" {
		return "Not set"
	}
	return rendered
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
