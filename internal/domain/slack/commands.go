package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSetup             CommandType = "setup"
	CmdSetReminders      CommandType = "set_reminders"
	CmdHackathons        CommandType = "hackathons"
	CmdChangeSpreadsheet CommandType = "change_spreadsheet"
	CmdViewConfig        CommandType = "view_config"
	CmdForceCheck        CommandType = "force_check"
	CmdDebugTracking     CommandType = "debug_tracking"
	CmdHelp              CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// AdminOnly reports whether the command changes or exposes guild settings.
func (c *Command) AdminOnly() bool {
	switch c.Type {
	case CmdHackathons, CmdHelp:
		return false
	}
	return true
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch strings.ToLower(parts[0]) {
	case "setup":
		cmd.Type = CmdSetup
	case "set_reminders", "reminders":
		cmd.Type = CmdSetReminders
	case "hackathons", "list", "ls":
		cmd.Type = CmdHackathons
	case "change_spreadsheet", "spreadsheet":
		cmd.Type = CmdChangeSpreadsheet
	case "view_config", "config":
		cmd.Type = CmdViewConfig
	case "force_check", "check":
		cmd.Type = CmdForceCheck
	case "debug_tracking", "debug":
		cmd.Type = CmdDebugTracking
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	if len(cmd.Args) == 0 {
		cmd.Args = nil
	}

	return cmd, nil
}

// ChannelID extracts the ID from a channel escape such as <#C123|general>.
// Raw IDs are returned unchanged.
func ChannelID(arg string) string {
	return unescape(arg, "<#")
}

// GroupID extracts the ID from a user group escape such as <!subteam^S123|@devs>.
// <!here>, <!channel> and <!everyone> map to their keyword.
func GroupID(arg string) string {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "<!subteam^") {
		return unescape(arg, "<!subteam^")
	}
	if strings.HasPrefix(arg, "<!") {
		return unescape(arg, "<!")
	}
	return strings.TrimPrefix(arg, "@")
}

// MentionGroup renders a user group mention. here, channel and everyone map
// to the matching special mentions.
func MentionGroup(groupID string) string {
	switch groupID {
	case "here", "channel", "everyone":
		return "<!" + groupID + ">"
	}
	return "<!subteam^" + groupID + ">"
}

func unescape(arg, prefix string) string {
	arg = strings.TrimSpace(arg)
	if !strings.HasPrefix(arg, prefix) {
		return arg
	}
	arg = strings.TrimSuffix(strings.TrimPrefix(arg, prefix), ">")
	if i := strings.Index(arg, "|"); i >= 0 {
		arg = arg[:i]
	}
	return arg
}

func GetHelpText() string {
	return `*Available Commands:*

*Setup (admins):*
• ` + "`/hackathon setup SPREADSHEET_ID #channel @group [7,3,1]`" + ` - Configure the bot for this workspace
• ` + "`/hackathon set_reminders 7,3,1`" + ` - Set up to 5 reminder days before deadlines
• ` + "`/hackathon change_spreadsheet SPREADSHEET_ID`" + ` - Read hackathons from another spreadsheet
• ` + "`/hackathon view_config`" + ` - Show current settings

*Hackathons:*
• ` + "`/hackathon hackathons`" + ` - Share every hackathon in this channel

*Troubleshooting (admins):*
• ` + "`/hackathon force_check`" + ` - Check the spreadsheet right now
• ` + "`/hackathon debug_tracking`" + ` - Compare tracked hackathons with the spreadsheet`
}
