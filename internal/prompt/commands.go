package prompt

import "regexp"

// Command is a meta-command the user may type instead of answering a
// question. Commands never consume the question; after handling one
// the same question is asked again.
type Command int

const (
	CommandNone Command = iota
	CommandWater
	CommandHoney
	CommandHelp
	CommandQuit
)

type commandRule struct {
	regex   *regexp.Regexp
	command Command
}

// commandRules matches user input to meta-commands using simple
// anchored patterns. Plain answers fall through as CommandNone.
var commandRules = []commandRule{
	{regexp.MustCompile(`(?i)^(water|water info|w)$`), CommandWater},
	{regexp.MustCompile(`(?i)^(honey|honey info)$`), CommandHoney},
	{regexp.MustCompile(`(?i)^(help|h|\?)$`), CommandHelp},
	{regexp.MustCompile(`(?i)^(quit|exit|q)$`), CommandQuit},
}

// matchCommand classifies a line of input. Empty or unmatched input is
// CommandNone and should be treated as an answer.
func matchCommand(line string) Command {
	for _, rule := range commandRules {
		if rule.regex.MatchString(line) {
			return rule.command
		}
	}
	return CommandNone
}
