package pipecolor

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A terminal filter that colorizes lines by regex rules"
	MsgRootLong        = `pipecolor reads lines from standard input or files and writes them to
standard output with ANSI colors applied according to regular-expression
rules from a TOML configuration file.`
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagMode    = "Colorize mode (auto, always, disable)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/pipecolor/config.toml)"

	// Status messages
	MsgReadConfig = "pipecolor: Read config from '%s'\n"
)
