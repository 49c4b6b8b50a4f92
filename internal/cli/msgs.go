package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "A debugger front end for C++ exception catchpoints"
	MsgRootLong       = "ddbg reads commands from a terminal or from scripts and manages\nbreakpoints and catchpoints on the loaded program.\n\nWith no --batch flag an interactive prompt is started after the\nscripts given with -x have run."
	MsgRootExample    = "  ddbg ./a.out\n  ddbg --batch -x session.ddbg ./a.out\n  ddbg --format json ./a.out"
	MsgVersionShort   = "Print version information"
	MsgVersionLong    = "Print detailed version information including commit hash and build date"
	MsgGenConfigShort = "Generate a configuration file"
	MsgGenConfigLong  = "Print a commented configuration template, or the effective\nconfiguration with --effective. With --write the result is saved to\nthe user configuration file instead of printed."

	// Version output
	MsgVersionFormat = "ddbg version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Session
	MsgPrompt      = "(ddbg) "
	MsgConfigWrote = "Wrote configuration to %s\n"
	MsgErrorPrefix = "Error: "

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat    = "Output format (auto, term, text, json)"
	MsgFlagConfig    = "Configuration file (default $XDG_CONFIG_HOME/ddbg/config.toml)"
	MsgFlagCommand   = "Execute commands from FILE (repeatable)"
	MsgFlagBatch     = "Exit after processing the command files"
	MsgFlagWrite     = "Write to the user configuration file"
	MsgFlagEffective = "Print the effective configuration instead of the template"
)

// MsgUsageTemplate is the cobra usage template for the process commands.
const MsgUsageTemplate = `{{bold "USAGE:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{bold "ALIASES:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{bold "EXAMPLES:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{bold "COMMANDS:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{bold "FLAGS:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{bold "GLOBAL FLAGS:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`
