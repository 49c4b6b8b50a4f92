package command

// Command descriptions
const (
	MsgCatchShort   = "Set catchpoints to catch events."
	MsgTcatchShort  = "Set temporary catchpoints to catch events."
	MsgBreakShort   = "Set breakpoint at specified location."
	MsgTbreakShort  = "Set a temporary breakpoint."
	MsgInfoShort    = "Generic command for showing things about the program being debugged."
	MsgInfoBpShort  = "Status of specified breakpoints (all user-settable breakpoints if no argument)."
	MsgDeleteShort  = "Delete all or some breakpoints."
	MsgEnableShort  = "Enable all or some breakpoints."
	MsgDisableShort = "Disable all or some breakpoints."
	MsgCondShort    = "Specify breakpoint number N to break only if COND is true."
	MsgSaveShort    = "Save breakpoint definitions as a script."
	MsgSaveBpShort  = "Save current breakpoint definitions as a script."
	MsgSourceShort  = "Read commands from a file named FILE."
	MsgFileShort    = "Use FILE as program to be debugged."
	MsgAddSymShort  = "Load symbols from FILE, adding to the program being debugged."
	MsgStopShort    = "Report the program stopping at LOCATION."
	MsgSetShort     = "Evaluate expression EXP and assign result to variable VAR."
	MsgShowShort    = "Generic command for showing things about the debugger."
	MsgPrintShort   = "Generic command for setting how things print."
	MsgAddressShort = "Set printing of addresses."
	MsgBpSetShort   = "Breakpoint specific settings."
	MsgPendingShort = "Set debugger's behavior regarding pending breakpoints."
	MsgCPABIShort   = "Set the ABI used for inspecting C++ objects."
)

// Messages
const (
	MsgUndefinedCommand    = "Undefined command: \"%s\".  Try \"help\"."
	MsgUndefinedSubcommand = "Undefined %s command: \"%s\".  Try \"help %s\"."
	MsgAmbiguousSubcommand = "Ambiguous %s command \"%s\": %s."
	MsgPrefixRequiresSub   = "\"%s\" must be followed by the name of a %s subcommand.\n"
	MsgCommandList         = "List of commands:\n\n"
	MsgSubcommandList      = "\nList of %s subcommands:\n\n"
	MsgCommandItem         = "%s -- %s\n"
	MsgHelpTopicsHint      = "\nType \"help topics\" for a list of help topics.\n"
	MsgJunk                = "Junk at end of arguments."
	MsgArgLocation         = "Argument required (location)."
	MsgArgBoolExpr         = "Argument required (boolean expression)."
	MsgArgBpNumber         = "Argument required (breakpoint number)."
	MsgArgSaveFile         = "Argument required (file name in which to save)."
	MsgArgFileName         = "Argument required (file name)."
	MsgBadBpArgument       = "Bad breakpoint argument: '%s'"
	MsgInvalidThread       = "Invalid thread ID: %s"
	MsgOnOffExpected       = "\"on\" or \"off\" expected."
	MsgUnknownABI          = "Could not find \"%s\" in ABI list"
	MsgNoSuchFile          = "%s: No such file or directory."
	MsgSourceError         = "%s:%d: Error in sourced command file"
	MsgNoSymbolTable       = "No symbol table is loaded.  Use the \"file\" command."
	MsgFunctionNotDefined  = "Function \"%s\" not defined."
	MsgBadAssignment       = "Invalid variable assignment \"%s\"."
	MsgSavedTo             = "Saved to file '%s'.\n"
	MsgReadingSymbols      = "Reading symbols from %s...\n"
	MsgNoExecutable        = "No executable file now.\nNo symbol file now.\n"
	MsgShowAddress         = "Printing of addresses is %s.\n"
	MsgShowPending         = "Debugger's behavior regarding pending breakpoints is %s.\n"
	MsgShowCPABIAuto       = "The currently selected C++ ABI is \"auto\" (currently \"%s\").\n"
	MsgShowCPABI           = "The currently selected C++ ABI is \"%s\".\n"
)
