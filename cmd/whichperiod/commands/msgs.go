package commands

// Message constants
const (
	MsgRootShort = "Name the time period a date falls into"
	MsgRootLong  = `whichperiod checks which named time period a calendar date falls
into, using rules from /etc/whichperiod/time_periods.yaml overlaid by
your XDG user config. Each rule maps a date expression ("The second
Sunday of May", "Easter", "February 6") plus before/after day buffers
to a period name; the first rule whose window contains the date wins.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDate    = "Date to evaluate in YYYY-MM-DD form (default: today)"
	MsgFlagLong    = "Show the matched rule's comment and window as well"

	MsgInitShort = "Write the default user rule config"
	MsgInitLong  = `Write the built-in default rule config to the user config path.
Refuses to overwrite an existing file unless --force is given.`
	MsgFlagForce    = "Overwrite an existing config file"
	MsgFlagSettings = "Also write the default app settings file (config.toml)"

	MsgListShort = "List all rules with their windows for a year"
	MsgListLong  = `List every rule in the merged system+user config together with the
concrete date window it covers for the given year.`
	MsgFlagYear = "Year to resolve windows for (default: current year)"

	MsgConfigShort = "Print the effective app settings as TOML"

	MsgVersionShort = "Print version information"

	MsgCompletionShort = "Generate shell completion script"
)
