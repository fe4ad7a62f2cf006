package truthtable

// Version is reported by the command-line tool.
const Version = "0.2.0"
