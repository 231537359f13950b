package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config, invalid value)
	ExitDataError   = 3 // Data error (malformed JSONL, unknown entry ID, empty entry)
)
