// Package constants defines shared constants used across the frename codebase.
package constants

import "os"

// File permissions
const (
	DirMode  os.FileMode = 0755
	FileMode os.FileMode = 0644
)

// Environment variables
const EnvConfigDir = "FRENAME_CONFIG"

// Application paths
const (
	AppName         = "frename"
	XDGConfigSubdir = ".config"
	XDGDataSubdir   = ".local/share"
	ConfigFileName  = "config.toml"
	JournalFileName = "journal.jsonl.gz"
)

// File name conventions
const (
	HiddenPrefix = "."
	ExtSeparator = "."
)
