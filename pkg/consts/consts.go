package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultPrintWidth is the preferred maximum line width of formatted SQL
	DefaultPrintWidth = 80

	// DefaultIndentSize is the number of spaces per indentation level
	DefaultIndentSize = 2

	// DefaultConfigFile is the configuration file looked up in the working directory
	DefaultConfigFile = "bqfmt.yaml"

	// ConfigEnvVar names the environment variable that overrides the config path
	ConfigEnvVar = "BQFMT_CONFIG"

	// FormattedExt is the extension of formatted output written beside each tree file
	FormattedExt = ".sql"
)

// TreeExts are the file extensions recognised as syntax tree input.
var TreeExts = []string{".json", ".cst"}
