package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/bqfmt/pkg/config"
	"github.com/pseudomuto/bqfmt/pkg/consts"
	"github.com/pseudomuto/bqfmt/pkg/format"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/bqfmt.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("format: {}"))
		require.NoError(t, err)
		require.Equal(t, consts.DefaultPrintWidth, config.Format.PrintWidth)
		require.Equal(t, consts.DefaultIndentSize, config.Format.IndentSize)
		require.Equal(t, Default(), config)
	})

	t.Run("empty input", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Default(), config)
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
			err   string
		}{
			{name: "invalid yaml", input: "invalid: yaml: [", err: "failed to unmarshal config"},
			{name: "negative width", input: "format:\n  print_width: -1", err: "print_width must not be negative: -1"},
			{name: "negative indent", input: "format:\n  indent_size: -2", err: "indent_size must not be negative: -2"},
			{name: "bad include", input: "include: [\"[a-\"]", err: `invalid glob pattern: "[a-"`},
			{name: "bad exclude", input: "exclude: [\"{a,b\"]", err: `invalid glob pattern: "{a,b"`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				config, err := LoadConfig(strings.NewReader(tt.input))
				require.Error(t, err)
				require.Nil(t, config)
				require.Contains(t, err.Error(), tt.err)
			})
		}
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), consts.DefaultConfigFile)
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))

		config, err := LoadConfigFile(path)
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		config, err := LoadConfigFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to open file")

		path := filepath.Join(t.TempDir(), consts.DefaultConfigFile)
		require.NoError(t, os.WriteFile(path, []byte("format:\n  print_width: -1"), consts.ModeFile))

		config, err = LoadConfigFile(path)
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "invalid config file")
	})
}

func TestConfig_FormatterOptions(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	require.Equal(t, format.FormatterOptions{MaxWidth: 100, IndentSize: 4}, config.FormatterOptions())
	require.Equal(t, format.Defaults, Default().FormatterOptions())
}

func TestConfig_Excluded(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	tests := []struct {
		path     string
		excluded bool
	}{
		{path: "queries/daily.json", excluded: false},
		{path: "queries/reports/weekly.json", excluded: false},
		{path: "queries/generated/daily.json", excluded: true},
		{path: "queries/daily.cst", excluded: true},
		{path: "other/daily.json", excluded: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.excluded, config.Excluded(tt.path))
		})
	}

	t.Run("no patterns", func(t *testing.T) {
		require.False(t, Default().Excluded("anything/at/all.json"))
	})
}

// validateTestConfig validates that a config contains the expected test data
func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.NotNil(t, config)
	require.Equal(t, 100, config.Format.PrintWidth)
	require.Equal(t, 4, config.Format.IndentSize)
	require.Equal(t, []string{"queries/**/*.json"}, config.Include)
	require.Equal(t, []string{"queries/generated/**"}, config.Exclude)
}
