package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "rhymerank" {
		t.Errorf("Expected Use to be 'rhymerank', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Rhyme Family") {
		t.Errorf("Expected Short description to contain 'Rhyme Family'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"cmudict", true},
		{"download", true},
		{"freq-db", true},
		{"import-freq", true},
		{"locale", true},
		{"by-type", true},
		{"min-zipf", true},
		{"min-family-size", true},
		{"max-variants", true},
		{"workers", true},
		{"output", true},
		{"top", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test default values
	dictFlag := cmd.Flags().Lookup("cmudict")
	if dictFlag == nil {
		t.Fatal("cmudict flag not found")
	}

	home, _ := os.UserHomeDir()
	expectedDefault := filepath.Join(home, ".local", "share", "rhymerank", "cmudict.dict")
	if dictFlag.DefValue != expectedDefault {
		t.Errorf("Expected default cmudict path to be %s, got %s", expectedDefault, dictFlag.DefValue)
	}

	// Test cutoff default
	zipfFlag := cmd.Flags().Lookup("min-zipf")
	if zipfFlag == nil {
		t.Fatal("min-zipf flag not found")
	}
	if zipfFlag.DefValue != "2.5" {
		t.Errorf("Expected default min-zipf to be 2.5, got %s", zipfFlag.DefValue)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		cfgFile   string
		setupFunc func(t *testing.T) string
	}{
		{
			name:    "with config file",
			cfgFile: "test-config.yaml",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `frequency:
  locale: en
output:
  directory: /test/output`
				err := os.WriteFile(cfgPath, []byte(content), 0644)
				if err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name:    "without config file",
			cfgFile: "",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			cfgPath := tt.setupFunc(t)
			if tt.cfgFile != "" && cfgPath != "" {
				tt.cfgFile = cfgPath
			}

			InitConfig(tt.cfgFile)

			// Test environment variable prefix
			os.Setenv("RHYMERANK_TEST_VAR", "test-value")
			defer os.Unsetenv("RHYMERANK_TEST_VAR")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("output", "/test/output")
	cmd.Flags().Set("locale", "en-gb")
	cmd.Flags().Set("min-zipf", "3.1")

	bindFlagsToViper(cmd)

	// Test that values are bound
	if viper.GetString("output.directory") != "/test/output" {
		t.Errorf("Expected output.directory to be /test/output, got %s", viper.GetString("output.directory"))
	}

	if viper.GetString("frequency.locale") != "en-gb" {
		t.Errorf("Expected frequency.locale to be en-gb, got %s", viper.GetString("frequency.locale"))
	}

	if viper.GetFloat64("pipeline.min_zipf") != 3.1 {
		t.Errorf("Expected pipeline.min_zipf to be 3.1, got %v", viper.GetFloat64("pipeline.min_zipf"))
	}
}
