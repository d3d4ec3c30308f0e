package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	tableName    string
	tableTier    string
	language     string
	exportFormat string
)

var rootCmd = &cobra.Command{
	Use:   "djbabel",
	Short: "DataJoint table definition translator",
	Long: `djbabel parses DataJoint table definitions and renders them as Python or
MATLAB class declarations, or as a canonical JSON/YAML model.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger(logLevel, logFormat)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [config.toml]",
	Short: "Generate sources for every table in a config",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigArg(cmd, args)
		if err != nil {
			return err
		}
		return runGenerate(cfg)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [config.toml]",
	Short: "Parse and lint every table in a config without writing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigArg(cmd, args)
		if err != nil {
			return err
		}
		return runCheck(cfg)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch [config.toml]",
	Short: "Generate, then regenerate whenever an input changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := resolveConfigPath(cmd, args)
		if err != nil {
			return err
		}
		return runWatch(cfgPath)
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate [definition-file]",
	Short: "Render one definition (file or stdin) to stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseInputTable(args)
		if err != nil {
			return err
		}
		r, err := newRenderer(language)
		if err != nil {
			return err
		}
		fmt.Println(r.Render(t))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [definition-file]",
	Short: "Serialize one definition (file or stdin) as JSON or YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseInputTable(args)
		if err != nil {
			return err
		}
		data, err := exportTable(t, exportFormat)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the djbabel version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionLine())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	for _, cmd := range []*cobra.Command{generateCmd, checkCmd, watchCmd} {
		cmd.Flags().StringVar(&configPath, "config", "", "path to generation TOML config file")
	}
	for _, cmd := range []*cobra.Command{translateCmd, exportCmd} {
		cmd.Flags().StringVarP(&tableName, "name", "n", "", "table class name")
		cmd.Flags().StringVarP(&tableTier, "tier", "t", "Manual", "table tier (Manual, Lookup, Imported, Computed, Part)")
		cmd.MarkFlagRequired("name")
	}
	translateCmd.Flags().StringVarP(&language, "lang", "l", "python", "target language (python, matlab)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format (json, yaml)")

	rootCmd.AddCommand(generateCmd, checkCmd, watchCmd, translateCmd, exportCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger configures the global logger from the root flags.
func initLogger(level, format string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(l)

	switch format {
	case "console":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	case "json":
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	default:
		return fmt.Errorf("log-format must be one of: console, json")
	}
	return nil
}

// resolveConfigPath picks the config file: a positional arg takes
// precedence over the --config flag.
func resolveConfigPath(cmd *cobra.Command, args []string) (string, error) {
	cfgPath := configPath
	if len(args) > 0 {
		cfgPath = args[0]
	}
	if cfgPath == "" {
		return "", fmt.Errorf("config file required: djbabel %s <config.toml> or djbabel %s --config <config.toml>",
			cmd.Name(), cmd.Name())
	}
	return cfgPath, nil
}

func loadConfigArg(cmd *cobra.Command, args []string) (*Config, error) {
	cfgPath, err := resolveConfigPath(cmd, args)
	if err != nil {
		return nil, err
	}
	return loadConfig(cfgPath)
}

// parseInputTable builds a Table from the translate/export flags and the
// definition text given as a file argument or on stdin.
func parseInputTable(args []string) (*Table, error) {
	tier, err := parseTier(tableTier)
	if err != nil {
		return nil, err
	}
	text, err := readDefinitionInput(args)
	if err != nil {
		return nil, err
	}
	return parseDefinition(tableName, tier, text)
}

// readDefinitionInput reads the definition from the file argument, or from
// stdin when the argument is absent or "-".
func readDefinitionInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read definition: %w", err)
	}
	return string(data), nil
}
