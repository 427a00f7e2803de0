package cli

import (
	"fmt"
	"os"

	"github.com/pmorozov/inklet/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Inklet configuration",
	Long: `Manage Inklet configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (INKLET_*)
3. Config file (~/.inklet/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration including all sources (defaults, config file, env vars, flags).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := model.DefaultConfig()

		configFile := viper.ConfigFileUsed()
		if configFile != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", configFile)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		fmt.Println(string(yamlData))

		fmt.Println("Configuration hierarchy (highest to lowest priority):")
		fmt.Println("  1. CLI flags")
		fmt.Println("  2. Environment variables (INKLET_*, OPENAI_API_KEY)")
		fmt.Println("  3. Config file (~/.inklet/config.yaml)")
		fmt.Println("  4. Defaults (shown above)")
		fmt.Println()

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default configuration file at ~/.inklet/config.yaml with all available options documented.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configDir := home + "/.inklet"
		configPath := configDir + "/config.yaml"

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'inklet config show' to view it, or delete it first to recreate", configPath)
		}

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}

		f, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("error creating config file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close config file: %w", closeErr)
			}
		}()

		printf := func(format string, a ...interface{}) {
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(f, format, a...)
		}

		cfg := model.DefaultConfig()

		printf("# Inklet Configuration File\n")
		printf("# See https://github.com/pmorozov/inklet for full documentation\n")
		printf("#\n")
		printf("# Configuration hierarchy (highest to lowest priority):\n")
		printf("#   1. CLI flags\n")
		printf("#   2. Environment variables (INKLET_*)\n")
		printf("#   3. This config file\n")
		printf("#   4. Built-in defaults\n\n")

		printf("# Annotation engine: spacy (sidecar service) or openai\n")
		printf("annotator:\n")
		printf("  provider: %s\n", cfg.Annotator.Provider)
		printf("  base_url: %s\n", cfg.Annotator.BaseURL)
		printf("  # model: gpt-4o-mini     # openai provider only\n")
		printf("  timeout: %d\n\n", cfg.Annotator.Timeout)

		printf("# HTTP settings for --url inputs\n")
		printf("http:\n")
		printf("  timeout: %s\n", cfg.HTTP.Timeout)
		printf("  user_agent: %q\n", cfg.HTTP.UserAgent)
		printf("  max_body_bytes: %d\n", cfg.HTTP.MaxBodyBytes)
		printf("  ignore_robots: %v\n\n", cfg.HTTP.IgnoreRobots)

		printf("# Annotation result cache\n")
		printf("cache:\n")
		printf("  enabled: %v\n", cfg.Cache.Enabled)
		printf("  ttl: %s\n", cfg.Cache.TTL)
		printf("  # dir: ~/.inklet/cache   # enable the persistent disk layer\n\n")

		printf("# Batch processing\n")
		printf("concurrency:\n")
		printf("  workers: %d\n\n", cfg.Concurrency.Workers)

		printf("rate_limit:\n")
		printf("  requests_per_second: %g\n", cfg.RateLimit.RequestsPerSecond)
		printf("  burst_size: %d\n", cfg.RateLimit.BurstSize)

		if err != nil {
			return fmt.Errorf("error writing config file: %w", err)
		}

		fmt.Printf("✓ Created config file: %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
