package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/spigell/cv-matcher/internal/logger"
	"github.com/spigell/cv-matcher/internal/matchservice"
	"github.com/spigell/cv-matcher/internal/selection"
	"github.com/spigell/cv-matcher/internal/workflow"
)

const (
	app = "cv-matcher"

	serviceURLEnv = "CV_MATCHER_SERVICE_URL"
)

type Config struct {
	ServiceURL   string        `mapstructure:"service-url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxLogLength int           `mapstructure:"max-log-length"`
	LogFile      string        `mapstructure:"log-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-matcher uploads a CV to the matching service and shows ranked job matches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal() {
				return cmd.Help()
			}
			return runUI(cmd)
		},
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("service-url", serviceURLEnv); err != nil {
		log.Fatalf("binding %s environment variable: %v", serviceURLEnv, err)
	}

	viper.SetDefault("service-url", matchservice.DefaultAPIURL)
	viper.SetDefault("timeout", time.Duration(0))
	viper.SetDefault("max-log-length", 200)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional, but a broken one is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		return nil, errors.New("config is required")
	}

	config.ServiceURL = strings.TrimSpace(config.ServiceURL)
	if config.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %s", config.Timeout)
	}

	return config, nil
}

// newController wires the service client and the workflow for one process.
// The service URL is resolved once here and never changes afterwards.
func newController(config *Config, log *zap.Logger) (*workflow.Controller, error) {
	client, err := matchservice.New(logger.WithService(log, config.ServiceURL), config.ServiceURL, config.Timeout)
	if err != nil {
		return nil, err
	}

	if config.MaxLogLength > 0 {
		client.MaxLogLength = config.MaxLogLength
	}

	return workflow.NewController(selection.NewManager(), client, log), nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}
