package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-matcher/internal/logger"
	"github.com/spigell/cv-matcher/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Pick a CV and browse matches in an interactive terminal UI",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runUI(cmd)
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)

	uiCmd.Flags().String("dir", "", "directory the file picker starts in (default is the current directory)")
	uiCmd.Flags().String("log-file", "", "write logs to this file; the terminal UI owns stdout")

	viper.BindPFlag("log-file", uiCmd.Flags().Lookup("log-file"))
}

func runUI(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	config, err := getConfig()
	if err != nil {
		return fmt.Errorf("getting a config: %w", err)
	}

	log := zap.NewNop()
	if path := strings.TrimSpace(config.LogFile); path != "" {
		log, err = logger.New(viper.GetBool("json"), viper.GetBool("debug"), path)
		if err != nil {
			return fmt.Errorf("creating a logger: %w", err)
		}
	}

	log.Info("starting the cv-matcher ui", zap.String("version", version))

	ctrl, err := newController(config, log)
	if err != nil {
		return err
	}

	dir := ""
	if flag := cmd.Flags().Lookup("dir"); flag != nil {
		dir = flag.Value.String()
	}

	return tui.Run(ctx, ctrl, dir, log)
}
