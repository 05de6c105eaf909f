package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/spigell/cv-matcher/internal/logger"
	"github.com/spigell/cv-matcher/internal/present"
	"github.com/spigell/cv-matcher/internal/selection"
	"github.com/spigell/cv-matcher/internal/workflow"
)

const (
	PromptResubmit    = "Submit again"
	PromptSelectFile  = "Select another file"
	PromptDumpResults = "Dump results to file"
	PromptExit        = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptResubmit, PromptSelectFile, PromptDumpResults, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match FILE",
	Short: "Submit a CV file and print the ranked matches",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(match(cmd, args[0]))
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolP("yes", "y", false, "do not prompt after showing the results")
}

// match is the one-shot command. It returns the process exit code.
func match(cmd *cobra.Command, path string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating a logger: %s\n", err)
		return 1
	}

	config, err := getConfig()
	if err != nil {
		log.Error("getting a config", zap.Error(err))
		return 1
	}

	log.Debug("starting the cv-matcher", zap.String("version", version), zap.String(logger.FieldService, config.ServiceURL))

	ctrl, err := newController(config, log)
	if err != nil {
		log.Error("creating the matching service client", zap.Error(err))
		return 1
	}

	if err := selectPath(ctrl, path, log); err != nil {
		log.Error("selecting the file", zap.Error(err))
		return 1
	}

	renderer := present.NewRenderer(terminalWidth())
	state := submit(ctx, ctrl, renderer)

	interactive := shouldPrompt(cmd, isTerminal())
	for interactive {
		_, action, err := prompt.Run()
		if err != nil {
			log.Debug("prompt closed", zap.Error(err))
			break
		}

		state, err = handleAction(ctx, action, ctrl, renderer, state, log)
		if err != nil {
			if errors.Is(err, errExit) {
				break
			}
			log.Error("handling action", zap.String("action", action), zap.Error(err))
		}
	}

	if _, failed := state.(workflow.Failed); failed {
		return 1
	}
	return 0
}

// shouldPrompt reports whether the follow-up menu is offered.
func shouldPrompt(cmd *cobra.Command, tty bool) bool {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return false
	}
	return !yes && tty
}

func handleAction(ctx context.Context, action string, ctrl *workflow.Controller, renderer *present.Renderer, state workflow.State, log *zap.Logger) (workflow.State, error) {
	switch action {
	case PromptResubmit:
		return submit(ctx, ctrl, renderer), nil
	case PromptSelectFile:
		pathPrompt := promptui.Prompt{
			Label:    "Path to the CV file",
			Validate: validatePath,
		}
		path, err := pathPrompt.Run()
		if err != nil {
			return state, err
		}
		if err := selectPath(ctrl, path, log); err != nil {
			return state, err
		}
		return submit(ctx, ctrl, renderer), nil
	case PromptDumpResults:
		filename, err := dumpResults(state)
		if err != nil {
			return state, fmt.Errorf("dump results to file: %w", err)
		}
		log.Info("dumping results to file", zap.String("filename", filename))
		return state, nil
	case PromptExit:
		return state, errExit
	default:
		return state, fmt.Errorf("invalid action: %s", action)
	}
}

func selectPath(ctrl *workflow.Controller, path string, log *zap.Logger) error {
	path = strings.TrimSpace(path)

	if !selection.IsAccepted(path) {
		log.Warn("file type is not in the accepted list, submitting anyway",
			zap.String(logger.FieldFile, path),
			zap.Strings("accepted", selection.AcceptedExtensions),
		)
	}

	file, err := selection.Open(path)
	if err != nil {
		return err
	}

	ctrl.SelectFile(file)
	return nil
}

// submit runs one attempt, printing the busy screen before the request and the
// outcome after it.
func submit(ctx context.Context, ctrl *workflow.Controller, renderer *present.Renderer) workflow.State {
	attempt, err := ctrl.Begin()
	if err == nil {
		fmt.Println(renderer.Render(present.Present(ctrl.State(), ctrl.Selection().Current())))
		ctrl.Execute(ctx, attempt)
	}

	state := ctrl.State()
	fmt.Println(renderer.Render(present.Present(state, ctrl.Selection().Current())))

	return state
}

// dumpResults writes the results of a succeeded state to a temporary JSON file.
func dumpResults(state workflow.State) (string, error) {
	succeeded, ok := state.(workflow.Succeeded)
	if !ok {
		return "", errors.New("there are no results to dump")
	}

	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")

	var payload any
	switch o := succeeded.Outcome.(type) {
	case workflow.Ranked:
		payload = o.Results
	case workflow.InvalidDocument:
		payload = []any{o.Record}
	}

	if err := enc.Encode(payload); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func validatePath(input string) error {
	stat, err := os.Stat(strings.TrimSpace(input))
	if err != nil {
		return err
	}
	if stat.IsDir() {
		return errors.New("path is a directory")
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
