package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/formbridge/internal/cli"
	"github.com/bnema/formbridge/internal/cli/styles"
	"github.com/bnema/formbridge/internal/domain/entity"
)

var (
	runInstance string
	runScreen   string
	runEvals    []string
	runTimeout  time.Duration
	runApp      string
)

var runCmd = &cobra.Command{
	Use:   "run <table/form[/version]>",
	Short: "Drive a form page headless",
	Long: `Open a form in a headless script view and print the resulting page state.

The page is the index.js next to the form's index.html. It reaches the host
through the global shim.call(op, refId, args) and sees location like a web
page would. Snippets given with --eval run in the page's global scope after
it reported its startup, so they see whatever the page script declared.

Examples:
  formbridge run household/census
  formbridge run household/census --instance uuid:1234 --eval 'shim.call("getScreenPath", refId)'`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runInstance, "instance", "i", "", "row instance id")
	runCmd.Flags().StringVarP(&runScreen, "screen", "s", "", "initial screen path")
	runCmd.Flags().StringArrayVarP(&runEvals, "eval", "e", nil, "script to run in the page (repeatable)")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 10*time.Second, "give up when the page has not started by then")
	runCmd.Flags().StringVar(&runApp, "app", "", "app name (defaults to forms.app_name)")
}

func runRun(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	appName := runApp
	if appName == "" {
		appName = a.Config.Forms.AppName
	}
	ref, err := entity.ParseFormKey(appName, args[0])
	if err != nil {
		return fmt.Errorf("parse form reference %q: %w", args[0], err)
	}

	ctx, cancel := context.WithTimeout(a.Ctx(), runTimeout)
	defer cancel()

	report, results, err := a.RunHeadless(ctx, cli.HeadlessOptions{
		Form:       ref,
		InstanceID: entity.InstanceID(runInstance),
		ScreenPath: runScreen,
		Evals:      runEvals,
	})
	for _, res := range results {
		fmt.Println(renderEval(a.Theme, res))
	}
	if report.Form != "" {
		fmt.Println(styles.RenderRun(a.Theme, report))
	}
	return err
}

func renderEval(theme *styles.Theme, res cli.EvalResult) string {
	prompt := theme.Subtle.Render(styles.IconArrow + " " + res.Source)
	if res.Err != nil {
		return prompt + "\n  " + theme.ErrorStyle.Render(res.Err.Error())
	}
	out, err := json.Marshal(res.Value)
	if err != nil {
		out = []byte(fmt.Sprint(res.Value))
	}
	return prompt + "\n  " + theme.Normal.Render(string(out))
}
