package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/formbridge/internal/application/usecase"
	"github.com/bnema/formbridge/internal/cli/styles"
	"github.com/bnema/formbridge/internal/domain/entity"
)

var (
	formsApp      string
	formsInstance string
	formsScreen   string
	formsServer   bool
)

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "Manage the forms registry",
	Long:  `List registered forms, rescan the forms tree and resolve form references.`,
}

var formsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered forms",
	RunE:  runFormsList,
}

var formsRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rescan the forms tree into the registry",
	RunE:  runFormsRefresh,
}

var formsResolveCmd = &cobra.Command{
	Use:   "resolve <table/form[/version]>",
	Short: "Resolve a form reference to its files and page URL",
	Long: `Resolve a form reference the way the host does before loading a page.

Examples:
  formbridge forms resolve household/census
  formbridge forms resolve household/census/2 --instance uuid:1234 --screen "0/1"`,
	Args: cobra.ExactArgs(1),
	RunE: runFormsResolve,
}

func init() {
	rootCmd.AddCommand(formsCmd)
	formsCmd.AddCommand(formsListCmd, formsRefreshCmd, formsResolveCmd)
	formsCmd.PersistentFlags().StringVar(&formsApp, "app", "", "app name (defaults to forms.app_name)")

	formsResolveCmd.Flags().StringVarP(&formsInstance, "instance", "i", "", "row instance id")
	formsResolveCmd.Flags().StringVarP(&formsScreen, "screen", "s", "", "screen path")
	formsResolveCmd.Flags().BoolVar(&formsServer, "server", false, "build an http URL served by 'formbridge serve'")
}

func formsAppName() string {
	if formsApp != "" {
		return formsApp
	}
	return app.Config.Forms.AppName
}

func runFormsList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	forms, err := a.Forms.List(cmd.Context(), formsAppName())
	if err != nil {
		return fmt.Errorf("list forms: %w", err)
	}
	fmt.Println(styles.NewFormsRenderer(a.Theme).RenderList(formsAppName(), forms))
	return nil
}

func runFormsRefresh(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	res, err := a.RefreshUC.Execute(cmd.Context(), formsAppName())
	if err != nil {
		return fmt.Errorf("refresh forms: %w", err)
	}
	fmt.Println(styles.NewFormsRenderer(a.Theme).RenderRefresh(styles.RefreshSummary{
		AppName: res.AppName,
		Added:   res.Added,
		Updated: res.Updated,
		Removed: res.Removed,
		Skipped: res.Skipped,
	}))
	return nil
}

func runFormsResolve(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ref, err := entity.ParseFormKey(formsAppName(), args[0])
	if err != nil {
		return fmt.Errorf("parse form reference %q: %w", args[0], err)
	}

	resolver := a.Resolver
	if formsServer {
		resolver = a.NewResolver(usecase.BaseURLServer, a.Config.Server.Addr)
	}

	ctx := cmd.Context()
	loc, err := resolver.ResolveFormLocation(ctx, ref)
	if err != nil {
		return err
	}

	// an instance without a stored row keeps its id; the page creates the row
	instance, _, err := resolver.ResolveCurrentInstance(ctx, ref, usecase.RowContext{InstanceID: entity.InstanceID(formsInstance)})
	if err != nil {
		return err
	}

	page, err := resolver.BuildPageURL(loc, instance, usecase.FragmentParams{ScreenPath: formsScreen})
	if err != nil {
		return err
	}
	fmt.Println(styles.NewFormsRenderer(a.Theme).RenderResolved(loc, page))
	return nil
}
