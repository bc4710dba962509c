package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/atomic"

	"github.com/bnema/formbridge/internal/application/usecase"
	"github.com/bnema/formbridge/internal/cli"
	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/infrastructure/config"
	"github.com/bnema/formbridge/internal/infrastructure/server"
	"github.com/bnema/formbridge/internal/infrastructure/webview"
	"github.com/bnema/formbridge/internal/logging"
)

const serveHostID = "serve"

var (
	serveForm     string
	serveInstance string
	serveScreen   string
	serveAddr     string
	serveRestore  bool
	serveAux      map[string]string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host a form page for a remote web view",
	Long: `Serve the forms tree over HTTP and host one form page.

The web view connects to /webview/events to follow navigations and posts
bridge calls to /bridge. Pages are addressed with http URLs, whatever
bridge.base_url_mode says.

A POST to /webview/back is the web view's back button: the host exits once
the page reported its save or ignore outcome. On interrupt the host state is
saved instead; --restore reopens it.

Examples:
  formbridge serve --form household/census
  formbridge serve --form household/census --instance uuid:1234 --screen "0/1"
  formbridge serve --restore`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveForm, "form", "f", "", "form to open as table/form[/version]")
	serveCmd.Flags().StringVarP(&serveInstance, "instance", "i", "", "row instance id")
	serveCmd.Flags().StringVarP(&serveScreen, "screen", "s", "", "initial screen path")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (defaults to server.addr)")
	serveCmd.Flags().StringToStringVar(&serveAux, "aux", nil, "auxiliary fragment parameters as key=value")
	serveCmd.Flags().BoolVar(&serveRestore, "restore", false, "reopen the form saved by the last interrupted session")
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	addr := serveAddr
	if addr == "" {
		addr = a.Config.Server.Addr
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(a.Ctx(), "serve"), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	view := webview.NewRemote(ctx)
	events := cli.NewEventLog(ctx)
	rt := a.NewRuntime(ctx, cli.RuntimeOptions{
		HostID:   serveHostID,
		View:     view,
		Listener: events,
		Resolver: a.NewResolver(usecase.BaseURLServer, addr),
	})
	defer func() { _ = rt.Close() }()

	exited := atomic.NewBool(false)
	back := func() {
		rt.Host.RequestExit(func() {
			log.Info().Msg("host exited")
			exited.Store(true)
			stop()
		})
	}

	srv := server.New(ctx, server.Options{
		Addr:      addr,
		FormsRoot: a.Config.Forms.Root,
		AppName:   a.Config.Forms.AppName,
		Bridge:    rt.HandleBridge,
		Events:    view,
		Forms:     a.Forms,
		Health:    rt.Health.Available,
		Back:      back,
	})

	if a.ConfigManager != nil {
		a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			log.Info().Str("forms_root", cfg.Forms.Root).Msg("configuration changed, rescanning forms")
			rt.RefreshForms()
		})
		if err := a.ConfigManager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch disabled")
		}
	}

	rt.RefreshForms()
	if err := openServedForm(ctx, a, rt); err != nil {
		return err
	}

	if err := rt.Run(ctx, srv.Serve); err != nil {
		return err
	}

	if exited.Load() {
		return nil
	}
	// the loop has exited; the host is ours alone now
	if err := rt.Host.Snapshot(context.WithoutCancel(ctx)); err != nil {
		log.Warn().Err(err).Msg("failed to save host snapshot")
	}
	return nil
}

func openServedForm(ctx context.Context, a *cli.App, rt *cli.Runtime) error {
	if serveRestore {
		restored, err := rt.Host.Restore(ctx)
		if err != nil {
			return fmt.Errorf("restore host: %w", err)
		}
		if restored {
			return nil
		}
		logging.FromContext(ctx).Info().Msg("no saved host state")
	}
	if serveForm == "" {
		if !serveRestore {
			logging.FromContext(ctx).Info().Msg("no form given, serving the forms tree only")
		}
		return nil
	}

	ref, err := entity.ParseFormKey(a.Config.Forms.AppName, serveForm)
	if err != nil {
		return fmt.Errorf("parse form reference %q: %w", serveForm, err)
	}
	if len(serveAux) > 0 {
		rt.Host.SetAuxParams(serveAux)
	}
	rt.Host.OpenForm(ref, entity.InstanceID(serveInstance), serveScreen)
	return nil
}
