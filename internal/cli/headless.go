package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/formbridge/internal/application/usecase"
	"github.com/bnema/formbridge/internal/cli/styles"
	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/infrastructure/scriptview"
	"github.com/bnema/formbridge/internal/logging"
)

const headlessHostID = "headless"

// HeadlessOptions describes one headless page run.
type HeadlessOptions struct {
	Form       entity.FormReference
	InstanceID entity.InstanceID
	ScreenPath string
	// Evals run in order in the page once it reported its startup.
	Evals []string
}

// EvalResult is the outcome of one evaluated snippet.
type EvalResult struct {
	Source string
	Value  any
	Err    error
}

// RunHeadless opens a form in a script view, waits for the page to report
// its startup, runs the snippets and returns the final page state. ctx
// bounds the whole run.
func (a *App) RunHeadless(ctx context.Context, opts HeadlessOptions) (styles.RunReport, []EvalResult, error) {
	ctx = logging.WithForm(logging.WithComponent(ctx, "headless"), opts.Form)

	var rt *Runtime
	view := scriptview.New(ctx, a.FS, func(payload []byte) any {
		return rt.HandleBridge(payload)
	})
	events := NewEventLog(ctx)
	rt = a.NewRuntime(ctx, RuntimeOptions{
		HostID:   headlessHostID,
		View:     view,
		Listener: events,
		Resolver: a.NewResolver(usecase.BaseURLFile, ""),
	})
	defer func() { _ = rt.Close() }()

	runCtx, cancel := context.WithCancel(ctx)
	runErr := make(chan error, 1)
	go func() { runErr <- rt.Run(runCtx) }()
	stopRun := func() error {
		cancel()
		return <-runErr
	}

	rt.Host.OpenForm(opts.Form, opts.InstanceID, opts.ScreenPath)
	if err := events.Wait(ctx); err != nil {
		_ = stopRun()
		return styles.RunReport{}, nil, fmt.Errorf("wait for page: %w", err)
	}

	var results []EvalResult
	for _, src := range opts.Evals {
		val, err := view.Eval(src)
		results = append(results, EvalResult{Source: src, Value: val, Err: err})
		// let the host catch up with what the snippet triggered
		if err := rt.Sync(ctx); err != nil {
			_ = stopRun()
			return styles.RunReport{}, results, err
		}
	}
	if err := rt.Sync(ctx); err != nil {
		_ = stopRun()
		return styles.RunReport{}, results, err
	}

	if err := stopRun(); err != nil {
		return styles.RunReport{}, results, err
	}

	report := a.runReport(opts.Form, rt, view, events)
	if last := rt.Host.LastResult(); last.Err != nil && !errors.Is(last.Err, context.Canceled) {
		return report, results, last.Err
	}
	return report, results, nil
}

func (a *App) runReport(form entity.FormReference, rt *Runtime, view *scriptview.View, events *EventLog) styles.RunReport {
	state := rt.Host.Session().View()
	report := styles.RunReport{
		Form:         form.String(),
		Location:     view.Location(),
		RefID:        string(state.RefID),
		Framework:    string(state.Framework),
		InstanceID:   state.InstanceID.String(),
		ScreenDepth:  state.ScreenDepth,
		SectionDepth: state.SectionDepth,
		Decision:     string(rt.Host.LastResult().Decision),
		PageError:    view.PageError(),
	}
	for _, ev := range events.Events() {
		if ev.Name == "initialization-complete" {
			report.Messages = ev.Messages
		}
		report.Events = append(report.Events, ev.String())
	}
	return report
}
