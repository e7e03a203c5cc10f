// Package tui is the interactive terminal client. It drives a
// view.Controller with huh forms and renders screens with lipgloss.
package tui

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/internal/view"
)

// App runs the screen loop until the user quits
type App struct {
	ctrl   *view.Controller
	prompt Prompter
	out    io.Writer
	styles Styles
	logger *zap.Logger
}

// New wires an App. The controller should have been built with the
// App's Notifier so validation messages reach the terminal.
func New(ctrl *view.Controller, prompt Prompter, out io.Writer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{ctrl: ctrl, prompt: prompt, out: out, styles: DefaultStyles(), logger: logger}
}

// Notifier prints user-facing messages in the error style
func Notifier(out io.Writer, st Styles) view.Notifier {
	return view.NotifyFunc(func(_ context.Context, msg string) {
		fmt.Fprintln(out, st.Error.Render(msg))
	})
}

// Confirmer adapts a Prompter to the controller's confirmation hook
func Confirmer(p Prompter) view.Confirmer {
	return view.ConfirmFunc(p.Confirm)
}

// Run loops over screens. It returns nil when the user quits.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var (
			quit bool
			err  error
		)
		switch a.ctrl.Screen() {
		case view.Main:
			quit, err = a.main(ctx)
		case view.Create:
			err = a.create(ctx)
		case view.Detail:
			err = a.detail(ctx)
		}
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (a *App) main(ctx context.Context) (bool, error) {
	visible := a.ctrl.Visible()
	fmt.Fprint(a.out, RenderMain(a.styles, a.ctrl.Filter(), visible))

	act, err := a.prompt.MainAction(ctx, visible)
	if err != nil {
		return false, err
	}
	switch act.Kind {
	case ActionQuit:
		return true, nil
	case ActionNew:
		return false, a.ctrl.OpenCreate()
	case ActionFilter:
		f, err := a.prompt.ChooseFilter(ctx, a.ctrl.Filter())
		if err != nil {
			return false, err
		}
		return false, a.ctrl.SetFilter(f)
	case ActionOpen:
		if err := a.ctrl.Select(act.RecipeID); err != nil {
			a.logger.Warn("select failed", zap.String("id", act.RecipeID), zap.Error(err))
		}
	}
	return false, nil
}

func (a *App) create(ctx context.Context) error {
	draft, _ := a.ctrl.Draft()
	edited, save, err := a.prompt.EditDraft(ctx, draft)
	if err != nil {
		return err
	}
	if err := a.ctrl.SetDraft(edited); err != nil {
		return err
	}
	if !save {
		a.ctrl.Back()
		return nil
	}
	// errors were already shown through the notifier; stay on the form
	if _, err := a.ctrl.Submit(ctx); err != nil {
		a.logger.Debug("submit rejected", zap.Error(err))
	}
	return nil
}

func (a *App) detail(ctx context.Context) error {
	r, ok := a.ctrl.Selected()
	if !ok {
		a.ctrl.Back()
		return nil
	}
	fmt.Fprint(a.out, RenderDetail(a.styles, r))

	act, err := a.prompt.DetailAction(ctx, r)
	if err != nil {
		return err
	}
	if act.Kind == ActionDelete {
		if _, err := a.ctrl.DeleteSelected(ctx, Confirmer(a.prompt)); err != nil {
			a.logger.Debug("delete failed", zap.Error(err))
		}
		return nil
	}
	a.ctrl.Back()
	return nil
}
