package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/pageza/tarif-defteri/internal/model"
)

// HuhPrompter renders every prompt as a huh form
type HuhPrompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
	theme      *huh.Theme
}

// NewHuhPrompter builds a prompter. Accessible mode swaps the TUI widgets
// for plain line prompts, which is what non-interactive terminals need.
func NewHuhPrompter(in io.Reader, out io.Writer, accessible bool) *HuhPrompter {
	return &HuhPrompter{in: in, out: out, accessible: accessible, theme: huh.ThemeCharm()}
}

func (p *HuhPrompter) run(ctx context.Context, groups ...*huh.Group) error {
	form := huh.NewForm(groups...).
		WithTheme(p.theme).
		WithAccessible(p.accessible)
	if p.in != nil {
		form = form.WithInput(p.in)
	}
	if p.out != nil {
		form = form.WithOutput(p.out)
	}
	return form.RunWithContext(ctx)
}

const (
	choiceNew    = "__new"
	choiceFilter = "__filter"
	choiceQuit   = "__quit"
	choiceBack   = "__back"
	choiceDelete = "__delete"
)

func (p *HuhPrompter) MainAction(ctx context.Context, recipes []model.Recipe) (Action, error) {
	opts := make([]huh.Option[string], 0, len(recipes)+3)
	for _, r := range recipes {
		opts = append(opts, huh.NewOption(r.Name+"  ("+r.Category.String()+")", r.ID))
	}
	opts = append(opts,
		huh.NewOption("+ Yeni Tarif", choiceNew),
		huh.NewOption("Kategori seç", choiceFilter),
		huh.NewOption("Çıkış", choiceQuit),
	)

	var choice string
	err := p.run(ctx, huh.NewGroup(
		huh.NewSelect[string]().
			Title("Tarifler").
			Options(opts...).
			Value(&choice),
	))
	if err != nil {
		return quitOnAbort(err)
	}
	switch choice {
	case choiceNew:
		return Action{Kind: ActionNew}, nil
	case choiceFilter:
		return Action{Kind: ActionFilter}, nil
	case choiceQuit:
		return Action{Kind: ActionQuit}, nil
	}
	return Action{Kind: ActionOpen, RecipeID: choice}, nil
}

func (p *HuhPrompter) ChooseFilter(ctx context.Context, current model.Filter) (model.Filter, error) {
	labels := model.FilterLabels()
	opts := make([]huh.Option[string], 0, len(labels))
	for _, l := range labels {
		opts = append(opts, huh.NewOption(l, l))
	}
	choice := current.String()
	err := p.run(ctx, huh.NewGroup(
		huh.NewSelect[string]().
			Title("Kategori").
			Options(opts...).
			Value(&choice),
	))
	if errors.Is(err, huh.ErrUserAborted) {
		return current, nil
	}
	if err != nil {
		return current, err
	}
	return model.ParseFilter(choice)
}

func (p *HuhPrompter) EditDraft(ctx context.Context, draft model.NewRecipe) (model.NewRecipe, bool, error) {
	cats := model.Categories()
	opts := make([]huh.Option[model.Category], 0, len(cats))
	for _, c := range cats {
		opts = append(opts, huh.NewOption(c.String(), c))
	}
	save := true
	err := p.run(ctx,
		huh.NewGroup(
			huh.NewSelect[model.Category]().
				Title("Kategori").
				Options(opts...).
				Value(&draft.Category),
			huh.NewInput().
				Title("Tarif Adı").
				Placeholder("Örn: Mercimek Çorbası").
				Value(&draft.Name),
			huh.NewText().
				Title("Malzemeler").
				Placeholder("Her satıra bir malzeme").
				Lines(5).
				Value(&draft.Ingredients),
			huh.NewText().
				Title("Hazırlanışı").
				Lines(6).
				Value(&draft.Instructions),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Tarifi kaydet?").
				Affirmative("Kaydet").
				Negative("Vazgeç").
				Value(&save),
		),
	)
	if errors.Is(err, huh.ErrUserAborted) {
		return draft, false, nil
	}
	if err != nil {
		return draft, false, err
	}
	return draft, save, nil
}

func (p *HuhPrompter) DetailAction(ctx context.Context, r model.Recipe) (Action, error) {
	var choice string
	err := p.run(ctx, huh.NewGroup(
		huh.NewSelect[string]().
			Title(r.Name).
			Options(
				huh.NewOption("← Geri", choiceBack),
				huh.NewOption("Sil", choiceDelete),
			).
			Value(&choice),
	))
	if errors.Is(err, huh.ErrUserAborted) {
		return Action{Kind: ActionBack}, nil
	}
	if err != nil {
		return Action{}, err
	}
	if choice == choiceDelete {
		return Action{Kind: ActionDelete}, nil
	}
	return Action{Kind: ActionBack}, nil
}

func (p *HuhPrompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	var yes bool
	err := p.run(ctx, huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Evet").
			Negative("Hayır").
			Value(&yes),
	))
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return yes, err
}

func quitOnAbort(err error) (Action, error) {
	if errors.Is(err, huh.ErrUserAborted) {
		return Action{Kind: ActionQuit}, nil
	}
	return Action{}, err
}
