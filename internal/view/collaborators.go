package view

import "context"

// Messages shown by the front ends.
const (
	DeletePrompt     = "Bu tarifi silmek istediğinize emin misiniz?"
	MissingFieldsMsg = "Lütfen tüm alanları doldurun"
	SaveFailedMsg    = "Tarif kaydedilemedi, lütfen tekrar deneyin"
	DeleteFailedMsg  = "Tarif silinemedi, lütfen tekrar deneyin"
	EmptyListMsg     = "Henüz tarif eklenmemiş"
	EmptyListHint    = "Yeni tarif eklemek için + butonuna tıklayın"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Answer returns a Confirmer that always gives the same answer, for callers
// that collected the user's decision up front.
func Answer(yes bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) (bool, error) { return yes, nil })
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(ctx context.Context, msg string)
}

// NotifyFunc adapts a function to Notifier.
type NotifyFunc func(ctx context.Context, msg string)

func (f NotifyFunc) Notify(ctx context.Context, msg string) {
	f(ctx, msg)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string) {}
