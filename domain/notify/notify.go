package notify

import (
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
)

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

type Notification struct {
	Id      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier is the single user-facing notification contract, every sink implements it
type Notifier interface {
	Notify(c ctx.Ctx, kind Kind, message string)
}

// History lists what was sent so far, oldest first
type History interface {
	List() []Notification
}
