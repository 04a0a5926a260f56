// Package screens holds what the individual screens share: their
// dependencies and the navigation messages they exchange.
package screens

import (
	"time"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/catalog"
	"github.com/abhisek/mindcheck/internal/results"
	"github.com/abhisek/mindcheck/internal/share"
	"github.com/abhisek/mindcheck/internal/store"
)

// StartTestMsg asks the home screen to start a fresh test. Screens deeper
// in the stack send it after PopToRootMsg.
type StartTestMsg struct{}

// Env carries the dependencies screens are built with.
type Env struct {
	Catalog  *catalog.Catalog
	Bridge   *results.Bridge
	Share    *share.Service
	ShareURL string

	// Events is optional; when set, session start and answer events are
	// logged.
	Events store.EventRepo

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// NewController starts a new session over the catalog.
func (e *Env) NewController() *assessment.Controller {
	var opts []assessment.Option
	if e.Clock != nil {
		opts = append(opts, assessment.WithClock(e.Clock))
	}
	if e.Events != nil {
		opts = append(opts, assessment.WithObserver(results.NewSessionLogger(e.Events)))
	}
	return assessment.NewController(e.Catalog, opts...)
}
