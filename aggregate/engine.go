package aggregate

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/taxi-compare/trips"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

// ErrNoStore is returned by an Engine built without a store
var ErrNoStore = errors.New("no dataset loaded")

// QueryError reports a failure while computing one view. It never leaves the
// store in a changed state.
type QueryError struct {
	View views.Name
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("view %s: %v", e.View, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// Engine runs the views over one immutable store
type Engine struct {
	store *trips.Store
}

func NewEngine(store *trips.Store) *Engine {
	return &Engine{store: store}
}

// Store returns the dataset the engine reads
func (e *Engine) Store() *trips.Store { return e.store }

// guard runs fn and turns a missing store or a panic into a *QueryError
func guard[T any](e *Engine, view views.Name, fn func(*trips.Store) []T) (rows []T, err error) {
	if e == nil || e.store == nil {
		return nil, &QueryError{View: view, Err: ErrNoStore}
	}
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, &QueryError{View: view, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return fn(e.store), nil
}

func (e *Engine) Hourly() ([]views.HourlyRow, error) {
	return guard(e, views.Hourly, HourlyDemand)
}

func (e *Engine) Weekly() ([]views.WeeklyRow, error) {
	return guard(e, views.Weekly, WeeklyDemand)
}

func (e *Engine) Payments() ([]views.PaymentRow, error) {
	return guard(e, views.Payments, PaymentMix)
}

func (e *Engine) TopZones() ([]views.ZoneRow, error) {
	return guard(e, views.TopZones, TopZones)
}

func (e *Engine) Fares() ([]views.FareRow, error) {
	return guard(e, views.Fares, FareComposition)
}

// View computes a view by name. The result is one of the views row slices.
func (e *Engine) View(name views.Name) (any, error) {
	switch name {
	case views.Hourly:
		return e.Hourly()
	case views.Weekly:
		return e.Weekly()
	case views.Payments:
		return e.Payments()
	case views.TopZones:
		return e.TopZones()
	case views.Fares:
		return e.Fares()
	}
	return nil, &QueryError{View: name, Err: views.ErrUnknownView}
}

// Summary computes all views concurrently
func (e *Engine) Summary(ctx context.Context) (views.Summary, error) {
	if err := ctx.Err(); err != nil {
		return views.Summary{}, err
	}
	var sum views.Summary
	var g errgroup.Group
	g.Go(func() (err error) {
		sum.Hourly, err = e.Hourly()
		return err
	})
	g.Go(func() (err error) {
		sum.Weekly, err = e.Weekly()
		return err
	})
	g.Go(func() (err error) {
		sum.Payments, err = e.Payments()
		return err
	})
	g.Go(func() (err error) {
		sum.TopZones, err = e.TopZones()
		return err
	})
	g.Go(func() (err error) {
		sum.Fares, err = e.Fares()
		return err
	})
	if err := g.Wait(); err != nil {
		return views.Summary{}, err
	}
	return sum, nil
}
