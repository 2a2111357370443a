package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/enums"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/model"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/projection"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/store"
)

const (
	collectionReports = "reports"
	collectionUsers   = "users"
)

var ErrAlreadyRunning = errors.New("sync engine is already running")

// Alerter forwards engine-level failures to an operator channel.
type Alerter interface {
	Alert(ctx context.Context, message string)
}

// Engine keeps the projection store consistent with the remote collections
// through three independent live subscriptions: the full report list, the
// user count and the resolved-report count. The subscriptions share no
// ordering guarantee; each one updates only its own slice of the
// projection. A stream fault is fatal to the whole engine and restart is
// an explicit external action.
type Engine struct {
	client store.Client
	proj   *projection.Store
	log    *zap.Logger
	alert  Alerter

	mu      sync.Mutex
	cancel  context.CancelFunc
	subs    []store.Subscription
	wg      sync.WaitGroup
	running bool
}

func NewEngine(client store.Client, proj *projection.Store, log *zap.Logger) *Engine {
	return &Engine{client: client, proj: proj, log: log}
}

func (e *Engine) AttachAlerter(alert Alerter) {
	e.alert = alert
}

func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	reportsSub, err := e.client.Subscribe(runCtx, collectionReports, nil)
	if err != nil {
		cancel()
		return e.startFailed(ctx, err)
	}
	usersSub, err := e.client.Subscribe(runCtx, collectionUsers, nil)
	if err != nil {
		reportsSub.Close()
		cancel()
		return e.startFailed(ctx, err)
	}
	resolvedSub, err := e.client.Subscribe(runCtx, collectionReports, &store.Filter{
		Field: "status",
		Equal: string(enums.ReportStatusResolved),
	})
	if err != nil {
		reportsSub.Close()
		usersSub.Close()
		cancel()
		return e.startFailed(ctx, err)
	}

	e.cancel = cancel
	e.subs = []store.Subscription{reportsSub, usersSub, resolvedSub}
	e.running = true
	e.proj.SetErr(nil)

	e.wg.Add(1)
	go e.run(runCtx, reportsSub, usersSub, resolvedSub)
	return nil
}

// Stop cancels all three subscriptions and waits for the run loop to
// drain. Safe to call when the engine is not running.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	for _, sub := range e.subs {
		sub.Close()
	}
	e.cancel()
	e.wg.Wait()
	e.subs = nil
	e.cancel = nil
	e.running = false
}

// Restart is the explicit recovery path after an engine-level error.
func (e *Engine) Restart(ctx context.Context) error {
	e.Stop()
	return e.Start(ctx)
}

func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// run multiplexes the three snapshot streams onto one loop, so every
// projection write happens on this goroutine. The first fatal stream error
// ends the loop; the projection is stale from that point until restart.
func (e *Engine) run(ctx context.Context, reportsSub, usersSub, resolvedSub store.Subscription) {
	defer e.wg.Done()

	reports := reportsSub.Snapshots()
	users := usersSub.Snapshots()
	resolved := resolvedSub.Snapshots()

	for reports != nil || users != nil || resolved != nil {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-reports:
			if !ok {
				reports = nil
				continue
			}
			e.proj.ReplaceReports(materializeReports(snap))
		case snap, ok := <-users:
			if !ok {
				users = nil
				continue
			}
			e.proj.SetTotalUsers(snap.Size())
		case snap, ok := <-resolved:
			if !ok {
				resolved = nil
				continue
			}
			e.proj.SetResolvedReports(snap.Size())
		case err := <-reportsSub.Errs():
			e.fail(ctx, "reports stream", err)
			return
		case err := <-usersSub.Errs():
			e.fail(ctx, "users stream", err)
			return
		case err := <-resolvedSub.Errs():
			e.fail(ctx, "resolved stream", err)
			return
		}
	}
}

func materializeReports(snap store.Snapshot) []model.Report {
	out := make([]model.Report, 0, snap.Size())
	for _, rec := range snap.Records {
		out = append(out, model.ReportFromRecord(rec.Key, rec.Fields))
	}
	return out
}

func (e *Engine) startFailed(ctx context.Context, err error) error {
	wrapped := fmt.Errorf("start sync engine: %w", err)
	e.proj.SetErr(wrapped)
	if e.log != nil {
		e.log.Error("sync engine start failed", zap.Error(err))
	}
	if e.alert != nil {
		e.alert.Alert(ctx, "sync engine failed to start: "+err.Error())
	}
	return wrapped
}

// fail records the engine-level error state. One error slot for the whole
// engine; the projection stays whatever it was and must be treated as
// stale until an explicit restart.
func (e *Engine) fail(ctx context.Context, stream string, err error) {
	wrapped := fmt.Errorf("%s: %w", stream, err)
	e.proj.SetErr(wrapped)
	if e.log != nil {
		e.log.Error("sync subscription failed", zap.String("stream", stream), zap.Error(err))
	}
	if e.alert != nil {
		e.alert.Alert(ctx, "sync lost: "+wrapped.Error())
	}
}
