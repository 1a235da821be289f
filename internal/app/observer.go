package app

import (
	"context"
	"log/slog"

	"github.com/hopchain/hopchain/internal/domain"
	"github.com/hopchain/hopchain/internal/ports"
)

// Compile-time checks.
var (
	_ ports.DispatchObserver = (*LogObserver)(nil)
	_ ports.DispatchObserver = NopObserver{}
)

// LogObserver emits dispatch and call events as structured log records. It
// is the default observer wired by cmd/executord; deployments that want the
// execution trace elsewhere provide their own ports.DispatchObserver.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates a LogObserver. A nil logger discards events.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) ObserveDispatch(ctx context.Context, e domain.DispatchEvent) {
	o.logger.InfoContext(ctx, "dispatch",
		slog.Uint64("target_domain", uint64(e.TargetDomain)),
		slog.String("target", string(e.Target)),
		slog.Bool("local", e.Local),
	)
}

func (o *LogObserver) ObserveCall(ctx context.Context, e domain.CallEvent) {
	o.logger.InfoContext(ctx, "primary call",
		slog.String("target", string(e.Target)),
		slog.Bool("success", e.Success),
	)
}

// NopObserver drops all events.
type NopObserver struct{}

func (NopObserver) ObserveDispatch(context.Context, domain.DispatchEvent) {}
func (NopObserver) ObserveCall(context.Context, domain.CallEvent)         {}
