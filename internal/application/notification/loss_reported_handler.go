package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/govprop/backend/internal/domain/directory"
	"github.com/govprop/backend/internal/domain/loss"
	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SettingReader resolves a configuration value, blank when unset
type SettingReader interface {
	Value(ctx context.Context, name string) (string, error)
}

// LossReportedHandler asks the configured approver to review a new loss report.
// Delivery is best effort: every failure is logged and the event is acknowledged.
type LossReportedHandler struct {
	settings  SettingReader
	directory directory.Directory
	mailer    Mailer
	logger    *zap.Logger
}

// NewLossReportedHandler creates the handler
func NewLossReportedHandler(settings SettingReader, dir directory.Directory, mailer Mailer, logger *zap.Logger) *LossReportedHandler {
	return &LossReportedHandler{settings: settings, directory: dir, mailer: mailer, logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *LossReportedHandler) EventTypes() []string {
	return []string{loss.EventTypeLossReported}
}

// Handle sends the approval request
func (h *LossReportedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	reported, ok := event.(*loss.LossReportedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", loss.EventTypeLossReported),
			zap.String("actual", event.EventType()))
		return nil
	}

	to, err := h.settings.Value(ctx, setting.NameLossApproverEmail)
	if err != nil {
		h.logger.Warn("loss approval request not sent: approver lookup failed",
			zap.String("loss_no", reported.LossNo),
			zap.Error(err))
		return nil
	}
	if strings.TrimSpace(to) == "" {
		h.logger.Warn("loss approval request not sent: no approver configured",
			zap.String("loss_no", reported.LossNo))
		return nil
	}

	msg := Message{
		To:      []string{strings.TrimSpace(to)},
		Subject: fmt.Sprintf("Loss report %s awaiting approval", reported.LossNo),
		Body:    h.body(ctx, reported),
	}
	if err := h.mailer.Send(ctx, msg); err != nil {
		h.logger.Warn("loss approval request not sent",
			zap.String("loss_no", reported.LossNo),
			zap.Error(err))
		return nil
	}

	h.logger.Info("loss approval requested", zap.String("loss_no", reported.LossNo))
	return nil
}

func (h *LossReportedHandler) body(ctx context.Context, e *loss.LossReportedEvent) string {
	office := e.OfficeID.String()
	if h.directory != nil {
		if o, err := h.directory.GetOfficeByID(ctx, e.OfficeID); err == nil {
			office = o.DisplayName()
		}
	}
	reporter := e.ReportedBy.String()
	if h.directory != nil {
		if u, err := h.directory.GetUserByID(ctx, e.ReportedBy); err == nil {
			reporter = u.FullName()
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s reported a loss for %s.\n\n", reporter, office)
	for _, it := range e.Items {
		item := it.ItemNo
		if item == "" {
			item = "-"
		}
		fmt.Fprintf(&b, "  item %s  qty %d  %s\n", item, it.Quantity, it.Condition)
	}
	return b.String()
}
