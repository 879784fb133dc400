package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/govprop/backend/internal/domain/directory"
	"github.com/govprop/backend/internal/domain/loss"
	"github.com/govprop/backend/internal/domain/setting"
	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockSettingReader struct {
	mock.Mock
}

func (m *MockSettingReader) Value(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg Message) error {
	return m.Called(ctx, msg).Error(0)
}

type stubDirectory struct {
	office *directory.Office
	user   *directory.User
}

func (d stubDirectory) GetOfficeByID(_ context.Context, _ uuid.UUID) (*directory.Office, error) {
	if d.office == nil {
		return nil, shared.NewNotFoundError("Office")
	}
	return d.office, nil
}

func (d stubDirectory) GetUserByID(_ context.Context, _ uuid.UUID) (*directory.User, error) {
	if d.user == nil {
		return nil, shared.NewNotFoundError("User")
	}
	return d.user, nil
}

func reportedEvent() *loss.LossReportedEvent {
	id := uuid.New()
	return &loss.LossReportedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(loss.EventTypeLossReported, loss.AggregateTypeLoss, id),
		LossNo:          "LOSS-2026-10-16-0001",
		OfficeID:        uuid.New(),
		ReportedBy:      uuid.New(),
		Items:           []loss.ReportedItem{{ItemNo: "3", Quantity: 1, Condition: "stolen"}},
	}
}

func TestLossReportedHandler_SendsApprovalRequest(t *testing.T) {
	ctx := context.Background()
	settings := new(MockSettingReader)
	mailer := new(MockMailer)
	dir := stubDirectory{
		office: &directory.Office{Name: "GENERAL SERVICES OFFICE"},
		user:   &directory.User{FirstName: "maria", LastName: "santos"},
	}
	h := NewLossReportedHandler(settings, dir, mailer, zap.NewNop())

	settings.On("Value", ctx, setting.NameLossApproverEmail).Return(" approver@lgu.gov.ph ", nil)
	mailer.On("Send", ctx, mock.MatchedBy(func(m Message) bool {
		return len(m.To) == 1 && m.To[0] == "approver@lgu.gov.ph" &&
			m.Subject == "Loss report LOSS-2026-10-16-0001 awaiting approval" &&
			containsAll(m.Body, "Maria Santos", "General Services Office", "item 3", "stolen")
	})).Return(nil).Once()

	require.NoError(t, h.Handle(ctx, reportedEvent()))
	mailer.AssertExpectations(t)
	assert.Equal(t, []string{loss.EventTypeLossReported}, h.EventTypes())
}

func TestLossReportedHandler_SwallowsFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("mailer error", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		settings := new(MockSettingReader)
		mailer := new(MockMailer)
		settings.On("Value", ctx, setting.NameLossApproverEmail).Return("approver@lgu.gov.ph", nil)
		mailer.On("Send", ctx, mock.Anything).Return(errors.New("smtp down"))

		h := NewLossReportedHandler(settings, stubDirectory{}, mailer, zap.New(core))
		require.NoError(t, h.Handle(ctx, reportedEvent()))
		assert.Equal(t, 1, logs.FilterMessage("loss approval request not sent").Len())
	})

	t.Run("no approver configured", func(t *testing.T) {
		settings := new(MockSettingReader)
		mailer := new(MockMailer)
		settings.On("Value", ctx, setting.NameLossApproverEmail).Return("", nil)

		h := NewLossReportedHandler(settings, nil, mailer, zap.NewNop())
		require.NoError(t, h.Handle(ctx, reportedEvent()))
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("config store down", func(t *testing.T) {
		settings := new(MockSettingReader)
		mailer := new(MockMailer)
		settings.On("Value", ctx, setting.NameLossApproverEmail).Return("", errors.New("timeout"))

		h := NewLossReportedHandler(settings, nil, mailer, zap.NewNop())
		require.NoError(t, h.Handle(ctx, reportedEvent()))
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("wrong event type", func(t *testing.T) {
		h := NewLossReportedHandler(new(MockSettingReader), nil, new(MockMailer), zap.NewNop())
		other := &loss.LossApprovedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(loss.EventTypeLossApproved, loss.AggregateTypeLoss, uuid.New()),
		}
		assert.NoError(t, h.Handle(ctx, other))
	})
}

func TestLogMailer(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewLogMailer(zap.New(core))

	require.NoError(t, m.Send(context.Background(), Message{To: []string{"a@x", "b@x"}, Subject: "hi", Body: "body"}))
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "a@x,b@x", fields["to"])
	assert.Equal(t, "hi", fields["subject"])
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
