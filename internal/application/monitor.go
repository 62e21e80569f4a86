package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/bnema/tekoai-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 3 * time.Second
	NotificationTitle   = "Chat Update"
	NotificationBody    = "New message received in conversation!"
)

// Monitor polls one guest conversation at a time and notifies when it grows.
type Monitor struct {
	sessions ports.SessionStore
	resolver *BotResolver
	source   ports.ConversationSource
	notifier ports.Notifier

	interval   time.Duration
	logger     *zap.Logger
	errorSink  func(error)
	onSnapshot func(*WatchHandle, domain.Conversation)

	startMu sync.Mutex
	mu      sync.Mutex
	current *WatchHandle
}

type MonitorOption func(*Monitor)

func WithPollInterval(interval time.Duration) MonitorOption {
	return func(m *Monitor) {
		if interval > 0 {
			m.interval = interval
		}
	}
}

func WithLogger(logger *zap.Logger) MonitorOption {
	return func(m *Monitor) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithErrorSink replaces the default sink, which logs through the monitor's logger.
func WithErrorSink(sink func(error)) MonitorOption {
	return func(m *Monitor) {
		m.errorSink = sink
	}
}

// WithSnapshotHandler receives every conversation snapshot a live watch publishes.
func WithSnapshotHandler(handler func(*WatchHandle, domain.Conversation)) MonitorOption {
	return func(m *Monitor) {
		m.onSnapshot = handler
	}
}

func NewMonitor(sessions ports.SessionStore, resolver *BotResolver, source ports.ConversationSource, notifier ports.Notifier, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		sessions: sessions,
		resolver: resolver,
		source:   source,
		notifier: notifier,
		interval: DefaultPollInterval,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Start begins watching a conversation whose transcript currently holds initialCount messages.
// An empty botID is resolved on each poll until it succeeds. Any watch already running on this
// monitor is cancelled and its poller has exited before Start returns.
func (m *Monitor) Start(ctx context.Context, guestID domain.GuestID, botID domain.BotID, initialCount int) *WatchHandle {
	m.startMu.Lock()
	defer m.startMu.Unlock()

	if prior := m.Current(); prior != nil {
		m.Cancel(prior)
		<-prior.Done()
	}

	handle, watchCtx := newWatchHandle(ctx, guestID, botID, initialCount)

	if err := m.notifier.RequestPermission(watchCtx); err != nil {
		handle.disableNotifications()
		if !errors.Is(err, domain.ErrPermissionDenied) {
			err = fmt.Errorf("%w: %w", domain.ErrPermissionDenied, err)
		}
		m.report(err)
	}

	m.mu.Lock()
	m.current = handle
	m.mu.Unlock()

	go m.run(watchCtx, handle)

	m.logger.Debug("watch started",
		zap.String("watch_id", handle.ID),
		zap.String("guest_id", string(guestID)),
		zap.String("bot_id", string(botID)),
		zap.Int("initial_count", initialCount),
		zap.Duration("interval", m.interval),
	)

	return handle
}

// Cancel stops handle. A nil handle, or one that already stopped, is ignored.
func (m *Monitor) Cancel(handle *WatchHandle) {
	if handle == nil {
		return
	}
	handle.Cancel()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == handle {
		m.current = nil
	}
}

// Current returns the running watch, if any.
func (m *Monitor) Current() *WatchHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Monitor) run(ctx context.Context, handle *WatchHandle) {
	defer close(handle.done)
	defer handle.Cancel()

	timer := time.NewTimer(m.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Debug("watch stopped", zap.String("watch_id", handle.ID))
			return
		case <-timer.C:
		}

		m.poll(ctx, handle)
		timer.Reset(m.interval)
	}
}

// poll runs one fetch-compare-notify cycle.
func (m *Monitor) poll(ctx context.Context, handle *WatchHandle) {
	botID, ok := m.resolveBot(ctx, handle)
	if !ok {
		return
	}

	messages, err := m.source.GetGuestConversation(ctx, handle.GuestID(), botID)

	handle.mu.Lock()
	if !handle.watch.Active || ctx.Err() != nil {
		handle.mu.Unlock()
		return
	}
	if err != nil {
		handle.mu.Unlock()
		m.report(asFetchError("get guest conversation", err))
		return
	}

	conversation := domain.NewConversation(handle.watch.GuestID, botID, messages)
	next, grew := handle.watch.Observe(conversation.Len())
	handle.watch = next
	handle.snapshot = conversation
	notify := grew && handle.notifyEnabled
	handle.mu.Unlock()

	if grew {
		m.logger.Debug("conversation grew",
			zap.String("watch_id", handle.ID),
			zap.Int("count", conversation.Len()),
		)
	}

	if notify {
		if err := m.notifier.Notify(ctx, NotificationTitle, NotificationBody); err != nil && ctx.Err() == nil {
			m.report(fmt.Errorf("send notification: %w", err))
		}
	}

	if m.onSnapshot != nil {
		m.onSnapshot(handle, conversation)
	}
}

func (m *Monitor) resolveBot(ctx context.Context, handle *WatchHandle) (domain.BotID, bool) {
	handle.mu.Lock()
	botID := handle.watch.BotID
	active := handle.watch.Active
	handle.mu.Unlock()

	if !active {
		return "", false
	}
	if botID != "" {
		return botID, true
	}

	session, err := m.sessions.Get(ctx)
	if err != nil {
		m.reportIfActive(ctx, handle, fmt.Errorf("read session: %w", err))
		return "", false
	}

	botID, err = m.resolver.Resolve(ctx, session)
	if err != nil {
		if !errors.Is(err, domain.ErrUnresolvedBot) {
			err = asFetchError("resolve bot", err)
		}
		m.reportIfActive(ctx, handle, err)
		return "", false
	}

	handle.mu.Lock()
	if handle.watch.BotID == "" {
		handle.watch.BotID = botID
	}
	handle.mu.Unlock()

	return botID, true
}

func (m *Monitor) reportIfActive(ctx context.Context, handle *WatchHandle, err error) {
	if ctx.Err() != nil || !handle.Active() {
		return
	}
	m.report(err)
}

func (m *Monitor) report(err error) {
	if m.errorSink != nil {
		m.errorSink(err)
		return
	}

	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		m.logger.Info("notifications disabled for watch", zap.Error(err))
	default:
		m.logger.Warn("watch poll failed", zap.Error(err))
	}
}

func asFetchError(op string, err error) error {
	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		return err
	}

	return &domain.FetchError{Op: op, Err: err}
}

// WatchHandle is the caller's reference to one running watch.
type WatchHandle struct {
	ID string

	mu            sync.Mutex
	watch         domain.Watch
	snapshot      domain.Conversation
	notifyEnabled bool
	cancel        context.CancelFunc
	done          chan struct{}
}

var closedDone = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func newWatchHandle(ctx context.Context, guestID domain.GuestID, botID domain.BotID, initialCount int) (*WatchHandle, context.Context) {
	watchCtx, cancel := context.WithCancel(ctx)

	return &WatchHandle{
		ID:            uuid.NewString(),
		watch:         domain.NewWatch(guestID, botID, initialCount),
		snapshot:      domain.NewConversation(guestID, botID, nil),
		notifyEnabled: true,
		cancel:        cancel,
		done:          make(chan struct{}),
	}, watchCtx
}

// Cancel stops future polls. It is safe to call more than once and on a nil handle.
func (h *WatchHandle) Cancel() {
	if h == nil {
		return
	}

	h.mu.Lock()
	h.watch.Active = false
	cancel := h.cancel
	h.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Done is closed once the watch's poller has exited.
func (h *WatchHandle) Done() <-chan struct{} {
	if h == nil || h.done == nil {
		return closedDone
	}
	return h.done
}

func (h *WatchHandle) Active() bool {
	if h == nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.watch.Active
}

func (h *WatchHandle) Watch() domain.Watch {
	if h == nil {
		return domain.Watch{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.watch
}

func (h *WatchHandle) GuestID() domain.GuestID {
	return h.Watch().GuestID
}

func (h *WatchHandle) BotID() domain.BotID {
	return h.Watch().BotID
}

func (h *WatchHandle) LastObservedCount() int {
	return h.Watch().LastCount
}

// Conversation returns the latest published snapshot.
func (h *WatchHandle) Conversation() domain.Conversation {
	if h == nil {
		return domain.Conversation{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot
}

func (h *WatchHandle) NotificationsEnabled() bool {
	if h == nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.notifyEnabled
}

func (h *WatchHandle) disableNotifications() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notifyEnabled = false
}
