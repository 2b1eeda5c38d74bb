package callbacks

import (
	"sync"

	"github.com/google/uuid"
)

// CallbackManager fans analysis events out to registered handlers and keeps
// the parent/child trace map for the current run. Safe for concurrent use.
type CallbackManager struct {
	handlers   []CallbackHandler
	traceMap   map[string][]string
	traceStack []string
	traceIDs   []string
	mu         sync.RWMutex
}

// CallbackManagerOption configures a CallbackManager.
type CallbackManagerOption func(*CallbackManager)

// WithHandlers sets the handlers.
func WithHandlers(handlers []CallbackHandler) CallbackManagerOption {
	return func(m *CallbackManager) {
		m.handlers = handlers
	}
}

// NewCallbackManager creates a new CallbackManager.
func NewCallbackManager(opts ...CallbackManagerOption) *CallbackManager {
	m := &CallbackManager{
		handlers:   []CallbackHandler{},
		traceMap:   make(map[string][]string),
		traceStack: []string{BaseTraceEvent},
		traceIDs:   []string{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OnEventStart notifies handlers that an event started and returns the event
// ID, minting one when the caller passed none. A missing parent is taken from
// the top of the trace stack; a default trace is opened if none is running.
func (m *CallbackManager) OnEventStart(
	eventType CBEventType,
	payload map[string]interface{},
	eventID string,
	parentID string,
) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if eventID == "" {
		eventID = uuid.New().String()
	}

	if parentID == "" {
		if len(m.traceStack) == 0 {
			m.startTraceLocked("glossa")
		}
		parentID = m.traceStack[len(m.traceStack)-1]
	}

	m.traceMap[parentID] = append(m.traceMap[parentID], eventID)

	for _, handler := range m.handlers {
		if !containsEvent(handler.EventStartsToIgnore(), eventType) {
			handler.OnEventStart(eventType, payload, eventID, parentID)
		}
	}

	// Leaf events never become parents, so they stay off the stack.
	if !IsLeafEvent(eventType) {
		m.traceStack = append(m.traceStack, eventID)
	}

	return eventID
}

// OnEventEnd notifies handlers that an event ended.
func (m *CallbackManager) OnEventEnd(
	eventType CBEventType,
	payload map[string]interface{},
	eventID string,
) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if eventID == "" {
		eventID = uuid.New().String()
	}

	for _, handler := range m.handlers {
		if !containsEvent(handler.EventEndsToIgnore(), eventType) {
			handler.OnEventEnd(eventType, payload, eventID)
		}
	}

	if !IsLeafEvent(eventType) && len(m.traceStack) > 0 {
		m.traceStack = m.traceStack[:len(m.traceStack)-1]
	}
}

// AddHandler registers an additional handler.
func (m *CallbackManager) AddHandler(handler CallbackHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, handler)
}

// RemoveHandler removes a previously registered handler.
func (m *CallbackManager) RemoveHandler(handler CallbackHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, h := range m.handlers {
		if h == handler {
			m.handlers = append(m.handlers[:i], m.handlers[i+1:]...)
			return
		}
	}
}

// SetHandlers replaces the full handler list.
func (m *CallbackManager) SetHandlers(handlers []CallbackHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = handlers
}

// Handlers returns the current handlers.
func (m *CallbackManager) Handlers() []CallbackHandler {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.handlers
}

// StartTrace opens an overall trace. Nested StartTrace calls with a trace
// already running only push onto the trace ID stack; handlers are notified
// once, for the outermost trace.
func (m *CallbackManager) StartTrace(traceID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startTraceLocked(traceID)
}

func (m *CallbackManager) startTraceLocked(traceID string) {
	if traceID == "" {
		return
	}
	if len(m.traceIDs) > 0 {
		m.traceIDs = append(m.traceIDs, traceID)
		return
	}

	m.traceMap = make(map[string][]string)
	m.traceStack = []string{BaseTraceEvent}
	for _, handler := range m.handlers {
		handler.StartTrace(traceID)
	}
	m.traceIDs = []string{traceID}
}

// EndTrace closes a trace. Handlers see EndTrace, with the accumulated trace
// map, only when the outermost trace closes.
func (m *CallbackManager) EndTrace(traceID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if traceID == "" || len(m.traceIDs) == 0 {
		return
	}
	m.traceIDs = m.traceIDs[:len(m.traceIDs)-1]
	if len(m.traceIDs) == 0 {
		for _, handler := range m.handlers {
			handler.EndTrace(traceID, m.traceMap)
		}
	}
}

// TraceMap returns the current parent-to-children event map.
func (m *CallbackManager) TraceMap() map[string][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.traceMap
}

// EventContext pairs an event's start and end notifications, guaranteeing
// each fires at most once.
type EventContext struct {
	manager   *CallbackManager
	eventType CBEventType
	eventID   string
	started   bool
	finished  bool
}

// NewEventContext creates a new EventContext.
func NewEventContext(manager *CallbackManager, eventType CBEventType, eventID string) *EventContext {
	if eventID == "" {
		eventID = uuid.New().String()
	}
	return &EventContext{
		manager:   manager,
		eventType: eventType,
		eventID:   eventID,
	}
}

// OnStart triggers the event start.
func (e *EventContext) OnStart(payload map[string]interface{}) {
	if !e.started {
		e.started = true
		e.manager.OnEventStart(e.eventType, payload, e.eventID, "")
	}
}

// OnEnd triggers the event end.
func (e *EventContext) OnEnd(payload map[string]interface{}) {
	if !e.finished {
		e.finished = true
		e.manager.OnEventEnd(e.eventType, payload, e.eventID)
	}
}

// EventID returns the event ID.
func (e *EventContext) EventID() string {
	return e.eventID
}

// IsStarted returns whether the event has started.
func (e *EventContext) IsStarted() bool {
	return e.started
}

// IsFinished returns whether the event has finished.
func (e *EventContext) IsFinished() bool {
	return e.finished
}

// Event creates an EventContext for the given event type.
func (m *CallbackManager) Event(eventType CBEventType, eventID string) *EventContext {
	return NewEventContext(m, eventType, eventID)
}

// WithEvent runs fn inside an event. An error from fn is recorded on the end
// payload under the exception key and returned unchanged.
func (m *CallbackManager) WithEvent(
	eventType CBEventType,
	startPayload map[string]interface{},
	fn func() (map[string]interface{}, error),
) error {
	ev := m.Event(eventType, "")
	ev.OnStart(startPayload)

	endPayload, err := fn()
	if err != nil {
		if endPayload == nil {
			endPayload = make(map[string]interface{})
		}
		endPayload[string(EventPayloadException)] = err
	}

	ev.OnEnd(endPayload)
	return err
}

// WithTrace runs fn inside a trace. An error from fn additionally raises an
// exception event before the trace closes.
func (m *CallbackManager) WithTrace(traceID string, fn func() error) error {
	m.StartTrace(traceID)
	defer m.EndTrace(traceID)

	err := fn()
	if err != nil {
		m.OnEventStart(CBEventTypeException, map[string]interface{}{
			string(EventPayloadException): err,
		}, "", "")
	}

	return err
}
