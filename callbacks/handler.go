package callbacks

// CallbackHandler receives analysis events. Handlers are registered on a
// CallbackManager; every event raised during an analysis run is fanned out to
// each handler that does not ignore its type.
type CallbackHandler interface {
	// OnEventStart is called when an event starts and returns the event ID.
	OnEventStart(
		eventType CBEventType,
		payload map[string]interface{},
		eventID string,
		parentID string,
	) string

	// OnEventEnd is called when an event ends.
	OnEventEnd(
		eventType CBEventType,
		payload map[string]interface{},
		eventID string,
	)

	// StartTrace is called when an overall trace is launched.
	StartTrace(traceID string)

	// EndTrace is called when an overall trace is exited.
	EndTrace(traceID string, traceMap map[string][]string)

	// EventStartsToIgnore returns event types to ignore on start.
	EventStartsToIgnore() []CBEventType

	// EventEndsToIgnore returns event types to ignore on end.
	EventEndsToIgnore() []CBEventType
}

// BaseCallbackHandler is a no-op CallbackHandler with configurable ignore
// lists, meant for embedding in handlers that only care about some hooks.
type BaseCallbackHandler struct {
	eventStartsToIgnore []CBEventType
	eventEndsToIgnore   []CBEventType
}

// BaseCallbackHandlerOption configures a BaseCallbackHandler.
type BaseCallbackHandlerOption func(*BaseCallbackHandler)

// WithEventStartsToIgnore sets event types to ignore on start.
func WithEventStartsToIgnore(events []CBEventType) BaseCallbackHandlerOption {
	return func(h *BaseCallbackHandler) {
		h.eventStartsToIgnore = events
	}
}

// WithEventEndsToIgnore sets event types to ignore on end.
func WithEventEndsToIgnore(events []CBEventType) BaseCallbackHandlerOption {
	return func(h *BaseCallbackHandler) {
		h.eventEndsToIgnore = events
	}
}

// NewBaseCallbackHandler creates a new BaseCallbackHandler.
func NewBaseCallbackHandler(opts ...BaseCallbackHandlerOption) *BaseCallbackHandler {
	h := &BaseCallbackHandler{
		eventStartsToIgnore: []CBEventType{},
		eventEndsToIgnore:   []CBEventType{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// EventStartsToIgnore returns event types to ignore on start.
func (h *BaseCallbackHandler) EventStartsToIgnore() []CBEventType {
	return h.eventStartsToIgnore
}

// EventEndsToIgnore returns event types to ignore on end.
func (h *BaseCallbackHandler) EventEndsToIgnore() []CBEventType {
	return h.eventEndsToIgnore
}

func (h *BaseCallbackHandler) OnEventStart(
	eventType CBEventType,
	payload map[string]interface{},
	eventID string,
	parentID string,
) string {
	return eventID
}

func (h *BaseCallbackHandler) OnEventEnd(
	eventType CBEventType,
	payload map[string]interface{},
	eventID string,
) {
}

func (h *BaseCallbackHandler) StartTrace(traceID string) {}

func (h *BaseCallbackHandler) EndTrace(traceID string, traceMap map[string][]string) {}

// ShouldIgnoreEventStart checks if an event type should be ignored on start.
func (h *BaseCallbackHandler) ShouldIgnoreEventStart(eventType CBEventType) bool {
	return containsEvent(h.eventStartsToIgnore, eventType)
}

// ShouldIgnoreEventEnd checks if an event type should be ignored on end.
func (h *BaseCallbackHandler) ShouldIgnoreEventEnd(eventType CBEventType) bool {
	return containsEvent(h.eventEndsToIgnore, eventType)
}

func containsEvent(events []CBEventType, eventType CBEventType) bool {
	for _, e := range events {
		if e == eventType {
			return true
		}
	}
	return false
}

var _ CallbackHandler = (*BaseCallbackHandler)(nil)
