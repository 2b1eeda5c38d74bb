package callbacks

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LoggingHandler is a callback handler that logs events.
type LoggingHandler struct {
	*BaseCallbackHandler
	writer    io.Writer
	verbose   bool
	mu        sync.Mutex
	startTime map[string]time.Time
}

// LoggingHandlerOption configures a LoggingHandler.
type LoggingHandlerOption func(*LoggingHandler)

// WithWriter sets the writer for logging.
func WithWriter(w io.Writer) LoggingHandlerOption {
	return func(h *LoggingHandler) {
		h.writer = w
	}
}

// WithVerbose sets verbose logging.
func WithVerbose(verbose bool) LoggingHandlerOption {
	return func(h *LoggingHandler) {
		h.verbose = verbose
	}
}

// NewLoggingHandler creates a new LoggingHandler.
func NewLoggingHandler(opts ...LoggingHandlerOption) *LoggingHandler {
	h := &LoggingHandler{
		BaseCallbackHandler: NewBaseCallbackHandler(),
		writer:              os.Stdout,
		verbose:             false,
		startTime:           make(map[string]time.Time),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// OnEventStart logs the event start.
func (h *LoggingHandler) OnEventStart(
	eventType CBEventType,
	payload map[string]interface{},
	eventID string,
	parentID string,
) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.startTime[eventID] = time.Now()

	if h.verbose {
		fmt.Fprintf(h.writer, "[%s] Event START: %s (id=%s, parent=%s)\n",
			time.Now().Format(TimestampFormat), eventType, eventID, parentID)
		for k, v := range payload {
			fmt.Fprintf(h.writer, "  %s: %v\n", k, v)
		}
	} else {
		fmt.Fprintf(h.writer, "[%s] %s started\n",
			time.Now().Format(TimestampFormat), eventType)
	}

	return eventID
}

// OnEventEnd logs the event end.
func (h *LoggingHandler) OnEventEnd(
	eventType CBEventType,
	payload map[string]interface{},
	eventID string,
) {
	h.mu.Lock()
	defer h.mu.Unlock()

	duration := time.Duration(0)
	if start, ok := h.startTime[eventID]; ok {
		duration = time.Since(start)
		delete(h.startTime, eventID)
	}

	if h.verbose {
		fmt.Fprintf(h.writer, "[%s] Event END: %s (id=%s, duration=%v)\n",
			time.Now().Format(TimestampFormat), eventType, eventID, duration)
		for k, v := range payload {
			fmt.Fprintf(h.writer, "  %s: %v\n", k, v)
		}
	} else {
		fmt.Fprintf(h.writer, "[%s] %s completed (%v)\n",
			time.Now().Format(TimestampFormat), eventType, duration)
	}
}

// StartTrace logs the trace start.
func (h *LoggingHandler) StartTrace(traceID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	fmt.Fprintf(h.writer, "[%s] Trace START: %s\n",
		time.Now().Format(TimestampFormat), traceID)
}

// EndTrace logs the trace end.
func (h *LoggingHandler) EndTrace(traceID string, traceMap map[string][]string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	fmt.Fprintf(h.writer, "[%s] Trace END: %s\n",
		time.Now().Format(TimestampFormat), traceID)

	if h.verbose && len(traceMap) > 0 {
		fmt.Fprintf(h.writer, "  Trace map:\n")
		for parent, children := range traceMap {
			fmt.Fprintf(h.writer, "    %s -> %v\n", parent, children)
		}
	}
}

// Ensure LoggingHandler implements CallbackHandler.
var _ CallbackHandler = (*LoggingHandler)(nil)

// SpanCountingHandler accumulates sentence and token counts across analysis
// runs, for corpus accounting.
type SpanCountingHandler struct {
	*BaseCallbackHandler
	mu             sync.Mutex
	totalSentences int
	totalTokens    int
	analyzeCount   int
	embedCount     int
}

// NewSpanCountingHandler creates a new SpanCountingHandler.
func NewSpanCountingHandler() *SpanCountingHandler {
	return &SpanCountingHandler{
		BaseCallbackHandler: NewBaseCallbackHandler(),
	}
}

// OnEventStart handles event start for span counting.
func (h *SpanCountingHandler) OnEventStart(
	eventType CBEventType,
	payload map[string]interface{},
	eventID string,
	parentID string,
) string {
	return eventID
}

// OnEventEnd handles event end for span counting.
func (h *SpanCountingHandler) OnEventEnd(
	eventType CBEventType,
	payload map[string]interface{},
	eventID string,
) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if payload == nil {
		return
	}

	switch eventType {
	case CBEventTypeAnalyze:
		h.analyzeCount++
		if n, ok := payload[string(EventPayloadSentences)].(int); ok {
			h.totalSentences += n
		}
		if n, ok := payload[string(EventPayloadTokens)].(int); ok {
			h.totalTokens += n
		}

	case CBEventTypeEmbedding:
		h.embedCount++
	}
}

// StartTrace is a no-op for span counting.
func (h *SpanCountingHandler) StartTrace(traceID string) {}

// EndTrace is a no-op for span counting.
func (h *SpanCountingHandler) EndTrace(traceID string, traceMap map[string][]string) {}

// TotalSentences returns the accumulated sentence count.
func (h *SpanCountingHandler) TotalSentences() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.totalSentences
}

// TotalTokens returns the accumulated token count.
func (h *SpanCountingHandler) TotalTokens() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.totalTokens
}

// AnalyzeCount returns the number of analysis runs observed.
func (h *SpanCountingHandler) AnalyzeCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.analyzeCount
}

// EmbedCount returns the number of embedding events observed.
func (h *SpanCountingHandler) EmbedCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.embedCount
}

// Reset clears all counters.
func (h *SpanCountingHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.totalSentences = 0
	h.totalTokens = 0
	h.analyzeCount = 0
	h.embedCount = 0
}

// Ensure SpanCountingHandler implements CallbackHandler.
var _ CallbackHandler = (*SpanCountingHandler)(nil)
