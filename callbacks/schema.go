// Package callbacks provides event instrumentation for analysis pipelines.
package callbacks

import (
	"time"

	"github.com/google/uuid"
)

// TimestampFormat is the format for callback event timestamps.
const TimestampFormat = "01/02/2006, 15:04:05.000000"

// BaseTraceEvent is the base trace ID for the trace map.
const BaseTraceEvent = "root"

// CBEventType represents callback manager event types.
type CBEventType string

const (
	// CBEventTypeAnalyze wraps one full analysis run over a text.
	CBEventTypeAnalyze CBEventType = "analyze"
	// CBEventTypeSentenceSegment logs sentence boundary detection.
	CBEventTypeSentenceSegment CBEventType = "sentence_segment"
	// CBEventTypeWordTokenize logs word boundary detection.
	CBEventTypeWordTokenize CBEventType = "word_tokenize"
	// CBEventTypeEmbedding logs embedding lookups.
	CBEventTypeEmbedding CBEventType = "embedding"
	// CBEventTypeProcess logs one downstream annotation stage.
	CBEventTypeProcess CBEventType = "process"
	// CBEventTypeException logs failures.
	CBEventTypeException CBEventType = "exception"
)

// LeafEvents are events that will never have children events.
var LeafEvents = []CBEventType{
	CBEventTypeSentenceSegment,
	CBEventTypeWordTokenize,
	CBEventTypeEmbedding,
}

// IsLeafEvent checks if an event type is a leaf event.
func IsLeafEvent(eventType CBEventType) bool {
	for _, leaf := range LeafEvents {
		if eventType == leaf {
			return true
		}
	}
	return false
}

// EventPayload represents payload keys for events.
type EventPayload string

const (
	// EventPayloadLanguage is the ISO code of the text under analysis.
	EventPayloadLanguage EventPayload = "language"
	// EventPayloadTextBytes is the byte length of the raw text.
	EventPayloadTextBytes EventPayload = "text_bytes"
	// EventPayloadSentences is the number of sentence spans detected.
	EventPayloadSentences EventPayload = "sentences"
	// EventPayloadTokens is the number of token spans detected.
	EventPayloadTokens EventPayload = "tokens"
	// EventPayloadDetector is the detector variant that ran.
	EventPayloadDetector EventPayload = "detector"
	// EventPayloadStage is the name of a pipeline process.
	EventPayloadStage EventPayload = "stage"
	// EventPayloadException is the error raised in an event.
	EventPayloadException EventPayload = "exception"
)

// CBEvent is a generic container for event information.
type CBEvent struct {
	// EventType is the type of the event.
	EventType CBEventType
	// Payload contains event-specific data.
	Payload map[string]interface{}
	// Time is the timestamp of the event.
	Time string
	// ID is the unique identifier for the event.
	ID string
}

// NewCBEvent creates a new CBEvent.
func NewCBEvent(eventType CBEventType, payload map[string]interface{}) *CBEvent {
	return &CBEvent{
		EventType: eventType,
		Payload:   payload,
		Time:      time.Now().Format(TimestampFormat),
		ID:        uuid.New().String(),
	}
}

// EventStats contains time-based statistics for events.
type EventStats struct {
	// TotalSecs is the total time in seconds.
	TotalSecs float64
	// AverageSecs is the average time in seconds.
	AverageSecs float64
	// TotalCount is the total number of events.
	TotalCount int
}

// NewEventStats creates a new EventStats.
func NewEventStats(totalSecs float64, count int) *EventStats {
	avgSecs := 0.0
	if count > 0 {
		avgSecs = totalSecs / float64(count)
	}
	return &EventStats{
		TotalSecs:   totalSecs,
		AverageSecs: avgSecs,
		TotalCount:  count,
	}
}
