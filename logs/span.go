package logs

// Span tags every log line produced within one unit of work, such as a
// single solve run. It travels in the context.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
