package constants

// Заголовки, которые выставляет шлюз
const (
	HeaderTraceID = "X-Trace-ID"
	HeaderUserID  = "X-User-ID"
)
