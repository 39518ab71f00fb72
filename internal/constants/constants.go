package constants

type contextKey string

const (
	// RequestIDKey 存放於 request context 的追蹤 id
	RequestIDKey contextKey = "request_id"
)
