package constant

const (
	RequestParamDate      = "date"
	RequestParamExcluding = "excluding"
	RequestParamRoom      = "room"
	RequestParamCheckIn   = "check_in"
	RequestMaxMemory      = 10 << 20 // 10 MB
)

const (
	// DateLayout is the canonical day-granularity layout used at every boundary and in the store.
	DateLayout     = "2006-01-02"
	VoucherLayout  = "02012006"
	SnapshotLayout = "20060102_150405"
	HoursPerDay    = 24
)

const (
	LockKeyStoreWrite = "store:write"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeXLSX              = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FormFile                     = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInvalidAPIKey        = "INVALID API KEY"
	ResponseMessageHealthy            = "OK"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	Empty = ""
)
