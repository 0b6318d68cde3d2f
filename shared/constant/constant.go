package constant

import (
	"time"
)

const (
	RequestParamTimezone = "tz"
	RequestParamAt       = "at"
)

// Wall-clock layouts accepted from the front end.
const (
	DateTimeFormat       = "2006-01-02 15:04:05"
	DateTimeSubsecFormat = "2006-01-02 15:04:05.999999999"
	DateFormat           = time.RFC3339

	ISODateTimeFormat = "2006-01-02T15:04:05"
	UTCMillisFormat   = "2006-01-02T15:04:05.000Z"
	UTCMicrosFormat   = "2006-01-02T15:04:05.000000Z"
)

// Format tokens exposed to callers, mapped onto Go reference layouts.
const (
	TokenYear   = "YYYY"
	TokenMonth  = "MM"
	TokenDay    = "DD"
	TokenHour   = "HH"
	TokenMinute = "mm"
	TokenSecond = "ss"

	LayoutYear   = "2006"
	LayoutMonth  = "01"
	LayoutDay    = "02"
	LayoutHour   = "15"
	LayoutMinute = "04"
	LayoutSecond = "05"
)

const (
	DefaultZone          = "UTC"
	DefaultConvertFormat = "YYYY-MM-DD HH:mm:ss"
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
	OtelCacheScopeName   = "cache"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
