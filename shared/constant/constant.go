package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyUserID    contextKey = "user_id"
)

const (
	RequestParamID       = "id"
	RequestParamCategory = "category"
	RequestParamMinPrice = "minPrice"
	RequestParamMaxPrice = "maxPrice"
	RequestParamLocation = "location"
)

const (
	DateFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelClientScopeName     = "client"
	OtelFlowScopeName       = "flow"
)

const (
	RequestHeaderUserAgent    = "User-Agent"
	RequestHeaderContentType  = "Content-Type"
	RequestHeaderRequestID    = "X-Request-ID"
	RequestHeaderForwardedFor = "X-Forwarded-For"
	RequestHeaderRealIP       = "X-Real-IP"
	ResponseHeaderAllow       = "Allow"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
