package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest         TraceSpanName = "http_request"
	SpanLoggerMiddleware    TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware  TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware      TraceSpanName = "cors_middleware"
	SpanResponseMiddleware  TraceSpanName = "response_middleware"
	SpanSessionMiddleware   TraceSpanName = "session_middleware"
	SpanRateLimitMiddleware TraceSpanName = "ratelimit_middleware"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricRequestSuccessTotal MetricName = "request_success_total"
	MetricRequestFailTotal    MetricName = "request_fail_total"
	MetricShiftMutationsTotal MetricName = "shift_mutations_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
	MetricLabelAction   MetricLabelName = "action"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

// 供 session middleware 使用
type TraceSessionMiddlewareMeta struct {
	OwnerEmail string `trace:"auth.owner_email,omitempty"`
	CacheHit   bool   `trace:"auth.session_cache_hit"`
	Status     string `trace:"auth.status,omitempty"`
}

// 供 Redis 限流 Consume 使用
type TraceRateLimitMeta struct {
	OwnerEmail string `trace:"rl.owner_email"`
	Limit      int    `trace:"rl.limit_count"`
	WindowSec  int64  `trace:"rl.window_sec"`
	Remaining  int    `trace:"rl.remaining,omitempty"`
	TTL        int64  `trace:"rl.ttl_sec,omitempty"`
	Op         string `trace:"rl.op"` // "consume" / "reset"
}

// 供 shift 列表查詢使用
type TraceShiftListMeta struct {
	OwnerEmail      string `trace:"list.owner_email"`
	Page            int64  `trace:"list.page"`
	Size            int64  `trace:"list.size"`
	IncludeArchived bool   `trace:"list.include_archived"`
	DateFrom        string `trace:"list.date_from,omitempty"`
	DateTo          string `trace:"list.date_to,omitempty"`
	ResultCount     int    `trace:"result.count,omitempty"`
}

// 供 shift 寫入操作使用
type TraceShiftMutationMeta struct {
	OwnerEmail string `trace:"shift.owner_email"`
	ShiftID    string `trace:"shift.id,omitempty"`
	Action     string `trace:"shift.action"`
	Status     string `trace:"shift.status,omitempty"`
}
