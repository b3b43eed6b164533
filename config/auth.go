package config

type Auth struct {
	// Session provider 簽發 token 的共享密鑰
	SessionSecret string `mapstructure:"SESSION_SECRET" json:"session_secret" yaml:"session_secret"`
	// Session 驗證結果在 Redis 的快取秒數
	SessionCacheSeconds int64 `mapstructure:"SESSION_CACHE_SECONDS" json:"session_cache_seconds" yaml:"session_cache_seconds"`
	// 單一帳號每分鐘請求上限（0 = 不限制）
	RateLimitPerMinute int `mapstructure:"RATE_LIMIT_PER_MINUTE" json:"rate_limit_per_minute" yaml:"rate_limit_per_minute"`
}
