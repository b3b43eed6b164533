package middleware

import (
	"strings"

	"github.com/zungle102/shiftrec-sub000/config"
	"github.com/zungle102/shiftrec-sub000/internal/core"
	"github.com/zungle102/shiftrec-sub000/internal/database/redis/repository"
	cErr "github.com/zungle102/shiftrec-sub000/internal/pkg/error"
	"github.com/zungle102/shiftrec-sub000/internal/pkg/response"
	"github.com/zungle102/shiftrec-sub000/internal/service"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// Session 驗證第三方 session provider 簽發的 Bearer token，
// 解出租戶範圍（ownerEmail）後塞進 gin context 供下游使用。
type Session struct {
	logger                 *zap.Logger
	trace                  *telemetry.Trace
	config                 *config.Configuration
	sessionCacheRepository *repository.SessionCacheRepository
	ownerService           *service.OwnerService
}

func NewSession(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	sessionCacheRepository *repository.SessionCacheRepository,
	ownerService *service.OwnerService,
) *Session {
	return &Session{
		logger:                 logger,
		trace:                  trace,
		config:                 config,
		sessionCacheRepository: sessionCacheRepository,
		ownerService:           ownerService,
	}
}

func (middleware *Session) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanSessionMiddleware))

		token := readBearerToken(c)
		if token == "" {
			middleware.trace.ApplyTraceAttributes(span, core.TraceSessionMiddlewareMeta{
				Status: "missing_session_token",
			})
			cause := cErr.Unauthorized("missing session token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		// 快取命中：token 已驗證過，直接採用
		cachedEmail, cacheErr := middleware.sessionCacheRepository.Get(ctx, token)
		if cacheErr != nil {
			// 快取讀取失敗不阻斷主流程，改走完整驗證
			middleware.logger.Warn("[Session] cache read failed", zap.Error(cacheErr))
		}
		if cachedEmail != "" {
			middleware.trace.ApplyTraceAttributes(span, core.TraceSessionMiddlewareMeta{
				OwnerEmail: cachedEmail,
				CacheHit:   true,
				Status:     "success",
			})
			c.Set(core.ContextOwnerEmailKey, cachedEmail)
			end(nil)
			c.Next()
			return
		}

		// 完整驗證：解析 token → 檢查帳號狀態
		claims, parseErr := middleware.parseClaims(token)
		if parseErr != nil {
			middleware.trace.ApplyTraceAttributes(span, core.TraceSessionMiddlewareMeta{
				Status: "invalid_session_token",
			})
			cause := cErr.InvalidSession("invalid session token")
			response.AbortWithError(c, cause)
			end(parseErr)
			return
		}
		if claims.Email == "" {
			middleware.trace.ApplyTraceAttributes(span, core.TraceSessionMiddlewareMeta{
				Status: "missing_email_claim",
			})
			cause := cErr.InvalidSession("session token has no email claim")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		owner, verifyErr := middleware.ownerService.VerifyOwner(ctx, claims.Email)
		if verifyErr != nil {
			middleware.trace.ApplyTraceAttributes(span, core.TraceSessionMiddlewareMeta{
				OwnerEmail: claims.Email,
				Status:     "owner_check_failed",
			})
			response.AbortWithError(c, verifyErr)
			end(verifyErr)
			return
		}

		// 驗證結果寫回快取，失敗只記 log
		if middleware.config.Auth.SessionCacheSeconds > 0 {
			if setErr := middleware.sessionCacheRepository.Set(ctx, token, owner.Email, middleware.config.Auth.SessionCacheSeconds); setErr != nil {
				middleware.logger.Warn("[Session] cache write failed", zap.Error(setErr))
			}
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceSessionMiddlewareMeta{
			OwnerEmail: owner.Email,
			CacheHit:   false,
			Status:     "success",
		})
		c.Set(core.ContextOwnerEmailKey, owner.Email)
		end(nil)
		c.Next()
	}
}

func (middleware *Session) parseClaims(token string) (*core.SessionClaims, error) {
	claims := &core.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(middleware.config.Auth.SessionSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

func readBearerToken(c *gin.Context) string {
	authorization := c.GetHeader("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
