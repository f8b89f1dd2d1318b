package api

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/santos-store/internal/api/schema"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/nikolayk812/santos-store/internal/ratelimit"
	"go.uber.org/zap"
)

const (
	userKey  = "santos.user"
	tokenKey = "santos.token"
)

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// rateLimit throttles requests per client IP.
func rateLimit(limiter *ratelimit.Keyed, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		if retryAfter, ok := limiter.Allow(c.ClientIP(), now()); !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, schema.ErrorResponse{Error: domain.ErrTooManyAttempts.Error()})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func (h *Handler) requireAuth(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "authenticate")
	defer span.End()

	token := bearerToken(c)
	if token == "" {
		h.writeError(c, span, domain.ErrLoginRequired)
		return
	}

	user, err := h.auth.Authenticate(ctx, token)
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	c.Set(userKey, user)
	c.Set(tokenKey, token)
	c.Next()
}

func (h *Handler) requireAdmin(c *gin.Context) {
	if user, ok := currentUser(c); !ok || !user.IsAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, schema.ErrorResponse{Error: domain.ErrForbidden.Error()})
		return
	}
	c.Next()
}

func currentUser(c *gin.Context) (domain.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}
