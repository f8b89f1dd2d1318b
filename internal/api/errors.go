package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/santos-store/internal/api/schema"
	"github.com/nikolayk812/santos-store/internal/domain"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type errorStatus struct {
	err    error
	status int
}

// knownErrors maps domain errors to HTTP statuses. Their messages are safe to show.
var knownErrors = []errorStatus{
	{domain.ErrEmptyProductID, http.StatusBadRequest},
	{domain.ErrInvalidQuantity, http.StatusBadRequest},
	{domain.ErrNegativePrice, http.StatusBadRequest},
	{domain.ErrPricePrecision, http.StatusBadRequest},
	{domain.ErrInvalidCurrency, http.StatusBadRequest},
	{domain.ErrForeignCurrency, http.StatusBadRequest},
	{domain.ErrDuplicateProduct, http.StatusBadRequest},
	{domain.ErrInvalidPhone, http.StatusBadRequest},
	{domain.ErrInvalidCPF, http.StatusBadRequest},
	{domain.ErrInvalidCEP, http.StatusBadRequest},
	{domain.ErrInvalidEmail, http.StatusBadRequest},
	{domain.ErrInvalidName, http.StatusBadRequest},
	{domain.ErrWeakPassword, http.StatusBadRequest},
	{domain.ErrInvalidTitle, http.StatusBadRequest},
	{domain.ErrInvalidImageURL, http.StatusBadRequest},
	{domain.ErrInvalidLinkURL, http.StatusBadRequest},
	{domain.ErrInvalidPosition, http.StatusBadRequest},
	{domain.ErrInvalidCode, http.StatusBadRequest},
	{domain.ErrEmptyCart, http.StatusBadRequest},
	{domain.ErrLoginRequired, http.StatusUnauthorized},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrEmailTaken, http.StatusConflict},
	{domain.ErrCPFTaken, http.StatusConflict},
	{domain.ErrPhoneTaken, http.StatusConflict},
	{domain.ErrResendCooldown, http.StatusTooManyRequests},
	{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
}

// classify returns the status for err and the domain error it wraps, if any.
func classify(err error) (int, error) {
	for _, known := range knownErrors {
		if errors.Is(err, known.err) {
			return known.status, known.err
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError answers with the status matching err. Internal errors are logged
// and never echoed to the client.
func (h *Handler) writeError(c *gin.Context, span trace.Span, err error) {
	span.RecordError(err)

	status, known := classify(err)

	var retryErr *domain.RetryError
	if errors.As(err, &retryErr) {
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryErr.RetryAfter.Seconds()))))
	}

	var message string
	if known != nil {
		message = known.Error()
	} else {
		span.SetStatus(codes.Error, err.Error())
		h.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		message = http.StatusText(http.StatusInternalServerError)
	}

	c.AbortWithStatusJSON(status, schema.ErrorResponse{Error: message})
}

// writeBindError answers a request body that failed schema validation.
func writeBindError(c *gin.Context, span trace.Span, err error) {
	span.RecordError(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, schema.ErrorResponse{Error: err.Error()})
}
