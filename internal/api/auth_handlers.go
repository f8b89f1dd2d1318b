package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/santos-store/internal/api/schema"
	"github.com/nikolayk812/santos-store/internal/domain"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) SendCode(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "verification.send")
	defer span.End()

	var req schema.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}

	if err := h.verification.SendCode(ctx, req.Phone); err != nil {
		h.writeError(c, span, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}

func (h *Handler) ConfirmCode(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "verification.confirm")
	defer span.End()

	var req schema.ConfirmCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// a malformed code gets the same answer as a wrong one
		h.writeError(c, span, domain.ErrInvalidCode)
		return
	}

	if err := h.verification.ConfirmCode(ctx, req.Phone, req.Code); err != nil {
		h.writeError(c, span, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "verified"})
}

func (h *Handler) Register(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "auth.register")
	defer span.End()

	var req schema.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}

	user, err := h.auth.Register(ctx, req.ToDomain())
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	span.SetAttributes(attribute.String("user_id", user.ID.String()))
	c.JSON(http.StatusCreated, schema.UserFromDomain(user))
}

func (h *Handler) Login(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "auth.login")
	defer span.End()

	var req schema.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}

	session, user, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	span.SetAttributes(attribute.String("user_id", user.ID.String()))
	c.JSON(http.StatusOK, schema.LoginResponseFromDomain(session, user))
}

func (h *Handler) Logout(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "auth.logout")
	defer span.End()

	if err := h.auth.Logout(ctx, c.GetString(tokenKey)); err != nil {
		h.writeError(c, span, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Me(c *gin.Context) {
	user, _ := currentUser(c)
	c.JSON(http.StatusOK, schema.UserFromDomain(user))
}

func (h *Handler) LookupAddress(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "address.lookup")
	defer span.End()

	address, err := h.address.Lookup(ctx, c.Param("cep"))
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	c.JSON(http.StatusOK, schema.AddressFromDomain(address))
}
