package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/santos-store/internal/api/schema"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListBanners(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "banner.list")
	defer span.End()

	banners, err := h.banner.List(ctx)
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	c.JSON(http.StatusOK, schema.BannersFromDomain(banners))
}

func (h *Handler) ListAllBanners(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "banner.list_all")
	defer span.End()

	banners, err := h.banner.ListAll(ctx)
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	c.JSON(http.StatusOK, schema.BannersFromDomain(banners))
}

func (h *Handler) CreateBanner(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "banner.create")
	defer span.End()

	var req schema.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}

	banner, err := h.banner.Create(ctx, req.ToDomain(""))
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	span.SetAttributes(attribute.String("banner_id", banner.ID))
	c.JSON(http.StatusCreated, schema.BannerFromDomain(banner))
}

func (h *Handler) UpdateBanner(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "banner.update")
	defer span.End()

	var req schema.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}

	banner, err := h.banner.Update(ctx, req.ToDomain(c.Param("id")))
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	c.JSON(http.StatusOK, schema.BannerFromDomain(banner))
}

func (h *Handler) DeleteBanner(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "banner.delete")
	defer span.End()

	if err := h.banner.Delete(ctx, c.Param("id")); err != nil {
		h.writeError(c, span, err)
		return
	}

	c.Status(http.StatusNoContent)
}
