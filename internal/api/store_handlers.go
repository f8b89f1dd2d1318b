package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/santos-store/internal/api/schema"
	"github.com/nikolayk812/santos-store/internal/domain"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListProducts(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "catalog.list")
	defer span.End()

	products, err := h.catalog.List(ctx, c.Query("category"))
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	result := make([]schema.Product, 0, len(products))
	for _, p := range products {
		result = append(result, schema.ProductFromDomain(p))
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "catalog.get")
	defer span.End()

	product, err := h.catalog.Get(ctx, c.Param("id"))
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	c.JSON(http.StatusOK, schema.ProductFromDomain(product))
}

func (h *Handler) CreateProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "catalog.create")
	defer span.End()

	var req schema.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}

	product, err := h.catalog.Create(ctx, req.ToDomain(""))
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	span.SetAttributes(attribute.String("product_id", product.ID))
	c.JSON(http.StatusCreated, schema.ProductFromDomain(product))
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "catalog.update")
	defer span.End()

	var req schema.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}

	product, err := h.catalog.Update(ctx, req.ToDomain(c.Param("id")))
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	c.JSON(http.StatusOK, schema.ProductFromDomain(product))
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "catalog.delete")
	defer span.End()

	if err := h.catalog.Delete(ctx, c.Param("id")); err != nil {
		h.writeError(c, span, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetCart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "cart.get")
	defer span.End()

	user, _ := currentUser(c)

	cart, err := h.cart.GetCart(ctx, user.ID.String())
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	c.JSON(http.StatusOK, schema.CartFromDomain(cart))
}

// PutCart replaces the whole server cart with the client snapshot.
func (h *Handler) PutCart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "cart.put")
	defer span.End()

	var req schema.Cart
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}

	items, err := schema.CartItemsToDomain(req.Items)
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	user, _ := currentUser(c)
	span.SetAttributes(attribute.Int("lines", len(items)))

	if err := h.cart.ReplaceCart(ctx, domain.Cart{OwnerID: user.ID.String(), Items: items}); err != nil {
		h.writeError(c, span, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RecordPurchase(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "purchase.record")
	defer span.End()

	var req schema.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, span, err)
		return
	}

	items, err := schema.CartItemsToDomain(req.Items)
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	user, _ := currentUser(c)

	purchase, err := h.purchase.Record(ctx, user, items, req.Summary)
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	span.SetAttributes(attribute.String("purchase_id", purchase.ID.String()))
	c.JSON(http.StatusCreated, schema.PurchaseFromDomain(purchase))
}

func (h *Handler) ListPurchases(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "purchase.list")
	defer span.End()

	user, _ := currentUser(c)

	purchases, err := h.purchase.List(ctx, user.ID.String())
	if err != nil {
		h.writeError(c, span, err)
		return
	}

	result := make([]schema.Purchase, 0, len(purchases))
	for _, p := range purchases {
		result = append(result, schema.PurchaseFromDomain(p))
	}
	c.JSON(http.StatusOK, result)
}
