package web

import (
	"log/slog"
	"net/http"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	categories queries.CategoryQueries
	products   queries.ProductQueries
	orders     queries.OrderQueries
	addresses  queries.AddressQueries
	users      queries.UserQueries
	dashboard  queries.DashboardQueries
}

func NewPageHandler(
	categories queries.CategoryQueries,
	products queries.ProductQueries,
	orders queries.OrderQueries,
	addresses queries.AddressQueries,
	users queries.UserQueries,
	dashboard queries.DashboardQueries,
) *PageHandler {
	return &PageHandler{
		categories: categories,
		products:   products,
		orders:     orders,
		addresses:  addresses,
		users:      users,
		dashboard:  dashboard,
	}
}

func (h *PageHandler) Home(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "home.html", "Shop", gin.H{"Categories": categories})
}

func (h *PageHandler) Category(c *gin.Context) {
	ctx := c.Request.Context()

	category, err := h.categories.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errs.Is(err, queries.ErrCategoryNotFound) {
			h.render(c, http.StatusNotFound, "error.html", "Not found", gin.H{"Message": "This category does not exist."})
			return
		}
		h.renderError(c, err)
		return
	}

	products, err := h.products.List(ctx, category.Slug)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "category.html", category.Name, gin.H{
		"Category": category,
		"Products": products,
	})
}

// the pages below sit behind the access gate, so an identity is always present

func (h *PageHandler) Profile(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	u, err := h.users.GetCurrentUser(c.Request.Context(), identity.ID)
	if err != nil {
		// the token can outlive the account
		if errs.Is(err, queries.ErrUserNotFound) {
			h.render(c, http.StatusNotFound, "error.html", "Not found", gin.H{"Message": "This account no longer exists."})
			return
		}
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "profile.html", "Profile", gin.H{"User": u})
}

func (h *PageHandler) Orders(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	orders, err := h.orders.ListForUser(c.Request.Context(), identity.ID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "orders.html", "Orders", gin.H{"Orders": orders})
}

func (h *PageHandler) Addresses(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	addresses, err := h.addresses.ListForUser(c.Request.Context(), identity.ID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "address.html", "Addresses", gin.H{"Addresses": addresses})
}

func (h *PageHandler) Admin(c *gin.Context) {
	stats, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin.html", "Dashboard", gin.H{"Stats": stats})
}

func (h *PageHandler) render(c *gin.Context, status int, name, title string, data gin.H) {
	data["Title"] = title
	data["Identity"] = currentIdentity(c)
	c.HTML(status, name, data)
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	_ = c.Error(err)
	slog.Error("page rendering failed", "path", c.Request.URL.Path, "error", err.Error())
	h.render(c, http.StatusInternalServerError, "error.html", "Something went wrong", gin.H{
		"Message": "Internal server error",
	})
}

func currentIdentity(c *gin.Context) *user.Identity {
	identity, _ := middleware.GetIdentity(c)
	return identity
}
