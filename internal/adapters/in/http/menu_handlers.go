package http

import (
	"net/http"
	"strconv"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/application/usecases/queries"
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/menu"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ListMenus handles GET /api/v1/menus. An optional "category_id" query
// parameter restricts the catalog to one category.
func (s *Server) ListMenus(ctx echo.Context) error {
	var categoryID int64
	if raw := ctx.QueryParam("category_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return badRequest(ctx, "invalid category id")
		}
		categoryID = parsed
	}

	menus, err := s.handlers.GetMenus.Handle(
		ctx.Request().Context(), queries.NewGetMenusQuery(categoryID))
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menus)
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	categories, err := s.handlers.GetCategories.Handle(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, categories)
}

type createMenuRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`
}

// CreateMenu handles POST /api/v1/menus for admins.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var req createMenuRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateMenuCommand(req.Name, req.Description,
		req.ImageURL, kernel.NewMoneyFromDecimal(req.Price), req.CategoryID)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.handlers.CreateMenu.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: id})
}

type updateMenuRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"image_url"`
	Price       *decimal.Decimal `json:"price"`
	IsFavorite  *bool            `json:"is_favorite"`
	CategoryID  *int64           `json:"category_id"`
}

// UpdateMenu handles PUT /api/v1/menus/:id for admins.
func (s *Server) UpdateMenu(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid menu id")
	}

	var req updateMenuRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	patch := menu.Patch{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsFavorite:  req.IsFavorite,
		CategoryID:  req.CategoryID,
	}
	if req.Price != nil {
		price := kernel.NewMoneyFromDecimal(*req.Price)
		patch.Price = &price
	}

	cmd, err := commands.NewUpdateMenuCommand(id, patch)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateMenu.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "menu updated"})
}

// DeleteMenu handles DELETE /api/v1/menus/:id for admins.
func (s *Server) DeleteMenu(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid menu id")
	}

	cmd, err := commands.NewDeleteMenuCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteMenu.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "menu deleted"})
}

type categoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory handles POST /api/v1/categories for admins.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var req categoryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCategoryCommand(req.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.handlers.CreateCategory.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: id})
}

// RenameCategory handles PUT /api/v1/categories/:id for admins.
func (s *Server) RenameCategory(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid category id")
	}

	var req categoryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRenameCategoryCommand(id, req.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.RenameCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "category renamed"})
}

// DeleteCategory handles DELETE /api/v1/categories/:id for admins. Items of
// the category are removed with it.
func (s *Server) DeleteCategory(ctx echo.Context) error {
	id, ok := orderIDParam(ctx)
	if !ok {
		return badRequest(ctx, "invalid category id")
	}

	cmd, err := commands.NewDeleteCategoryCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "category deleted"})
}
