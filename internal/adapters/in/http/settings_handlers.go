package http

import (
	"net/http"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/application/usecases/queries"
	"lytefood/internal/core/domain/model/settings"

	"github.com/labstack/echo/v4"
)

// GetSettings handles GET /api/v1/settings.
func (s *Server) GetSettings(ctx echo.Context) error {
	response, err := s.handlers.GetSettings.Handle(
		ctx.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type updateSettingsRequest struct {
	Address                *string `json:"address"`
	PhoneNumber            *string `json:"phone_number"`
	Email                  *string `json:"email"`
	Title                  *string `json:"title"`
	HistoryTitle           *string `json:"history_title"`
	HistoryContent         *string `json:"history_content"`
	RestaurantTodayTitle   *string `json:"restaurant_today_title"`
	RestaurantTodayContent *string `json:"restaurant_today_content"`
	AchievementsTitle      *string `json:"achievements_title"`
	AchievementsContent    *string `json:"achievements_content"`
}

// UpdateSettings handles PUT /api/v1/settings for admins.
func (s *Server) UpdateSettings(ctx echo.Context) error {
	var req updateSettingsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd := commands.NewUpdateSettingsCommand(settings.Patch{
		Address:                req.Address,
		PhoneNumber:            req.PhoneNumber,
		Email:                  req.Email,
		Title:                  req.Title,
		HistoryTitle:           req.HistoryTitle,
		HistoryContent:         req.HistoryContent,
		RestaurantTodayTitle:   req.RestaurantTodayTitle,
		RestaurantTodayContent: req.RestaurantTodayContent,
		AchievementsTitle:      req.AchievementsTitle,
		AchievementsContent:    req.AchievementsContent,
	})

	if err := s.handlers.UpdateSettings.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "settings updated"})
}
