package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/akulikov/careerhub/api/http/presenter"
	"github.com/akulikov/careerhub/pkg/profile"
)

// InsightsHandler отдаёт рыночную аналитику по отрасли пользователя.
type InsightsHandler struct{ svc profile.UseCase }

func NewInsightsHandler(svc profile.UseCase) *InsightsHandler { return &InsightsHandler{svc: svc} }

// Get возвращает аналитику по отрасли текущего пользователя.
// Устаревшая или отсутствующая запись пересобирается перед ответом; профиль
// без отрасли получает синтетическую заглушку без записи в хранилище.
// @Summary Аналитика по отрасли
// @Tags    Аналитика
// @Produce json
// @Security BearerAuth
// @Success 200 {object} insight.Insight
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse "Профиль не найден"
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /insights [get]
func (h *InsightsHandler) Get(c *fiber.Ctx) error {
	rec, err := h.svc.GetInsights(c.Context(), subject(c))
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, rec)
}
