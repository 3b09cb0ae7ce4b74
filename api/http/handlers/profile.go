package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/akulikov/careerhub/api/http/presenter"
	"github.com/akulikov/careerhub/pkg/profile"
)

// ProfileHandler обслуживает операции над профилем текущего пользователя.
// Личность берётся из Locals("userId"), выставленного JWT-мидлварью.
type ProfileHandler struct{ svc profile.UseCase }

func NewProfileHandler(svc profile.UseCase) *ProfileHandler { return &ProfileHandler{svc: svc} }

// UpdateProfileRequest — тело запроса на обновление профиля.
// Отсутствующие поля (null) не меняются. Отрасль задаётся либо компактной
// строкой industry, либо парой mainIndustry/subIndustry, которая собирается
// кодеком границы; компактная форма имеет приоритет.
type UpdateProfileRequest struct {
	Industry     *string  `json:"industry"`
	MainIndustry string   `json:"mainIndustry"`
	SubIndustry  string   `json:"subIndustry"`
	Experience   *int     `json:"experience"`
	Bio          *string  `json:"bio"`
	Skills       []string `json:"skills"`
	ReturnTo     string   `json:"returnTo"`
}

// ProfileResponse — представление профиля с разобранной парой отрасль/подотрасль.
type ProfileResponse struct {
	ID           string   `json:"id"`
	Industry     string   `json:"industry"`
	MainIndustry string   `json:"mainIndustry"`
	SubIndustry  string   `json:"subIndustry"`
	Experience   int      `json:"experience"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

func toProfileResponse(p profile.Profile) ProfileResponse {
	main, sub := profile.SplitIndustry(p.Industry)
	return ProfileResponse{
		ID:           p.ID.String(),
		Industry:     p.Industry,
		MainIndustry: main,
		SubIndustry:  sub,
		Experience:   p.Experience,
		Bio:          p.Bio,
		Skills:       p.Skills,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}

// Update обновляет профиль и при необходимости пересобирает аналитику по отрасли.
// @Summary Обновление профиля
// @Description Частичное обновление полей профиля; при смене или устаревании отрасли аналитика пересобирается в той же транзакции.
// @Tags    Профиль
// @Accept  json
// @Produce json
// @Param   request body UpdateProfileRequest true "Изменяемые поля"
// @Security BearerAuth
// @Success 200 {object} profile.ReconcileResult
// @Failure 400 {object} presenter.ErrorResponse "Некорректное тело запроса"
// @Failure 401 {object} presenter.ErrorResponse "Нет проверенной личности"
// @Failure 404 {object} presenter.ErrorResponse "Профиль не найден"
// @Failure 500 {object} presenter.ErrorResponse "Внутренняя ошибка сервиса"
// @Router  /profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	industry := req.Industry
	if industry == nil && req.MainIndustry != "" {
		joined := profile.JoinIndustry(req.MainIndustry, req.SubIndustry)
		industry = &joined
	}
	res, err := h.svc.Update(c.Context(), subject(c), profile.UpdateInput{
		Industry:   industry,
		Experience: req.Experience,
		Bio:        req.Bio,
		Skills:     req.Skills,
		ReturnTo:   req.ReturnTo,
	})
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Get возвращает профиль текущего пользователя.
// @Summary Профиль текущего пользователя
// @Tags    Профиль
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	p, err := h.svc.Get(c.Context(), subject(c))
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toProfileResponse(p))
}

// Provision создаёт пустой профиль для новой личности (идемпотентно).
// @Summary Создание профиля
// @Description Создаёт профиль для новой личности; повторный вызов возвращает существующий профиль.
// @Tags    Профиль
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profile [post]
func (h *ProfileHandler) Provision(c *fiber.Ctx) error {
	p, err := h.svc.Provision(c.Context(), subject(c))
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toProfileResponse(p))
}

// Onboarding сообщает, завершил ли пользователь онбординг (указал отрасль).
// @Summary Статус онбординга
// @Tags    Профиль
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profile/onboarding [get]
func (h *ProfileHandler) Onboarding(c *fiber.Ctx) error {
	ok, err := h.svc.IsOnboarded(c.Context(), subject(c))
	if err != nil {
		return profileError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"isOnboarded": ok})
}

func subject(c *fiber.Ctx) string {
	s, _ := c.Locals("userId").(string)
	return s
}

func profileError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, profile.ErrUnauthorized):
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, profile.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "profile not found")
	default:
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
}
