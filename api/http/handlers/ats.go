package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/akulikov/careerhub/api/http/presenter"
	"github.com/akulikov/careerhub/pkg/ats"
)

// ATSHandler принимает резюме и описание вакансии и возвращает ATS-оценку.
type ATSHandler struct {
	svc ats.ScoringService
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewATSHandler(svc ats.ScoringService) *ATSHandler {
	return &ATSHandler{svc: svc, maxBytes: 15 << 20} // 15MB
}

// Score оценивает резюме относительно описания вакансии.
// @Summary ATS-оценка резюме
// @Description Принимает файл резюме (PDF или DOCX) и текст вакансии, возвращает процент соответствия, недостающие ключевые слова и сводку профиля.
// @Tags    ATS
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Файл резюме (PDF или DOCX)"
// @Param   jobDescription formData string true "Текст описания вакансии"
// @Security BearerAuth
// @Success 200 {object} ats.Result
// @Failure 400 {object} presenter.ErrorResponse "Ошибка валидации или чтения файла"
// @Failure 500 {object} presenter.ErrorResponse "Внутренняя ошибка сервиса"
// @Router  /ats/score [post]
func (h *ATSHandler) Score(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf and docx are allowed")
	}
	jobDescription := c.FormValue("jobDescription")
	if strings.TrimSpace(jobDescription) == "" {
		return presenter.Error(c, http.StatusBadRequest, "jobDescription is required")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.Score(c.Context(), fh.Filename, data, jobDescription)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("scoring failed: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, result)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
