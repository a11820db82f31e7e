package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
)

// ExportHandler expone la planilla imprimible del directorio (protegido).
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// RosterPDF godoc
// @Summary      Exportar el listado filtrado como PDF imprimible
// @Tags         employees
// @Produce      application/pdf
// @Param        search  query  string  false  "substring del nombre"
// @Param        gender  query  string  false  "Male | Female | Other"
// @Param        status  query  string  false  "active | inactive"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/employees/export/pdf [get]
func (h *ExportHandler) RosterPDF(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	raw, err := h.uc.RosterPDF(c.UserContext(), filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="employee-directory.pdf"`)
	return c.Send(raw)
}
