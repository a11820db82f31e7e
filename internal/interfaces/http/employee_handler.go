package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/directory"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// EmployeeHandler maneja las peticiones HTTP del directorio (protegido).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// parseFilters lee search/gender/status del query string y los valida contra
// los valores que el motor de consulta entiende.
func parseFilters(c *fiber.Ctx) (directory.Filters, error) {
	f := directory.Filters{
		Search: c.Query("search"),
		Gender: c.Query("gender"),
		Status: c.Query("status"),
	}
	if f.Gender != "" && !entity.ValidGender(f.Gender) {
		return f, errors.New("gender debe ser Male, Female u Other")
	}
	if f.Status != "" && f.Status != directory.StatusActive && f.Status != directory.StatusInactive {
		return f, errors.New("status debe ser active o inactive")
	}
	return f, nil
}

// List godoc
// @Summary      Listar empleados (filtros opcionales AND-compuestos)
// @Tags         employees
// @Produce      json
// @Param        search  query  string  false  "substring del nombre, sin distinguir mayúsculas ni acentos"
// @Param        gender  query  string  false  "Male | Female | Other"
// @Param        status  query  string  false  "active | inactive"
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	list, err := h.uc.List(filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear empleado (el store asigna id y timestamps)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "campos del empleado"
// @Success      201  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(employee)
}

// Update godoc
// @Summary      Actualizar empleado (patch parcial: los campos ausentes se conservan)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del empleado"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "campos a pisar"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(employee)
}

// SetStatus godoc
// @Summary      Activar o desactivar empleado (toggle del dashboard)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del empleado"
// @Param        body  body  dto.SetStatusRequest  true  "isActive"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/status [patch]
func (h *EmployeeHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IsActive == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "isActive es requerido"})
	}
	employee, err := h.uc.Update(c.Params("id"), dto.UpdateEmployeeRequest{IsActive: in.IsActive})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(employee)
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Param        id  path  string  true  "ID del empleado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
