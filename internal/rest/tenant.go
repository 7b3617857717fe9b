package rest

import (
	"context"
	"net/http"

	"smartMenu/domain"
	jsonres "smartMenu/pkg/response"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	TenantHandler struct {
		validate      *validator.Validate
		tenantService TenantService
	}

	TenantService interface {
		CreateTenant(ctx context.Context, t *domain.Tenant) error
		CreateArm(ctx context.Context, arm *domain.Arm) error
		ListArms(ctx context.Context, tenantID string) ([]domain.Arm, error)
	}

	CreateTenantRequest struct {
		TenantID string `json:"tenant_id" validate:"required"`
		Name     string `json:"name"`
	}

	CreateArmRequest struct {
		TenantID string `json:"tenant_id" validate:"required"`
		ArmID    string `json:"arm_id" validate:"required"`
		Name     string `json:"name" validate:"required"`
	}
)

func NewTenantHandler(svc TenantService) *TenantHandler {
	return &TenantHandler{
		validate:      validator.New(),
		tenantService: svc,
	}
}

// POST /api/v1/tenants
func (h *TenantHandler) CreateTenant(c echo.Context) error {
	var req CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}

	tenant := domain.Tenant{
		ID:   req.TenantID,
		Name: req.Name,
	}
	if err := h.tenantService.CreateTenant(c.Request().Context(), &tenant); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(tenant))
}

// POST /api/v1/arms
func (h *TenantHandler) CreateArm(c echo.Context) error {
	var req CreateArmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}

	arm := domain.Arm{
		ID:       req.ArmID,
		TenantID: req.TenantID,
		Name:     req.Name,
	}
	if err := h.tenantService.CreateArm(c.Request().Context(), &arm); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(arm))
}

// GET /api/v1/tenants/:id/arms
func (h *TenantHandler) ListArms(c echo.Context) error {
	tenantID := c.Param("id")
	if tenantID == "" {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, "missing tenant id", nil))
	}

	arms, err := h.tenantService.ListArms(c.Request().Context(), tenantID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(arms))
}
