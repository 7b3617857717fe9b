package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"smartMenu/domain"
	"smartMenu/pkg/metrics"
	jsonres "smartMenu/pkg/response"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	BanditHandler struct {
		validate      *validator.Validate
		banditService BanditService
	}

	BanditService interface {
		Recommend(ctx context.Context, tenantID, profileHash string) (domain.Recommendation, error)
		LogClick(ctx context.Context, tenantID, profileHash, armID string, clicked bool) error
		RecommendRanked(ctx context.Context, tenantID, profileHash string, k int) ([]domain.RankedRecommendation, error)
		LogRankedClick(ctx context.Context, tenantID, profileHash, armID string, position int) error
	}

	RecommendQuery struct {
		TenantID    string `query:"tenant_id" validate:"required"`
		ProfileHash string `query:"profile_hash" validate:"required"`
	}

	ClickRequest struct {
		TenantID    string `json:"tenant_id" validate:"required"`
		ProfileHash string `json:"profile_hash" validate:"required"`
		ArmID       string `json:"arm_id" validate:"required"`
		Clicked     bool   `json:"clicked"`
	}

	RankedClickRequest struct {
		TenantID    string `json:"tenant_id" validate:"required"`
		ProfileHash string `json:"profile_hash" validate:"required"`
		ArmID       string `json:"arm_id" validate:"required"`
		Position    int    `json:"position" validate:"required,min=1"`
	}
)

func NewBanditHandler(svc BanditService) *BanditHandler {
	return &BanditHandler{
		validate:      validator.New(),
		banditService: svc,
	}
}

// GET /api/v1/recommendations?tenant_id=t1&profile_hash=abc
func (h *BanditHandler) Recommend(c echo.Context) error {
	start := time.Now()
	metrics.RecommendRequests.WithLabelValues("single").Inc()

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}

	rec, err := h.banditService.Recommend(c.Request().Context(), q.TenantID, q.ProfileHash)
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecommendLatency.WithLabelValues("single").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

// POST /api/v1/recommendations/click
func (h *BanditHandler) Click(c echo.Context) error {
	var req ClickRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}

	err := h.banditService.LogClick(c.Request().Context(), req.TenantID, req.ProfileHash, req.ArmID, req.Clicked)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("feedback recorded"))
}

// GET /api/v1/recommendations/ranked?tenant_id=t1&profile_hash=abc&k=5
func (h *BanditHandler) RecommendRanked(c echo.Context) error {
	start := time.Now()
	metrics.RecommendRequests.WithLabelValues("ranked").Inc()

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}

	// Absent, non-numeric or non-positive k falls back to the service
	// default rather than failing the request.
	k := 0
	if raw := c.QueryParam("k"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			k = parsed
		}
	}

	recs, err := h.banditService.RecommendRanked(c.Request().Context(), q.TenantID, q.ProfileHash, k)
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecommendLatency.WithLabelValues("ranked").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// POST /api/v1/recommendations/ranked/click
func (h *BanditHandler) RankedClick(c echo.Context) error {
	var req RankedClickRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(jsonres.CodeInvalidRequest, err.Error(), nil))
	}

	err := h.banditService.LogRankedClick(c.Request().Context(), req.TenantID, req.ProfileHash, req.ArmID, req.Position)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("feedback recorded"))
}
