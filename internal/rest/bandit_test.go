package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartMenu/domain"

	"github.com/labstack/echo/v4"
)

type stubBanditService struct {
	rec       domain.Recommendation
	ranked    []domain.RankedRecommendation
	rankedK   int
	clickErr  error
	recommend error
}

func (s *stubBanditService) Recommend(ctx context.Context, tenantID, profileHash string) (domain.Recommendation, error) {
	return s.rec, s.recommend
}

func (s *stubBanditService) LogClick(ctx context.Context, tenantID, profileHash, armID string, clicked bool) error {
	return s.clickErr
}

func (s *stubBanditService) RecommendRanked(ctx context.Context, tenantID, profileHash string, k int) ([]domain.RankedRecommendation, error) {
	s.rankedK = k
	return s.ranked, s.recommend
}

func (s *stubBanditService) LogRankedClick(ctx context.Context, tenantID, profileHash, armID string, position int) error {
	return s.clickErr
}

func TestRecommendHandler(t *testing.T) {
	h := NewBanditHandler(&stubBanditService{rec: domain.Recommendation{ArmID: "a", Name: "Item A"}})
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?tenant_id=t1&profile_hash=u1", nil)
	rec := httptest.NewRecorder()

	if err := h.Recommend(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); !strings.Contains(body, `"arm_id":"a"`) {
		t.Errorf("body missing arm: %s", body)
	}
}

func TestRecommendHandlerRejectsMissingParams(t *testing.T) {
	h := NewBanditHandler(&stubBanditService{})
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?tenant_id=t1", nil)
	rec := httptest.NewRecorder()

	if err := h.Recommend(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRecommendHandlerMapsNotFound(t *testing.T) {
	h := NewBanditHandler(&stubBanditService{recommend: domain.ErrNoArms})
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?tenant_id=t1&profile_hash=u1", nil)
	rec := httptest.NewRecorder()

	if err := h.Recommend(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRecommendRankedHandlerParsesK(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"5", 5},
		{"", 0},
		{"abc", 0}, // non-numeric k falls back to the service default
	}

	for _, tc := range cases {
		stub := &stubBanditService{ranked: []domain.RankedRecommendation{{ArmID: "a", Position: 1}}}
		h := NewBanditHandler(stub)
		e := echo.New()

		url := "/api/v1/recommendations/ranked?tenant_id=t1&profile_hash=u1"
		if tc.raw != "" {
			url += "&k=" + tc.raw
		}
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()

		if err := h.RecommendRanked(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler failed for k=%q: %v", tc.raw, err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("k=%q: status = %d, want %d", tc.raw, rec.Code, http.StatusOK)
		}
		if stub.rankedK != tc.want {
			t.Errorf("k=%q: service received k=%d, want %d", tc.raw, stub.rankedK, tc.want)
		}
	}
}

func TestRankedClickHandlerRejectsBadPosition(t *testing.T) {
	h := NewBanditHandler(&stubBanditService{})
	e := echo.New()

	body := `{"tenant_id":"t1","profile_hash":"u1","arm_id":"a","position":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/ranked/click", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.RankedClick(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestClickHandlerMapsUnknownExposure(t *testing.T) {
	h := NewBanditHandler(&stubBanditService{clickErr: domain.ErrStatsNotFound})
	e := echo.New()

	body := `{"tenant_id":"t1","profile_hash":"u1","arm_id":"a","clicked":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/click", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Click(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
