package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/wheeleat/voucher-service/internal/catalog"
	"github.com/wheeleat/voucher-service/internal/domain"
	"github.com/wheeleat/voucher-service/internal/usecase"
)

type ClaimRequest struct {
	UserID       string          `json:"user_id"`
	MerchantName string          `json:"merchant_name"`
	MerchantLogo string          `json:"merchant_logo,omitempty"`
	ValueRM      decimal.Decimal `json:"value_rm"`
	MinSpendRM   decimal.Decimal `json:"min_spend_rm"`
}

type EntryRequest struct {
	UserID        string `json:"user_id"`
	UserVoucherID string `json:"user_voucher_id"`
}

type TransferRequest struct {
	GuestUserID  string `json:"guest_user_id"`
	AuthedUserID string `json:"authenticated_user_id"`
}

type WheelSpinRequest struct {
	MallID             string   `json:"mall_id"`
	SelectedCategories []string `json:"selected_categories"`
}

type Handler struct {
	gateway     usecase.VoucherGateway
	spins       *usecase.SpinService
	catalog     *catalog.Catalog
	defaultMall string
}

func NewHandler(gateway usecase.VoucherGateway, spins *usecase.SpinService, cat *catalog.Catalog, defaultMall string) *Handler {
	return &Handler{
		gateway:     gateway,
		spins:       spins,
		catalog:     cat,
		defaultMall: defaultMall,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/vouchers", func(r chi.Router) {
			r.Get("/", h.ListVouchers)
			r.Post("/spin", h.ClaimVoucher)
			r.Post("/remove", h.ReleaseVoucher)
			r.Post("/use", h.RedeemVoucher)
			r.Post("/transfer", h.TransferVouchers)
		})
		r.Post("/spin", h.SpinWheel)
		r.Get("/restaurants", h.GetRestaurants)
		r.Get("/categories", h.GetCategories)
		r.Get("/malls", h.GetMalls)
	})
}

func (h *Handler) ClaimVoucher(w http.ResponseWriter, r *http.Request) {
	var req ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := domain.ParseIdentity(req.UserID)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if strings.TrimSpace(req.MerchantName) == "" {
		writeDetail(w, http.StatusBadRequest, "merchant_name is required")
		return
	}

	result, err := h.gateway.Claim(r.Context(), usecase.ClaimParams{
		User:         user,
		MerchantName: req.MerchantName,
		MerchantLogo: req.MerchantLogo,
		Value:        req.ValueRM,
		MinSpend:     req.MinSpendRM,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	if result.Reason == domain.ReasonGuestRejected {
		writeDetail(w, http.StatusUnauthorized, "login required to claim vouchers")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) ListVouchers(w http.ResponseWriter, r *http.Request) {
	user, err := domain.ParseIdentity(r.URL.Query().Get("user_id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "user_id is required")
		return
	}

	entries, err := h.gateway.ListActive(r.Context(), user)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.UserVoucherEntry{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"vouchers": entries})
}

func (h *Handler) ReleaseVoucher(w http.ResponseWriter, r *http.Request) {
	user, entryID, ok := h.decodeEntryRequest(w, r)
	if !ok {
		return
	}

	released, err := h.gateway.Release(r.Context(), user, entryID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "released": released})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrWrongOwner):
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "released": false})
	case errors.Is(err, domain.ErrAlreadyTerminal):
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "released": false})
	default:
		h.writeError(w, err)
	}
}

func (h *Handler) RedeemVoucher(w http.ResponseWriter, r *http.Request) {
	user, entryID, ok := h.decodeEntryRequest(w, r)
	if !ok {
		return
	}

	used, err := h.gateway.Redeem(r.Context(), user, entryID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "used": used})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrWrongOwner):
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "used": false})
	case errors.Is(err, domain.ErrAlreadyTerminal):
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "used": false})
	default:
		h.writeError(w, err)
	}
}

func (h *Handler) decodeEntryRequest(w http.ResponseWriter, r *http.Request) (domain.Identity, string, bool) {
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return domain.Identity{}, "", false
	}

	user, err := domain.ParseIdentity(req.UserID)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "user_id is required")
		return domain.Identity{}, "", false
	}
	if req.UserVoucherID == "" {
		writeDetail(w, http.StatusBadRequest, "user_voucher_id is required")
		return domain.Identity{}, "", false
	}
	return user, req.UserVoucherID, true
}

func (h *Handler) TransferVouchers(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	guest, err := domain.ParseIdentity(req.GuestUserID)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "guest_user_id and authenticated_user_id are required")
		return
	}
	authed, err := domain.ParseIdentity(req.AuthedUserID)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "guest_user_id and authenticated_user_id are required")
		return
	}

	result, err := h.gateway.Transfer(r.Context(), guest, authed)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"transferred": result.Transferred,
		"reassigned":  result.Reassigned,
		"deduped":     result.Deduped,
	})
}

func (h *Handler) SpinWheel(w http.ResponseWriter, r *http.Request) {
	var req WheelSpinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.SelectedCategories) == 0 {
		writeDetail(w, http.StatusBadRequest, "at least one category must be selected")
		return
	}

	mallID := req.MallID
	if mallID == "" {
		mallID = h.defaultMall
	}

	result, err := h.spins.Spin(r.Context(), mallID, req.SelectedCategories)
	if errors.Is(err, domain.ErrNoRestaurants) {
		writeDetail(w, http.StatusBadRequest, "no restaurants found in selected categories")
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"restaurant_name":  result.Restaurant.Name,
		"restaurant_unit":  result.Restaurant.Unit,
		"restaurant_floor": result.Restaurant.Floor,
		"category":         result.Restaurant.Category,
		"place_id":         result.Restaurant.PlaceID,
		"spin_id":          result.SpinID,
		"timestamp":        result.Timestamp.Format(time.RFC3339),
	})
}

func (h *Handler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	mallID := r.URL.Query().Get("mall_id")
	if mallID == "" {
		mallID = h.defaultMall
	}

	var restaurants []catalog.Restaurant
	if param := r.URL.Query().Get("categories"); param != "" {
		var cats []string
		for _, c := range strings.Split(param, ",") {
			cats = append(cats, strings.TrimSpace(c))
		}
		restaurants = h.catalog.RestaurantsByCategories(mallID, cats)
	} else {
		restaurants = h.catalog.AllRestaurants(mallID)
	}
	if restaurants == nil {
		restaurants = []catalog.Restaurant{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"restaurants": restaurants,
		"count":       len(restaurants),
	})
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	mallID := r.URL.Query().Get("mall_id")
	if mallID == "" {
		mallID = h.defaultMall
	}

	categories := h.catalog.Categories(mallID)
	if categories == nil {
		categories = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (h *Handler) GetMalls(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"malls": h.catalog.Malls()})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeDetail(w, http.StatusBadRequest, "invalid request")
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeDetail(w, http.StatusServiceUnavailable, "temporarily unavailable, please retry")
	default:
		writeDetail(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
