package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/wheeleat/voucher-service/internal/catalog"
	"github.com/wheeleat/voucher-service/internal/domain"
	"github.com/wheeleat/voucher-service/internal/repository"
	"github.com/wheeleat/voucher-service/internal/usecase"
)

type stubGateway struct {
	claimResult    *domain.ClaimResult
	claimErr       error
	releaseOK      bool
	releaseErr     error
	redeemOK       bool
	redeemErr      error
	transferResult *domain.TransferResult
	transferErr    error
	entries        []domain.UserVoucherEntry
	listErr        error

	lastClaim    usecase.ClaimParams
	lastEntryID  string
	lastTransfer [2]domain.Identity
}

func (g *stubGateway) Claim(_ context.Context, p usecase.ClaimParams) (*domain.ClaimResult, error) {
	g.lastClaim = p
	return g.claimResult, g.claimErr
}

func (g *stubGateway) Release(_ context.Context, _ domain.Identity, entryID string) (bool, error) {
	g.lastEntryID = entryID
	return g.releaseOK, g.releaseErr
}

func (g *stubGateway) Redeem(_ context.Context, _ domain.Identity, entryID string) (bool, error) {
	g.lastEntryID = entryID
	return g.redeemOK, g.redeemErr
}

func (g *stubGateway) Transfer(_ context.Context, guest, authed domain.Identity) (*domain.TransferResult, error) {
	g.lastTransfer = [2]domain.Identity{guest, authed}
	return g.transferResult, g.transferErr
}

func (g *stubGateway) ListActive(_ context.Context, _ domain.Identity) ([]domain.UserVoucherEntry, error) {
	return g.entries, g.listErr
}

// stubStore only needs InsertSpinLog; the embedded interface covers the
// rest, which the spin path never touches.
type stubStore struct {
	repository.Store
	spinLogErr error
	spinLogs   int
}

func (s *stubStore) InsertSpinLog(_ context.Context, _ repository.InsertSpinLogParams) error {
	s.spinLogs++
	return s.spinLogErr
}

func newTestServer(gw *stubGateway, store *stubStore) *httptest.Server {
	cat := catalog.New()
	spins := usecase.NewSpinService(store, cat)
	h := NewHandler(gw, spins, cat, "sunway_square")

	r := chi.NewRouter()
	h.Routes(r)
	return httptest.NewServer(r)
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func TestClaimVoucher_Success(t *testing.T) {
	gw := &stubGateway{
		claimResult: &domain.ClaimResult{
			Won:          true,
			RemainingQty: 4,
			Entry:        &domain.UserVoucherEntry{ID: "e1", UserID: "user-1", VoucherTypeID: "voucher_far-coffee", Status: domain.StatusActive},
		},
	}
	srv := newTestServer(gw, &stubStore{})
	defer srv.Close()

	resp, body := postJSON(t, srv.URL+"/api/vouchers/spin", ClaimRequest{
		UserID:       "user-1",
		MerchantName: "Far Coffee",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["won"] != true {
		t.Fatalf("won = %v, want true", body["won"])
	}
	if body["remaining_qty"] != float64(4) {
		t.Fatalf("remaining_qty = %v, want 4", body["remaining_qty"])
	}
	if gw.lastClaim.User.IsAnonymous() {
		t.Fatal("expected authenticated identity passed to gateway")
	}
	if gw.lastClaim.MerchantName != "Far Coffee" {
		t.Fatalf("merchant = %q", gw.lastClaim.MerchantName)
	}
}

func TestClaimVoucher_GuestGets401(t *testing.T) {
	gw := &stubGateway{
		claimResult: &domain.ClaimResult{Won: false, Reason: domain.ReasonGuestRejected},
	}
	srv := newTestServer(gw, &stubStore{})
	defer srv.Close()

	resp, body := postJSON(t, srv.URL+"/api/vouchers/spin", ClaimRequest{
		UserID:       "anon_42",
		MerchantName: "Far Coffee",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if detail, _ := body["detail"].(string); detail == "" {
		t.Fatal("expected a detail message")
	}
}

func TestClaimVoucher_Validation(t *testing.T) {
	srv := newTestServer(&stubGateway{}, &stubStore{})
	defer srv.Close()

	for name, req := range map[string]ClaimRequest{
		"missing user":     {MerchantName: "Far Coffee"},
		"missing merchant": {UserID: "user-1"},
	} {
		resp, _ := postJSON(t, srv.URL+"/api/vouchers/spin", req)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, resp.StatusCode)
		}
	}
}

func TestClaimVoucher_StoreUnavailable(t *testing.T) {
	gw := &stubGateway{claimErr: domain.ErrStoreUnavailable}
	srv := newTestServer(gw, &stubStore{})
	defer srv.Close()

	resp, _ := postJSON(t, srv.URL+"/api/vouchers/spin", ClaimRequest{
		UserID:       "user-1",
		MerchantName: "Far Coffee",
	})
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}

func TestListVouchers_EmptyIsArray(t *testing.T) {
	srv := newTestServer(&stubGateway{}, &stubStore{})
	defer srv.Close()

	resp, body := getJSON(t, srv.URL+"/api/vouchers/?user_id=user-1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	vouchers, ok := body["vouchers"].([]any)
	if !ok {
		t.Fatalf("vouchers = %T, want array", body["vouchers"])
	}
	if len(vouchers) != 0 {
		t.Fatalf("vouchers = %v, want empty", vouchers)
	}
}

func TestReleaseVoucher_Mappings(t *testing.T) {
	cases := []struct {
		name         string
		ok           bool
		err          error
		wantOK       any
		wantReleased any
	}{
		{"released", true, nil, true, true},
		{"not found", false, domain.ErrNotFound, false, false},
		{"wrong owner", false, domain.ErrWrongOwner, false, false},
		{"already terminal", false, domain.ErrAlreadyTerminal, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &stubGateway{releaseOK: tc.ok, releaseErr: tc.err}
			srv := newTestServer(gw, &stubStore{})
			defer srv.Close()

			resp, body := postJSON(t, srv.URL+"/api/vouchers/remove", EntryRequest{
				UserID:        "user-1",
				UserVoucherID: "11111111-1111-1111-1111-111111111111",
			})
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			if body["ok"] != tc.wantOK || body["released"] != tc.wantReleased {
				t.Fatalf("body = %v, want ok=%v released=%v", body, tc.wantOK, tc.wantReleased)
			}
		})
	}
}

func TestRedeemVoucher_Mappings(t *testing.T) {
	gw := &stubGateway{redeemOK: true}
	srv := newTestServer(gw, &stubStore{})
	defer srv.Close()

	resp, body := postJSON(t, srv.URL+"/api/vouchers/use", EntryRequest{
		UserID:        "user-1",
		UserVoucherID: "11111111-1111-1111-1111-111111111111",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["ok"] != true || body["used"] != true {
		t.Fatalf("body = %v, want ok=true used=true", body)
	}

	gw.redeemOK, gw.redeemErr = false, domain.ErrNotFound
	_, body = postJSON(t, srv.URL+"/api/vouchers/use", EntryRequest{
		UserID:        "user-1",
		UserVoucherID: "11111111-1111-1111-1111-111111111111",
	})
	if body["ok"] != false || body["used"] != false {
		t.Fatalf("body = %v, want ok=false used=false", body)
	}
}

func TestTransferVouchers(t *testing.T) {
	gw := &stubGateway{
		transferResult: &domain.TransferResult{Transferred: 3, Reassigned: 2, Deduped: 1},
	}
	srv := newTestServer(gw, &stubStore{})
	defer srv.Close()

	resp, body := postJSON(t, srv.URL+"/api/vouchers/transfer", TransferRequest{
		GuestUserID:  "anon_42",
		AuthedUserID: "user-1",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["success"] != true || body["transferred"] != float64(3) {
		t.Fatalf("body = %v", body)
	}
	if body["reassigned"] != float64(2) || body["deduped"] != float64(1) {
		t.Fatalf("body = %v", body)
	}
	if !gw.lastTransfer[0].IsAnonymous() || gw.lastTransfer[1].IsAnonymous() {
		t.Fatalf("identities passed to gateway: %v", gw.lastTransfer)
	}

	resp, _ = postJSON(t, srv.URL+"/api/vouchers/transfer", TransferRequest{GuestUserID: "anon_42"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing destination", resp.StatusCode)
	}
}

func TestTransferVouchers_InvalidArgument(t *testing.T) {
	gw := &stubGateway{transferErr: domain.ErrInvalidArgument}
	srv := newTestServer(gw, &stubStore{})
	defer srv.Close()

	resp, _ := postJSON(t, srv.URL+"/api/vouchers/transfer", TransferRequest{
		GuestUserID:  "user-2",
		AuthedUserID: "user-1",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSpinWheel(t *testing.T) {
	store := &stubStore{}
	srv := newTestServer(&stubGateway{}, store)
	defer srv.Close()

	resp, body := postJSON(t, srv.URL+"/api/spin", WheelSpinRequest{
		SelectedCategories: []string{"Coffee & Cafes"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	name, _ := body["restaurant_name"].(string)
	if name == "" {
		t.Fatalf("restaurant_name missing: %v", body)
	}
	if body["category"] != "Coffee & Cafes" {
		t.Fatalf("category = %v", body["category"])
	}
	if id, _ := body["spin_id"].(string); id == "" {
		t.Fatalf("spin metadata missing: %v", body)
	}
	if store.spinLogs != 1 {
		t.Fatalf("spin logs recorded = %d, want 1", store.spinLogs)
	}
}

func TestSpinWheel_LogFailureDoesNotFailSpin(t *testing.T) {
	store := &stubStore{spinLogErr: errors.New("db down")}
	srv := newTestServer(&stubGateway{}, store)
	defer srv.Close()

	resp, _ := postJSON(t, srv.URL+"/api/spin", WheelSpinRequest{
		SelectedCategories: []string{"Coffee & Cafes"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestSpinWheel_NoMatches(t *testing.T) {
	srv := newTestServer(&stubGateway{}, &stubStore{})
	defer srv.Close()

	resp, _ := postJSON(t, srv.URL+"/api/spin", WheelSpinRequest{
		SelectedCategories: []string{"Nonexistent"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	resp, _ = postJSON(t, srv.URL+"/api/spin", WheelSpinRequest{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for no categories", resp.StatusCode)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestServer(&stubGateway{}, &stubStore{})
	defer srv.Close()

	resp, body := getJSON(t, srv.URL+"/api/restaurants")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("restaurants status = %d", resp.StatusCode)
	}
	if body["count"] == float64(0) {
		t.Fatal("expected restaurants in default mall")
	}

	_, body = getJSON(t, srv.URL+"/api/restaurants?categories=Coffee+%26+Cafes")
	rs, _ := body["restaurants"].([]any)
	for _, raw := range rs {
		r := raw.(map[string]any)
		if r["category"] != "Coffee & Cafes" {
			t.Fatalf("unexpected category in filtered list: %v", r["category"])
		}
	}

	_, body = getJSON(t, srv.URL+"/api/categories")
	cats, _ := body["categories"].([]any)
	if len(cats) == 0 {
		t.Fatal("expected categories")
	}

	_, body = getJSON(t, srv.URL+"/api/malls")
	malls, _ := body["malls"].([]any)
	if len(malls) == 0 {
		t.Fatal("expected malls")
	}
	first := malls[0].(map[string]any)
	if !strings.Contains(first["id"].(string), "sunway") {
		t.Fatalf("unexpected mall id %v", first["id"])
	}
}
