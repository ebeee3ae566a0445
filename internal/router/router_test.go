package router

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mealbox/storefront-backend/internal/catalog"
	"github.com/mealbox/storefront-backend/internal/clock"
	"github.com/mealbox/storefront-backend/internal/handler"
	"github.com/mealbox/storefront-backend/internal/middleware"
	"github.com/mealbox/storefront-backend/internal/models"
	"github.com/mealbox/storefront-backend/internal/service"
	jwtPkg "github.com/mealbox/storefront-backend/pkg/jwt"
	"github.com/mealbox/storefront-backend/pkg/payment"
	"github.com/mealbox/storefront-backend/pkg/qrcode"
	"github.com/mealbox/storefront-backend/pkg/utils"
)

const (
	jwtSecret     = "test-jwt-secret"
	webhookSecret = "whsec_test"
	testUserID    = "3b241101-e2bb-4255-8caf-4136c566a962"
)

type stubProcessor struct {
	calls    int
	requests []*models.SessionRequest
	err      error
}

func (p *stubProcessor) CreateCheckoutSession(_ context.Context, req *models.SessionRequest) (*models.CheckoutSession, error) {
	p.calls++
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	return &models.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil
}

type giftCardStore struct {
	codes map[string]bool
}

func (s *giftCardStore) Create(context.Context, *models.GiftCard) error { return nil }

func (s *giftCardStore) GetByCode(_ context.Context, code string) (*models.GiftCard, error) {
	if !s.codes[code] {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.GiftCard{Code: code}, nil
}

func (s *giftCardStore) ExistsBySessionID(context.Context, string) (bool, error) { return false, nil }
func (s *giftCardStore) Count(context.Context) (int64, error) { return 0, nil }
func (s *giftCardStore) CountByPurchaser(context.Context, string) (int64, error) {
	return 0, nil
}

type testApp struct {
	app       *fiber.App
	processor *stubProcessor
}

func newTestApp(t *testing.T, stripeKey string) *testApp {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	log := zap.NewNop()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	clk := clock.NewFixed(time.Date(2025, 1, 8, 13, 30, 0, 0, loc))
	validator := utils.NewValidator()
	processor := &stubProcessor{}

	zoneService := service.NewZoneService(cat, 0)
	checkoutService := service.NewCheckoutService(processor, cat, service.Organization{Name: "Mealbox Community Kitchen", EIN: "12-3456789", DonationType: "meal_donation"}, log)
	giftCardService := service.NewGiftCardService(&giftCardStore{codes: map[string]bool{"MEAL-ABCD-2345": true}}, qrcode.NewQRService(), "https://mealbox.test")
	paymentService := service.NewPaymentService(service.FulfilmentStores{}, nil, clk, utils.GenerateGiftCode, 25, log)

	app := New(Config{
		AllowedOrigins:    "https://mealbox.test",
		StripeSecretKey:   stripeKey,
		DisableRequestLog: true,
	}, Handlers{
		Checkout: handler.NewCheckoutHandler(checkoutService, validator, log),
		Zone:     handler.NewZoneHandler(zoneService, service.NewWindowService(cat), clk, log),
		Catalog:  handler.NewCatalogHandler(cat, clk),
		GiftCard: handler.NewGiftCardHandler(giftCardService, log),
		Payment:  handler.NewPaymentHandler(paymentService, payment.NewStripeService(stripeKey, webhookSecret), log),
		Account:  handler.NewAccountHandler(nil, nil, service.NewAddressService(nil, zoneService), validator, log),
		Admin:    handler.NewAdminHandler(nil, clk),
	}, middleware.AuthMiddleware(jwtSecret, log))

	return &testApp{app: app, processor: processor}
}

func (a *testApp) do(t *testing.T, req *http.Request) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)

	body := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if strings.HasPrefix(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp, body
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	return req
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token, err := jwtPkg.GenerateToken(jwtPkg.Claims{
		Email:       "ada@example.com",
		AppMetadata: jwtPkg.AppMetadata{Role: role},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   testUserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, jwtSecret)
	require.NoError(t, err)
	return "Bearer " + token
}

const subscriptionBody = `{"plan_name":"Balanced","price":149,"plan_id":"balanced","success_url":"https://mealbox.test/ok","cancel_url":"https://mealbox.test/plans"}`

func TestSessionEndpoints_Preflight(t *testing.T) {
	a := newTestApp(t, "")

	for _, path := range []string{"/api/create-checkout-session", "/api/create-donation-session"} {
		req := httptest.NewRequest(fiber.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://elsewhere.example")
		req.Header.Set("Access-Control-Request-Method", "POST")

		resp, _ := a.do(t, req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"), path)
	}
}

func TestSessionEndpoints_MissingSecret(t *testing.T) {
	a := newTestApp(t, "")

	resp, body := a.do(t, jsonRequest(fiber.MethodPost, "/api/create-checkout-session", subscriptionBody))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	resp, _ = a.do(t, jsonRequest(fiber.MethodPost, "/api/create-donation-session", `{"amount":25}`))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 0, a.processor.calls)
}

func TestCreateCheckoutSession(t *testing.T) {
	a := newTestApp(t, "sk_test")

	req := jsonRequest(fiber.MethodPost, "/api/create-checkout-session", subscriptionBody)
	req.Header.Set("Idempotency-Key", "idem-123")
	resp, body := a.do(t, req)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", body["url"])
	assert.Equal(t, "cs_test_1", body["sessionId"])
	require.Len(t, a.processor.requests, 1)
	assert.Equal(t, "idem-123", a.processor.requests[0].IdempotencyKey)
	assert.Equal(t, models.SessionModeSubscription, a.processor.requests[0].Mode)
}

func TestCreateCheckoutSession_ZeroPrice(t *testing.T) {
	a := newTestApp(t, "sk_test")

	body := strings.Replace(subscriptionBody, `"price":149`, `"price":0`, 1)
	resp, out := a.do(t, jsonRequest(fiber.MethodPost, "/api/create-checkout-session", body))

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, out["error"], "price")
	assert.Equal(t, 0, a.processor.calls)
}

func TestCreateCheckoutSession_ProcessorErrorPassesThrough(t *testing.T) {
	a := newTestApp(t, "sk_test")
	a.processor.err = &payment.Error{StatusCode: http.StatusPaymentRequired, Message: "Your card was declined."}

	resp, body := a.do(t, jsonRequest(fiber.MethodPost, "/api/create-checkout-session", subscriptionBody))
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "Your card was declined.", body["error"])
}

func TestCreateDonationSession(t *testing.T) {
	a := newTestApp(t, "sk_test")

	resp, body := a.do(t, jsonRequest(fiber.MethodPost, "/api/create-donation-session",
		`{"amount":25,"frequency":"monthly","success_url":"https://mealbox.test/ok","cancel_url":"https://mealbox.test/give"}`))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", body["url"])
	_, hasSession := body["sessionId"]
	assert.False(t, hasSession)
	require.Len(t, a.processor.requests, 1)
	assert.Equal(t, "true", a.processor.requests[0].Metadata["tax_deductible"])
}

func TestCreateGiftSession_Validation(t *testing.T) {
	a := newTestApp(t, "sk_test")

	resp, body := a.do(t, jsonRequest(fiber.MethodPost, "/api/gift-cards/checkout",
		`{"gift_card_id":"gift-50","purchaser_email":"not-an-email","recipient_email":"grace@example.com","success_url":"https://mealbox.test/ok","cancel_url":"https://mealbox.test/gift"}`))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "purchaser_email")

	resp, _ = a.do(t, jsonRequest(fiber.MethodPost, "/api/gift-cards/checkout",
		`{"gift_card_id":"gift-9999","purchaser_email":"ada@example.com","recipient_email":"grace@example.com","success_url":"https://mealbox.test/ok","cancel_url":"https://mealbox.test/gift"}`))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, a.processor.calls)
}

func TestZoneCheck(t *testing.T) {
	a := newTestApp(t, "")

	resp, body := a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/zones/check/94110", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	zone := body["data"].(map[string]interface{})
	assert.Equal(t, "sf-mission", zone["id"])
	assert.Equal(t, 10.0, zone["fee"])

	resp, _ = a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/zones/check/99999", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/zones/check/941", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeliveryWindows(t *testing.T) {
	a := newTestApp(t, "")

	// The fixed clock reads 13:30, so only windows starting after 13:00 remain today.
	resp, body := a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/delivery-windows?date=2025-01-08", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"], 2)

	resp, body = a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/delivery-windows?date=2025-01-09", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"], 4)

	resp, _ = a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/delivery-windows?date=tomorrow", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCatalogRoutes(t *testing.T) {
	a := newTestApp(t, "")

	resp, body := a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/plans/popular", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "balanced", body["data"].(map[string]interface{})["id"])

	resp, _ = a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/plans/unknown", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/gift-meal-plans/gift-balanced-12w", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 419.0, body["data"].(map[string]interface{})["price"])

	resp, body = a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/menu?date=2025-01-08", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "2025-01-06", body["data"].(map[string]interface{})["starts_on"])
}

func TestGiftCardQRCode(t *testing.T) {
	a := newTestApp(t, "")

	resp, err := a.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/gift-cards/MEAL-ABCD-2345/qr", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	resp, _ = a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/gift-cards/MEAL-NOPE-0000/qr", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func signWebhook(payload string, ts int64) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestStripeWebhook(t *testing.T) {
	a := newTestApp(t, "sk_test")
	payload := `{"id":"evt_1","object":"event","type":"invoice.paid","data":{"object":{}}}`

	req := httptest.NewRequest(fiber.MethodPost, "/api/payments/webhook", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", signWebhook(payload, time.Now().Unix()))
	resp, _ := a.do(t, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodPost, "/api/payments/webhook", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	resp, _ = a.do(t, req)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRoutes(t *testing.T) {
	a := newTestApp(t, "")

	resp, _ := a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/profile", nil))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(fiber.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", bearer(t, "customer"))
	resp, _ = a.do(t, req)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAddAddress_Undeliverable(t *testing.T) {
	a := newTestApp(t, "")

	req := jsonRequest(fiber.MethodPost, "/api/addresses",
		`{"street":"1 Main St","city":"Springfield","state":"IL","zip_code":"99999"}`)
	req.Header.Set("Authorization", bearer(t, ""))
	resp, body := a.do(t, req)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, service.ErrUndeliverable.Error(), body["error"])
}

func TestHealth(t *testing.T) {
	a := newTestApp(t, "")

	resp, body := a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/health", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}
