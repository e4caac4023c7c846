package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	paymentport "github.com/rotaryroots/hariyo-ban/internal/domain/port/payment"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/logger"
)

func testGateway() *EsewaGateway {
	return NewEsewaGateway(Config{
		Endpoint:     "https://uat.esewa.com.np/epay/main",
		MerchantCode: "EPAYTEST",
		SuccessURL:   "https://example.org/payments/esewa/success",
		FailureURL:   "https://example.org/payments/esewa/failure",
	}, logger.NewNoopLogger())
}

func TestEsewaBuildFormPost(t *testing.T) {
	gateway := testGateway()

	form := gateway.BuildFormPost(paymentport.FormRequest{
		Amount:     500,
		TrackingID: "donation-1",
	})

	assert.Equal(t, "https://uat.esewa.com.np/epay/main", form.Action)
	assert.Equal(t, "POST", form.Method)

	expected := map[string]string{
		"amt":   "500",
		"pdc":   "0",
		"psc":   "0",
		"txAmt": "0",
		"tAmt":  "500",
		"pid":   "donation-1",
		"scd":   "EPAYTEST",
		"su":    "https://example.org/payments/esewa/success",
		"fu":    "https://example.org/payments/esewa/failure",
	}
	assert.Equal(t, expected, form.Fields)
}

func TestEsewaBuildFormPostRoomScoped(t *testing.T) {
	gateway := testGateway()

	form := gateway.BuildFormPost(paymentport.FormRequest{
		Amount:     50,
		TrackingID: "contribution-1",
		RoomScoped: true,
	})

	assert.Equal(t, "https://example.org/payments/esewa/success?type=room", form.Fields["su"],
		"room contribution success URL carries the type marker")
	assert.Equal(t, "https://example.org/payments/esewa/failure", form.Fields["fu"])
	assert.Equal(t, "contribution-1", form.Fields["pid"])
}

func TestEsewaGatewayDefaults(t *testing.T) {
	gateway := NewEsewaGateway(Config{
		SuccessURL: "https://example.org/su",
		FailureURL: "https://example.org/fu",
	}, logger.NewNoopLogger())

	form := gateway.BuildFormPost(paymentport.FormRequest{Amount: 100, TrackingID: "x"})

	assert.Equal(t, DefaultEndpoint, form.Action)
	assert.Equal(t, DefaultMerchantCode, form.Fields["scd"])
}

func TestEsewaParseSuccessCallback(t *testing.T) {
	gateway := testGateway()

	t.Run("valid callback", func(t *testing.T) {
		cb, err := gateway.ParseSuccessCallback(map[string]string{
			"oid":   "donation-1",
			"amt":   "500",
			"refId": "0007XYZ",
		})

		require.NoError(t, err)
		assert.Equal(t, "donation-1", cb.OrderID)
		assert.Equal(t, int64(500), cb.Amount)
		assert.Equal(t, "0007XYZ", cb.RefID)
	})

	t.Run("missing parameters rejected", func(t *testing.T) {
		for _, key := range []string{"oid", "amt", "refId"} {
			params := map[string]string{"oid": "donation-1", "amt": "500", "refId": "0007XYZ"}
			delete(params, key)

			_, err := gateway.ParseSuccessCallback(params)
			assert.ErrorIs(t, err, errs.ErrInvalidCallback, "missing %s", key)
		}
	})

	t.Run("malformed amount rejected", func(t *testing.T) {
		for _, amt := range []string{"abc", "12.5", "-100", "0"} {
			_, err := gateway.ParseSuccessCallback(map[string]string{
				"oid":   "donation-1",
				"amt":   amt,
				"refId": "0007XYZ",
			})
			assert.ErrorIs(t, err, errs.ErrInvalidCallback, "amt=%s", amt)
		}
	})
}
