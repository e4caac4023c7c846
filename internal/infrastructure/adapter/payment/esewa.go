// Package payment implements the eSewa form-post gateway adapter.
package payment

import (
	"net/url"
	"strconv"

	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/payment"
)

// eSewa ePay endpoint defaults (UAT)
const (
	DefaultEndpoint     = "https://uat.esewa.com.np/epay/main"
	DefaultMerchantCode = "EPAYTEST"
)

// Config holds the merchant-specific gateway settings
type Config struct {
	Endpoint     string // Form action URL
	MerchantCode string // scd field
	SuccessURL   string // su field, receives oid/amt/refId on success
	FailureURL   string // fu field
}

// EsewaGateway builds eSewa ePay form posts and validates success callbacks
type EsewaGateway struct {
	config Config
	logger coreport.Logger
}

// NewEsewaGateway creates an eSewa gateway adapter
func NewEsewaGateway(config Config, logger coreport.Logger) *EsewaGateway {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	if config.MerchantCode == "" {
		config.MerchantCode = DefaultMerchantCode
	}
	return &EsewaGateway{
		config: config,
		logger: logger,
	}
}

// BuildFormPost constructs the ePay form fields for one payment. eSewa sums
// amt, txAmt, psc and pdc into the verified total; service charges and
// delivery charges are always zero here, so tAmt equals amt.
func (g *EsewaGateway) BuildFormPost(req payment.FormRequest) payment.FormPost {
	amount := strconv.FormatInt(req.Amount, 10)

	// Room contribution callbacks carry a type marker so the success URL
	// identifies the record kind before the order ID is looked up.
	successURL := g.config.SuccessURL
	if req.RoomScoped {
		successURL = appendQueryParam(successURL, "type", "room")
	}

	fields := map[string]string{
		"amt":   amount,
		"pdc":   "0",
		"psc":   "0",
		"txAmt": "0",
		"tAmt":  amount,
		"pid":   req.TrackingID,
		"scd":   g.config.MerchantCode,
		"su":    successURL,
		"fu":    g.config.FailureURL,
	}

	g.logger.Debug("Built eSewa form post", map[string]any{
		"pid":         req.TrackingID,
		"amount":      req.Amount,
		"room_scoped": req.RoomScoped,
	})

	return payment.FormPost{
		Action: g.config.Endpoint,
		Method: "POST",
		Fields: fields,
	}
}

// appendQueryParam adds one query parameter to a URL, preserving any
// parameters already present
func appendQueryParam(rawURL, key, value string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}

// ParseSuccessCallback validates the oid/amt/refId query parameters eSewa
// appends to the success URL
func (g *EsewaGateway) ParseSuccessCallback(params map[string]string) (payment.Callback, error) {
	if err := payment.RequireParams(params, "oid", "amt", "refId"); err != nil {
		g.logger.Warn("Rejected eSewa success callback", map[string]any{
			"oid":   params["oid"],
			"error": err.Error(),
		})
		return payment.Callback{}, err
	}

	amount, err := strconv.ParseInt(params["amt"], 10, 64)
	if err != nil || amount <= 0 {
		g.logger.Warn("Rejected eSewa success callback", map[string]any{
			"oid":    params["oid"],
			"amt":    params["amt"],
			"reason": "malformed amount",
		})
		return payment.Callback{}, errs.NewCallbackError(params["oid"], params["amt"], params["refId"],
			"malformed amount", errs.ErrInvalidCallback)
	}

	return payment.Callback{
		OrderID: params["oid"],
		Amount:  amount,
		RefID:   params["refId"],
	}, nil
}
