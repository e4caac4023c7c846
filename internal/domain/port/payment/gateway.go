package payment

import (
	errs "github.com/rotaryroots/hariyo-ban/internal/domain/error"
)

// FormRequest describes one payment to hand over to the gateway
type FormRequest struct {
	Amount     int64  // Total amount in whole NPR
	TrackingID string // Pending record identifier, echoed back as the order ID
	RoomScoped bool   // True when the payment finalizes a room contribution
}

// FormPost is the full-page form submission the presentation layer renders.
// The gateway owns everything after the browser posts it; control returns only
// via the configured callback URLs.
type FormPost struct {
	Action string            `json:"action"`
	Method string            `json:"method"`
	Fields map[string]string `json:"fields"`
}

// Callback holds the validated query parameters the gateway appends to the
// success callback URL
type Callback struct {
	OrderID string // Tracking ID of the pending record
	Amount  int64  // Gateway-reported amount in whole NPR
	RefID   string // Gateway reference ID
}

// Gateway abstracts the form-post payment provider
type Gateway interface {
	// BuildFormPost constructs the named form fields for one payment
	BuildFormPost(req FormRequest) FormPost

	// ParseSuccessCallback validates the raw success callback parameters.
	// Returns ErrInvalidCallback when any parameter is missing or malformed.
	ParseSuccessCallback(params map[string]string) (Callback, error)
}

// RequireParams is a helper for gateway implementations: it rejects empty
// values with a callback error naming the missing parameter.
func RequireParams(params map[string]string, keys ...string) error {
	for _, key := range keys {
		if params[key] == "" {
			return errs.NewCallbackError(params["oid"], params["amt"], params["refId"],
				"missing parameter "+key, errs.ErrInvalidCallback)
		}
	}
	return nil
}
