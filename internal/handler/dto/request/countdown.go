package request

import "time"

// ArmCountdownRequest is the slice of an order-create or order-fetch payload
// relevant to the payment countdown. Both fields are optional; the handler
// resolves the authoritative expiry against the upstream first.
type ArmCountdownRequest struct {
	ExpireSeconds *int64     `json:"expire_seconds,omitempty"`
	CreateTime    *time.Time `json:"create_time,omitempty"`
}
