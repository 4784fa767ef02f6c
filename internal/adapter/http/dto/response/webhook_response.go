package response

// WebhookAckResponse tells the provider whether the delivery was applied,
// already seen, or ignored. Any 200 stops redelivery regardless of the body.
type WebhookAckResponse struct {
	Received           bool   `json:"received"`
	Applied            bool   `json:"applied"`
	Ignored            bool   `json:"ignored"`
	SignatureRequestID string `json:"signature_request_id,omitempty"`
}
