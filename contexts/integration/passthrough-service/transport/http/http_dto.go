package httptransport

import "encoding/json"

type ForwardRequest struct {
	Endpoint string          `json:"endpoint"`
	Method   string          `json:"method"`
	Payload  json.RawMessage `json:"payload"`
}
