package hrevent

import "encoding/json"

// HrEventRequest adalah shape inbound dari sistem HR. Semua field string
// dinormalisasi di service; field opsional yang kosong ikut meng-overwrite
// nilai lama (full overwrite, bukan partial patch).
type HrEventRequest struct {
	EventType  string `json:"event_type"`
	EmployeeID string `json:"employee_id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Role       string `json:"role"`
	Manager    string `json:"manager"`
}

type ProcessEventResponse struct {
	Status     string `json:"status"`
	EmployeeID string `json:"employee_id"`
	EventType  string `json:"event_type"`
}

type HrEventResponse struct {
	ID          int64           `json:"id"`
	Ts          string          `json:"ts"`
	EventType   string          `json:"event_type"`
	EmployeeID  string          `json:"employee_id"`
	PayloadJSON json.RawMessage `json:"payload_json"`
}
