package models

import "encoding/json"

// Account is one entry of GET /api/account/my/{uid}. The client only cares
// whether any exist; the fields are carried through for display.
type Account struct {
	AID       string      `json:"aid"`
	UID       UID         `json:"uid"`
	AccNumber string      `json:"accNumber"`
	Balance   json.Number `json:"balance,omitempty"`
}
