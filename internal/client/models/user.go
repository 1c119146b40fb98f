package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// UID is the server-side internal user identifier. The API sends it either
// as a JSON string (UUID) or as a number, so both are accepted.
type UID string

func (u *UID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*u = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*u = UID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("uid: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("uid: %w", err)
	}
	*u = UID(n.String())
	return nil
}

func (u UID) String() string { return string(u) }

// User is the record returned by GET /api/user/{id}.
type User struct {
	UID         UID    `json:"uid"`
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Nickname    string `json:"nickname,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Credentials is the body of POST /api/user/login.
type Credentials struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// Registration is the body of POST /api/user/register.
type Registration struct {
	ID          string `json:"id"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Nickname    string `json:"nickname,omitempty"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}
