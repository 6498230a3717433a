package models

import (
	"encoding/json"
)

type UserProfile struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"-"`
	PasswordConfirm string `json:"-"`
}

type SessionIdentity struct {
	ExternalID string      `json:"uniqueid"`
	Profile    UserProfile `json:"user"`
	Cart       CartSummary `json:"cart"`
}

const (
	AnonymousName  = "anonymous"
	AnonymousEmail = "anonymous@gmail.com"
)

func AnonymousProfile() UserProfile {
	return UserProfile{
		Name:  AnonymousName,
		Email: AnonymousEmail,
	}
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password2,omitempty"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type UniqueID struct {
	UUID FlexibleID `json:"uuid"`
}

type Order struct {
	OrderID FlexibleID  `json:"orderid"`
	Cart    CartSummary `json:"cart"`
}

type UserHistory struct {
	ID      FlexibleID `json:"_id"`
	Name    string     `json:"name"`
	History []Order    `json:"history"`
}

type AccountView struct {
	LoggedIn bool         `json:"loggedIn"`
	Profile  UserProfile  `json:"user"`
	History  *UserHistory `json:"history,omitempty"`
}

// FlexibleID is an identifier the backend emits either as a JSON string or
// as a JSON number.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexibleID(n.String())
	return nil
}

func (id FlexibleID) String() string {
	return string(id)
}
