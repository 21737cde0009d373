// Package models defines the record shapes persisted by the profile store.
package models

// User is the stored profile record. The store is intentionally dumb: it
// persists whatever the client sends and enforces no field rules, matching
// the replace-the-whole-record write model.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Company     string `json:"company"`
	Dob         int64  `json:"dob"`
	Avatar      string `json:"avatar"`
}
