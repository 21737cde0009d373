// Package models defines the client-side shapes of the remote user records
// and the transient edit buffers built on top of them.
package models

// Profile mirrors a user record as stored by the remote profile store.
// The store replaces records wholesale on PUT, so the client always works
// with the complete record, never a partial one.
//
// Dob is encoded as a DDMMYYYY decimal integer (see internal/datex).
// Avatar holds a base64 data URL produced by the compression pipeline.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
	Company     string `json:"company,omitempty"`
	Dob         int64  `json:"dob,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// Clone returns a copy of the profile. Useful before building a replacement
// body so the cached record is never mutated by a failed save.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
