package models

import (
	"time"

	"github.com/trananh2004/shopfront/internal/datex"
)

// FormDraft is the uncommitted edit buffer for the profile form. It mirrors
// the editable fields of Profile and keeps the date of birth as a parsed
// time.Time, distinct from the persisted DDMMYYYY integer.
//
// A draft is created when edit mode is entered, thrown away on cancel, and
// merged onto the last-known full record on save.
type FormDraft struct {
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	Company     string
	Dob         *time.Time
}

// NewFormDraft builds a draft pre-filled from a profile record. An invalid
// stored dob encoding leaves the date empty rather than failing the edit.
func NewFormDraft(p *Profile) *FormDraft {
	d := &FormDraft{
		Name:        p.Name,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Address:     p.Address,
		Company:     p.Company,
	}
	if p.Dob != 0 {
		if t, err := datex.Date(p.Dob); err == nil {
			d.Dob = &t
		}
	}
	return d
}

// DobNumber returns the draft date in the persisted DDMMYYYY form, or 0
// when no date is set.
func (d *FormDraft) DobNumber() int64 {
	if d.Dob == nil {
		return 0
	}
	return datex.EncodeTime(*d.Dob)
}

// ApplyTo merges the draft onto a full profile record and returns the
// replacement body. Fields the form does not edit (id, password, avatar)
// are carried over from the base record untouched.
func (d *FormDraft) ApplyTo(base *Profile) *Profile {
	p := base.Clone()
	p.Name = d.Name
	p.Email = d.Email
	p.PhoneNumber = d.PhoneNumber
	p.Address = d.Address
	p.Company = d.Company
	p.Dob = d.DobNumber()
	return p
}
