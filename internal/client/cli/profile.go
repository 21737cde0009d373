package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/trananh2004/shopfront/internal/client/models"
	"github.com/trananh2004/shopfront/internal/client/validation"
	"github.com/trananh2004/shopfront/internal/common"
	"github.com/trananh2004/shopfront/internal/datex"
)

const dobLayout = "02/01/2006"

// Profile fetches and prints the authenticated profile record.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotLoggedIn) {
			fmt.Println("Log in first")
		} else {
			fmt.Println("Could not load profile:", err)
		}
		return err
	}

	printProfile(p)
	return nil
}

// Edit runs the interactive edit flow: enter edit mode, prompt every form
// field with the current value as default, then either save or discard.
// Validation failures are printed per field and the draft is discarded so
// the next edit starts from the committed record.
func (a *App) Edit(ctx context.Context) error {
	if _, err := a.profiles.Load(ctx); err != nil {
		if errors.Is(err, common.ErrNotLoggedIn) {
			fmt.Println("Log in first")
		}
		return err
	}

	draft, err := a.profiles.BeginEdit()
	if err != nil {
		return err
	}

	if err := a.fillDraft(draft); err != nil {
		a.profiles.Cancel()
		return err
	}

	confirm, err := getSimpleText(a.reader, "Save changes? (y/n)", os.Stdout)
	if err != nil {
		a.profiles.Cancel()
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		if err := a.profiles.Cancel(); err != nil {
			return err
		}
		fmt.Println("Changes discarded")
		return nil
	}

	fieldErrs, err := a.profiles.Save(ctx)
	if err != nil {
		fmt.Println("Save failed:", err)
		return err
	}
	if !fieldErrs.Empty() {
		printFieldErrors(fieldErrs)
		a.profiles.Cancel()
		return nil
	}

	fmt.Println("Profile saved")
	return nil
}

// fillDraft prompts for each editable field in place. Pressing Enter keeps
// the current value.
func (a *App) fillDraft(d *models.FormDraft) error {
	var err error
	if d.Name, err = getTextDefault(a.reader, "Name", d.Name, os.Stdout); err != nil {
		return err
	}
	if d.Email, err = getTextDefault(a.reader, "Email", d.Email, os.Stdout); err != nil {
		return err
	}
	if d.PhoneNumber, err = getTextDefault(a.reader, "Phone number", d.PhoneNumber, os.Stdout); err != nil {
		return err
	}
	if d.Address, err = getTextDefault(a.reader, "Address", d.Address, os.Stdout); err != nil {
		return err
	}
	if d.Company, err = getTextDefault(a.reader, "Company", d.Company, os.Stdout); err != nil {
		return err
	}

	current := ""
	if d.Dob != nil {
		current = d.Dob.Format(dobLayout)
	}
	dobText, err := getTextDefault(a.reader, "Date of birth (DD/MM/YYYY)", current, os.Stdout)
	if err != nil {
		return err
	}
	if dobText == "" {
		d.Dob = nil
		return nil
	}
	t, err := time.ParseInLocation(dobLayout, dobText, time.Local)
	if err != nil {
		fmt.Println("Date must be in DD/MM/YYYY form")
		return err
	}
	d.Dob = &t
	return nil
}

func printProfile(p *models.Profile) {
	fmt.Println("Name:        ", p.Name)
	fmt.Println("Email:       ", p.Email)
	fmt.Println("Phone number:", p.PhoneNumber)
	fmt.Println("Address:     ", p.Address)
	fmt.Println("Company:     ", p.Company)
	if p.Dob != 0 {
		if t, err := datex.Date(p.Dob); err == nil {
			fmt.Println("Born:        ", t.Format(dobLayout))
		}
	}
	if p.Avatar != "" {
		fmt.Printf("Avatar:       %d bytes (data URL)\n", len(p.Avatar))
	}
}

func printFieldErrors(errs validation.Errors) {
	fmt.Println("Please fix the following fields:")
	for field, msg := range errs {
		fmt.Printf("  %s: %s\n", field, msg)
	}
}
