package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/trananh2004/shopfront/internal/common"
)

// Client-side password form rules, checked before the service is called.
var (
	errOldPasswordRequired  = errors.New("current password must not be empty")
	errNewPasswordTooShort  = errors.New("new password must be at least 6 characters")
	errNewPasswordSameAsOld = errors.New("new password must differ from the current one")
	errConfirmMismatch      = errors.New("password confirmation does not match")
)

// checkPasswordForm applies the form rules in order and returns the first
// violation.
func checkPasswordForm(oldPw, newPw, confirm []byte) error {
	if len(oldPw) == 0 {
		return errOldPasswordRequired
	}
	if len(newPw) < 6 {
		return errNewPasswordTooShort
	}
	if bytes.Equal(newPw, oldPw) {
		return errNewPasswordSameAsOld
	}
	if !bytes.Equal(newPw, confirm) {
		return errConfirmMismatch
	}
	return nil
}

// Password runs the change-password flow: prompt for the current password,
// the new one and its confirmation, apply the form rules, then delegate the
// actual verification and write to the profile service.
func (a *App) Password(ctx context.Context) error {
	oldPw, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPw)

	newPw, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPw)

	confirm, err := getPassword(os.Stdout, "Confirm new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := checkPasswordForm(oldPw, newPw, confirm); err != nil {
		fmt.Println(err)
		return err
	}

	if err := a.profiles.ChangePassword(ctx, string(oldPw), string(newPw)); err != nil {
		switch {
		case errors.Is(err, common.ErrOldPasswordIncorrect):
			fmt.Println("Current password is incorrect")
		case errors.Is(err, common.ErrNotLoggedIn):
			fmt.Println("Log in first")
		default:
			fmt.Println("Password change failed:", err)
		}
		return err
	}

	fmt.Println("Password changed")
	return nil
}
