package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/trananh2004/shopfront/internal/client/services"
	"github.com/trananh2004/shopfront/internal/common"
)

// getSimpleText, getTextDefault and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText  = GetSimpleText
	getTextDefault = GetTextDefault
	getPassword    = GetPassword
)

// Register walks the user through the new-account form and creates the
// record. Validation failures are printed per field; the user logs in
// separately afterwards.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Enter address (optional)", os.Stdout)
	if err != nil {
		return err
	}
	company, err := getSimpleText(a.reader, "Enter company (optional)", os.Stdout)
	if err != nil {
		return err
	}
	dobText, err := getSimpleText(a.reader, "Enter date of birth (DDMMYYYY, optional)", os.Stdout)
	if err != nil {
		return err
	}
	var dob int64
	if dobText != "" {
		dob, err = strconv.ParseInt(dobText, 10, 64)
		if err != nil {
			fmt.Println("Date of birth must be a number in DDMMYYYY form")
			return err
		}
	}

	req := services.RegisterRequest{
		Name:        name,
		Email:       email,
		Password:    string(password),
		PhoneNumber: phone,
		Address:     address,
		Company:     company,
		Dob:         dob,
	}

	if _, err := a.auth.Register(ctx, req); err != nil {
		var vErr *services.ValidationFailedError
		if errors.As(err, &vErr) {
			printFieldErrors(vErr.Errors)
			return err
		}
		fmt.Println("Registration failed:", err)
		return err
	}

	fmt.Println("Account created, you can log in now")
	return nil
}

// Login prompts for credentials and authenticates against the store. A
// single generic message covers both unknown email and wrong password.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidEmailPassword):
			fmt.Println("Invalid email or password")
		case errors.Is(err, common.ErrorUnavailable):
			fmt.Println("Store is unavailable, try again later")
		default:
			fmt.Println("Login failed:", err)
		}
		return err
	}

	fmt.Println("Login successful")
	return nil
}

// Logout destroys the local session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}
