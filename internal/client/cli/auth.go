package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/avelev/schoolguard/internal/client/services"
)

// getSimpleText, getPassword and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getYesNo = GetYesNo

func (a *App) promptLoginForm() (services.LoginForm, error) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return services.LoginForm{}, err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return services.LoginForm{}, err
	}

	remember, err := getYesNo(a.reader, "Remember me", os.Stdout)
	if err != nil {
		return services.LoginForm{}, err
	}

	return services.LoginForm{Email: email, Password: string(password), Remember: remember}, nil
}

// reportAuthErr prints an authentication failure the way the user should
// see it: per-field messages for validation failures, the lockout message
// verbatim, otherwise the error text itself.
func reportAuthErr(err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		for _, f := range ve.Fields {
			fmt.Println(f.Message)
		}
		return
	}

	var le *services.LockoutError
	if errors.As(err, &le) {
		fmt.Println(le.Error())
		return
	}

	fmt.Println(err.Error())
}

// Login prompts the user for credentials and tries to authenticate
// against the regular endpoint. On success the gate flips to
// authenticated and subsequent protected commands become available.
func (a *App) Login(ctx context.Context) error {
	form, err := a.promptLoginForm()
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, form); err != nil {
		reportAuthErr(err)
		return err
	}

	log.Printf("Login successful")
	return nil
}

// AdminLogin is Login against the admin endpoint.
func (a *App) AdminLogin(ctx context.Context) error {
	form, err := a.promptLoginForm()
	if err != nil {
		return err
	}

	if err := a.auth.AdminLogin(ctx, form); err != nil {
		reportAuthErr(err)
		return err
	}

	log.Printf("Admin login successful")
	return nil
}

// Signup walks the user through account creation. Validation (including
// the password confirmation and terms agreement) runs locally before any
// network call.
func (a *App) Signup(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (visitor/volunteer/staff)", os.Stdout)
	if err != nil {
		return err
	}
	agree, err := getYesNo(a.reader, "Agree to the terms and conditions", os.Stdout)
	if err != nil {
		return err
	}
	remember, err := getYesNo(a.reader, "Remember me", os.Stdout)
	if err != nil {
		return err
	}

	form := services.SignupForm{
		FullName:        fullName,
		Email:           email,
		Phone:           phone,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		Role:            role,
		AgreeTerms:      agree,
		Remember:        remember,
	}

	if err := a.auth.Signup(ctx, form); err != nil {
		reportAuthErr(err)
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Logout clears the persisted session and returns to the anonymous state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	log.Printf("Logged out")
	return nil
}
