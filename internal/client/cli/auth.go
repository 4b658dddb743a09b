package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email, optional username, and password, and creates
// a new account. On success the returned token is stored by the auth service
// and the session becomes active immediately. The password bytes are wiped
// before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter username (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, email, username, password); err != nil {
		return err
	}

	a.userEmail = email
	fmt.Println("Account created, you are now logged in.")
	return nil
}

// Login prompts for credentials and authenticates against the server.
// The password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		return err
	}

	a.userEmail = email
	fmt.Println("Login successful.")
	return nil
}

// GoogleLogin exchanges a Google authorization code for a session token.
// The code is obtained by the user from the browser consent flow.
func (a *App) GoogleLogin(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Paste the Google authorization code", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.GoogleAuth(ctx, code); err != nil {
		return err
	}

	fmt.Println("Login successful.")
	return a.Me(ctx)
}

// Me prints the identity behind the current session.
func (a *App) Me(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	a.userEmail = user.Email
	if user.Username != nil {
		fmt.Printf("Logged in as %s (%s)\n", user.Email, *user.Username)
	} else {
		fmt.Printf("Logged in as %s\n", user.Email)
	}
	return nil
}

// Logout ends the session voluntarily and forgets the cached view state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.userEmail = ""
	a.lastResults = nil
	fmt.Println("Logged out.")
	return nil
}
