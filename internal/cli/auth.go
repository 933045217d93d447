package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email, password, and display name and creates a
// new account. The new account immediately becomes the active session.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := a.auth.Signup(ctx, email, password, name)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("That email is already registered.")
		return nil
	}

	fmt.Printf("Welcome, %s!\n", name)
	return nil
}

// Login prompts for credentials and tries to authenticate against the local
// user directory.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	ok, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if !ok {
		log.Printf("Login unsuccessful: no account for %s", email)
		return nil
	}

	fmt.Printf("Welcome back, %s!\n", a.auth.CurrentUser().Name)
	return nil
}

// Logout clears the current session. The account itself is kept.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}
