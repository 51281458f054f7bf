package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/models"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and a role and authenticates. On success
// the app navigates to the role's dashboard path.
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

	roleText, err := getSimpleText(a.reader, fmt.Sprintf("Enter role %v", models.Roles), os.Stdout)
	if err != nil {
		return err
	}

	user, redirect, err := a.session.Login(ctx, email, string(password), models.Role(roleText))
	if err != nil {
		return err
	}

	fmt.Printf("Welcome, %s (%s)\n", user.Name, user.Role)
	a.navigate(ctx, redirect)
	return nil
}

// Register prompts for the account fields and creates a new account. As
// with Login, the app navigates to the new role's dashboard on success.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	roleText, err := getSimpleText(a.reader, fmt.Sprintf("Enter role %v", models.Roles), os.Stdout)
	if err != nil {
		return err
	}

	req := &models.RegisterRequest{
		Email:    email,
		Password: string(password),
		Name:     name,
		Role:     models.Role(roleText),
	}
	if req.Role.RequiresHospital() {
		hospitalID, err := getSimpleText(a.reader, "Enter hospital id", os.Stdout)
		if err != nil {
			return err
		}
		req.HospitalID = hospitalID
	}

	user, redirect, err := a.session.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("Account created for %s (%s)\n", user.Email, user.Role)
	a.navigate(ctx, redirect)
	return nil
}

// Logout clears the session and returns to the landing path.
func (a *App) Logout(ctx context.Context) error {
	path, err := a.session.Logout(ctx)
	a.navigate(ctx, path)
	return err
}

// Whoami fetches the backend's view of the current identity.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.remote.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> role=%s", user.Name, user.Email, user.Role)
	if user.HospitalID != "" {
		fmt.Printf(" hospital=%s", user.HospitalID)
	}
	fmt.Println()
	return nil
}

// ChangePassword rotates the account credential.
func (a *App) ChangePassword(ctx context.Context) error {
	fmt.Println("Current password")
	current, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	fmt.Println("New password")
	next, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	if err := a.remote.ChangePassword(ctx, string(current), string(next)); err != nil {
		return err
	}
	fmt.Println("Password changed")
	return nil
}
