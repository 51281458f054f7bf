package models

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// DefaultHospitalID is assigned to hospital-affiliated accounts until the
// backend returns a real affiliation.
const DefaultHospitalID = "1"

// defaultUserID is used when the backend response carries no identity.
const defaultUserID = "1"

// User is the identity record held by the session for its lifetime.
//
// Invariant: HospitalID is non-empty iff Role.RequiresHospital().
type User struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Role       Role    `json:"role"`
	HospitalID string  `json:"hospitalId,omitempty"`
	Profile    Profile `json:"profile,omitempty"`
}

// NewUser builds a User for the given credentials, deriving the display name
// from the email local part and applying the hospital-affiliation invariant.
func NewUser(email string, role Role) *User {
	u := &User{
		ID:    defaultUserID,
		Email: email,
		Name:  displayName(email),
		Role:  role,
	}
	if role.RequiresHospital() {
		u.HospitalID = DefaultHospitalID
	}
	return u
}

func displayName(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}

// Validate checks the closed role set and the hospital-affiliation invariant.
func (u *User) Validate() error {
	if !u.Role.Valid() {
		return fmt.Errorf("unknown role %q", u.Role)
	}
	if u.Role.RequiresHospital() && u.HospitalID == "" {
		return fmt.Errorf("role %s requires a hospital affiliation", u.Role)
	}
	if !u.Role.RequiresHospital() && u.HospitalID != "" {
		return fmt.Errorf("role %s must not carry a hospital affiliation", u.Role)
	}
	return nil
}

// UnmarshalJSON decodes the user, dispatching the profile payload to the
// concrete type selected by the role.
func (u *User) UnmarshalJSON(data []byte) error {
	type Alias User
	aux := struct {
		*Alias
		Profile json.RawMessage `json:"profile,omitempty"`
	}{Alias: (*Alias)(u)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	u.Profile = nil
	if len(aux.Profile) == 0 || string(aux.Profile) == "null" {
		return nil
	}

	p, err := unmarshalProfile(u.Role, aux.Profile)
	if err != nil {
		return err
	}
	u.Profile = p
	return nil
}
