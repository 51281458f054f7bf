// Package models defines the identity and domain records exchanged with the
// hospital-management backend.
package models

// Role is the closed set of account roles known to the backend.
type Role string

const (
	RolePatient       Role = "patient"
	RoleDoctor        Role = "doctor"
	RoleHospitalAdmin Role = "hospitalAdmin"
	RoleSystemAdmin   Role = "systemAdmin"
	RoleLab           Role = "lab"
	RolePharmacist    Role = "pharmacist"
)

// Roles lists every valid role.
var Roles = []Role{
	RolePatient,
	RoleDoctor,
	RoleHospitalAdmin,
	RoleSystemAdmin,
	RoleLab,
	RolePharmacist,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleHospitalAdmin, RoleSystemAdmin, RoleLab, RolePharmacist:
		return true
	}
	return false
}

// RequiresHospital reports whether accounts with this role are affiliated
// with a hospital. Such accounts carry a non-empty HospitalID; all others
// must not.
func (r Role) RequiresHospital() bool {
	switch r {
	case RoleDoctor, RoleHospitalAdmin, RoleLab, RolePharmacist:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
