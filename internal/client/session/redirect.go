package session

import "github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/models"

// LandingPath is where the caller should navigate after logout.
const LandingPath = "/"

// redirectPaths maps each role to its dashboard. Login and register share
// this single mapping.
var redirectPaths = map[models.Role]string{
	models.RolePatient:       "/patient/dashboard",
	models.RoleDoctor:        "/doctor/dashboard",
	models.RoleHospitalAdmin: "/hospital-admin/dashboard",
	models.RoleSystemAdmin:   "/system-admin/dashboard",
	models.RoleLab:           "/lab/dashboard",
	models.RolePharmacist:    "/pharmacist/dashboard",
}

// RedirectPath returns the dashboard path for role, or LandingPath for an
// unknown role.
func RedirectPath(role models.Role) string {
	if p, ok := redirectPaths[role]; ok {
		return p
	}
	return LandingPath
}
