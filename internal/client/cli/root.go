package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/models"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/session"
)

// sharedCommands are available to every authenticated user.
var sharedCommands = []string{"whoami", "passwd", "logout"}

// roleCommands mirrors the role dashboards: each role only sees the
// operations its dashboard exposes.
var roleCommands = map[models.Role][]string{
	models.RolePatient:       {"appointments", "reschedule"},
	models.RoleDoctor:        {"appointments", "consult"},
	models.RoleHospitalAdmin: {"appointments"},
	models.RoleSystemAdmin:   {"hospitals", "approve", "reject"},
	models.RoleLab:           {"tests", "teststatus", "report"},
	models.RolePharmacist:    {"medicines", "toggle", "export"},
}

func (a *App) getStatus() string {
	s := ""
	if snap := a.session.Snapshot(); snap.User != nil {
		s = snap.User.Email + " " + string(snap.User.Role)
	}
	if a.Mode != "" {
		if s != "" {
			s += " "
		}
		s += string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) allowed(cmd string) bool {
	snap := a.session.Snapshot()
	if snap.User == nil {
		return false
	}
	for _, c := range sharedCommands {
		if c == cmd {
			return true
		}
	}
	for _, c := range roleCommands[snap.User.Role] {
		if c == cmd {
			return true
		}
	}
	return false
}

func (a *App) help() {
	if !a.isLoggedIn() {
		fmt.Println("Available commands: login, register, help, exit")
		return
	}
	role := a.session.Snapshot().User.Role
	cmds := append(append([]string{}, roleCommands[role]...), sharedCommands...)
	fmt.Printf("Available commands: %s, help, exit\n", strings.Join(cmds, ", "))
}

// Root runs the REPL until exit or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the hospital management CLI (type 'help' for commands)")

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	for {
		fmt.Printf("hms %s %s> ", a.getStatus(), a.currentPath)

		line, err := a.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Printf("error: %v\n", err)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" {
			return
		}
		a.dispatch(ctx, cmd, args)
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	var err error

	switch cmd {
	case "help":
		a.help()
		return

	case "login":
		if a.isLoggedIn() {
			fmt.Println("Already logged in; logout first")
			return
		}
		err = a.Login(ctx)

	case "register":
		if a.isLoggedIn() {
			fmt.Println("Already logged in; logout first")
			return
		}
		err = a.Register(ctx)

	default:
		if !a.isLoggedIn() {
			fmt.Println("Please login first (type 'help' for commands)")
			return
		}
		if !a.allowed(cmd) {
			fmt.Printf("Unknown or unavailable command %q (type 'help')\n", cmd)
			return
		}
		err = a.run(ctx, cmd, args)
	}

	if err != nil {
		if errors.Is(err, session.ErrAuthentication) {
			fmt.Printf("Authentication failed: %v\n", err)
			return
		}
		fmt.Printf("error: %v\n", err)
	}
}

// run executes an authenticated command. Callers have already checked
// role permissions.
func (a *App) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "whoami":
		return a.Whoami(ctx)
	case "passwd":
		return a.ChangePassword(ctx)
	case "logout":
		return a.Logout(ctx)
	case "appointments":
		return a.listAppointments(ctx)
	case "reschedule":
		return a.rescheduleAppointment(ctx, args)
	case "consult":
		return a.startConsultation(ctx, args)
	case "tests":
		return a.listLabTests(ctx)
	case "teststatus":
		return a.updateTestStatus(ctx, args)
	case "report":
		return a.generateTestReport(ctx, args)
	case "hospitals":
		return a.listHospitals(ctx)
	case "approve":
		return a.approveHospital(ctx, args)
	case "reject":
		return a.rejectHospital(ctx, args)
	case "medicines":
		return a.listMedicines(ctx)
	case "toggle":
		return a.toggleMedicine(ctx, args)
	case "export":
		return a.exportPharmacyData(ctx)
	}
	return fmt.Errorf("unknown command %q", cmd)
}
