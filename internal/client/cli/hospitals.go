package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) listHospitals(ctx context.Context) error {
	hospitals, err := a.remote.GetHospitals(ctx)
	if err != nil {
		return err
	}

	if len(hospitals) == 0 {
		fmt.Println("No hospitals")
		return nil
	}
	for _, h := range hospitals {
		fmt.Printf("#%d  %s", h.ID, h.Name)
		if h.Status != "" {
			fmt.Printf("  [%s]", h.Status)
		}
		if h.Address != "" {
			fmt.Printf("  %s", h.Address)
		}
		fmt.Println()
	}
	return nil
}

// approveHospital approves a pending hospital registration.
// Usage: approve <id>
func (a *App) approveHospital(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: approve <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid hospital id %q", args[0])
	}

	h, err := a.remote.ApproveHospital(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("Hospital #%d approved\n", h.ID)
	return nil
}

// rejectHospital rejects a pending hospital registration with a reason.
// Usage: reject <id> <reason...>
func (a *App) rejectHospital(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: reject <id> <reason>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid hospital id %q", args[0])
	}
	reason := strings.Join(args[1:], " ")

	h, err := a.remote.RejectHospital(ctx, id, reason)
	if err != nil {
		return err
	}
	fmt.Printf("Hospital #%d rejected: %s\n", h.ID, reason)
	return nil
}
