package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) listMedicines(ctx context.Context) error {
	medicines, err := a.remote.GetMedicines(ctx)
	if err != nil {
		return err
	}

	if len(medicines) == 0 {
		fmt.Println("No medicines")
		return nil
	}
	for _, m := range medicines {
		availability := "out of stock"
		if m.IsAvailable {
			availability = "available"
		}
		fmt.Printf("#%d  %s  stock=%d  %s", m.ID, m.Name, m.Stock, availability)
		if m.Category != "" {
			fmt.Printf("  %s", m.Category)
		}
		fmt.Println()
	}
	return nil
}

// toggleMedicine flips a medicine's availability flag.
// Usage: toggle <id>
func (a *App) toggleMedicine(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: toggle <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid medicine id %q", args[0])
	}

	m, err := a.remote.ToggleMedicineAvailability(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("Medicine #%d availability set to %t\n", m.ID, m.IsAvailable)
	return nil
}

// exportPharmacyData asks the backend to export the pharmacy dataset.
func (a *App) exportPharmacyData(ctx context.Context) error {
	export, err := a.remote.ExportPharmacyData(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Export ready: %s\n", export.URL)
	return nil
}
