package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/campuseats/canteen/internal/adapter/storage"
	"github.com/campuseats/canteen/internal/core/domain"
	"github.com/campuseats/canteen/internal/core/service"
)

const (
	tickInterval = 300 * time.Millisecond
	readyDelay   = 200 * time.Millisecond
	quantity     = 2
	pickupSlot   = "1:00 PM"
)

// Walks one full student session against a throwaway token store, at a
// faster cadence than the product's 1.5s kitchen tick.
func main() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "campuseats-sim-")
	if err != nil {
		log.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	store := storage.NewFileAdapter(filepath.Join(dir, uuid.NewString()+".json"))
	catalog := storage.NewMemoryCatalog(domain.SeedMenu())
	tokens := service.NewTokenAllocator(store)

	wizard := service.NewOrderWizard(catalog, tokens, service.DefaultServiceFee)
	wizard.SetProgressTiming(tickInterval, readyDelay)

	items, err := wizard.Menu(ctx)
	if err != nil {
		log.Fatalf("failed to load menu: %v", err)
	}
	fmt.Println("Today's menu:")
	for _, it := range items {
		special := ""
		if it.Special {
			special = "  *special*"
		}
		fmt.Printf("  %s %-28s ₹%.0f%s\n", it.Glyph, it.Name, it.Price, special)
	}

	picked := items[0]
	if err := wizard.SelectItem(ctx, picked.ID); err != nil {
		log.Fatalf("select failed: %v", err)
	}
	for i := 1; i < quantity; i++ {
		wizard.IncrementQuantity()
	}
	fmt.Printf("\nOrdering %d x %s (subtotal ₹%.0f)\n", quantity, picked.Name, wizard.Subtotal())

	if err := wizard.ConfirmCustomization(); err != nil {
		log.Fatalf("customize failed: %v", err)
	}
	if err := wizard.SetPickupTime(pickupSlot); err != nil {
		log.Fatalf("pickup slot failed: %v", err)
	}
	if err := wizard.ConfirmSchedule(); err != nil {
		log.Fatalf("schedule failed: %v", err)
	}
	if err := wizard.SetPaymentMethod(domain.PaymentUPI); err != nil {
		log.Fatalf("payment failed: %v", err)
	}

	token, err := wizard.PlaceOrder(ctx)
	if err != nil {
		log.Fatalf("place order failed: %v", err)
	}
	fmt.Printf("Order %s placed, total ₹%.0f, pickup at %s\n\n", token, wizard.Total(), pickupSlot)

	done := wizard.TrackerDone()
	seen := map[string]bool{}
	for {
		st := wizard.Tracking()
		for _, c := range st.Checkpoints {
			if c.Completed && !seen[c.Name] {
				seen[c.Name] = true
				fmt.Printf("  [%3d%%] %s\n", st.Progress, c.Name)
			}
		}
		if st.Ready {
			break
		}
		select {
		case <-done:
		case <-time.After(tickInterval / 2):
		}
	}

	fmt.Printf("\n🔔 Order %s is ready! Please collect your food.\n", token)
}
