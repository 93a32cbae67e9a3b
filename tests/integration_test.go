package tests

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campuseats/canteen/internal/adapter/storage"
	"github.com/campuseats/canteen/internal/core/domain"
	"github.com/campuseats/canteen/internal/core/service"
)

var tokenPattern = regexp.MustCompile(`^#\d{3,}$`)

func TestIntegration_FullStudentFlow(t *testing.T) {
	ctx := context.Background()

	store := storage.NewFileAdapter(filepath.Join(t.TempDir(), "daily_tokens.json"))
	catalog := storage.NewMemoryCatalog(domain.SeedMenu())
	tokens := service.NewTokenAllocator(store)

	wizard := service.NewOrderWizard(catalog, tokens, service.DefaultServiceFee)
	wizard.SetProgressTiming(5*time.Millisecond, 5*time.Millisecond)

	// Dal Makhani Thali, priced 200.
	if err := wizard.SelectItem(ctx, "5"); err != nil {
		t.Fatalf("SelectItem failed: %v", err)
	}
	wizard.IncrementQuantity() // quantity 2

	if err := wizard.ConfirmCustomization(); err != nil {
		t.Fatalf("ConfirmCustomization failed: %v", err)
	}
	if err := wizard.SetPickupTime("1:30 PM"); err != nil {
		t.Fatalf("SetPickupTime failed: %v", err)
	}
	if err := wizard.ConfirmSchedule(); err != nil {
		t.Fatalf("ConfirmSchedule failed: %v", err)
	}
	if err := wizard.SetPaymentMethod(domain.PaymentCampusWallet); err != nil {
		t.Fatalf("SetPaymentMethod failed: %v", err)
	}

	token, err := wizard.PlaceOrder(ctx)
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	if got := wizard.Total(); got != 410 {
		t.Errorf("expected total 410 (200x2+10), got %v", got)
	}
	if !tokenPattern.MatchString(token) {
		t.Errorf("token %q does not match #NNN pattern", token)
	}

	select {
	case <-wizard.TrackerDone():
	case <-time.After(2 * time.Second):
		t.Fatal("progress run did not complete")
	}

	st := wizard.Tracking()
	if st.Progress != domain.ProgressMax {
		t.Errorf("expected progress 100, got %d", st.Progress)
	}
	if !st.Ready {
		t.Error("expected ready notification after completion")
	}
	for _, c := range st.Checkpoints {
		if !c.Completed {
			t.Errorf("checkpoint %q not completed", c.Name)
		}
	}
}

func TestIntegration_TokensSurviveRestartSameDay(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "daily_tokens.json")

	first, err := service.NewTokenAllocator(storage.NewFileAdapter(path)).NextToken(ctx)
	if err != nil {
		t.Fatalf("NextToken failed: %v", err)
	}
	if first != "#001" {
		t.Errorf("expected #001 on fresh store, got %s", first)
	}

	// Fresh allocator over the same file simulates a process restart.
	second, err := service.NewTokenAllocator(storage.NewFileAdapter(path)).NextToken(ctx)
	if err != nil {
		t.Fatalf("NextToken failed: %v", err)
	}
	if second != "#002" {
		t.Errorf("expected #002 after restart, got %s", second)
	}
}

func TestIntegration_AdminBoardLifecycle(t *testing.T) {
	board := service.NewAdminBoard(domain.SeedOrders(), domain.SeedCatalog())

	active := board.ActiveCount()

	// Walk a pending order all the way to completed.
	for _, expected := range []domain.OrderStatus{
		domain.OrderStatusPreparing,
		domain.OrderStatusReady,
		domain.OrderStatusCompleted,
	} {
		status, err := board.Advance("#AB124")
		if err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
		if status != expected {
			t.Errorf("expected %s, got %s", expected, status)
		}
	}

	if _, err := board.Advance("#AB124"); !errors.Is(err, service.ErrOrderCompleted) {
		t.Errorf("expected ErrOrderCompleted, got %v", err)
	}
	if got := board.ActiveCount(); got != active-1 {
		t.Errorf("expected active count %d, got %d", active-1, got)
	}

	entry, err := board.AddMenuEntry("Masala Dosa", "South Indian", 90)
	if err != nil {
		t.Fatalf("AddMenuEntry failed: %v", err)
	}
	if entry.Stock != domain.DefaultStock || entry.LowStock() {
		t.Errorf("unexpected defaults: stock=%d low=%v", entry.Stock, entry.LowStock())
	}
}

func TestIntegration_TokenAllocationOverRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer client.Close()

	// The allocator writes under its fixed key; clear it so the
	// sequence starts fresh.
	client.Del(ctx, "daily_tokens")
	defer client.Del(ctx, "daily_tokens")

	alloc := service.NewTokenAllocator(storage.NewRedisAdapter(client))
	for _, expected := range []string{"#001", "#002", "#003"} {
		token, err := alloc.NextToken(ctx)
		if err != nil {
			t.Fatalf("NextToken failed: %v", err)
		}
		if token != expected {
			t.Errorf("expected %s, got %s", expected, token)
		}
	}
}
