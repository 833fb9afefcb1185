package storage

import (
	"context"
	"testing"
	"time"

	"github.com/bookhaven/storefront/internal/db"
)

func openProfile(t *testing.T, id string) (*db.DB, *Profile) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database, NewProfile(database, id)
}

func TestStorageContract(t *testing.T) {
	_, profile := openProfile(t, "p1")

	backends := map[string]Storage{
		"memory":  NewMemory(),
		"profile": profile,
	}

	for name, s := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if _, ok, err := s.Get(ctx, KeyCart); err != nil || ok {
				t.Fatalf("Get on empty storage = (ok=%v, err=%v), want absent", ok, err)
			}

			if err := s.Set(ctx, KeyCart, "[]"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			v, ok, err := s.Get(ctx, KeyCart)
			if err != nil || !ok || v != "[]" {
				t.Fatalf("Get = (%q, %v, %v), want ([], true, nil)", v, ok, err)
			}

			// Last writer wins.
			if err := s.Set(ctx, KeyCart, `[{"sku":"a"}]`); err != nil {
				t.Fatalf("Set: %v", err)
			}
			v, _, _ = s.Get(ctx, KeyCart)
			if v != `[{"sku":"a"}]` {
				t.Errorf("after overwrite Get = %q", v)
			}

			if err := s.Remove(ctx, KeyCart); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if _, ok, _ := s.Get(ctx, KeyCart); ok {
				t.Error("expected slot to be absent after Remove")
			}

			// Removing an absent key is not an error.
			if err := s.Remove(ctx, KeyContact); err != nil {
				t.Errorf("Remove absent key: %v", err)
			}
		})
	}
}

func TestProfilesAreIsolated(t *testing.T) {
	database, alice := openProfile(t, "alice")
	bob := NewProfile(database, "bob")
	ctx := context.Background()

	if err := alice.Set(ctx, KeySubscribed, "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := bob.Get(ctx, KeySubscribed); ok {
		t.Error("bob must not see alice's slot")
	}
	if alice.ID() != "alice" {
		t.Errorf("ID() = %q", alice.ID())
	}
}

func TestPruneBefore(t *testing.T) {
	database, p := openProfile(t, "old")
	ctx := context.Background()

	if err := p.Set(ctx, KeyCart, "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := database.Exec(`UPDATE kv_slots SET updated_at = '2000-01-01 00:00:00'`); err != nil {
		t.Fatalf("backdating: %v", err)
	}
	fresh := NewProfile(database, "fresh")
	if err := fresh.Set(ctx, KeyCart, "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	n, err := PruneBefore(ctx, database, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("PruneBefore: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned %d rows, want 1", n)
	}
	if _, ok, _ := fresh.Get(ctx, KeyCart); !ok {
		t.Error("fresh profile slot should survive pruning")
	}
}

func TestPruneBeforeKeepsFormFlags(t *testing.T) {
	database, p := openProfile(t, "reader")
	ctx := context.Background()

	for _, key := range []string{KeySubscribed, KeyContact} {
		if err := p.Set(ctx, key, "true"); err != nil {
			t.Fatalf("Set %s: %v", key, err)
		}
	}
	if err := p.Set(ctx, KeySubscribedEmail, "reader@example.com"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := database.Exec(`UPDATE kv_slots SET updated_at = '2000-01-01 00:00:00'`); err != nil {
		t.Fatalf("backdating: %v", err)
	}
	if err := p.Set(ctx, KeyCart, `[{"sku":"a"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	n, err := PruneBefore(ctx, database, time.Now().Add(-90*24*time.Hour))
	if err != nil {
		t.Fatalf("PruneBefore: %v", err)
	}
	if n != 0 {
		t.Errorf("pruned %d rows of an active profile, want 0", n)
	}
	for _, key := range []string{KeySubscribed, KeySubscribedEmail, KeyContact, KeyCart} {
		if _, ok, _ := p.Get(ctx, key); !ok {
			t.Errorf("%s should survive pruning", key)
		}
	}

	// Once the whole profile goes stale only the cart is dropped.
	if _, err := database.Exec(`UPDATE kv_slots SET updated_at = '2000-01-01 00:00:00'`); err != nil {
		t.Fatalf("backdating: %v", err)
	}
	n, err = PruneBefore(ctx, database, time.Now().Add(-90*24*time.Hour))
	if err != nil {
		t.Fatalf("PruneBefore: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned %d rows, want 1", n)
	}
	if _, ok, _ := p.Get(ctx, KeyCart); ok {
		t.Error("stale cart should be pruned")
	}
	if v, _, _ := p.Get(ctx, KeySubscribed); v != "true" {
		t.Errorf("subscribed flag = %q after pruning, want true", v)
	}
}
