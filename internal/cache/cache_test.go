package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	k1 := Key("spacy", "hello")
	k2 := Key("spacy", "hello")
	if k1 != k2 {
		t.Errorf("key is not deterministic: %q vs %q", k1, k2)
	}

	if Key("spacy", "hello") == Key("openai", "hello") {
		t.Error("keys for different providers must differ")
	}
	if Key("spacy", "hello") == Key("spacy", "world") {
		t.Error("keys for different texts must differ")
	}

	// Provider/text boundary must be unambiguous
	if Key("ab", "c") == Key("a", "bc") {
		t.Error("provider and text must not collide across the separator")
	}

	if !strings.HasPrefix(k1, "inklet:v1:") {
		t.Errorf("key missing version prefix: %q", k1)
	}
}

func TestMemory(t *testing.T) {
	store := NewMemory(time.Hour)

	if _, found := store.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := store.Set("k", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := store.Get("k")
	if !found || string(got) != "value" {
		t.Errorf("Get = (%q, %v), want (value, true)", got, found)
	}

	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := store.Get("k"); found {
		t.Error("expected miss after delete")
	}

	_ = store.Set("a", []byte("1"), time.Hour)
	_ = store.Set("b", []byte("2"), time.Hour)
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := store.Get("a"); found {
		t.Error("expected miss after clear")
	}
}

func TestDisk(t *testing.T) {
	dir := t.TempDir()
	store := NewDisk(dir, time.Hour)

	if _, found := store.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := store.Set("k", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := store.Get("k")
	if !found || string(got) != "value" {
		t.Errorf("Get = (%q, %v), want (value, true)", got, found)
	}

	// A second store over the same directory sees the entry
	reopened := NewDisk(dir, time.Hour)
	got, found = reopened.Get("k")
	if !found || string(got) != "value" {
		t.Errorf("reopened Get = (%q, %v), want (value, true)", got, found)
	}

	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := store.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestDisk_Expiry(t *testing.T) {
	store := NewDisk(t.TempDir(), time.Hour)

	if err := store.Set("k", []byte("value"), -time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := store.Get("k"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayered_Promotion(t *testing.T) {
	dir := t.TempDir()

	// Seed the disk layer only
	disk := NewDisk(dir, time.Hour)
	if err := disk.Set("k", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	layered := NewLayered(time.Hour, dir, time.Hour)

	got, found := layered.Get("k")
	if !found || string(got) != "value" {
		t.Fatalf("Get = (%q, %v), want (value, true)", got, found)
	}

	// After promotion the entry survives removal of the disk copy
	if err := disk.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, found = layered.Get("k")
	if !found || string(got) != "value" {
		t.Errorf("promoted Get = (%q, %v), want (value, true)", got, found)
	}
}

func TestLayered_SetWritesBothLayers(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayered(time.Hour, dir, time.Hour)

	if err := layered.Set("k", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	disk := NewDisk(dir, time.Hour)
	got, found := disk.Get("k")
	if !found || string(got) != "value" {
		t.Errorf("disk layer Get = (%q, %v), want (value, true)", got, found)
	}

	if err := layered.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := layered.Get("k"); found {
		t.Error("expected miss after delete")
	}
}
