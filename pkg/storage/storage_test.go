package storage

import (
	"context"
	"testing"
)

type lineItemSnapshot struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

func TestLoadJSONMissingKeyReturnsFallback(t *testing.T) {
	store := NewMemory()

	got, err := LoadJSON(context.Background(), store, KeyCartItems, []lineItemSnapshot{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty fallback, got %v", got)
	}
}

func TestLoadJSONCorruptPayloadReturnsFallback(t *testing.T) {
	store := NewMemory()
	if err := store.Save(context.Background(), KeyCartItems, []byte("{not json")); err != nil {
		t.Fatalf("save: %v", err)
	}

	fallback := []lineItemSnapshot{{ProductID: 9, Name: "default", Quantity: 1}}
	got, err := LoadJSON(context.Background(), store, KeyCartItems, fallback)
	if err != nil {
		t.Fatalf("corrupt payload should not error: %v", err)
	}
	if len(got) != 1 || got[0].ProductID != 9 {
		t.Fatalf("expected fallback snapshot, got %v", got)
	}
}

func TestSaveJSONRoundTrip(t *testing.T) {
	store := NewMemory()
	items := []lineItemSnapshot{
		{ProductID: 1, Name: "Keyboard", Quantity: 2},
		{ProductID: 2, Name: "Mouse", Quantity: 1},
	}

	if err := SaveJSON(context.Background(), store, KeyCartItems, items); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadJSON(context.Background(), store, KeyCartItems, []lineItemSnapshot(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Keyboard" || got[1].Quantity != 1 {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestMemoryIsolatesReturnedSlices(t *testing.T) {
	store := NewMemory()
	original := []byte(`{"a":1}`)
	if err := store.Save(context.Background(), "key", original); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(context.Background(), "key")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	loaded[0] = 'X'

	again, err := store.Load(context.Background(), "key")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again[0] != '{' {
		t.Fatal("mutating a loaded slice corrupted the stored value")
	}
}
