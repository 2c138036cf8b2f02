package repositories

import (
	"testing"

	"villagestay/internal/store"
)

func TestFavoritesAddIdempotent(t *testing.T) {
	favs := FavoritesSet{Store: store.NewMemory()}

	if err := favs.Add("guest-1", "3"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := favs.Add("guest-1", "3"); err != nil {
		t.Fatalf("second add: %v", err)
	}

	list, err := favs.List("guest-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0] != "3" {
		t.Fatalf("list = %v, want [3]", list)
	}
}

func TestFavoritesRemoveAfterAddEmpties(t *testing.T) {
	favs := FavoritesSet{Store: store.NewMemory()}

	if err := favs.Add("guest-1", "5"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := favs.Remove("guest-1", "5"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	list, err := favs.List("guest-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("list = %v, want empty", list)
	}

	// removing an absent id stays a no-op
	if err := favs.Remove("guest-1", "5"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
}

func TestFavoritesContains(t *testing.T) {
	favs := FavoritesSet{Store: store.NewMemory()}
	_ = favs.Add("guest-1", "2")

	ok, err := favs.Contains("guest-1", "2")
	if err != nil || !ok {
		t.Fatalf("contains 2: ok=%v err=%v", ok, err)
	}
	ok, err = favs.Contains("guest-1", "9")
	if err != nil || ok {
		t.Fatalf("contains 9: ok=%v err=%v", ok, err)
	}
}

func TestFavoritesIsolatedPerOwner(t *testing.T) {
	favs := FavoritesSet{Store: store.NewMemory()}
	_ = favs.Add("guest-1", "1")

	list, err := favs.List("guest-2")
	if err != nil {
		t.Fatalf("list other owner: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("guest-2 list = %v, want empty", list)
	}
}
