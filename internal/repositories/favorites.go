package repositories

import (
	"encoding/json"
	"strings"

	"villagestay/internal/domain"
	"villagestay/internal/store"
)

// FavoritesSet stores each owner's favorited homestay ids. Add and
// Remove are idempotent; ordering is not guaranteed.
type FavoritesSet struct {
	Store store.KV
}

func (r FavoritesSet) key(ownerKey string) string {
	return "villagestay:favorites:" + ownerKey
}

func (r FavoritesSet) List(ownerKey string) ([]string, error) {
	if strings.TrimSpace(ownerKey) == "" {
		return nil, domain.ValidationError{Field: "owner_key", Msg: "required"}
	}
	raw, ok, err := r.Store.Get(r.key(ownerKey))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	if !ok {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, domain.InternalError{Msg: "corrupt favorites", Err: err}
	}
	return out, nil
}

func (r FavoritesSet) Contains(ownerKey, homestayID string) (bool, error) {
	list, err := r.List(ownerKey)
	if err != nil {
		return false, err
	}
	for _, id := range list {
		if id == homestayID {
			return true, nil
		}
	}
	return false, nil
}

func (r FavoritesSet) Add(ownerKey, homestayID string) error {
	if strings.TrimSpace(homestayID) == "" {
		return domain.ValidationError{Field: "homestay_id", Msg: "required"}
	}
	list, err := r.List(ownerKey)
	if err != nil {
		return err
	}
	for _, id := range list {
		if id == homestayID {
			return nil
		}
	}
	return r.save(ownerKey, append(list, homestayID))
}

func (r FavoritesSet) Remove(ownerKey, homestayID string) error {
	list, err := r.List(ownerKey)
	if err != nil {
		return err
	}
	out := list[:0]
	for _, id := range list {
		if id != homestayID {
			out = append(out, id)
		}
	}
	if len(out) == len(list) {
		return nil
	}
	return r.save(ownerKey, out)
}

func (r FavoritesSet) save(ownerKey string, list []string) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if err := r.Store.Set(r.key(ownerKey), string(raw)); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
