package repository

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/Ihsas01/SR-SHOPPING/internal/domain"
	"github.com/Ihsas01/SR-SHOPPING/internal/state"
	"github.com/rs/zerolog/log"
)

const (
	KeyProducts   = "sr-shopping-products"
	KeyAdmins     = "sr-shopping-admins"
	KeySession    = "sr-shopping-session"
	KeyCategories = "sr-shopping-categories"
	KeyDiscounts  = "sr-shopping-discounts"
)

// SliceKeys maps each persisted state slice to its storage key.
var SliceKeys = map[state.Slice]string{
	state.SliceProducts:   KeyProducts,
	state.SliceCategories: KeyCategories,
	state.SliceDiscounts:  KeyDiscounts,
	state.SliceAdmins:     KeyAdmins,
	state.SliceSession:    KeySession,
}

var jsonNull = []byte("null")

// Load reads key and decodes it into a T. The fallback is returned when the
// store fails, the key is missing, the value is empty or null, or it does not
// decode.
func Load[T any](ctx context.Context, kv KeyValueStore, key string, fallback T) T {
	value, _ := load(ctx, kv, key, fallback)
	return value
}

// load is Load that also reports whether the stored value was used.
func load[T any](ctx context.Context, kv KeyValueStore, key string, fallback T) (T, bool) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "Load").Str("key", key).Msg("store unavailable, using fallback")
		return fallback, false
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return fallback, false
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "Load").Str("key", key).Msg("corrupt value, using fallback")
		return fallback, false
	}

	return value, true
}

// Save writes value as one JSON snapshot. Failures are logged and dropped.
func Save(ctx context.Context, kv KeyValueStore, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "Save").Str("key", key).Msg("")
		return
	}

	if err := kv.Set(ctx, key, raw); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "Save").Str("key", key).Msg("write dropped")
	}
}

type StateRepositoryImpl struct {
	kv KeyValueStore
}

func CreateNewStateRepository(kv KeyValueStore) StateRepository {
	return &StateRepositoryImpl{kv: kv}
}

// LoadState restores every slice. A slice that falls back to seed data, and
// an empty admin list, is written back so the store holds a full state after
// the first start.
func (r *StateRepositoryImpl) LoadState(ctx context.Context) state.State {
	st := state.Defaults()

	var ok bool
	if st.Products, ok = load(ctx, r.kv, KeyProducts, st.Products); !ok {
		Save(ctx, r.kv, KeyProducts, st.Products)
	}
	if st.Categories, ok = load(ctx, r.kv, KeyCategories, st.Categories); !ok {
		Save(ctx, r.kv, KeyCategories, st.Categories)
	}
	if st.Discounts, ok = load(ctx, r.kv, KeyDiscounts, st.Discounts); !ok {
		Save(ctx, r.kv, KeyDiscounts, st.Discounts)
	}
	st.Discounts = st.Discounts.Normalized()

	if st.Admins, ok = load(ctx, r.kv, KeyAdmins, st.Admins); !ok || len(st.Admins) == 0 {
		st.Admins = domain.DefaultAdmins()
		Save(ctx, r.kv, KeyAdmins, st.Admins)
	}

	if st.Session, ok = load[*domain.Admin](ctx, r.kv, KeySession, nil); !ok {
		Save(ctx, r.kv, KeySession, st.Session)
	}
	if st.Session != nil {
		if _, found := st.Admin(st.Session.Email); !found {
			log.Ctx(ctx).Info().Str("component", "LoadState").Str("email", st.Session.Email).Msg("dropping session of unknown admin")
			st.Session = nil
			Save(ctx, r.kv, KeySession, st.Session)
		}
	}

	return st
}

// Persist saves every slice the change touched.
func (r *StateRepositoryImpl) Persist(ctx context.Context, snapshot state.State, change state.Change) {
	for _, slice := range change.Slices {
		key, ok := SliceKeys[slice]
		if !ok {
			continue
		}
		Save(ctx, r.kv, key, sliceValue(snapshot, slice))
	}
}

func sliceValue(st state.State, slice state.Slice) interface{} {
	switch slice {
	case state.SliceProducts:
		return st.Products
	case state.SliceCategories:
		return st.Categories
	case state.SliceDiscounts:
		return st.Discounts
	case state.SliceAdmins:
		return st.Admins
	case state.SliceSession:
		return st.Session
	}
	return nil
}
