package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"riskdesk/internal/risk/models"
	id "riskdesk/pkg/domain"
	"riskdesk/pkg/platform/sentinel"
)

const counterpartyKeyPrefix = "riskdesk:counterparty:"

// CachedCounterpartyStore is a read-through Redis cache in front of another
// CounterpartyStore. Directory data changes rarely, so a short TTL keeps a
// multi-instance deployment consistent enough. Cache failures degrade to the
// inner store; they are never surfaced to callers.
type CachedCounterpartyStore struct {
	inner CounterpartyStore
	redis redis.Cmdable
	ttl   time.Duration
}

func NewCachedCounterpartyStore(inner CounterpartyStore, client redis.Cmdable, ttl time.Duration) *CachedCounterpartyStore {
	return &CachedCounterpartyStore{inner: inner, redis: client, ttl: ttl}
}

// cachedCounterparty is the Redis value; a separate type so the cache wire
// format does not pin the domain model.
type cachedCounterparty struct {
	SwiftCode string `json:"swift_code"`
	BankName  string `json:"bank_name"`
	Country   string `json:"country"`
	Verified  bool   `json:"verified"`
	RiskLevel int    `json:"risk_level"`
}

func (s *CachedCounterpartyStore) FindBySwift(ctx context.Context, code id.SwiftCode) (models.Counterparty, error) {
	key := counterpartyKeyPrefix + code.String()

	raw, err := s.redis.Get(ctx, key).Result()
	if err == nil {
		var cached cachedCounterparty
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return models.Counterparty{
				SwiftCode: id.SwiftCode(cached.SwiftCode),
				BankName:  cached.BankName,
				Country:   cached.Country,
				Verified:  cached.Verified,
				RiskLevel: cached.RiskLevel,
			}, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		// Cache unreachable; fall through to the inner store.
		return s.inner.FindBySwift(ctx, code)
	}

	party, err := s.inner.FindBySwift(ctx, code)
	if err != nil {
		return models.Counterparty{}, err
	}

	payload, err := json.Marshal(cachedCounterparty{
		SwiftCode: party.SwiftCode.String(),
		BankName:  party.BankName,
		Country:   party.Country,
		Verified:  party.Verified,
		RiskLevel: party.RiskLevel,
	})
	if err == nil {
		_ = s.redis.Set(ctx, key, payload, s.ttl).Err()
	}

	return party, nil
}

func (s *CachedCounterpartyStore) Exists(ctx context.Context, code id.SwiftCode) (bool, error) {
	_, err := s.FindBySwift(ctx, code)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	return false, err
}
