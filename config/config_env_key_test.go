package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{"driver": "postgres", "autoMigrate": false},
		"orders": map[string]any{
			"returnWindow":     "24h",
			"transitionPolicy": "permissive",
			"deliveryFallback": "updated_at",
		},
		"redis":     map[string]any{"orderTTL": "5m"},
		"authz":     map[string]any{"reloadInterval": "1m"},
		"secretKey": map[string]any{"access": ""},
		"pubsub": map[string]any{
			"topicId": "order-events",
			"breaker": map[string]any{"consecutiveFailures": 5},
		},
	}

	cases := map[string]string{
		"STORAGE_AUTOMIGRATE":                "storage.autoMigrate",
		"ORDERS_RETURNWINDOW":                "orders.returnWindow",
		"ORDERS_TRANSITIONPOLICY":            "orders.transitionPolicy",
		"ORDERS_DELIVERYFALLBACK":            "orders.deliveryFallback",
		"REDIS_ORDERTTL":                     "redis.orderTTL",
		"AUTHZ_RELOADINTERVAL":               "authz.reloadInterval",
		"SECRETKEY_ACCESS":                   "secretKey.access",
		"PUBSUB_BREAKER_CONSECUTIVEFAILURES": "pubsub.breaker.consecutiveFailures",
		"ORDERS__MAXPAGESIZE":                "orders.maxpagesize",
		"PUBSUB_BREAKER_OPEN_TIMEOUT":        "pubsub.breaker.open.timeout",
	}

	for envKey, want := range cases {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "orderttl", normalizeToken("order-TTL"))
	assert.Equal(t, "returnwindow", normalizeToken("return_Window"))
}
