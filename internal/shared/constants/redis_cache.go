package constants

import (
	"strings"
	"time"
)

// Redis cache configuration for the TransRoute backend.
// Pattern: transroute:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

// Static data (long TTL: rarely changes)
const (
	TTL_STATIC_LONG  = 24 * time.Hour
	TTL_STATIC_SHORT = 6 * time.Hour
)

// Semi-static data (medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute
)

// Dynamic data (short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute
	TTL_DYNAMIC_SHORT  = 5 * time.Minute
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "transroute"
)

// ================== LOCATIONS MODULE ==================

const (
	CACHE_KEY_LOCATIONS_ACTIVE = CACHE_PREFIX + ":locations:active:all"
	CACHE_KEY_LOCATION_DETAIL  = CACHE_PREFIX + ":locations:detail:uuid:" // + location-id
)

const (
	TTL_LOCATIONS_ACTIVE = TTL_STATIC_LONG  // 24 hours
	TTL_LOCATION_DETAIL  = TTL_STATIC_SHORT // 6 hours
)

// ================== ROUTES MODULE ==================

const (
	CACHE_KEY_ROUTES_ACTIVE = CACHE_PREFIX + ":routes:active:all"
	CACHE_KEY_ROUTE_DETAIL  = CACHE_PREFIX + ":routes:detail:uuid:" // + route-id
	CACHE_KEY_ROUTE_SEARCH  = CACHE_PREFIX + ":routes:search"       // + :origin:X:destination:Y
)

const (
	TTL_ROUTES_ACTIVE = TTL_SEMI_STATIC_MEDIUM // 2 hours
	TTL_ROUTE_DETAIL  = TTL_SEMI_STATIC_MEDIUM // 2 hours
	TTL_ROUTE_SEARCH  = TTL_SEMI_STATIC_SHORT  // 1 hour
)

// ================== BOOKING MODULE ==================

const (
	// The purchase session is not a cache entry: the key TTL is the
	// 5-minute purchase budget and expiry is authoritative teardown.
	KEY_PURCHASE_SESSION = CACHE_PREFIX + ":booking:session:user:" // + user-id

	CACHE_KEY_USER_BOOKINGS  = CACHE_PREFIX + ":bookings:user:uuid:"   // + user-id:page:X
	CACHE_KEY_BOOKING_DETAIL = CACHE_PREFIX + ":bookings:detail:uuid:" // + booking-id
)

const (
	TTL_USER_BOOKINGS  = TTL_DYNAMIC_MEDIUM // 10 minutes
	TTL_BOOKING_DETAIL = TTL_DYNAMIC_MEDIUM // 10 minutes
)

// ================== SHIPMENTS MODULE ==================

const (
	CACHE_KEY_SHIPMENT_TRACKING = CACHE_PREFIX + ":shipments:tracking:" // + tracking-number
)

const (
	TTL_SHIPMENT_TRACKING = TTL_DYNAMIC_SHORT // 5 minutes
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_LOCATIONS_ALL = CACHE_PREFIX + ":locations:*"
	PATTERN_INVALIDATE_ROUTES_ALL    = CACHE_PREFIX + ":routes:*"
	PATTERN_INVALIDATE_BOOKINGS_USER = CACHE_PREFIX + ":bookings:user:uuid:" // + user-id + *
)

// ================== HELPER FUNCTIONS ==================

func BuildLocationDetailKey(locationID string) string {
	return CACHE_KEY_LOCATION_DETAIL + locationID
}

func BuildRouteDetailKey(routeID string) string {
	return CACHE_KEY_ROUTE_DETAIL + routeID
}

// BuildRouteSearchKey normalizes origin/destination so that
// "Orizaba"/"orizaba" share one cache entry.
func BuildRouteSearchKey(origin, destination string) string {
	return CACHE_KEY_ROUTE_SEARCH +
		":origin:" + strings.ToLower(strings.TrimSpace(origin)) +
		":destination:" + strings.ToLower(strings.TrimSpace(destination))
}

func BuildPurchaseSessionKey(userID string) string {
	return KEY_PURCHASE_SESSION + userID
}

func BuildShipmentTrackingKey(trackingNumber string) string {
	return CACHE_KEY_SHIPMENT_TRACKING + trackingNumber
}
