package constants

// Redis key formats
const (
	// Session store
	KeySessionToken   = "console:session:%s:token:%s" // Format: console:session:{session_id}:token:{user_type}
	KeySessionCurrent = "console:session:%s:current"  // Format: console:session:{session_id}:current

	// Pricing
	KeyPricingSettings = "console:pricing:settings"

	// Fare collaborators
	KeyGeocode = "console:geocode:%s" // Format: console:geocode:{normalised query}
	KeyRoute   = "console:route:%s"   // Format: console:route:{from geohash}:{to geohash}
	KeyReverse = "console:reverse:%s" // Format: console:reverse:{geohash}
)
