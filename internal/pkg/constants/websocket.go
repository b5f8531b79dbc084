package constants

// EventCollectionChanged tells browsers to refetch a dashboard collection
const EventCollectionChanged = "collection_changed"

// Dashboard collection names, also used as envelope entity keys
const (
	CollectionBookings    = "bookings"
	CollectionB2BBookings = "b2b_bookings"
	CollectionB2BRequests = "b2b_requests"
	CollectionFleet       = "fleet"
	CollectionDrivers     = "drivers"
	CollectionCompanies   = "companies"
	CollectionUsers       = "users"
)
