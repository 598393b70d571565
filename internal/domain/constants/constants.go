// Package constants defines values shared across layers.
package constants

// Runtime environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers. An empty provider disables publishing.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Pub/Sub message attributes
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
)

// Paging defaults applied when a request omits page or limit.
const (
	DefaultPage          = 1
	DefaultPageLimit     = 10
	DefaultVendorLimit   = 8
	DefaultNotifLimit    = 20
	MaxPageLimit         = 50
	DefaultHolidayNotice = 24
)

// MaxSubscriptionDays caps a single subscription term.
const MaxSubscriptionDays = 365

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"
