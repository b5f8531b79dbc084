package constants

// NATS Subjects
const (
	// SubjectRefresh carries RefreshNotice between console instances
	SubjectRefresh = "console.refresh"
)

// NSQ topics and channels
const (
	TopicBookingActions   = "console.booking_actions"
	ChannelJournalPersist = "journal"
)
