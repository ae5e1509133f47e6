package constants

// NSQ topics
const (
	TopicAccountCreated  = "account.created"
	TopicCodeDelivery    = "otp.delivery.requested"
	TopicReportSubmitted = "report.submitted"
)
