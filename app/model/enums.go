package model

type TestRequestStatus string

const (
	TestRequestOpen   TestRequestStatus = "OPEN"
	TestRequestClosed TestRequestStatus = "CLOSED"
)

type BugReportSeverity string

const (
	SeverityLow    BugReportSeverity = "LOW"
	SeverityMedium BugReportSeverity = "MEDIUM"
	SeverityHigh   BugReportSeverity = "HIGH"
)

type BugReportStatus string

const (
	BugReportSubmitted BugReportStatus = "SUBMITTED"
	BugReportValidated BugReportStatus = "VALIDATED"
	BugReportRejected  BugReportStatus = "REJECTED"
	BugReportRewarded  BugReportStatus = "REWARDED"
)

type RewardType string

const (
	RewardGuestSwipe   RewardType = "GUEST_SWIPE"
	RewardMealExchange RewardType = "MEAL_EXCHANGE"
)

type Platform string

const (
	PlatformIOS     Platform = "IOS"
	PlatformAndroid Platform = "ANDROID"
	PlatformWeb     Platform = "WEB"
)
