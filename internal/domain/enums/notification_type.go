package enums

type NotificationType string

const (
	NotificationTypeResponse NotificationType = "response"
)
