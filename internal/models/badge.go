package models

// BadgeClass is the display category a status or type renders as.
type BadgeClass string

const (
	BadgePrimary BadgeClass = "primary"
	BadgeSuccess BadgeClass = "success"
	BadgeWarning BadgeClass = "warning"
	BadgeDanger  BadgeClass = "danger"
	BadgeInfo    BadgeClass = "info"
)
