package domain

import "time"

// Notification is the durable form of an alert: persisted once, queried by
// the recipient's UI, never updated by the emitting side after insertion.
// Read state is flipped by the recipient, not by this service's core.
type Notification struct {
	ID           string
	Subject      string
	Message      string
	DocumentType string
	DocumentName string
	ForUser      string
	Read         bool
	CreatedAt    time.Time
}

// User is a warehouse operator. DefaultWarehouse designates the location
// whose pick lists they should be alerted about.
type User struct {
	Name             string
	FullName         string
	Email            string
	DefaultWarehouse string
	Enabled          bool
}
