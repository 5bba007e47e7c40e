package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Addresses are owned by the user: they are loaded eagerly and
// persisted/deleted together with their parent.
type User struct {
	ID        string
	Username  string
	Email     string
	Addresses []Address
	CreatedAt time.Time
	UpdatedAt time.Time
}
