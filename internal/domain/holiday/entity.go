package holiday

import "time"

type Type string

const (
	TypePublic  Type = "public"
	TypeCompany Type = "company"
)

type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	Type      Type
	CreatedAt time.Time
	UpdatedAt time.Time
}
