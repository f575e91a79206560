package domain

import "time"

type Judge struct {
	ID        string
	Name      string
	CourtRoom string
	CreatedAt time.Time
}
