package models

import (
	"time"

	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

// MeetUp is a recommendation the user decided to keep, with its participants.
type MeetUp struct {
	ID           string               `json:"id"`
	Index        ContactIndex         `json:"index"`
	Location     Location             `json:"location"`
	Block        timeperiod.HourBlock `json:"block"`
	Participants []ContactIndex       `json:"participants"`
	CreatedAt    time.Time            `json:"created_at"`
}
