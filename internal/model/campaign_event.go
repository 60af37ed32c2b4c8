package model

import "time"

// CampaignEvent is an audit row recorded for each campaign lifecycle change.
type CampaignEvent struct {
	ID         int       `db:"id" json:"id"`
	CampaignID string    `db:"campaign_id" json:"campaign_id"`
	EventType  string    `db:"event_type" json:"event_type"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
