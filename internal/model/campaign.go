package model

import "time"

// Campaign statuses. DELETED is terminal and reachable only through the
// dedicated delete operation, never through a direct status update.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusDeleted  = "DELETED"
)

type Campaign struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Status      string    `db:"status" json:"status"`
	Leads       []string  `db:"leads" json:"leads"`
	AccountIDs  []string  `db:"account_ids" json:"accountIDs"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CampaignUpdate carries a partial update. A nil field is left unchanged;
// a non-nil field is written even when it holds an empty string or list,
// so "clear this field" is expressible.
type CampaignUpdate struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Leads       *[]string `json:"leads"`
	AccountIDs  *[]string `json:"accountIDs"`
}
