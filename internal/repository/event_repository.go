package repository

import (
	"database/sql"
	"time"

	"github.com/campaigncraft/backend/internal/model"
)

// CampaignEventRepositoryInterface defines methods used by the worker and
// the events endpoint
type CampaignEventRepositoryInterface interface {
	Create(e *model.CampaignEvent) error
	ListByCampaign(campaignID string) ([]model.CampaignEvent, error)
}

type CampaignEventRepository struct {
	DB *sql.DB
}

// Create appends an audit row and fills in the assigned ID
func (r *CampaignEventRepository) Create(e *model.CampaignEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	query := `
        INSERT INTO campaign_events (campaign_id, event_type, created_at)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	return r.DB.QueryRow(query, e.CampaignID, e.EventType, e.CreatedAt).Scan(&e.ID)
}

// ListByCampaign fetches audit rows for a campaign, newest first
func (r *CampaignEventRepository) ListByCampaign(campaignID string) ([]model.CampaignEvent, error) {
	query := `
        SELECT id, campaign_id, event_type, created_at
        FROM campaign_events
        WHERE campaign_id=$1
        ORDER BY id DESC
    `
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.CampaignEvent{}
	for rows.Next() {
		var e model.CampaignEvent
		if err := rows.Scan(&e.ID, &e.CampaignID, &e.EventType, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

var _ CampaignEventRepositoryInterface = (*CampaignEventRepository)(nil)
