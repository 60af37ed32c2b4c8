package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/campaigncraft/backend/internal/apperrors"
	"github.com/campaigncraft/backend/internal/model"
)

type CampaignRepositoryInterface interface {
	List(excludeStatuses []string) ([]*model.Campaign, error)
	GetByID(id string) (*model.Campaign, error)
	Create(c *model.Campaign) error
	Update(id string, upd *model.CampaignUpdate) (*model.Campaign, error)
	SoftDelete(id string) error
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, name, description, status, leads, account_ids, created_at, updated_at`

// Create assigns the identifier and timestamps server-side and applies the
// creation defaults: status ACTIVE, leads and account IDs empty.
func (r *CampaignRepository) Create(c *model.Campaign) error {
	c.ID = uuid.NewString()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = model.StatusActive
	}
	if c.Leads == nil {
		c.Leads = []string{}
	}
	if c.AccountIDs == nil {
		c.AccountIDs = []string{}
	}

	query := `
        INSERT INTO campaigns (id, name, description, status, leads, account_ids, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.DB.Exec(query,
		c.ID, c.Name, c.Description, c.Status,
		pq.Array(c.Leads), pq.Array(c.AccountIDs),
		c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *CampaignRepository) GetByID(id string) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1`
	var c model.Campaign
	err := r.DB.QueryRow(query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Status,
		pq.Array(&c.Leads), pq.Array(&c.AccountIDs),
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

// List returns campaigns whose status is not in excludeStatuses, newest first.
func (r *CampaignRepository) List(excludeStatuses []string) ([]*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	args := []interface{}{}
	if len(excludeStatuses) > 0 {
		query += ` WHERE status <> ALL($1)`
		args = append(args, pq.Array(excludeStatuses))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c := &model.Campaign{}
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Status,
			pq.Array(&c.Leads), pq.Array(&c.AccountIDs),
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// Update merges only the fields present in upd. Presence is pointer-based:
// a non-nil empty value clears the column.
func (r *CampaignRepository) Update(id string, upd *model.CampaignUpdate) (*model.Campaign, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s=$%d", col, argPos))
		args = append(args, val)
		argPos++
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.Leads != nil {
		add("leads", pq.Array(*upd.Leads))
	}
	if upd.AccountIDs != nil {
		add("account_ids", pq.Array(*upd.AccountIDs))
	}
	add("updated_at", time.Now().UTC())

	query := fmt.Sprintf(
		`UPDATE campaigns SET %s WHERE id=$%d RETURNING `+campaignColumns,
		strings.Join(sets, ", "), argPos,
	)
	args = append(args, id)

	var c model.Campaign
	err := r.DB.QueryRow(query, args...).Scan(
		&c.ID, &c.Name, &c.Description, &c.Status,
		pq.Array(&c.Leads), pq.Array(&c.AccountIDs),
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

// SoftDelete transitions a campaign to DELETED. Rows already DELETED do not
// match, so a second delete reports not found.
func (r *CampaignRepository) SoftDelete(id string) error {
	query := `UPDATE campaigns SET status=$1, updated_at=$2 WHERE id=$3 AND status <> $1`
	res, err := r.DB.Exec(query, model.StatusDeleted, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewCampaignNotFound(id)
	}
	return nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
