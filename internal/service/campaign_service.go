package service

import (
	"log"

	"github.com/campaigncraft/backend/internal/apperrors"
	"github.com/campaigncraft/backend/internal/model"
	"github.com/campaigncraft/backend/internal/queue"
	"github.com/campaigncraft/backend/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	EventRepo    repository.CampaignEventRepositoryInterface
	Events       queue.Publisher
}

type CreateCampaignInput struct {
	Name        string
	Description string
	Status      string
	Leads       []string
	AccountIDs  []string
}

// ListCampaigns returns every campaign that is not soft-deleted.
func (s *CampaignService) ListCampaigns() ([]*model.Campaign, error) {
	return s.CampaignRepo.List([]string{model.StatusDeleted})
}

// GetCampaign fetches a campaign by ID regardless of status.
func (s *CampaignService) GetCampaign(id string) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(id)
}

func (s *CampaignService) CreateCampaign(in CreateCampaignInput) (*model.Campaign, error) {
	c := &model.Campaign{
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Leads:       in.Leads,
		AccountIDs:  in.AccountIDs,
	}
	if c.Status == "" {
		c.Status = model.StatusActive
	}

	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}

	s.publishEvent(queue.EventCampaignCreated, c.ID)
	return c, nil
}

// UpdateCampaign applies a partial update. A supplied status must be one of
// the user-settable values; DELETED is reachable only via DeleteCampaign.
func (s *CampaignService) UpdateCampaign(id string, upd *model.CampaignUpdate) (*model.Campaign, error) {
	if upd.Status != nil && *upd.Status != model.StatusActive && *upd.Status != model.StatusInactive {
		return nil, apperrors.NewInvalidStatus(*upd.Status)
	}

	c, err := s.CampaignRepo.Update(id, upd)
	if err != nil {
		return nil, err
	}

	s.publishEvent(queue.EventCampaignUpdated, id)
	return c, nil
}

// DeleteCampaign soft-deletes a campaign. Deleting twice reports not found.
func (s *CampaignService) DeleteCampaign(id string) error {
	if err := s.CampaignRepo.SoftDelete(id); err != nil {
		return err
	}

	s.publishEvent(queue.EventCampaignDeleted, id)
	return nil
}

// ListCampaignEvents returns the audit trail for an existing campaign.
func (s *CampaignService) ListCampaignEvents(id string) ([]model.CampaignEvent, error) {
	if _, err := s.CampaignRepo.GetByID(id); err != nil {
		return nil, err
	}
	return s.EventRepo.ListByCampaign(id)
}

// publishEvent is best-effort: a dead broker never fails the mutation.
func (s *CampaignService) publishEvent(eventType, campaignID string) {
	if s.Events == nil {
		return
	}
	payload := queue.CampaignEventPayload{Type: eventType, CampaignID: campaignID}
	if err := s.Events.Publish(queue.CampaignEventsTopic, payload); err != nil {
		log.Println("⚠️ failed to publish campaign event:", err)
	}
}
