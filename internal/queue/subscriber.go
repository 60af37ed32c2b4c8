package queue

import (
	"log"

	"github.com/campaigncraft/backend/internal/model"
	"github.com/campaigncraft/backend/internal/repository"
)

// StartCampaignEventSubscriber records lifecycle events as audit rows when
// the service runs without a broker (the in-memory queue case).
func StartCampaignEventSubscriber(q Queue, events repository.CampaignEventRepositoryInterface) {
	err := q.Subscribe(CampaignEventsTopic, func(payload any) error {
		event, ok := payload.(CampaignEventPayload)
		if !ok {
			log.Println("⚠️ Invalid payload type, expected CampaignEventPayload")
			return nil // no retry
		}

		if err := events.Create(&model.CampaignEvent{
			CampaignID: event.CampaignID,
			EventType:  event.Type,
		}); err != nil {
			log.Println("⚠️ Failed to record campaign event:", err)
			return err // triggers retry in queue
		}
		return nil
	})

	if err != nil {
		log.Println("⚠️ Failed to start subscriber for campaign_events:", err)
	}
}
