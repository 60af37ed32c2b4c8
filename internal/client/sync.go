package client

import (
	"context"
	"log"
	"sync"

	"github.com/campaigncraft/backend/internal/model"
)

// State of a list-view session.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateErrored
)

// sampleCampaigns stand in when both the server and the local mirror are
// unavailable.
var sampleCampaigns = []model.Campaign{
	{
		ID:          "sample-campaign-1",
		Name:        "Mock Outreach Campaign",
		Description: "This is a sample campaign for demonstration purposes",
		Status:      model.StatusActive,
		Leads:       []string{"https://linkedin.com/in/john-doe", "https://linkedin.com/in/jane-smith"},
		AccountIDs:  []string{"acc123", "acc456"},
	},
	{
		ID:          "sample-campaign-2",
		Name:        "Content Marketing Campaign",
		Description: "Campaign targeting marketing professionals",
		Status:      model.StatusInactive,
		Leads:       []string{"https://linkedin.com/in/mark-johnson"},
		AccountIDs:  []string{"acc789"},
	},
}

// Syncer keeps a displayed campaign list in sync with the server, mirroring
// it to durable storage and substituting that mirror when the server is
// unreachable. Mutations apply optimistically and the reconciling refresh
// runs strictly after the optimistic write, so the two writers to the
// displayed list never race.
type Syncer struct {
	API   *Client
	Cache *Cache

	mu        sync.Mutex
	state     State
	offline   bool
	campaigns []model.Campaign
}

func NewSyncer(api *Client, cache *Cache) *Syncer {
	return &Syncer{API: api, Cache: cache, state: StateLoading}
}

// Refresh pulls the campaign list from the server. A non-empty result
// overwrites the mirror; on failure the mirror (or the built-in samples)
// takes its place and the session degrades to offline mode.
func (s *Syncer) Refresh(ctx context.Context) error {
	campaigns, err := s.API.ListCampaigns(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateErrored
		s.offline = true
		if s.Cache != nil {
			if cached, cacheErr := s.Cache.Load(); cacheErr == nil && len(cached) > 0 {
				s.campaigns = cached
				return err
			}
		}
		if len(s.campaigns) == 0 {
			s.campaigns = append([]model.Campaign(nil), sampleCampaigns...)
		}
		return err
	}

	s.state = StateLoaded
	s.offline = false
	s.campaigns = campaigns
	if s.Cache != nil && len(campaigns) > 0 {
		if err := s.Cache.Save(campaigns); err != nil {
			log.Println("⚠️ failed to mirror campaigns locally:", err)
		}
	}
	return nil
}

// CreateCampaign creates on the server, prepends the result optimistically,
// then reconciles.
func (s *Syncer) CreateCampaign(ctx context.Context, in CampaignInput) (*model.Campaign, error) {
	created, err := s.API.CreateCampaign(ctx, in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.campaigns = append([]model.Campaign{*created}, s.campaigns...)
	s.mu.Unlock()

	s.reconcile(ctx, "create")
	return created, nil
}

func (s *Syncer) UpdateCampaign(ctx context.Context, id string, upd *model.CampaignUpdate) (*model.Campaign, error) {
	updated, err := s.API.UpdateCampaign(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.replace(updated)
	s.reconcile(ctx, "update")
	return updated, nil
}

func (s *Syncer) ToggleCampaignStatus(ctx context.Context, id string, active bool) (*model.Campaign, error) {
	updated, err := s.API.ToggleCampaignStatus(ctx, id, active)
	if err != nil {
		return nil, err
	}

	s.replace(updated)
	s.reconcile(ctx, "toggle")
	return updated, nil
}

func (s *Syncer) DeleteCampaign(ctx context.Context, id string) error {
	if err := s.API.DeleteCampaign(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.campaigns[:0]
	for _, c := range s.campaigns {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.campaigns = kept
	s.mu.Unlock()

	s.reconcile(ctx, "delete")
	return nil
}

// GeneratePersonalizedMessage silently retries the identical call once
// before reporting failure.
func (s *Syncer) GeneratePersonalizedMessage(ctx context.Context, profile *model.LinkedInProfile) (*model.PersonalizedMessage, error) {
	message, err := s.API.GeneratePersonalizedMessage(ctx, profile)
	if err == nil {
		return message, nil
	}

	message, retryErr := s.API.GeneratePersonalizedMessage(ctx, profile)
	if retryErr != nil {
		return nil, retryErr
	}
	return message, nil
}

// Campaigns returns a copy of the displayed list.
func (s *Syncer) Campaigns() []model.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Campaign(nil), s.campaigns...)
}

func (s *Syncer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Offline reports whether the last refresh fell back to local state.
func (s *Syncer) Offline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offline
}

func (s *Syncer) replace(updated *model.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.campaigns {
		if c.ID == updated.ID {
			s.campaigns[i] = *updated
			return
		}
	}
}

// reconcile refreshes after a mutation. A failed refresh keeps the
// optimistic state; it is never rolled back.
func (s *Syncer) reconcile(ctx context.Context, op string) {
	if err := s.Refresh(ctx); err != nil {
		log.Printf("⚠️ refresh after %s failed, keeping optimistic state: %v\n", op, err)
	}
}
