package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaigncraft/backend/internal/apperrors"
	"github.com/campaigncraft/backend/internal/model"
	"github.com/campaigncraft/backend/internal/queue"
	"github.com/campaigncraft/backend/internal/service"
)

// --- Mock repositories ---

type memCampaignRepo struct {
	campaigns map[string]*model.Campaign
	order     []string
}

func newMemCampaignRepo() *memCampaignRepo {
	return &memCampaignRepo{campaigns: map[string]*model.Campaign{}}
}

func (m *memCampaignRepo) Create(c *model.Campaign) error {
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
	stored := *c
	m.campaigns[c.ID] = &stored
	m.order = append(m.order, c.ID)
	return nil
}

func (m *memCampaignRepo) GetByID(id string) (*model.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, apperrors.NewCampaignNotFound(id)
	}
	found := *c
	return &found, nil
}

func (m *memCampaignRepo) List(excludeStatuses []string) ([]*model.Campaign, error) {
	excluded := map[string]bool{}
	for _, s := range excludeStatuses {
		excluded[s] = true
	}
	out := []*model.Campaign{}
	for i := len(m.order) - 1; i >= 0; i-- {
		c := m.campaigns[m.order[i]]
		if excluded[c.Status] {
			continue
		}
		found := *c
		out = append(out, &found)
	}
	return out, nil
}

func (m *memCampaignRepo) Update(id string, upd *model.CampaignUpdate) (*model.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, apperrors.NewCampaignNotFound(id)
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.Leads != nil {
		c.Leads = append([]string{}, (*upd.Leads)...)
	}
	if upd.AccountIDs != nil {
		c.AccountIDs = append([]string{}, (*upd.AccountIDs)...)
	}
	c.UpdatedAt = time.Now().UTC()
	updated := *c
	return &updated, nil
}

func (m *memCampaignRepo) SoftDelete(id string) error {
	c, ok := m.campaigns[id]
	if !ok || c.Status == model.StatusDeleted {
		return apperrors.NewCampaignNotFound(id)
	}
	c.Status = model.StatusDeleted
	c.UpdatedAt = time.Now().UTC()
	return nil
}

type memEventRepo struct {
	events []model.CampaignEvent
}

func (m *memEventRepo) Create(e *model.CampaignEvent) error {
	e.ID = len(m.events) + 1
	m.events = append(m.events, *e)
	return nil
}

func (m *memEventRepo) ListByCampaign(campaignID string) ([]model.CampaignEvent, error) {
	out := []model.CampaignEvent{}
	for _, e := range m.events {
		if e.CampaignID == campaignID {
			out = append(out, e)
		}
	}
	return out, nil
}

type capturePublisher struct {
	published []queue.CampaignEventPayload
}

func (p *capturePublisher) Publish(topic string, payload any) error {
	event, ok := payload.(queue.CampaignEventPayload)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", payload)
	}
	p.published = append(p.published, event)
	return nil
}

func newService() (*service.CampaignService, *memCampaignRepo, *capturePublisher) {
	repo := newMemCampaignRepo()
	events := &capturePublisher{}
	svc := &service.CampaignService{
		CampaignRepo: repo,
		EventRepo:    &memEventRepo{},
		Events:       events,
	}
	return svc, repo, events
}

// --- Tests ---

func TestCreateCampaignDefaults(t *testing.T) {
	svc, _, events := newService()

	first, err := svc.CreateCampaign(service.CreateCampaignInput{Name: "Launch", Description: "Q1 push"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, model.StatusActive, first.Status)
	assert.Equal(t, []string{}, first.Leads)
	assert.Equal(t, []string{}, first.AccountIDs)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := svc.CreateCampaign(service.CreateCampaignInput{Name: "Other", Description: "Q2 push"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	require.Len(t, events.published, 2)
	assert.Equal(t, queue.EventCampaignCreated, events.published[0].Type)
	assert.Equal(t, first.ID, events.published[0].CampaignID)
}

func TestCreateCampaignKeepsProvidedFields(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.CreateCampaign(service.CreateCampaignInput{
		Name:        "Launch",
		Description: "Q1 push",
		Status:      model.StatusInactive,
		Leads:       []string{"https://linkedin.com/in/a"},
		AccountIDs:  []string{"acc1"},
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusInactive, created.Status)
	assert.Equal(t, []string{"https://linkedin.com/in/a"}, created.Leads)
	assert.Equal(t, []string{"acc1"}, created.AccountIDs)
}

func TestRoundTrip(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.CreateCampaign(service.CreateCampaignInput{
		Name:        "Launch",
		Description: "Q1 push",
		Leads:       []string{"https://linkedin.com/in/a"},
		AccountIDs:  []string{"acc1"},
	})
	require.NoError(t, err)

	fetched, err := svc.GetCampaign(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestListExcludesDeleted(t *testing.T) {
	svc, _, _ := newService()

	kept, err := svc.CreateCampaign(service.CreateCampaignInput{Name: "Keep", Description: "stays"})
	require.NoError(t, err)
	doomed, err := svc.CreateCampaign(service.CreateCampaignInput{Name: "Drop", Description: "goes"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCampaign(doomed.ID))

	campaigns, err := svc.ListCampaigns()
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, kept.ID, campaigns[0].ID)
}

func TestUpdateStatusValidation(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.CreateCampaign(service.CreateCampaignInput{Name: "Launch", Description: "Q1 push"})
	require.NoError(t, err)

	for _, status := range []string{model.StatusDeleted, "ARCHIVED"} {
		_, err := svc.UpdateCampaign(created.ID, &model.CampaignUpdate{Status: &status})
		assert.True(t, apperrors.IsInvalidStatus(err), "status %q should be rejected", status)
	}

	inactive := model.StatusInactive
	updated, err := svc.UpdateCampaign(created.ID, &model.CampaignUpdate{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, updated.Status)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Leads, updated.Leads)
}

func TestUpdateExplicitEmptyLeadsClearsList(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.CreateCampaign(service.CreateCampaignInput{
		Name:        "Launch",
		Description: "Q1 push",
		Leads:       []string{"https://linkedin.com/in/a"},
	})
	require.NoError(t, err)

	empty := []string{}
	updated, err := svc.UpdateCampaign(created.ID, &model.CampaignUpdate{Leads: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Leads)
	assert.Equal(t, created.Name, updated.Name)
}

func TestUpdateMissingCampaign(t *testing.T) {
	svc, _, _ := newService()

	name := "renamed"
	_, err := svc.UpdateCampaign("nope", &model.CampaignUpdate{Name: &name})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	svc, _, events := newService()

	created, err := svc.CreateCampaign(service.CreateCampaignInput{Name: "Launch", Description: "Q1 push"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCampaign(created.ID))
	err = svc.DeleteCampaign(created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	// Deleted campaigns persist and stay fetchable by ID.
	fetched, err := svc.GetCampaign(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDeleted, fetched.Status)

	// created + deleted, no event for the failed second delete
	require.Len(t, events.published, 2)
	assert.Equal(t, queue.EventCampaignDeleted, events.published[1].Type)
}

func TestDeleteUnknownCampaign(t *testing.T) {
	svc, _, _ := newService()
	assert.True(t, apperrors.IsNotFound(svc.DeleteCampaign("nope")))
}
