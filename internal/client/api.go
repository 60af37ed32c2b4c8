package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/campaigncraft/backend/internal/model"
)

// Client is a thin HTTP client for the campaign API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// CampaignInput is the construction request body.
type CampaignInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      string   `json:"status,omitempty"`
	Leads       []string `json:"leads,omitempty"`
	AccountIDs  []string `json:"accountIDs,omitempty"`
}

func (c *Client) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	var campaigns []model.Campaign
	if err := c.do(ctx, http.MethodGet, "/campaigns", nil, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (c *Client) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := c.do(ctx, http.MethodGet, "/campaigns/"+id, nil, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (c *Client) CreateCampaign(ctx context.Context, in CampaignInput) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := c.do(ctx, http.MethodPost, "/campaigns", in, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, id string, upd *model.CampaignUpdate) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := c.do(ctx, http.MethodPut, "/campaigns/"+id, upd, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// ToggleCampaignStatus flips a campaign between ACTIVE and INACTIVE.
func (c *Client) ToggleCampaignStatus(ctx context.Context, id string, active bool) (*model.Campaign, error) {
	status := model.StatusInactive
	if active {
		status = model.StatusActive
	}
	return c.UpdateCampaign(ctx, id, &model.CampaignUpdate{Status: &status})
}

func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/campaigns/"+id, nil, nil)
}

func (c *Client) GeneratePersonalizedMessage(ctx context.Context, profile *model.LinkedInProfile) (*model.PersonalizedMessage, error) {
	var message model.PersonalizedMessage
	if err := c.do(ctx, http.MethodPost, "/personalized-message", profile, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
