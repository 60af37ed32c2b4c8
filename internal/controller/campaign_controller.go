package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campaigncraft/backend/internal/apperrors"
	"github.com/campaigncraft/backend/internal/model"
	"github.com/campaigncraft/backend/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
}

func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := c.CampaignService.ListCampaigns()
	if err != nil {
		log.Println("❌ Error fetching campaigns:", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, campaigns)
}

func (c *CampaignController) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	campaign, err := c.CampaignService.GetCampaign(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			writeMessage(w, http.StatusNotFound, "Campaign not found")
			return
		}
		log.Println("❌ Error fetching campaign:", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Status      string   `json:"status"`
		Leads       []string `json:"leads"`
		AccountIDs  []string `json:"accountIDs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	campaign, err := c.CampaignService.CreateCampaign(service.CreateCampaignInput{
		Name:        body.Name,
		Description: body.Description,
		Status:      body.Status,
		Leads:       body.Leads,
		AccountIDs:  body.AccountIDs,
	})
	if err != nil {
		log.Println("❌ Error creating campaign:", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

func (c *CampaignController) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var upd model.CampaignUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	campaign, err := c.CampaignService.UpdateCampaign(id, &upd)
	if err != nil {
		switch {
		case apperrors.IsInvalidStatus(err):
			writeMessage(w, http.StatusBadRequest, "Invalid status. Must be ACTIVE or INACTIVE")
		case apperrors.IsNotFound(err):
			writeMessage(w, http.StatusNotFound, "Campaign not found")
		default:
			log.Println("❌ Error updating campaign:", err)
			writeMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

func (c *CampaignController) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.CampaignService.DeleteCampaign(id); err != nil {
		if apperrors.IsNotFound(err) {
			writeMessage(w, http.StatusNotFound, "Campaign not found")
			return
		}
		log.Println("❌ Error deleting campaign:", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeMessage(w, http.StatusOK, "Campaign deleted successfully")
}

func (c *CampaignController) ListCampaignEvents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	events, err := c.CampaignService.ListCampaignEvents(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			writeMessage(w, http.StatusNotFound, "Campaign not found")
			return
		}
		log.Println("❌ Error fetching campaign events:", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, events)
}
