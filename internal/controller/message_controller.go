package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/campaigncraft/backend/internal/apperrors"
	"github.com/campaigncraft/backend/internal/model"
	"github.com/campaigncraft/backend/internal/service"
)

type MessageController struct {
	MessageService *service.MessageService
}

func (c *MessageController) GeneratePersonalizedMessage(w http.ResponseWriter, r *http.Request) {
	var profile model.LinkedInProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := c.MessageService.GeneratePersonalizedMessage(r.Context(), &profile)
	if err != nil {
		if apperrors.IsValidation(err) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("❌ Error generating personalized message:", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, model.PersonalizedMessage{Message: message})
}
