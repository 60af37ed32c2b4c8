package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/campaigncraft/backend/internal/apperrors"
	"github.com/campaigncraft/backend/internal/llm"
	"github.com/campaigncraft/backend/internal/model"
)

// MessageService drafts personalized outreach messages. Generator is nil when
// no API credential is configured, in which case the fixed template is used.
// The mode is chosen purely by credential presence, never at call-failure time.
type MessageService struct {
	Generator llm.Generator
	validate  *validator.Validate
}

func NewMessageService(gen llm.Generator) *MessageService {
	return &MessageService{
		Generator: gen,
		validate:  validator.New(),
	}
}

func (s *MessageService) GeneratePersonalizedMessage(ctx context.Context, p *model.LinkedInProfile) (string, error) {
	if err := s.validate.Struct(p); err != nil {
		return "", apperrors.NewValidation("Name, job title, and company are required")
	}

	if s.Generator == nil {
		return fallbackMessage(p), nil
	}

	message, err := s.Generator.Complete(ctx, buildPrompt(p))
	if err != nil {
		return "", fmt.Errorf("generate personalized message: %w", err)
	}
	return strings.TrimSpace(message), nil
}

func buildPrompt(p *model.LinkedInProfile) string {
	location := p.Location
	if location == "" {
		location = "Unknown"
	}
	summary := p.Summary
	if summary == "" {
		summary = "Not provided"
	}

	return fmt.Sprintf(`Write a personalized LinkedIn outreach message to a person with the following profile:
- Name: %s
- Job Title: %s
- Company: %s
- Location: %s
- Profile Summary: %s

The message should be professional, friendly, and mention how our campaign management software can help with their outreach efforts. The message should be 3-4 short paragraphs and not exceed 150 words. Do not use emojis.`,
		p.Name, p.JobTitle, p.Company, location, summary)
}

func fallbackMessage(p *model.LinkedInProfile) string {
	location := p.Location
	if location == "" {
		location = "your area"
	}

	return fmt.Sprintf("Hi %s,\n\nI noticed you're a %s at %s based in %s. Your experience with %s... is impressive!\n\nI'm reaching out because our platform CampaignCraft can help streamline your outreach efforts and increase response rates. Would you be open to a quick 15-minute chat this week to discuss how we might be able to support your work?\n\nLooking forward to connecting,\nThe CampaignCraft Team",
		p.Name, p.JobTitle, p.Company, location, summaryExcerpt(p.Summary))
}

// summaryExcerpt takes the first three whitespace-separated words.
func summaryExcerpt(summary string) string {
	words := strings.Fields(summary)
	if len(words) == 0 {
		return "your professional background"
	}
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}
