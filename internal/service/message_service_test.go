package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaigncraft/backend/internal/apperrors"
	"github.com/campaigncraft/backend/internal/model"
	"github.com/campaigncraft/backend/internal/service"
)

type stubGenerator struct {
	calls   int
	prompts []string
	reply   string
	err     error
}

func (g *stubGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func sampleProfile() *model.LinkedInProfile {
	return &model.LinkedInProfile{
		Name:     "Sarah Johnson",
		JobTitle: "Senior Product Manager",
		Company:  "Tech Innovations Inc.",
		Location: "San Francisco, CA",
		Summary:  "Experienced product leader with 8+ years driving product strategy.",
	}
}

func TestFallbackMessageContent(t *testing.T) {
	svc := service.NewMessageService(nil)

	message, err := svc.GeneratePersonalizedMessage(context.Background(), sampleProfile())
	require.NoError(t, err)

	assert.Contains(t, message, "Sarah Johnson")
	assert.Contains(t, message, "Senior Product Manager")
	assert.Contains(t, message, "Tech Innovations Inc.")
	assert.Contains(t, message, "San Francisco, CA")
	// First three whitespace-separated summary words.
	assert.Contains(t, message, "Experienced product leader")
}

func TestFallbackMessageDefaults(t *testing.T) {
	svc := service.NewMessageService(nil)

	profile := sampleProfile()
	profile.Location = ""
	profile.Summary = ""

	message, err := svc.GeneratePersonalizedMessage(context.Background(), profile)
	require.NoError(t, err)

	assert.Contains(t, message, "based in your area")
	assert.Contains(t, message, "your professional background")
}

func TestMissingRequiredFieldNeverCallsGenerator(t *testing.T) {
	for _, clear := range []func(*model.LinkedInProfile){
		func(p *model.LinkedInProfile) { p.Name = "" },
		func(p *model.LinkedInProfile) { p.JobTitle = "" },
		func(p *model.LinkedInProfile) { p.Company = "" },
	} {
		gen := &stubGenerator{reply: "should not be used"}
		svc := service.NewMessageService(gen)

		profile := sampleProfile()
		clear(profile)

		_, err := svc.GeneratePersonalizedMessage(context.Background(), profile)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, 0, gen.calls)
	}
}

func TestGeneratorModeUsesProfileInPrompt(t *testing.T) {
	gen := &stubGenerator{reply: "  Hello Sarah!  "}
	svc := service.NewMessageService(gen)

	message, err := svc.GeneratePersonalizedMessage(context.Background(), sampleProfile())
	require.NoError(t, err)

	assert.Equal(t, "Hello Sarah!", message)
	require.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], "Sarah Johnson")
	assert.Contains(t, gen.prompts[0], "Tech Innovations Inc.")
	assert.Contains(t, gen.prompts[0], "not exceed 150 words")
}

func TestGeneratorFailureSurfacesError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream down")}
	svc := service.NewMessageService(gen)

	_, err := svc.GeneratePersonalizedMessage(context.Background(), sampleProfile())
	require.Error(t, err)
	assert.False(t, apperrors.IsValidation(err))
	// Credential presence, not call failure, picks the mode: no fallback here.
	assert.Equal(t, 1, gen.calls)
}
