package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/campaigncraft/backend/internal/client"
	"github.com/campaigncraft/backend/internal/model"
)

const offlineNotice = "⚠️ Could not connect to the server. Showing local data instead."

func main() {
	_ = godotenv.Load() // .env is optional for the CLI

	baseURL := os.Getenv("CAMPAIGN_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	cache, err := client.NewCache()
	if err != nil {
		log.Println("⚠️ local campaign mirror unavailable:", err)
	}
	syncer := client.NewSyncer(client.New(baseURL), cache)

	root := &cobra.Command{
		Use:           "campaignctl",
		Short:         "Manage outreach campaigns",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newListCmd(syncer),
		newCreateCmd(syncer),
		newToggleCmd(syncer),
		newDeleteCmd(syncer),
		newMessageCmd(syncer),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newListCmd(syncer *client.Syncer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Offline fallback is the point of the syncer: a failed refresh
			// still leaves a usable list.
			if err := syncer.Refresh(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), offlineNotice)
			}
			printCampaigns(syncer.Campaigns())
			return nil
		},
	}
}

func newCreateCmd(syncer *client.Syncer) *cobra.Command {
	var (
		name        string
		description string
		leads       []string
		accountIDs  []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := syncer.CreateCampaign(cmd.Context(), client.CampaignInput{
				Name:        name,
				Description: description,
				Leads:       leads,
				AccountIDs:  accountIDs,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created campaign %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "campaign name")
	cmd.Flags().StringVar(&description, "description", "", "campaign description")
	cmd.Flags().StringSliceVar(&leads, "lead", nil, "lead profile URL (repeatable)")
	cmd.Flags().StringSliceVar(&accountIDs, "account", nil, "outreach account ID (repeatable)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("description")

	return cmd
}

func newToggleCmd(syncer *client.Syncer) *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "toggle <campaign-id>",
		Short: "Activate or deactivate a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := syncer.ToggleCampaignStatus(cmd.Context(), args[0], active)
			if err != nil {
				return err
			}
			fmt.Printf("Campaign %s is now %s\n", updated.ID, updated.Status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "set ACTIVE (false for INACTIVE)")

	return cmd
}

func newDeleteCmd(syncer *client.Syncer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <campaign-id>",
		Short: "Delete a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := syncer.DeleteCampaign(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Campaign deleted successfully")
			return nil
		},
	}
}

func newMessageCmd(syncer *client.Syncer) *cobra.Command {
	var profile model.LinkedInProfile

	cmd := &cobra.Command{
		Use:   "message",
		Short: "Draft a personalized outreach message for a LinkedIn profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := syncer.GeneratePersonalizedMessage(cmd.Context(), &profile)
			if err != nil {
				return err
			}
			fmt.Println(message.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile.Name, "name", "", "profile name")
	cmd.Flags().StringVar(&profile.JobTitle, "job-title", "", "job title")
	cmd.Flags().StringVar(&profile.Company, "company", "", "company")
	cmd.Flags().StringVar(&profile.Location, "location", "", "location")
	cmd.Flags().StringVar(&profile.Summary, "summary", "", "profile summary")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("job-title")
	cmd.MarkFlagRequired("company")

	return cmd
}

func printCampaigns(campaigns []model.Campaign) {
	if len(campaigns) == 0 {
		fmt.Println("No campaigns found")
		return
	}
	for _, c := range campaigns {
		fmt.Printf("%s  %-8s  %s (%d leads, %d accounts)\n",
			c.ID, c.Status, c.Name, len(c.Leads), len(c.AccountIDs))
	}
}
