package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/campaigncraft/backend/internal/controller"
	"github.com/campaigncraft/backend/internal/db"
	"github.com/campaigncraft/backend/internal/llm"
	"github.com/campaigncraft/backend/internal/queue"
	"github.com/campaigncraft/backend/internal/repository"
	"github.com/campaigncraft/backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	conn, err := db.Connect(db.DSNFromEnv())
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer conn.Close()
	log.Println("✅ Connected to database")

	campaignRepo := &repository.CampaignRepository{DB: conn}
	eventRepo := &repository.CampaignEventRepository{DB: conn}

	var events queue.Publisher
	if url := os.Getenv("AMQP_URL"); url != "" {
		amqpQueue, err := queue.NewAMQPQueue(url)
		if err != nil {
			log.Fatalf("failed to connect to AMQP: %v", err)
		}
		defer amqpQueue.Close()
		events = amqpQueue
		log.Println("✅ Publishing campaign events to AMQP")
	} else {
		q := queue.NewInMemoryQueue()
		queue.StartCampaignEventSubscriber(q, eventRepo)
		events = q
		log.Println("⚠️ AMQP_URL not set, recording campaign events in-process")
	}

	var generator llm.Generator
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		generator = llm.NewClient(key)
	} else {
		log.Println("⚠️ No OpenAI API key found. Using mock message generation.")
	}

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		EventRepo:    eventRepo,
		Events:       events,
	}
	messageService := service.NewMessageService(generator)

	campaignController := &controller.CampaignController{CampaignService: campaignService}
	messageController := &controller.MessageController{MessageService: messageService}

	r := chi.NewRouter()

	// Campaign routes
	r.Get("/campaigns", campaignController.ListCampaigns)
	r.Post("/campaigns", campaignController.CreateCampaign)
	r.Get("/campaigns/{id}", campaignController.GetCampaign)
	r.Put("/campaigns/{id}", campaignController.UpdateCampaign)
	r.Delete("/campaigns/{id}", campaignController.DeleteCampaign)
	r.Get("/campaigns/{id}/events", campaignController.ListCampaignEvents)

	r.Post("/personalized-message", messageController.GeneratePersonalizedMessage)
	r.Get("/health", controller.Health)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
