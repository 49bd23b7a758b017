package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"medassist/internal/adapter/api"
	"medassist/internal/adapter/api/handler"
	apimiddleware "medassist/internal/adapter/api/middleware"
	"medassist/internal/adapter/api/router"
	"medassist/internal/adapter/repository"
	"medassist/internal/infrastructure/firebase"
	"medassist/internal/infrastructure/genai"
	"medassist/internal/infrastructure/speech"
	"medassist/internal/infrastructure/storage"
	"medassist/internal/usecase"
	"medassist/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Try to get service account from environment variable (for production)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	serviceAccountPath := ""
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		// Fallback to file path (for local development)
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			log.Fatalf("Either FIREBASE_SERVICE_ACCOUNT_JSON or FIREBASE_SERVICE_ACCOUNT_PATH must be set")
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		serviceAccountPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	generator := genai.NewClient(cfg.GenAIApiKey, cfg.GenAIBaseURL, cfg.GenAIModel, cfg.GenAIVisionModel)

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	consultationRepo := repository.NewFirestoreConsultationRepository(firestoreClient)
	uploadRepo := repository.NewFirestoreUploadRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	speechManager := speech.NewManager()
	speechManager.Start(ctx)

	userUseCase := usecase.NewUserUseCase(userRepo, firebaseAuthClient)
	chatUseCase := usecase.NewChatUseCase(generator, consultationRepo)
	analysisUseCase := usecase.NewAnalysisUseCase(generator, uploadRepo, storageClient)
	uploadUseCase := usecase.NewUploadUseCase(uploadRepo, storageClient)
	consultationUseCase := usecase.NewConsultationUseCase(consultationRepo)
	voiceUseCase := usecase.NewVoiceUseCase(speechManager, time.Duration(cfg.SynthesisTimeoutSec)*time.Second)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)

	router.Setup(e, router.Handlers{
		Health:       handler.NewHealthHandler(),
		User:         handler.NewUserHandler(userUseCase),
		Chat:         handler.NewChatHandler(chatUseCase),
		Analysis:     handler.NewAnalysisHandler(analysisUseCase),
		Voice:        handler.NewVoiceHandler(voiceUseCase),
		Consultation: handler.NewConsultationHandler(consultationUseCase, uploadUseCase),
		Upload:       handler.NewUploadHandler(uploadUseCase),
		SpeechBridge: handler.NewSpeechBridgeHandler(speechManager),
	}, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
