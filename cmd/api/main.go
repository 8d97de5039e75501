package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"baupanel/internal/adapter/api"
	"baupanel/internal/adapter/api/handler"
	apimiddleware "baupanel/internal/adapter/api/middleware"
	"baupanel/internal/adapter/api/router"
	"baupanel/internal/adapter/repository"
	"baupanel/internal/infrastructure/firebase"
	"baupanel/internal/infrastructure/storage"
	"baupanel/internal/usecase"
	"baupanel/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		opt = option.WithCredentialsFile(cfg.ServiceAccountPath)
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

	credentialsPath := ""
	if serviceAccountJSON == "" {
		credentialsPath = cfg.ServiceAccountPath
	}

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	folderRepo := repository.NewFirestoreFolderRepository(firestoreClient)
	entryRepo := repository.NewFirestoreCatalogEntryRepository(firestoreClient)
	projectRepo := repository.NewFirestoreProjectRepository(firestoreClient)
	customerRepo := repository.NewFirestoreCustomerRepository(firestoreClient)
	fileRepo := repository.NewFirestoreProjectFileRepository(firestoreClient)
	readStatusRepo := repository.NewFirestoreFileReadStatusRepository(firestoreClient)
	approvalRepo := repository.NewFirestoreReportApprovalRepository(firestoreClient)
	galleryRepo := repository.NewFirestoreGalleryRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	cascadeUseCase := usecase.NewCascadeUseCase(
		folderRepo,
		entryRepo,
		projectRepo,
		customerRepo,
		fileRepo,
		readStatusRepo,
		approvalRepo,
		storageClient,
	)

	folderUseCase := usecase.NewFolderUseCase(folderRepo, cascadeUseCase)
	catalogUseCase := usecase.NewCatalogUseCase(entryRepo, folderRepo, storageClient)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, customerRepo, fileRepo, cascadeUseCase)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, firebaseAuthClient, cascadeUseCase)
	projectFileUseCase := usecase.NewProjectFileUseCase(fileRepo, projectRepo, readStatusRepo, approvalRepo, storageClient, cascadeUseCase)
	galleryUseCase := usecase.NewGalleryUseCase(galleryRepo, storageClient)

	handler.Setup(folderUseCase, catalogUseCase, projectUseCase, customerUseCase, projectFileUseCase, galleryUseCase, cfg.MaxUploadSizeMB)

	e := echo.New()
	e.Debug = cfg.Environment == "development"

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(customerRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
