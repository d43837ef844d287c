package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/fleetflow/fleetflow/internal/auth"
	"github.com/fleetflow/fleetflow/internal/fleet"
	"github.com/fleetflow/fleetflow/internal/handlers"
	"github.com/fleetflow/fleetflow/internal/notify"
	"github.com/fleetflow/fleetflow/internal/storage"
)

// openKV selects the persistence backend from STORAGE_BACKEND:
// "sqlite" (default), "mongo", or "memory".
func openKV() (storage.KV, error) {
	switch os.Getenv("STORAGE_BACKEND") {
	case "mongo":
		client, err := storage.ConnectMongo()
		if err != nil {
			return nil, err
		}
		return storage.NewMongoKV(client), nil
	case "memory":
		return storage.NewMemoryKV(), nil
	default:
		path := os.Getenv("FLEET_DB_PATH")
		if path == "" {
			path = "fleetflow.db"
		}
		return storage.OpenSQLite(path)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment variables")
	}
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	kv, err := openKV()
	if err != nil {
		log.WithError(err).Fatal("Failed to open storage backend")
	}
	defer kv.Close(context.Background())

	opts := []fleet.Option{}
	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		pub, err := notify.NewMQTTPublisher(broker, "fleetflow-api", "fleetflow/events")
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to MQTT broker")
		}
		defer pub.Close()
		opts = append(opts, fleet.WithPublisher(pub))
		log.WithField("broker", broker).Info("Publishing lifecycle events over MQTT")
	}

	store := fleet.Open(kv, fleet.DefaultSeed(), opts...)

	authService, err := auth.NewService(kv)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize auth service")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("HTTP server listening")
	if err := http.ListenAndServe(":"+port, handlers.Router(store, authService)); err != nil {
		log.WithError(err).Fatal("HTTP server stopped")
	}
}
