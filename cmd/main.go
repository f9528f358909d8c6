package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/Avellano30/spa-management-client/internal/api"
	"github.com/Avellano30/spa-management-client/internal/config"
	"github.com/Avellano30/spa-management-client/internal/session"
	"github.com/Avellano30/spa-management-client/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := cfg.Logger

	st, err := store.Open(cfg.StateDBPath, logger)
	if err != nil {
		logger.Fatalf("local state store failed: %v", err)
	}
	defer st.Close()
	logger.Printf("✅ Local state store ready (%s)", cfg.StateDBPath)

	sess, err := session.New(st, logger)
	if err != nil {
		logger.Fatalf("session restore failed: %v", err)
	}
	if sess.Authenticated() {
		if clientID, err := sess.ClientID(); err == nil {
			logger.Printf("👤 Signed in as client %s", clientID)
		} else {
			logger.Printf("⚠️  Stored session token is unusable: %v", err)
		}
	} else {
		logger.Println("👤 No session — browsing as guest.")
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.APIKey, cfg.HTTPTimeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	services, err := client.Services(ctx)
	if err != nil {
		logger.Fatalf("service catalogue fetch failed: %v", err)
	}
	available := 0
	for _, svc := range services {
		if svc.Available() {
			available++
		}
	}
	logger.Printf("✅ Service catalogue loaded: %d services (%d available)", len(services), available)

	settings, err := client.HomepageSettings(ctx)
	if err != nil {
		logger.Printf("⚠️  Homepage settings fetch failed: %v", err)
	} else if settings == nil {
		logger.Println("Homepage settings not configured yet.")
	} else {
		logger.Printf("🏠 %s — %s", settings.Brand.Name, settings.Content.Heading)
	}

	if sess.Authenticated() {
		clientID, err := sess.ClientID()
		if err == nil {
			appointments, err := client.ClientAppointments(ctx, clientID)
			if err != nil {
				logger.Printf("⚠️  Appointment fetch failed: %v", err)
			} else {
				logger.Printf("📅 %d appointments on file", len(appointments))
			}
		}
	}

	logger.Println("✅ Startup complete.")
}
