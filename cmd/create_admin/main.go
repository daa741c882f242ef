package main

import (
	"fmt"
	"log"

	"github.com/rahulkure2004/rahul-portfolio/internal/config"
	"github.com/rahulkure2004/rahul-portfolio/internal/database"
	"github.com/rahulkure2004/rahul-portfolio/internal/services"
)

// Syncs the admin account from ADMIN_USERNAME/ADMIN_PASSWORD without
// starting the server. Useful for rotating the credential on a stopped
// deployment.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	authSvc := services.NewAuthService(database.GetDB())
	if err := authSvc.SyncAdminAccount(&cfg.Admin); err != nil {
		log.Fatalf("Failed to sync admin account: %v", err)
	}

	fmt.Printf("Admin account synced for username: %s\n", cfg.Admin.Username)
}
