// cmd/storefront/main.go
package main

import (
	"context"
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/pkg/logging"
	"github.com/your-org/storefront-client/internal/store/admin"
	"github.com/your-org/storefront-client/internal/store/cart"
	"github.com/your-org/storefront-client/internal/store/catalog"
	"github.com/your-org/storefront-client/internal/store/notification"
	"github.com/your-org/storefront-client/internal/store/session"
	"github.com/your-org/storefront-client/internal/ui"
)

func main() {
	email := flag.String("email", os.Getenv("STOREFRONT_EMAIL"), "account email to sign in with")
	password := flag.String("password", os.Getenv("STOREFRONT_PASSWORD"), "account password to sign in with")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	client, err := api.NewClient(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create API client")
	}
	stores := ui.Stores{
		Session: session.NewStore(client, client, logger),
		Cart:    cart.NewStore(client, logger),
		Catalog: catalog.NewStore(client, cfg, logger),
		Admin:   admin.NewStore(client, cfg, logger),
		Notices: notification.NewStore(cfg.Notifications.DefaultDuration),
	}

	if *email != "" && *password != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.API.RequestTimeout)
		result := stores.Session.Login(ctx, *email, *password)
		cancel()

		if !result.Success {
			logger.WithField("email", *email).Warn("Sign-in failed, continuing unauthenticated")
			stores.Notices.Error(result.Message)
		} else {
			stores.Notices.Success("Signed in as " + stores.Session.User().Name)
		}
	}

	program := tea.NewProgram(ui.New(stores), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.WithError(err).Fatal("Interface failed")
	}
}
