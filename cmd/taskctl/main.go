// Command taskctl manages tasks from the terminal against the same durable
// store the API uses.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"tasktracker/internal/adapter/storage"
	appservice "tasktracker/internal/app/service"
	"tasktracker/internal/config"
)

func main() {
	cfg := config.LoadConfig()

	open := func(ctx context.Context, logger *zap.Logger) (storage.Store, error) {
		return storage.Open(ctx, cfg, logger)
	}

	root, closeApp := newRootCmd(open, appservice.NewPasswordHasher(appservice.DefaultBcryptCost))
	err := root.ExecuteContext(context.Background())
	if closeErr := closeApp(); closeErr != nil {
		fmt.Fprintln(os.Stderr, "close store:", closeErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
