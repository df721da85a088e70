package main

// @title           Bookstore API
// @version         1.0
// @description     Feedback, inquiries and a publisher/author/book catalog.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

func run() error {
	ctx := context.Background()

	cmd := &cobra.Command{
		Use:          "server",
		Short:        "bookstore feedback, inquiry and catalog services",
		SilenceUsage: true,
	}

	cmd.AddCommand(ServeCommand(ctx), SeedCommand(ctx))

	return cmd.Execute()
}

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}
