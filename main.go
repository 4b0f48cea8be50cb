package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"tax-engine/internal/handler"
	"tax-engine/internal/ratetable"
)

var (
	listenAddr     string
	rateTablePaths []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tax-engine",
		Short: "UK personal tax liability calculation service",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&listenAddr, "listen", "l", ":8080", "Address to listen on")
	rootCmd.Flags().StringSliceVarP(&rateTablePaths, "rate-table", "t", nil,
		"Additional rate table YAML files to register (repeatable)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if addr := os.Getenv("LISTEN_ADDR"); addr != "" && !cmd.Flags().Changed("listen") {
		listenAddr = addr
	}

	for _, path := range rateTablePaths {
		table, err := ratetable.Load(path)
		if err != nil {
			return err
		}
		if err := ratetable.Register(table); err != nil {
			return err
		}
		logger.Info().Str("tax_year", table.TaxYear).Str("path", path).Msg("rate table registered")
	}

	logger.Info().
		Str("addr", listenAddr).
		Str("default_tax_year", ratetable.Default().TaxYear).
		Msg("tax engine listening")

	return fasthttp.ListenAndServe(listenAddr, handler.New(logger))
}
