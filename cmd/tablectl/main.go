// Command tablectl prepares the skill's DynamoDB table. Run it once per
// environment before the skill starts taking traffic.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bitbucket.org/sotavant/spicerack-skill/internal/config"
	"bitbucket.org/sotavant/spicerack-skill/internal/logger"
	"bitbucket.org/sotavant/spicerack-skill/internal/store"
	"bitbucket.org/sotavant/spicerack-skill/internal/store/dynamo"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
	}

	if err := newRootCmd(newDynamoManager).Execute(); err != nil {
		os.Exit(1)
	}
}

type managerFactory func(ctx context.Context, cfg config.Config) (store.TableManager, error)

func newDynamoManager(ctx context.Context, cfg config.Config) (store.TableManager, error) {
	client, err := dynamo.NewClient(ctx, cfg.Region, cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	return dynamo.New(client, cfg.TableName, dynamo.WithWaitTimeout(cfg.TableWaitTimeout)), nil
}

func newRootCmd(newManager managerFactory) *cobra.Command {
	cfg := config.Default()
	if v := os.Getenv("TABLE_NAME"); v != "" {
		cfg.TableName = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv("DYNAMODB_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}

	root := &cobra.Command{
		Use:          "tablectl",
		Short:        "Administer the spice rack table",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Initialize(cfg.LogLevel)
		},
	}

	root.PersistentFlags().StringVar(&cfg.TableName, "table", cfg.TableName, "DynamoDB table name")
	root.PersistentFlags().StringVar(&cfg.Region, "region", cfg.Region, "AWS region")
	root.PersistentFlags().StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "DynamoDB endpoint override")
	root.PersistentFlags().StringVarP(&cfg.LogLevel, "log-level", "l", cfg.LogLevel, "log level")

	ensure := &cobra.Command{
		Use:   "ensure",
		Short: "Create the table if it does not exist and wait until it is active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			tm, err := newManager(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := tm.EnsureTable(cmd.Context()); err != nil {
				return err
			}

			logger.Log.Info("table ready", zap.String("table", cfg.TableName))
			fmt.Fprintf(cmd.OutOrStdout(), "table %s is ready\n", cfg.TableName)
			return nil
		},
	}
	ensure.Flags().DurationVar(&cfg.TableWaitTimeout, "wait", cfg.TableWaitTimeout, "maximum time to wait for the table to become active")

	root.AddCommand(ensure)
	return root
}
