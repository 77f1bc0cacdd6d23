package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"next-target-mock/config"
	"next-target-mock/internal/metrics"
	"next-target-mock/internal/services"
)

var (
	heavyCount     int
	heavyBatchSize int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace every record with the fixed demo roster",
	RunE: withService(func(ctx context.Context, cmd *cobra.Command, svc *services.ManpowerService, _ *config.Config) error {
		n, err := svc.SeedFixed(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), services.SeedMessage(n))
		return nil
	}),
}

var seedHeavyCmd = &cobra.Command{
	Use:   "seed-heavy",
	Short: "Append synthetic records in batches",
	RunE: withService(func(ctx context.Context, cmd *cobra.Command, svc *services.ManpowerService, cfg *config.Config) error {
		count, batchSize := cfg.Seed.BulkCount, cfg.Seed.BulkBatchSize
		if cmd.Flags().Changed("count") {
			count = heavyCount
		}
		if cmd.Flags().Changed("batch-size") {
			batchSize = heavyBatchSize
		}
		n, err := svc.SeedBulk(ctx, count, batchSize)
		if n > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), services.SeedMessage(n))
		}
		return err
	}),
}

var deleteAllCmd = &cobra.Command{
	Use:   "delete-all",
	Short: "Delete every record in the collection",
	RunE: withService(func(ctx context.Context, cmd *cobra.Command, svc *services.ManpowerService, _ *config.Config) error {
		n, err := svc.DeleteAll(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), services.DeleteMessage(n))
		return nil
	}),
}

func init() {
	seedHeavyCmd.Flags().IntVar(&heavyCount, "count", services.DefaultBulkCount, "records to create")
	seedHeavyCmd.Flags().IntVar(&heavyBatchSize, "batch-size", services.DefaultBulkBatchSize, "records per bulk insert")
}

type serviceRun func(ctx context.Context, cmd *cobra.Command, svc *services.ManpowerService, cfg *config.Config) error

// withService opens the configured store around a one-shot command.
func withService(run serviceRun) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadRuntime()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ctx := cmd.Context()
		store, closeStore, err := openStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeStore(context.Background()); err != nil {
				log.Warn("failed to close store", zap.Error(err))
			}
		}()

		return run(ctx, cmd, services.NewManpowerService(store, log, metrics.New()), cfg)
	}
}
