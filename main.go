// pubsync publishes changed repository files to an S3-compatible bucket,
// remapping each repository path into a normalized storage key. It is
// meant to be invoked from CI with the changed-file list as arguments.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/spf13/cobra"

	"github.com/publab/pubsync/config"
	"github.com/publab/pubsync/logging"
	"github.com/publab/pubsync/sync"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dryRun  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "pubsync [file ...]",
		Short: "Publish changed repository files to an S3 bucket",
		Long: `pubsync uploads the given repository-relative files to an S3-compatible
bucket, mapping each path like 01_economist/<batch>/<name> to the storage
key others/economist/<name>.

Credentials and the destination come from the environment:
AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION, S3_BUCKET_NAME,
and optionally S3_ENDPOINT and S3_STORAGE_CLASS.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args, dryRun, verbose)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "derive keys and log actions without uploading")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show debug output")
	return cmd
}

func run(ctx context.Context, files []string, dryRun, verbose bool) error {
	logger := logging.New(verbose)
	cfg := config.Load()

	// The bucket check comes first; nothing else is validated or
	// attempted without a destination.
	if cfg.Bucket == "" {
		logger.Error().Msg("environment variable S3_BUCKET_NAME is not set")
		return errors.New("S3_BUCKET_NAME is not set")
	}

	if len(files) == 0 {
		logger.Info().Msg("no files to upload")
		return nil
	}

	if err := cfg.ValidateCredentials(); err != nil {
		logger.Error().Err(err).Msg("missing required AWS configuration")
		return err
	}

	logger.Info().Int("count", len(files)).Msgf("publishing to bucket %q:", cfg.Bucket)
	for _, f := range files {
		logger.Info().Msg("- " + f)
	}

	client, err := sync.NewS3Client(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("creating S3 client")
		return err
	}
	dst := sync.NewS3Destination(client, cfg.Bucket, types.StorageClass(cfg.StorageClass))

	sum := sync.Run(ctx, sync.Options{
		Files:  files,
		Dst:    dst,
		Bucket: cfg.Bucket,
		DryRun: dryRun,
		Logger: logger,
	})

	logger.Info().
		Int("uploaded", sum.Uploaded).
		Int("skipped", sum.Skipped).
		Int("failed", sum.Failed).
		Msg("batch finished")

	if !sum.OK() {
		return errors.New("some files failed to upload")
	}
	logger.Info().Msg("all files published")
	return nil
}
