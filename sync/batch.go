package sync

import (
	"context"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/publab/pubsync/keys"
)

const defaultContentType = "application/octet-stream"

// Options configures one publish batch.
type Options struct {
	Files  []string    // repository-relative paths, processed in order
	Dst    Destination // destination
	Bucket string      // destination bucket name, for log context
	DryRun bool        // if true, derive and log keys without uploading
	Logger zerolog.Logger
}

// Summary counts per-file outcomes across a batch.
type Summary struct {
	Uploaded int
	Skipped  int
	Failed   int
}

// OK reports whether every attempted upload succeeded. Skipped files do
// not count against the batch.
func (s Summary) OK() bool { return s.Failed == 0 }

// Run publishes every file in opts.Files, one at a time, in the order
// given. Per-file failures are logged and counted, never propagated, so
// the batch always runs to completion.
func Run(ctx context.Context, opts Options) Summary {
	var sum Summary

	for _, path := range opts.Files {
		key, err := keys.Derive(path)
		if err != nil {
			opts.Logger.Warn().Str("file", path).Err(err).Msg("skipping file with unexpected layout")
			sum.Skipped++
			continue
		}

		if opts.DryRun {
			opts.Logger.Info().Str("file", path).Str("key", key).Msg("dry-run: would upload")
			sum.Uploaded++
			continue
		}

		if err := uploadOne(ctx, opts, path, key); err != nil {
			opts.Logger.Error().Str("file", path).Str("key", key).Err(err).Msg("upload failed")
			sum.Failed++
			continue
		}
		opts.Logger.Info().Str("file", path).Str("key", key).Msg("uploaded")
		sum.Uploaded++
	}

	return sum
}

func uploadOne(ctx context.Context, opts Options, path, key string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("local file missing: %w", err)
		}
		return fmt.Errorf("local file unreadable: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("local file unreadable: %w", err)
	}

	opts.Logger.Info().Str("file", path).Msgf("uploading to s3://%s/%s", opts.Bucket, key)
	return opts.Dst.Put(ctx, key, f, info.Size(), contentType(path))
}

// contentType sniffs the file's MIME type, falling back to a generic
// binary type when the file cannot be read.
func contentType(path string) string {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return defaultContentType
	}
	return m.String()
}
