package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"AWS_ACCESS_KEY_ID",
		"AWS_SECRET_ACCESS_KEY",
		"AWS_REGION",
		"S3_ENDPOINT",
		"S3_BUCKET_NAME",
		"S3_STORAGE_CLASS",
	} {
		t.Setenv(k, "")
	}
}

// A missing bucket is fatal on its own; the credential fields, also
// absent here, are never consulted.
func TestRun_missingBucketFailsBeforeCredentialChecks(t *testing.T) {
	clearEnv(t)

	err := run(context.Background(), []string{"01_economist/te/a.pdf"}, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET_NAME")
}

func TestRun_emptyInputSucceedsWithoutCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_BUCKET_NAME", "archive")

	require.NoError(t, run(context.Background(), nil, false, false))
}

func TestRun_missingSecretAbortsBeforeAnyUpload(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_BUCKET_NAME", "archive")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIATEST")
	t.Setenv("AWS_REGION", "ap-northeast-1")

	err := run(context.Background(), []string{"01_economist/te/a.pdf"}, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AWS_SECRET_ACCESS_KEY")
}
