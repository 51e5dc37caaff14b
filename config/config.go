// Package config resolves the process configuration from the environment.
package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the environment-sourced settings bundle. It is read once at
// startup and never mutated afterwards.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Endpoint        string // optional; empty means the provider's default routing
	Bucket          string
	StorageClass    string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present, for runs outside CI.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("S3_STORAGE_CLASS", "STANDARD")
	v.AutomaticEnv()

	return Config{
		AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		Region:          v.GetString("AWS_REGION"),
		Endpoint:        v.GetString("S3_ENDPOINT"),
		Bucket:          v.GetString("S3_BUCKET_NAME"),
		StorageClass:    v.GetString("S3_STORAGE_CLASS"),
	}
}

// ValidateCredentials reports the first missing required field. The
// endpoint is the only optional one.
func (c Config) ValidateCredentials() error {
	switch {
	case c.AccessKeyID == "":
		return errors.New("AWS_ACCESS_KEY_ID is not set")
	case c.SecretAccessKey == "":
		return errors.New("AWS_SECRET_ACCESS_KEY is not set")
	case c.Region == "":
		return errors.New("AWS_REGION is not set")
	case c.Bucket == "":
		return errors.New("S3_BUCKET_NAME is not set")
	}
	return nil
}
