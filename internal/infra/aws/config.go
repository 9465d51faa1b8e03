package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"weather-api/pkg/resource"
)

// Settings selects the region, an optional endpoint override (LocalStack) and
// optional static credentials. Without credentials the default chain is used.
type Settings struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// SettingsFromProperties reads app.cloud.*.
func SettingsFromProperties() Settings {
	return Settings{
		Region:    resource.GetStringOrDefault("app.cloud.aws-region", "us-east-1"),
		Endpoint:  resource.GetString("app.cloud.aws-endpoint"),
		AccessKey: resource.GetString("app.cloud.aws-access-key"),
		SecretKey: resource.GetString("app.cloud.aws-secret-key"),
	}
}

// LoadConfig builds an SDK configuration from settings.
func LoadConfig(ctx context.Context, settings Settings) (awssdk.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(settings.Region),
	}
	if settings.AccessKey != "" && settings.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKey, settings.SecretKey, ""),
		))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}
