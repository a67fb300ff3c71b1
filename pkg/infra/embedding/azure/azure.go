// Package azure serves embeddings from an Azure OpenAI deployment. The
// deployment name is taken from the configured model.
package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/domain/embedding"
	embopenai "github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/infra/embedding/openai"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/azure"
	"github.com/openai/openai-go/v2/option"
	"github.com/sirupsen/logrus"
)

const (
	ProviderName = "azure"

	defaultAPIVersion = "2024-10-21"
)

type options struct {
	APIVersion  string `mapstructure:"api_version"`
	UseIdentity bool   `mapstructure:"use_identity"`
}

// CredentialFunc builds the Entra ID credential used when use_identity is set.
type CredentialFunc func() (azcore.TokenCredential, error)

func DefaultCredential() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(nil)
}

func NewEncoder(cfg *embedding.Config, newCredential CredentialFunc, logger *logrus.Logger) (embedding.Encoder, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%s: endpoint (base_url) is required", ProviderName)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%s: model (deployment name) is required", ProviderName)
	}

	var opts options
	if err := cfg.DecodeOptions(&opts); err != nil {
		return nil, err
	}
	if opts.APIVersion == "" {
		opts.APIVersion = defaultAPIVersion
	}

	reqOpts := []option.RequestOption{
		azure.WithEndpoint(cfg.BaseURL, opts.APIVersion),
		option.WithMaxRetries(0),
	}
	if cfg.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(cfg.Timeout))
	}

	switch {
	case opts.UseIdentity:
		if newCredential == nil {
			newCredential = DefaultCredential
		}
		cred, err := newCredential()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to create credential: %w", ProviderName, err)
		}
		reqOpts = append(reqOpts, azure.WithTokenCredential(cred))
	case cfg.Credentials.ApiKey != "":
		reqOpts = append(reqOpts, azure.WithAPIKey(cfg.Credentials.ApiKey))
	default:
		return nil, fmt.Errorf("%s: API key is required when not using Azure identity", ProviderName)
	}

	return embopenai.NewEncoderWithClient(ProviderName, openai.NewClient(reqOpts...), cfg, logger)
}
