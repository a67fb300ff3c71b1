package embedding

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

type Credentials struct {
	ApiKey      string `json:"api_key,omitempty" mapstructure:"api_key"`
	HeaderName  string `json:"header_name,omitempty" mapstructure:"header_name"`
	HeaderValue string `json:"header_value,omitempty" mapstructure:"header_value"`
}

// Config selects and parameterises the model runtime that produces embeddings.
// Options carries provider specific settings and is decoded by each provider.
type Config struct {
	Provider    string                 `json:"provider" mapstructure:"provider"`
	Model       string                 `json:"model" mapstructure:"model"`
	BaseURL     string                 `json:"base_url,omitempty" mapstructure:"base_url"`
	Credentials Credentials            `json:"credentials" mapstructure:"credentials"`
	Timeout     time.Duration          `json:"timeout,omitempty" mapstructure:"timeout"`
	MaxParallel int                    `json:"max_parallel,omitempty" mapstructure:"max_parallel"`
	Options     map[string]interface{} `json:"options,omitempty" mapstructure:"options"`
}

// DecodeOptions copies Options into out, a pointer to a provider's option struct.
func (c *Config) DecodeOptions(out interface{}) error {
	if len(c.Options) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(c.Options); err != nil {
		return fmt.Errorf("invalid %s options: %w", c.Provider, err)
	}
	return nil
}
