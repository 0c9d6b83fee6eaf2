// Package bedrock calls the AWS Bedrock runtime to generate busy book assets:
// Stability SDXL coloring-book illustrations and Claude fun-fact text.
package bedrock

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// ErrNoArtifacts reports a structurally valid response that carried no generated
// content. Callers treat it like any other generation failure, but can tell the
// two apart with errors.Is.
var ErrNoArtifacts = errors.New("bedrock: response contained no artifacts")

// Config configures a Bedrock runtime client.
type Config struct {
	Region          string        // AWS region (default "us-east-1")
	AccessKeyID     string        // Optional: uses the default credential chain if empty
	SecretAccessKey string        // Optional
	SessionToken    string        // Optional
	Timeout         time.Duration // HTTP timeout (default 120s; SDXL can be slow)
	Endpoint        string        // Optional endpoint override, used by tests
	Seed            func() uint32 // Optional seed source for image requests
}

// Client invokes Bedrock models over SigV4-signed HTTP.
type Client struct {
	region      string
	endpoint    string
	credentials aws.CredentialsProvider
	client      *http.Client
	seed        func() uint32
}

// NewClient creates a Bedrock runtime client. When no explicit credentials are
// given it falls back to the default AWS credential chain.
func NewClient(cfg Config) (*Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	var creds aws.CredentialsProvider
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		creds = credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			cfg.SessionToken,
		)
	} else {
		awsCfg, err := config.LoadDefaultConfig(context.Background(),
			config.WithRegion(region),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		creds = awsCfg.Credentials
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://bedrock-runtime.%s.amazonaws.com", region)
	}

	seed := cfg.Seed
	if seed == nil {
		seed = rand.Uint32
	}

	return &Client{
		region:      region,
		endpoint:    endpoint,
		credentials: creds,
		client: &http.Client{
			Timeout: timeout,
		},
		seed: seed,
	}, nil
}

// invokeModel posts a JSON body to the model's invoke endpoint and returns the
// raw response body.
func (c *Client) invokeModel(ctx context.Context, modelID string, body []byte) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/model/%s/invoke", c.endpoint, modelID)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	creds, err := c.credentials.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve credentials: %w", err)
	}

	signer := v4.NewSigner()
	err = signer.SignHTTP(ctx, creds, httpReq, sha256Hash(body), "bedrock", c.region, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d: %s", modelID, resp.StatusCode, respBody)
	}

	return respBody, nil
}

// sha256Hash computes the SHA256 hash of data as a hex string.
func sha256Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}
