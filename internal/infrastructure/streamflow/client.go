package streamflow

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"wallet_checker/internal/domain"
	"wallet_checker/internal/domain/entity"
	"wallet_checker/pkg/contextx"
	"wallet_checker/pkg/errcodes"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

const (
	DefaultEndpoint = "https://api.streamflow.foundation/v2/api/airdrop-recipients/check-eligibility"
	DefaultChain    = "Solana"

	maxBodySize = 1 << 20
)

// Client talks to the airdrop-recipients API. It performs exactly one request
// per call and never retries.
type Client struct {
	endpoint   *url.URL
	chain      string
	httpClient *http.Client
}

func NewClient(endpoint, chain string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, domain.NewError(errcodes.InvalidConfig, fmt.Sprintf("endpoint %q is not absolute", endpoint))
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		endpoint:   u,
		chain:      chain,
		httpClient: httpClient,
	}, nil
}

// CheckURL returns the request URL for address. Query parameters already
// present in the endpoint are kept.
func (c *Client) CheckURL(address string) string {
	u := *c.endpoint

	query := u.Query()
	query.Set("address", address)
	query.Set("chain", c.chain)
	u.RawQuery = query.Encode()

	return u.String()
}

func (c *Client) CheckEligibility(ctx context.Context, address string) (entity.Eligibility, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.CheckURL(address), http.NoBody)
	if err != nil {
		return entity.Eligibility{}, domain.WrapError(err, errcodes.EligibilityRequestFailed, "build request")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Eligibility{}, domain.WrapError(err, errcodes.EligibilityRequestFailed, "request failed")
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return entity.Eligibility{}, domain.WrapError(err, errcodes.EligibilityRequestFailed, "read body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return entity.Eligibility{}, domain.NewError(errcodes.EligibilityBadStatus, "unexpected status "+resp.Status)
	}

	eligibility, err := decode(body)
	if err != nil {
		return entity.Eligibility{}, err
	}

	logger(ctx).Debug(
		"eligibility decoded",
		"is-eligible", eligibility.IsEligible,
		"points", eligibility.Points,
	)

	return eligibility, nil
}

// decode accepts any valid JSON document. Fields are read with loose
// truthiness: a missing or falsy isEligible is false, a missing, falsy or
// negative points value is 0. Non-object documents decode to the zero value.
func decode(body []byte) (entity.Eligibility, error) {
	var doc any

	if err := json.Unmarshal(body, &doc); err != nil {
		return entity.Eligibility{}, domain.WrapError(err, errcodes.EligibilityBadPayload, "decode body")
	}

	fields, ok := doc.(map[string]any)
	if !ok {
		return entity.Eligibility{}, nil
	}

	return entity.Eligibility{
		IsEligible: truthy(fields["isEligible"]),
		Points:     points(fields["points"]),
	}, nil
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0 && !math.IsNaN(val)
	case string:
		return val != ""
	default:
		return true
	}
}

func points(v any) int64 {
	var f float64

	switch val := v.(type) {
	case float64:
		f = val
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || f <= 0 {
		return 0
	}

	if f >= math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(f)
}
