package streamflow_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"wallet_checker/internal/domain"
	"wallet_checker/internal/domain/entity"
	"wallet_checker/internal/infrastructure/streamflow"
	"wallet_checker/pkg/errcodes"
)

func TestClientCheckURL(t *testing.T) {
	rq := require.New(t)

	client, err := streamflow.NewClient(streamflow.DefaultEndpoint, streamflow.DefaultChain, nil)
	rq.NoError(err)

	rq.Equal(
		"https://api.streamflow.foundation/v2/api/airdrop-recipients/check-eligibility?address=7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU&chain=Solana",
		client.CheckURL("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"),
	)

	rq.Equal(
		"https://api.streamflow.foundation/v2/api/airdrop-recipients/check-eligibility?address=a+b%26c&chain=Solana",
		client.CheckURL("a b&c"),
	)

	client, err = streamflow.NewClient("http://localhost:8080/check?campaign=7", "Sui", nil)
	rq.NoError(err)
	rq.Equal("http://localhost:8080/check?address=AddrA&campaign=7&chain=Sui", client.CheckURL("AddrA"))
}

func TestNewClientInvalidEndpoint(t *testing.T) {
	rq := require.New(t)

	_, err := streamflow.NewClient("/relative/path", streamflow.DefaultChain, nil)
	rq.True(domain.HasCode(err, errcodes.InvalidConfig))

	_, err = streamflow.NewClient("http://[::1", streamflow.DefaultChain, nil)
	rq.ErrorContains(err, "url.Parse")
}

func TestClientCheckEligibility(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		statusCode  int
		body        string
		eligibility entity.Eligibility
		errCode     string
	}{
		{
			name:        "Eligible with points",
			statusCode:  http.StatusOK,
			body:        `{"isEligible":true,"points":42}`,
			eligibility: entity.Eligibility{IsEligible: true, Points: 42},
		},
		{
			name:        "Points missing",
			statusCode:  http.StatusOK,
			body:        `{"isEligible":true}`,
			eligibility: entity.Eligibility{IsEligible: true, Points: 0},
		},
		{
			name:        "Points null",
			statusCode:  http.StatusOK,
			body:        `{"isEligible":false,"points":null}`,
			eligibility: entity.Eligibility{},
		},
		{
			name:        "Fractional points are truncated",
			statusCode:  http.StatusOK,
			body:        `{"isEligible":true,"points":12.9}`,
			eligibility: entity.Eligibility{IsEligible: true, Points: 12},
		},
		{
			name:        "Negative points are clamped",
			statusCode:  http.StatusOK,
			body:        `{"isEligible":true,"points":-3}`,
			eligibility: entity.Eligibility{IsEligible: true, Points: 0},
		},
		{
			name:        "Numeric string points",
			statusCode:  http.StatusOK,
			body:        `{"isEligible":true,"points":"15"}`,
			eligibility: entity.Eligibility{IsEligible: true, Points: 15},
		},
		{
			name:        "Unexpected shape",
			statusCode:  http.StatusOK,
			body:        `{"status":"unknown"}`,
			eligibility: entity.Eligibility{},
		},
		{
			name:        "Array document",
			statusCode:  http.StatusOK,
			body:        `[1,2,3]`,
			eligibility: entity.Eligibility{},
		},
		{
			name:        "Truthy flag",
			statusCode:  http.StatusOK,
			body:        `{"isEligible":1,"points":3}`,
			eligibility: entity.Eligibility{IsEligible: true, Points: 3},
		},
		{
			name:       "Not JSON",
			statusCode: http.StatusOK,
			body:       `<html>maintenance</html>`,
			errCode:    errcodes.EligibilityBadPayload.String(),
		},
		{
			name:       "Server error",
			statusCode: http.StatusServiceUnavailable,
			body:       `{"isEligible":true,"points":1}`,
			errCode:    errcodes.EligibilityBadStatus.String(),
		},
		{
			name:       "Not found",
			statusCode: http.StatusNotFound,
			body:       `{"message":"recipient not found"}`,
			errCode:    errcodes.EligibilityBadStatus.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var gotQuery string

			httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.RawQuery

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			}))
			defer httpServer.Close()

			client, err := streamflow.NewClient(httpServer.URL+"/check-eligibility", streamflow.DefaultChain, httpServer.Client())
			rq.NoError(err)

			eligibility, err := client.CheckEligibility(context.Background(), "AddrA")

			rq.Equal("address=AddrA&chain=Solana", gotQuery)

			if tc.errCode != "" {
				code, ok := domain.GetCode(err)
				rq.True(ok, "error %v has no code", err)
				rq.Equal(tc.errCode, code.String())
				rq.Equal(entity.Eligibility{}, eligibility)

				return
			}

			rq.NoError(err)
			rq.Equal(tc.eligibility, eligibility)
		})
	}
}

func TestClientCheckEligibilityTransportError(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.NotFoundHandler())
	endpoint := httpServer.URL
	httpServer.Close()

	client, err := streamflow.NewClient(endpoint, streamflow.DefaultChain, nil)
	rq.NoError(err)

	_, err = client.CheckEligibility(context.Background(), "AddrA")
	rq.True(domain.HasCode(err, errcodes.EligibilityRequestFailed))
	rq.ErrorContains(err, "request failed")
}

func TestClientCheckEligibilityCanceled(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"isEligible":true}`))
	}))
	defer httpServer.Close()

	client, err := streamflow.NewClient(httpServer.URL, streamflow.DefaultChain, nil)
	rq.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.CheckEligibility(ctx, "AddrA")
	rq.ErrorIs(err, context.Canceled)
	rq.True(domain.HasCode(err, errcodes.EligibilityRequestFailed))
}
