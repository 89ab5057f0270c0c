package config

type API struct {
	Endpoint string `env:"CHECKER_API_URL" envDefault:"https://api.streamflow.foundation/v2/api/airdrop-recipients/check-eligibility" validate:"required,url"`
	Chain    string `env:"CHECKER_CHAIN" envDefault:"Solana" validate:"required"`
}
