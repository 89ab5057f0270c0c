package entity

// EligibilityResult is the outcome of checking one wallet address.
// A failed check is recorded with Eligible=false, Points=0 and Error set.
type EligibilityResult struct {
	Address  string `json:"address"`
	Eligible bool   `json:"eligible"`
	Points   int64  `json:"points"`
	Error    string `json:"error,omitempty"`
}

func (r EligibilityResult) Failed() bool {
	return r.Error != ""
}

// FailedResult builds the record for a check that could not be completed.
func FailedResult(address string, err error) EligibilityResult {
	msg := "unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	return EligibilityResult{
		Address:  address,
		Eligible: false,
		Points:   0,
		Error:    msg,
	}
}

// Eligibility is the answer of the remote eligibility service for one address.
type Eligibility struct {
	IsEligible bool
	Points     int64
}
