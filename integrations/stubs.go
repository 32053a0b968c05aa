/*
Package integrations holds placeholders for external service
integrations: credit reports, property valuation, and bank-statement
analysis. They are intentionally stubs - the engine qualifies from
caller-entered data only, and these return ErrNotImplemented until a
provider is wired in by the hosting application.
*/
package integrations

import "errors"

// ErrNotImplemented is returned by every stubbed integration.
var ErrNotImplemented = errors.New("integration not implemented")

// CreditReport is a placeholder shape for a future credit-report pull.
type CreditReport struct {
	BorrowerID int
	Score      float64
}

// FetchCreditReport is a stub for credit-report integration.
func FetchCreditReport(borrowerID int) (CreditReport, error) {
	return CreditReport{}, ErrNotImplemented
}

// FetchPropertyValuation is a stub for valuation services.
func FetchPropertyValuation(address string) (float64, error) {
	return 0, ErrNotImplemented
}

// AnalyzeBankStatements is a stub for bank-statement analysis.
func AnalyzeBankStatements(statements []string) (map[string]float64, error) {
	return nil, ErrNotImplemented
}
