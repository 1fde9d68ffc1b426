// export_test.go exports private functions for white-box testing.
package validator

import "go.trai.ch/bincache/internal/core/domain"

// CheckModule exposes the per-module check for testing.
func (v *BaseValidator) CheckModule(b *domain.ResultBuilder, id string) error {
	return v.checkModule(b, id)
}
