package gate_test

import "fmt"

// formatC renders z the way Gate.String renders each scalar.
func formatC(z complex64) string {
	return fmt.Sprintf("%v", z)
}
