package observability

import (
	"github.com/consultacr/app-fiscal/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.NewSafeLogger("app-fiscal")
}

// MaskIdentification masks a cédula/identification number for logging.
// Keeps the leading digits that identify the id type and hides the rest.
func MaskIdentification(id string) string {
	if len(id) < 4 {
		return "****"
	}
	masked := make([]byte, len(id))
	for i := range masked {
		if i < 2 {
			masked[i] = id[i]
		} else {
			masked[i] = '*'
		}
	}
	return string(masked)
}
