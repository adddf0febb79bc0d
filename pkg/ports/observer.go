package ports

import (
	"time"

	"github.com/aretw0/scribe/pkg/domain"
)

// Observer receives the outcome of every operation.
type Observer interface {
	ObserveOperation(op string, result domain.OperationResult, elapsed time.Duration)
}
