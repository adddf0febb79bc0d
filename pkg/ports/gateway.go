package ports

import (
	"context"

	"github.com/aretw0/scribe/pkg/domain"
)

// Gateway issues write requests against the document workspace.
// Implementations never return Go errors: every outcome, including transport
// faults, is folded into the returned OperationResult.
type Gateway interface {
	// CreatePage creates a page and reports the service-assigned id on success.
	CreatePage(ctx context.Context, req *domain.PageCreateRequest) domain.OperationResult

	// AppendBlocks appends children to the given page.
	AppendBlocks(ctx context.Context, pageID string, req *domain.PageAppendRequest) domain.OperationResult
}
