package secondary

import (
	"context"

	"github.com/example/rcgen/internal/models"
)

// DocumentRenderer defines the secondary port for document generation.
// Both methods write exactly one file into folder and return a human-readable
// message carrying the written file's path. Construction faults are recovered
// inside the implementation and reported as an error wrapping ErrRender;
// nothing panics past this boundary.
type DocumentRenderer interface {
	// RenderRouteCard writes the shop-floor routing document for an order.
	RenderRouteCard(ctx context.Context, order *models.OrderRecord, routing *models.RoutingRecord, ops []models.Operation, folder string) (string, error)

	// RenderCOC writes the Declaration of Conformity for an order. revision
	// is the product revision cross-referenced from the routing dataset,
	// "N/A" when the part has no routing row.
	RenderCOC(ctx context.Context, order *models.OrderRecord, fields models.COCFields, revision string, folder string) (string, error)
}
