package collision

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/hfriedrich/roomplan/internal/entity"
	"github.com/hfriedrich/roomplan/internal/room"
	"github.com/hfriedrich/roomplan/internal/telemetry"
)

// RecalculateAllZPositions recomputes every object's vertical position from
// scratch. Objects are processed in creation order: each one's Z is derived
// only from the objects created strictly before it, so an object can never
// rest on something created later, no matter where either currently sits on
// screen. Callers run the full pass after every structural change — add,
// remove, move, rotate, collision toggle, dimension edit, reorder.
//
// The resolver never rejects a result. If a recomputed Z pushes an object
// through the ceiling, the next CheckBoundaryCollision catches it and the
// caller rolls back the triggering mutation.
func RecalculateAllZPositions(ctx context.Context, objects []*entity.Object, r *room.Room) {
	tracer := telemetry.Tracer("collision")
	_, span := tracer.Start(ctx, "stacking.recalculate")
	defer span.End()

	ordered := make([]*entity.Object, len(objects))
	copy(ordered, objects)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CreationOrder < ordered[j].CreationOrder
	})

	for _, o := range ordered {
		o.Position.Z = 0
	}

	// Each object sees only the already-processed prefix as stacking bases.
	processed := make([]*entity.Object, 0, len(ordered))
	for _, o := range ordered {
		o.Position.Z = CalculateStackingZ(o, processed, r)
		processed = append(processed, o)
	}

	span.SetAttributes(attribute.Int("stacking.object_count", len(ordered)))
}
