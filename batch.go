package geom2d

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// TriangulatePolygons ear clips independent polygons concurrently, running at
// most limit at once (no limit if limit <= 0). Results are in input order. The
// first failure cancels the remaining work.
func TriangulatePolygons(ctx context.Context, polygons [][]Vec2, limit int) ([][]Triangle2, error) {
	results := make([][]Triangle2, len(polygons))
	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for i, polygon := range polygons {
		i, polygon := i, polygon
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			triangles, err := TriangulateEarClipping(polygon)
			if err != nil {
				return errors.Wrapf(err, "polygon %d", i)
			}
			results[i] = triangles
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
