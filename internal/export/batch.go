package export

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-advisor/internal/types"
)

// maxConcurrentRenders caps parallel Chrome instances during batch export.
const maxConcurrentRenders = 2

// WriteAllPDFs renders every career path in the result into dir, a bounded
// number at a time. It returns the written file paths; the first render
// error aborts remaining work.
func (r *PDFRenderer) WriteAllPDFs(ctx context.Context, dir string, result *types.AnalysisResult) ([]string, error) {
	paths := result.SuggestedCareerPaths
	written := make([]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRenders)

	for i, cp := range paths {
		g.Go(func() error {
			file, err := r.WritePDF(gctx, dir, cp)
			if err != nil {
				return err
			}
			log.Printf("[export] wrote %s", file)
			written[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return written, nil
}
