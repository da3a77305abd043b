package classify

import (
	"context"
	"factcrawler/pkg/logger"

	"go.uber.org/zap"
)

// Fallback asks Primary first and Secondary when Primary fails or is nil.
// With a Heuristic as Secondary it never fails.
type Fallback struct {
	Primary   Classifier
	Secondary Classifier
}

var _ Classifier = Fallback{}

// New returns the classifier used by the crawler: the heuristic alone, or the
// model-backed classifier falling back to the heuristic when primary is set.
func New(primary Classifier) Classifier {
	if primary == nil {
		return Heuristic{}
	}

	return Fallback{Primary: primary, Secondary: Heuristic{}}
}

// Classify implements Classifier.
func (f Fallback) Classify(ctx context.Context, page Summary) (Verdict, error) {
	if f.Primary != nil {
		v, err := f.Primary.Classify(ctx, page)
		if err == nil {
			return v, nil
		}
		logger.Warn(ctx, "classifier unavailable, using fallback", zap.String("url", page.URL), zap.Error(err))
	}

	return f.Secondary.Classify(ctx, page)
}
