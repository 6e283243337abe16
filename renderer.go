package taxicompare

import (
	"context"

	"github.com/theoremus-urban-solutions/taxi-compare/aggregate"
	"github.com/theoremus-urban-solutions/taxi-compare/formatter"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

// summaryKey labels the combined response in metrics
const summaryKey = "summary"

// ViewRenderer encodes the views of one published dataset. Rows are
// recomputed on every call.
type ViewRenderer struct {
	engine *aggregate.Engine
}

func NewViewRenderer(e *aggregate.Engine) *ViewRenderer {
	return &ViewRenderer{engine: e}
}

// GetView returns the encoded rows of one view
func (vr *ViewRenderer) GetView(name views.Name, format formatter.Format) ([]byte, error) {
	rows, err := vr.engine.View(name)
	if err != nil {
		return nil, err
	}
	return formatter.Encode(format, rows)
}

// GetSummary returns all views encoded as one object
func (vr *ViewRenderer) GetSummary(ctx context.Context, format formatter.Format) ([]byte, error) {
	sum, err := vr.engine.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return formatter.Encode(format, sum)
}
