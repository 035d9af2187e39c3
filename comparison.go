package tablemetrics

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/tablemetrics/grits"
	"github.com/tsawler/tablemetrics/htmldoc"
	"github.com/tsawler/tablemetrics/model"
	"github.com/tsawler/tablemetrics/teds"
)

// Comparison provides a fluent interface for scoring a predicted HTML table
// against a ground-truth one. Each configuration method returns a new
// Comparison instance, making it safe for concurrent use and allowing
// method chaining.
type Comparison struct {
	// Parsed inputs, read-only after Compare
	truth *htmldoc.Document
	pred  *htmldoc.Document

	// Configuration
	options compareOptions

	// Accumulated error (fail-fast)
	err error
}

// Compare parses both inputs and returns a Comparison with default options:
// text is compared, no element is ignored, and only the first table of each
// side is scored.
//
// Example:
//
//	score, err := tablemetrics.Compare(trueHTML, predHTML).TEDS()
func Compare(trueHTML, predHTML string) *Comparison {
	return &Comparison{
		truth:   htmldoc.Parse(trueHTML),
		pred:    htmldoc.Parse(predHTML),
		options: defaultOptions(),
	}
}

// clone creates a shallow copy of the Comparison with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (c *Comparison) clone() *Comparison {
	return &Comparison{
		truth:   c.truth,
		pred:    c.pred,
		options: c.options.clone(),
		err:     c.err,
	}
}

// StructureOnly compares table layout only; cell text is ignored by TEDS.
//
// Example:
//
//	score, err := tablemetrics.Compare(a, b).StructureOnly().TEDS()
func (c *Comparison) StructureOnly() *Comparison {
	newCmp := c.clone()
	newCmp.options.structureOnly = true
	return newCmp
}

// IgnoreNodes adds element names whose markup is dropped from cell content.
// Their text is kept and spliced into the enclosing text.
//
// Example:
//
//	score, err := tablemetrics.Compare(a, b).IgnoreNodes("sup", "sub").TEDS()
func (c *Comparison) IgnoreNodes(names ...string) *Comparison {
	newCmp := c.clone()
	newCmp.options.ignoredNodes = append(newCmp.options.ignoredNodes, names...)
	return newCmp
}

// Aggregate sets the policy for inputs containing several tables.
//
// Example:
//
//	score, err := tablemetrics.Compare(a, b).Aggregate(tablemetrics.AggregateMean).TEDS()
func (c *Comparison) Aggregate(policy Aggregation) *Comparison {
	newCmp := c.clone()
	if !policy.valid() {
		newCmp.err = fmt.Errorf("%w: unknown aggregation %d", ErrInvalidArgument, int(policy))
		return newCmp
	}
	newCmp.options.aggregation = policy
	return newCmp
}

// WithLogger sets a logger that receives a debug record for every table pair
// scored. A nil logger restores the default, which discards everything.
func (c *Comparison) WithLogger(logger *slog.Logger) *Comparison {
	newCmp := c.clone()
	if logger == nil {
		logger = defaultOptions().logger
	}
	newCmp.options.logger = logger
	return newCmp
}

// WithConfig applies a Config on top of the current options. Zero fields
// leave the current settings alone.
func (c *Comparison) WithConfig(cfg Config) *Comparison {
	newCmp := c.clone()
	policy, err := cfg.aggregation()
	if err != nil {
		newCmp.err = err
		return newCmp
	}
	if cfg.StructureOnly {
		newCmp.options.structureOnly = true
	}
	newCmp.options.ignoredNodes = append(newCmp.options.ignoredNodes, cfg.IgnoredNodes...)
	if cfg.Aggregation != "" {
		newCmp.options.aggregation = policy
	}
	return newCmp
}

// TEDS returns the tree-edit-distance similarity, in [0, 1].
func (c *Comparison) TEDS() (float64, error) {
	if c.err != nil {
		return 0, c.err
	}

	truth, pred := c.truth.Tables(), c.pred.Tables()
	pairs, denom := c.options.aggregation.pairs(len(truth), len(pred))
	if denom == 0 {
		c.logEmpty("teds", len(truth), len(pred))
		return 0, nil
	}

	cmp := teds.NewComparer(teds.Options{
		StructureOnly: c.options.structureOnly,
		Ignored:       c.options.ignored(),
	})

	sum := 0.0
	for _, p := range pairs {
		score := cmp.Similarity(truth[p[0]], pred[p[1]])
		c.options.logger.Debug("compared tables",
			slog.String("metric", "teds"),
			slog.Int("true_table", p[0]),
			slog.Int("pred_table", p[1]),
			slog.Float64("score", score))
		sum += score
	}
	return sum / float64(denom), nil
}

// GritsTop returns the GriTS topology score.
func (c *Comparison) GritsTop() (grits.Score, error) {
	return c.grits("grits_top", grits.Topology)
}

// GritsCon returns the GriTS content score.
func (c *Comparison) GritsCon() (grits.Score, error) {
	return c.grits("grits_con", grits.Content)
}

// grits scores the cell grids of each compared table pair and averages the
// F-score, precision and recall under the aggregation policy.
func (c *Comparison) grits(metric string, score func(truth, pred []model.Cell) grits.Score) (grits.Score, error) {
	if c.err != nil {
		return grits.Score{}, c.err
	}

	truth, pred := c.truth.Tables(), c.pred.Tables()
	pairs, denom := c.options.aggregation.pairs(len(truth), len(pred))
	if denom == 0 {
		c.logEmpty(metric, len(truth), len(pred))
		return grits.Score{}, nil
	}

	ignored := c.options.ignored()
	var sum grits.Score
	for _, p := range pairs {
		s := score(truth[p[0]].Grid(ignored).Cells, pred[p[1]].Grid(ignored).Cells)
		c.options.logger.Debug("compared tables",
			slog.String("metric", metric),
			slog.Int("true_table", p[0]),
			slog.Int("pred_table", p[1]),
			slog.Float64("fscore", s.FScore),
			slog.Float64("precision", s.Precision),
			slog.Float64("recall", s.Recall))
		sum.FScore += s.FScore
		sum.Precision += s.Precision
		sum.Recall += s.Recall
	}

	n := float64(denom)
	return grits.Score{
		FScore:    sum.FScore / n,
		Precision: sum.Precision / n,
		Recall:    sum.Recall / n,
	}, nil
}

func (c *Comparison) logEmpty(metric string, numTruth, numPred int) {
	c.options.logger.Debug("no tables to compare",
		slog.String("metric", metric),
		slog.Int("true_tables", numTruth),
		slog.Int("pred_tables", numPred))
}

// Cells returns the canonical grid cells of every table on each side, in
// document order, honoring the ignored nodes.
func (c *Comparison) Cells() (truth, pred []model.Cell, err error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	ignored := c.options.ignored()
	return c.truth.Cells(ignored), c.pred.Cells(ignored), nil
}
