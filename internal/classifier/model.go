package classifier

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
)

var (
	// ErrNotConverged is returned when training does not converge
	ErrNotConverged = errors.New("classifier: training did not converge")

	// ErrSingular is returned when the Newton system cannot be solved
	ErrSingular = errors.New("classifier: singular hessian")
)

// TrainOptions configures logistic regression fitting
type TrainOptions struct {
	// C is the inverse L2 regularization strength. The intercept is not penalized.
	C float64

	// MaxIterations bounds the number of Newton steps.
	MaxIterations int

	// Tolerance is the largest parameter update accepted as converged.
	Tolerance float64

	Logger *zap.Logger
}

// DefaultTrainOptions returns the options the process-wide model is trained with
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		C:             1.0,
		MaxIterations: 100,
		Tolerance:     1e-10,
	}
}

// Model is a trained bag-of-words logistic regression. It is immutable
// after Train returns and safe for concurrent use.
type Model struct {
	vectorizer *Vectorizer
	coef       []float64
	bias       float64
	iterations int
}

// Default trains a model on DefaultCorpus with DefaultTrainOptions.
func Default(logger *zap.Logger) (*Model, error) {
	opts := DefaultTrainOptions()
	opts.Logger = logger
	return Train(DefaultCorpus, opts)
}

// Train fits an L2-regularized logistic regression on examples using
// Newton's method.
func Train(examples []Example, opts TrainOptions) (*Model, error) {
	if len(examples) == 0 {
		return nil, fmt.Errorf("classifier: empty training set")
	}
	if opts.C <= 0 {
		opts.C = 1.0
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 100
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = 1e-10
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	docs := make([]string, len(examples))
	for i, ex := range examples {
		docs[i] = ex.Text
	}
	vec := NewVectorizer(docs)

	// Rows carry a trailing 1 for the intercept.
	n := vec.Len()
	d := n + 1
	rows := make([][]float64, len(examples))
	for i, ex := range examples {
		rows[i] = append(vec.Transform(ex.Text), 1)
	}

	w := make([]float64, d)
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		grad := make([]float64, d)
		hess := make([][]float64, d)
		for a := range hess {
			hess[a] = make([]float64, d)
		}
		for j := 0; j < n; j++ {
			grad[j] = w[j]
			hess[j][j] = 1
		}

		for i, x := range rows {
			p := sigmoid(dot(x, w))
			resid := opts.C * (p - float64(examples[i].Label))
			curv := opts.C * p * (1 - p)
			for a, xa := range x {
				if xa == 0 {
					continue
				}
				grad[a] += resid * xa
				for b, xb := range x {
					hess[a][b] += curv * xa * xb
				}
			}
		}

		step, err := solve(hess, grad)
		if err != nil {
			return nil, err
		}

		var largest float64
		for a := range w {
			w[a] -= step[a]
			largest = math.Max(largest, math.Abs(step[a]))
		}

		if largest < opts.Tolerance {
			logger.Debug("Classifier trained",
				zap.Int("examples", len(examples)),
				zap.Int("vocabulary", n),
				zap.Int("iterations", iter))
			return &Model{
				vectorizer: vec,
				coef:       w[:n],
				bias:       w[n],
				iterations: iter,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrNotConverged, opts.MaxIterations)
}

// PredictUnclear returns the probability that text belongs to the unclear class
func (m *Model) PredictUnclear(text string) float64 {
	x := m.vectorizer.Transform(text)
	return sigmoid(dot(x, m.coef) + m.bias)
}

// Explain returns the vocabulary words present in text with their
// coefficients, sorted by absolute weight descending. Equal weights keep
// vocabulary order.
func (m *Model) Explain(text string, topN int) []Feature {
	if topN <= 0 {
		return nil
	}

	x := m.vectorizer.Transform(text)
	var idx []int
	for i, count := range x {
		if count > 0 {
			idx = append(idx, i)
		}
	}

	sort.SliceStable(idx, func(a, b int) bool {
		wa, wb := math.Abs(m.coef[idx[a]]), math.Abs(m.coef[idx[b]])
		if math.Abs(wa-wb) <= 1e-12 {
			return idx[a] < idx[b]
		}
		return wa > wb
	})

	if len(idx) > topN {
		idx = idx[:topN]
	}
	features := make([]Feature, len(idx))
	for i, j := range idx {
		features[i] = Feature{Word: m.vectorizer.terms[j], Weight: m.coef[j]}
	}
	return features
}

// Vocabulary returns the training vocabulary in index order
func (m *Model) Vocabulary() []string {
	return m.vectorizer.Terms()
}

// Coefficient returns the learned weight of word and whether it is in the vocabulary
func (m *Model) Coefficient(word string) (float64, bool) {
	i := m.vectorizer.Index(word)
	if i < 0 {
		return 0, false
	}
	return m.coef[i], true
}

// Bias returns the learned intercept
func (m *Model) Bias() float64 {
	return m.bias
}

// Iterations returns the number of Newton steps training took
func (m *Model) Iterations() int {
	return m.iterations
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// solve returns x with A x = b by Gaussian elimination with partial
// pivoting. A and b are overwritten.
func solve(A [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	for c := 0; c < n; c++ {
		p := c
		for r := c + 1; r < n; r++ {
			if math.Abs(A[r][c]) > math.Abs(A[p][c]) {
				p = r
			}
		}
		if math.Abs(A[p][c]) < 1e-15 {
			return nil, ErrSingular
		}
		A[c], A[p] = A[p], A[c]
		b[c], b[p] = b[p], b[c]

		for r := c + 1; r < n; r++ {
			f := A[r][c] / A[c][c]
			for k := c; k < n; k++ {
				A[r][k] -= f * A[c][k]
			}
			b[r] -= f * b[c]
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		s := b[r]
		for k := r + 1; k < n; k++ {
			s -= A[r][k] * x[k]
		}
		x[r] = s / A[r][r]
	}
	return x, nil
}
