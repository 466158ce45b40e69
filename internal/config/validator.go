package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidDocument wraps every validation failure.
var ErrInvalidDocument = errors.New("config: invalid document")

// Validate checks the document for:
//   - non-finite hyperedge weights
//   - non-zero weights in an unweighted document
//   - unknown generator kinds and negative generator sizes
//   - random generators without a seed
//
// Constructor-specific bounds (k ≤ n and so on) are left to the builder.
func Validate(doc *Document) error {
	if doc == nil {
		return errors.Wrap(ErrInvalidDocument, "nil document")
	}
	var errs []string

	for i, e := range doc.Edges {
		switch {
		case math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0):
			errs = append(errs, fmt.Sprintf("edges[%d]: weight must be finite, got %v", i, e.Weight))
		case !doc.Weighted && e.Weight != 0:
			errs = append(errs, fmt.Sprintf("edges[%d]: weight %v set on an unweighted document", i, e.Weight))
		}
	}

	for i, g := range doc.Generators {
		loc := fmt.Sprintf("generate[%d]", i)
		switch g.Kind {
		case KindNodes, KindPath, KindStar, KindComplete, KindWindows:
		case KindRandomUniform:
			if g.Seed == nil {
				errs = append(errs, fmt.Sprintf("%s: %s requires a seed", loc, g.Kind))
			}
		case "":
			errs = append(errs, fmt.Sprintf("%s: kind is required", loc))
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown kind %q", loc, g.Kind))
		}
		if g.N < 0 || g.M < 0 || g.K < 0 {
			errs = append(errs, fmt.Sprintf("%s: n, m and k must be non-negative", loc))
		}
		if g.Weight != nil && (*g.Weight < 0 || math.IsInf(*g.Weight, 0) || math.IsNaN(*g.Weight)) {
			errs = append(errs, fmt.Sprintf("%s: weight must be finite and non-negative", loc))
		}
	}

	if len(errs) > 0 {
		return errors.Wrapf(ErrInvalidDocument, "\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
