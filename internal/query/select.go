// Package query narrows a value tree to the subtree selected by a jq
// expression.
package query

import (
	"errors"
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/seven7ty/typeshi/pkg/valuetree"
)

var (
	// ErrNoMatch is returned when an expression selects nothing.
	ErrNoMatch = errors.New("expression selected nothing")
	// ErrNotMapping is returned when the selected value is not a mapping.
	ErrNotMapping = errors.New("selected value is not a mapping")
	// ErrInvalidExpression is returned for expressions that fail to parse,
	// compile or evaluate as a path.
	ErrInvalidExpression = errors.New("invalid jq path expression")
)

// Select evaluates expr against tree and returns the first mapping it
// selects. The expression must be a path expression such as
// ".data.items[0]" or ".payload | .user".
//
// gojq works on unordered maps, so the path is computed on the plain form
// of the tree and then followed through the ordered tree itself. The
// returned mapping is part of tree and keeps its key order.
func Select(tree *valuetree.Map, expr string) (*valuetree.Map, error) {
	code, err := compilePath(expr)
	if err != nil {
		return nil, err
	}

	iter := code.Run(valuetree.ToPlain(tree))
	v, ok := iter.Next()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, expr)
	}
	if err, isErr := v.(error); isErr {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidExpression, expr, err)
	}

	steps, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: unexpected path %v", ErrInvalidExpression, expr, v)
	}

	selected, found := valuetree.At(tree, steps)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, expr)
	}
	m, ok := selected.(*valuetree.Map)
	if !ok {
		return nil, fmt.Errorf("%w: %s selects a %s", ErrNotMapping, expr, valuetree.KindOf(selected))
	}
	return m, nil
}

// Validate checks that expr parses and compiles as a path expression.
func Validate(expr string) error {
	_, err := compilePath(expr)
	return err
}

func compilePath(expr string) (*gojq.Code, error) {
	query, err := gojq.Parse("path(" + expr + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling: %w", ErrInvalidExpression, err)
	}
	return code, nil
}
