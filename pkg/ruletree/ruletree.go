// Package ruletree flattens a property rule tree into name-indexed
// lookup tables for behaviors and criteria.
package ruletree

import (
	"errors"
	"fmt"

	"github.com/edgetools/akaget/pkg/jsonutil"
)

// Behavior is a named action entry of a rule node. Besides "name" it
// carries arbitrary option fields, so it stays a raw JSON mapping.
type Behavior = map[string]any

// Criterion is a named condition entry of a rule node. Flattening injects
// a "rulename" field identifying the owning rule.
type Criterion = map[string]any

// Rule is a raw rule node: "name", "behaviors", "criteria", "children".
type Rule = map[string]any

// ErrMalformedRule reports a rule node that is missing one of its
// required list members.
var ErrMalformedRule = errors.New("malformed rule node")

// Index holds the flattened views of a rule tree. Buckets preserve
// document order; the index has no lifecycle beyond the call that built
// it.
type Index struct {
	BehaviorsByName map[string][]Behavior
	CriteriaByName  map[string][]Criterion
}

// FlattenDocument flattens the rules document returned by the property
// API. A nil document produces an empty index; a document without a
// "rules" member is malformed.
func FlattenDocument(doc map[string]any) (*Index, error) {
	if doc == nil {
		return Flatten(nil)
	}
	root, ok := doc["rules"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: document has no rules member", ErrMalformedRule)
	}
	return Flatten(root)
}

// Flatten walks the tree rooted at root depth-first in pre-order and
// indexes every behavior and criterion by name. Criteria are annotated
// with the name of their owning rule before being bucketed. A nil root
// yields an index with two empty mappings.
//
// The walk uses an explicit stack so tree depth is not limited by the
// call stack. Cycle detection is the producer's problem; the input is
// assumed acyclic.
func Flatten(root Rule) (*Index, error) {
	idx := &Index{
		BehaviorsByName: make(map[string][]Behavior),
		CriteriaByName:  make(map[string][]Criterion),
	}
	if root == nil {
		return idx, nil
	}

	stack := []Rule{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := idx.visit(node); err != nil {
			return nil, err
		}
		children, err := listMember(node, "children")
		if err != nil {
			return nil, err
		}
		// Reversed so the first child is processed first.
		for i := len(children) - 1; i >= 0; i-- {
			child, ok := children[i].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: rule %q has a non-object child", ErrMalformedRule, ruleName(node))
			}
			stack = append(stack, child)
		}
	}
	return idx, nil
}

func (idx *Index) visit(node Rule) error {
	behaviors, err := listMember(node, "behaviors")
	if err != nil {
		return err
	}
	for _, raw := range behaviors {
		b, name, err := namedEntry(node, "behavior", raw)
		if err != nil {
			return err
		}
		idx.BehaviorsByName[name] = append(idx.BehaviorsByName[name], b)
	}

	criteria, err := listMember(node, "criteria")
	if err != nil {
		return err
	}
	for _, raw := range criteria {
		c, name, err := namedEntry(node, "criterion", raw)
		if err != nil {
			return err
		}
		c["rulename"] = ruleName(node)
		idx.CriteriaByName[name] = append(idx.CriteriaByName[name], c)
	}
	return nil
}

// listMember fetches a required list member of a rule node. An absent or
// non-list member is a malformed-input error, propagated rather than
// skipped.
func listMember(node Rule, key string) ([]any, error) {
	v, ok := node[key]
	if !ok {
		return nil, fmt.Errorf("%w: rule %q has no %s list", ErrMalformedRule, ruleName(node), key)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: rule %q member %s is not a list", ErrMalformedRule, ruleName(node), key)
	}
	return list, nil
}

func namedEntry(node Rule, kind string, raw any) (map[string]any, string, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return nil, "", fmt.Errorf("%w: rule %q has a non-object %s", ErrMalformedRule, ruleName(node), kind)
	}
	name := jsonutil.CoerceString(entry["name"])
	if name == "" {
		return nil, "", fmt.Errorf("%w: rule %q has a %s without a name", ErrMalformedRule, ruleName(node), kind)
	}
	return entry, name, nil
}

func ruleName(node Rule) string {
	return jsonutil.CoerceString(node["name"])
}
