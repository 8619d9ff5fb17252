// Package validate checks configuration entries against an ordered list of
// CEL rules.
package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/aescanero/seattlewaste-opts/internal/eval/cel"
)

// ErrRuleFailed is returned when an entry does not satisfy a rule.
var ErrRuleFailed = errors.New("rule failed")

// Rule is a named CEL condition every entry must satisfy. Field names the
// entry field the rule is about and is reported back on failure.
type Rule struct {
	Name       string
	Field      string
	Expression string
	Message    string
}

// DefaultRules returns the rules applied to every slug mapping.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:       "slug-required",
			Field:      "slug",
			Expression: `size(mapping.slug) > 0`,
			Message:    "slug is required",
		},
		{
			Name:       "slug-no-whitespace",
			Field:      "slug",
			Expression: `!mapping.slug.matches('\\s')`,
			Message:    "slug must not contain whitespace",
		},
		{
			Name:       "address-required",
			Field:      "address",
			Expression: `size(mapping.address) > 0`,
			Message:    "address is required",
		},
	}
}

// RuleError describes the first rule an entry failed.
type RuleError struct {
	Rule  Rule
	Index int
}

func (e *RuleError) Error() string {
	msg := e.Rule.Message
	if msg == "" {
		msg = fmt.Sprintf("condition %q not satisfied", e.Rule.Expression)
	}
	return fmt.Sprintf("%s: %s", e.Rule.Name, msg)
}

func (e *RuleError) Unwrap() error {
	return ErrRuleFailed
}

// Validator evaluates rules in order against entries.
type Validator struct {
	rules     []Rule
	evaluator *cel.Evaluator
}

// New compiles rules up front so a broken expression is reported before any
// entry is checked.
func New(rules ...Rule) (*Validator, error) {
	evaluator, err := cel.NewEvaluator()
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if rule.Name == "" {
			return nil, fmt.Errorf("rule with expression %q has no name", rule.Expression)
		}
		if err := evaluator.ValidateExpression(rule.Expression); err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.Name, err)
		}
	}

	return &Validator{
		rules:     append([]Rule(nil), rules...),
		evaluator: evaluator,
	}, nil
}

// Rules returns the rules the validator applies.
func (v *Validator) Rules() []Rule {
	return append([]Rule(nil), v.rules...)
}

// Check evaluates every rule against fields and returns a *RuleError for the
// first one that does not hold. Evaluation failures are returned as-is.
func (v *Validator) Check(ctx context.Context, index int, fields map[string]interface{}) error {
	vars := map[string]interface{}{
		"mapping": fields,
		"index":   index,
	}

	for _, rule := range v.rules {
		ok, err := v.evaluator.EvaluateBool(ctx, rule.Expression, vars)
		if err != nil {
			return fmt.Errorf("rule %s: %w", rule.Name, err)
		}
		if !ok {
			return &RuleError{Rule: rule, Index: index}
		}
	}

	return nil
}
