package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/pkg/slogx"
)

// PhoneValidator decides whether a single phone number is acceptable for a firm.
type PhoneValidator interface {
	ValidPhone(ctx context.Context, firm domain.Firm, phone string) bool
}

// PhoneRules is the default PhoneValidator. Firms without a PhoneRule accept
// any number that does not contain "invalid". A firm PhoneRule is a CEL
// expression over `phone` (string) that must evaluate to a bool; compiled
// programs are cached by expression.
type PhoneRules struct {
	programs sync.Map // expr -> cel.Program
}

var _ PhoneValidator = (*PhoneRules)(nil)

func (r *PhoneRules) ValidPhone(ctx context.Context, firm domain.Firm, phone string) bool {
	if firm.PhoneRule == "" {
		return defaultPhoneValid(phone)
	}

	ok, err := r.eval(firm.PhoneRule, phone)
	if err != nil {
		slogx.FromContext(ctx).Warn("phone rule failed, rejecting number",
			"firm_id", firm.ID,
			"error", err,
		)
		return false
	}
	return ok
}

func defaultPhoneValid(phone string) bool {
	return phone != "" && !strings.Contains(strings.ToLower(phone), "invalid")
}

func (r *PhoneRules) eval(expr, phone string) (bool, error) {
	program, err := r.program(expr)
	if err != nil {
		return false, err
	}
	out, _, err := program.Eval(map[string]any{"phone": phone})
	if err != nil {
		return false, err
	}
	v, ok := out.Value().(bool)
	if !ok {
		return false, errors.New("phone rule did not return a bool")
	}
	return v, nil
}

func (r *PhoneRules) program(expr string) (cel.Program, error) {
	if cached, ok := r.programs.Load(expr); ok {
		return cached.(cel.Program), nil
	}
	program, err := CompilePhoneRule(expr)
	if err != nil {
		return nil, err
	}
	r.programs.Store(expr, program)
	return program, nil
}

// CompilePhoneRule type-checks a firm phone rule.
func CompilePhoneRule(expr string) (cel.Program, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, errors.New("phone rule is empty")
	}
	env, err := cel.NewEnv(cel.Variable("phone", cel.StringType))
	if err != nil {
		return nil, err
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile phone rule: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, errors.New("phone rule must return a bool")
	}
	return env.Program(ast)
}

// PhoneFilter reduces raw phone numbers to the accepted ones.
type PhoneFilter struct {
	Validator PhoneValidator
}

// NewPhoneFilter returns a filter backed by PhoneRules.
func NewPhoneFilter() *PhoneFilter {
	return &PhoneFilter{Validator: &PhoneRules{}}
}

// Filter returns the accepted numbers in their original order. Nil and empty
// entries are dropped without consulting the validator.
func (f *PhoneFilter) Filter(ctx context.Context, firm domain.Firm, raw []*string) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == nil || *p == "" {
			continue
		}
		if f.Validator.ValidPhone(ctx, firm, *p) {
			out = append(out, *p)
		}
	}
	return out
}

// PhoneDisplay joins every non-nil raw number, accepted or not, with ", ".
// Empty strings are kept, so ["", "555"] displays as ", 555".
func PhoneDisplay(raw []*string) string {
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, ", ")
}
