package evaluator

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calclang/pkg/binding"
	"calclang/pkg/diagnostics"
	"calclang/pkg/syntax"
	"calclang/pkg/value"
)

// run parses, binds and evaluates src against env and returns the value with
// every diagnostic reported after parsing.
func run(t *testing.T, src string, env *value.Environment) (value.Value, []string) {
	t.Helper()
	tree := syntax.Parse(src)
	require.Empty(t, tree.Diagnostics, "parse %q", src)
	diags := diagnostics.New()
	bound := binding.Bind(diags, env, tree.Root)
	return Evaluate(bound, diags, env), diags.Messages()
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input    string
		expected value.Value
	}{
		{"1", value.Number(1)},
		{"+1", value.Number(1)},
		{"-1", value.Number(-1)},
		{"1 + 2", value.Number(3)},
		{"1 - 2", value.Number(-1)},
		{"1 - 2 - 3", value.Number(-4)},
		{"1 * 2", value.Number(2)},
		{"6 / 3", value.Number(2)},
		{"1 / 4", value.Number(0.25)},
		{"2 ** 3", value.Number(8)},
		{"2 ** 3 ** 2", value.Number(64)},
		{"-2 ** 2", value.Number(4)},
		{"(1 + 2) * 3", value.Number(9)},
		{"1 == 1", value.Bool(true)},
		{"1 == 2", value.Bool(false)},
		{"1 != 1", value.Bool(false)},
		{"1 != 2", value.Bool(true)},
		{"1 < 2", value.Bool(true)},
		{"1 > 2", value.Bool(false)},
		{"1 <= 1", value.Bool(true)},
		{"1 >= 1", value.Bool(true)},
		{"true == false", value.Bool(false)},
		{"true != false", value.Bool(true)},
		{"a = 10", value.Number(10)},
		{"(a = 10) * a", value.Number(100)},
		{"a = b = 3", value.Number(3)},
		{"{ a = 2; a * 5 }", value.Number(10)},
		{"if (1 < 2) 10 else 20", value.Number(10)},
		{"if (1 > 2) 10 else 20", value.Number(20)},
		{"if (false) 1", value.Number(0)},
		{"{}", value.Number(0)},
		{"", value.Number(0)},
		{"TAU / PI", value.Number(2)},
		{"1 / 0", value.Number(math.Inf(1))},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, diags := run(t, tt.input, value.NewEnvironment())
			require.Empty(t, diags)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluate_ZeroDividedByZeroIsNaN(t *testing.T) {
	got, diags := run(t, "0 / 0", value.NewEnvironment())
	require.Empty(t, diags)
	n, ok := got.(value.Number)
	require.True(t, ok)
	assert.True(t, math.IsNaN(float64(n)))
}

func TestEvaluate_VariablesPersistAcrossPrograms(t *testing.T) {
	env := value.NewEnvironment()

	got, diags := run(t, "a = 10", env)
	require.Empty(t, diags)
	assert.Equal(t, value.Number(10), got)

	stored, ok := env.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, value.Number(10), stored)

	got, diags = run(t, "a * 2", env)
	require.Empty(t, diags)
	assert.Equal(t, value.Number(20), got)

	got, diags = run(t, "a = a < 5", env)
	require.Empty(t, diags)
	assert.Equal(t, value.Bool(false), got, "a variable can change type")
}

func TestEvaluate_OnlyExecutedBranchAssigns(t *testing.T) {
	env := value.NewEnvironment()
	_, diags := run(t, "if (true) x = 1 else y = 2", env)
	require.Empty(t, diags)
	assert.Equal(t, []string{"x"}, env.Names())
}

func TestEvaluate_BadNodes(t *testing.T) {
	tests := []struct {
		name     string
		root     binding.Stmt
		expected []string
	}{
		{
			name:     "Bad statement",
			root:     &binding.BadStmt{},
			expected: []string{"Cannot execute invalid statement."},
		},
		{
			name:     "Bad expression",
			root:     &binding.ExprStmt{Expr: &binding.BadExpr{}},
			expected: []string{"Cannot evaluate invalid expression."},
		},
		{
			name: "Bad expressions inside a block are each reported",
			root: &binding.BlockStmt{Stmts: []binding.Stmt{
				&binding.ExprStmt{Expr: &binding.BadExpr{}},
				&binding.ExprStmt{Expr: &binding.LiteralExpr{Value: value.Number(1)}},
				&binding.BadStmt{},
			}},
			expected: []string{
				"Cannot evaluate invalid expression.",
				"Cannot execute invalid statement.",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := diagnostics.New()
			got := Evaluate(tt.root, diags, value.NewEnvironment())
			assert.Equal(t, value.Zero, got)
			if diff := cmp.Diff(tt.expected, diags.Messages()); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestEvaluate_RuntimeTypeMismatch covers trees bound against an environment
// that changed before they ran.
func TestEvaluate_RuntimeTypeMismatch(t *testing.T) {
	num := value.NumberType
	x := &binding.VariableExpr{Name: "x", Typ: num}
	one := &binding.LiteralExpr{Value: value.Number(1)}

	tests := []struct {
		name     string
		root     binding.Stmt
		expected string
	}{
		{
			name: "Binary",
			root: &binding.ExprStmt{Expr: &binding.BinaryExpr{
				Left: x, Op: binding.LookupBinaryOperator(syntax.PLUS, num, num), Right: one,
			}},
			expected: "Operator '+' is not defined for types 'boolean' and 'number'.",
		},
		{
			name: "Unary",
			root: &binding.ExprStmt{Expr: &binding.UnaryExpr{
				Op: binding.LookupUnaryOperator(syntax.MINUS, num), Operand: x,
			}},
			expected: "Unary operator '-' is not defined for type 'boolean'.",
		},
		{
			name: "Condition",
			root: &binding.IfStmt{
				Condition: &binding.VariableExpr{Name: "n", Typ: value.BooleanType},
				Body:      &binding.ExprStmt{Expr: one},
			},
			expected: "Condition must be of type 'boolean', got 'number'.",
		},
		{
			name:     "Missing variable",
			root:     &binding.ExprStmt{Expr: &binding.VariableExpr{Name: "gone", Typ: num}},
			expected: "Variable 'gone' is not defined.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := value.NewEnvironment()
			env.Assign("x", value.Bool(true))
			env.Assign("n", value.Number(1))

			diags := diagnostics.New()
			got := Evaluate(tt.root, diags, env)
			assert.Equal(t, value.Zero, got)
			assert.Equal(t, []string{tt.expected}, diags.Messages())
		})
	}
}

func TestEvaluate_EqualityAcrossRuntimeTypes(t *testing.T) {
	num := value.NumberType
	env := value.NewEnvironment()
	env.Assign("x", value.Bool(true))

	root := &binding.ExprStmt{Expr: &binding.BinaryExpr{
		Left:  &binding.VariableExpr{Name: "x", Typ: num},
		Op:    binding.LookupBinaryOperator(syntax.NOT_EQ, num, num),
		Right: &binding.LiteralExpr{Value: value.Number(1)},
	}}
	diags := diagnostics.New()
	assert.Equal(t, value.Bool(true), Evaluate(root, diags, env))
	assert.True(t, diags.Empty())
}

func TestEvaluate_NonBooleanConditionReportedOnce(t *testing.T) {
	got, diags := run(t, "if (1) 2", value.NewEnvironment())
	assert.Equal(t, value.Zero, got)
	assert.Equal(t, []string{"Condition must be of type 'boolean', got 'number'."}, diags)
}
