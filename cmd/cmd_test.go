package cmd

import (
	"bytes"
	"testing"

	"github.com/gitnlsn/ncas/internal/script"
	"github.com/gitnlsn/ncas/ncaserr"
	"github.com/gitnlsn/ncas/rewrite"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const suite = `
- name: square of a sum
  lhs: expr.Pow(expr.Add(expr.Var("a"), expr.Var("b")), expr.Int(2))
  rhs: expr.NewAddition(expr.Pow(expr.Var("a"), expr.Int(2)), expr.NewMultiplication(expr.Int(2), expr.Var("a"), expr.Var("b")), expr.Pow(expr.Var("b"), expr.Int(2)))
- name: unit fractions
  lhs: expr.NewAddition(expr.Div(expr.Int(1), expr.Int(2)), expr.Div(expr.Int(1), expr.Int(3)))
  rhs: expr.Int(1)
  relation: lesser
- name: canonical order
  lhs: expr.Add(expr.Var("b"), expr.Var("a"))
  rhs: expr.Add(expr.Var("a"), expr.Var("b"))
  relation: structural
`

const failingSuite = `
- name: wrong
  lhs: expr.Int(2)
  rhs: expr.Int(3)
  relation: greater
- name: free variables
  lhs: expr.Var("a")
  rhs: expr.Var("b")
- name: broken script
  lhs: expr.Nope()
  rhs: expr.Int(1)
- name: both sides broken
  lhs: expr.Nope()
  rhs: expr.Nada()
`

func withFs(t *testing.T, files map[string]string) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	previous := Fs
	Fs = fs
	t.Cleanup(func() { Fs = previous })
}

func TestCheckSuite(t *testing.T) {
	withFs(t, map[string]string{"suite.yaml": suite})
	out := &bytes.Buffer{}
	CheckCmd.SetOut(out)
	CheckCmd.SetArgs([]string{"suite.yaml"})

	require.NoError(t, CheckCmd.Execute())
	assert.Contains(t, out.String(), "ok   square of a sum")
	assert.Contains(t, out.String(), "ok   unit fractions")
	assert.Contains(t, out.String(), "ok   canonical order")
}

func TestCheckSuiteFailures(t *testing.T) {
	withFs(t, map[string]string{"failing.yaml": failingSuite})
	out := &bytes.Buffer{}
	CheckCmd.SetOut(out)
	CheckCmd.SetErr(&bytes.Buffer{})
	CheckCmd.SetArgs([]string{"failing.yaml"})

	err := CheckCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 of 4 identities failed")
	assert.Contains(t, err.Error(), "5 error(s) occurred")
	assert.Contains(t, out.String(), "FAIL wrong")
	assert.Contains(t, out.String(), "FAIL free variables")
	assert.Contains(t, out.String(), "FAIL broken script")
	assert.Contains(t, out.String(), "FAIL both sides broken")
	assert.Contains(t, out.String(), "expr.Nada()")
}

func TestCheckCaseCollectsBothSides(t *testing.T) {
	interpreter, err := script.New()
	require.NoError(t, err)
	simplifier := rewrite.NewSimplifier(rewrite.DefaultConfig())

	errs := checkCase(interpreter, simplifier, identityCase{Name: "broken", Lhs: "expr.Nope()", Rhs: "expr.Nada()", Relation: "equal"})
	require.Len(t, errs.Errors(), 2)
	for _, e := range errs.Errors() {
		assert.Equal(t, ncaserr.Script, e.Code())
	}

	assert.False(t, checkCase(interpreter, simplifier, identityCase{Name: "fine", Lhs: "expr.Int(1)", Rhs: "expr.Int(1)", Relation: "equal"}).HasError())
}

func TestLoadSuite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "ok.yaml", []byte(`[{lhs: "expr.Int(1)", rhs: "expr.Int(1)"}]`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte(`[{lhs: "expr.Int(1)", rhs: "expr.Int(1)", relation: "about"}]`), 0o644))

	cases, err := loadSuite(fs, "ok.yaml")
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "equal", cases[0].Relation)
	assert.Equal(t, "case 1", cases[0].Name)

	_, err = loadSuite(fs, "bad.yaml")
	assert.Equal(t, ncaserr.Suite, ncaserr.CodeOf(err))

	_, err = loadSuite(fs, "missing.yaml")
	assert.Equal(t, ncaserr.Suite, ncaserr.CodeOf(err))
}

func TestEval(t *testing.T) {
	// flag values stick between executions, so cases only ever add bindings
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "unbound",
			args:     []string{`expr.Add(expr.Var("a"), expr.Var("a"))`},
			expected: []string{"simplified: (2 * a)", "value:      unbound a"},
		},
		{
			name: "bound",
			args: []string{"--bind", "a=2", `expr.Pow(expr.Add(expr.Var("a"), expr.Int(1)), expr.Int(2))`},
			expected: []string{
				"input:      ((1 + a) ^ 2)",
				"variables:  a",
				"value:      9",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			EvalCmd.SetOut(out)
			EvalCmd.SetArgs(tt.args)
			require.NoError(t, EvalCmd.Execute())
			for _, line := range tt.expected {
				assert.Contains(t, out.String(), line)
			}
		})
	}
}

func TestParseBindings(t *testing.T) {
	bindings, err := parseBindings(map[string]string{"x": "1.5", "y": "-2"})
	require.NoError(t, err)
	assert.Equal(t, 1.5, bindings["x"])
	assert.Equal(t, -2.0, bindings["y"])

	_, err = parseBindings(map[string]string{"x": "one"})
	assert.Error(t, err)
}
