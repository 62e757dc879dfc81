package satsolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDPLLSolvesSimpleSatisfiableFormula(t *testing.T) {
	d := NewDPLL()
	a := d.NewVar()
	b := d.NewVar()
	d.AddClause(a, b)
	d.AddClause(-a, b)

	sat, err := d.Solve()
	require.NoError(t, err)
	require.True(t, sat)

	model := d.Model()
	require.Len(t, model, 2)
	assert.True(t, model[b-1])
}

func TestDPLLReportsUnsatWhenFormulaContradicts(t *testing.T) {
	d := NewDPLL()
	a := d.NewVar()
	d.AddClause(a)
	d.AddClause(-a)

	sat, err := d.Solve()
	require.NoError(t, err)
	assert.False(t, sat)
	assert.Nil(t, d.Model())
}

func TestDPLLAccumulatesClausesAcrossSolveCalls(t *testing.T) {
	d := NewDPLL()
	a := d.NewVar()
	d.AddClause(a, -a) // tautology, keeps a free for the first Solve

	sat, err := d.Solve()
	require.NoError(t, err)
	require.True(t, sat)

	d.AddClause(-a)
	sat, err = d.Solve()
	require.NoError(t, err)
	require.True(t, sat)
	assert.False(t, d.Model()[a-1])
}
