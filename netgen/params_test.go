package netgen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgen/netgen"
)

// e2eParams is the canonical NETGEN sample problem.
var e2eParams = netgen.Params{
	Nodes: 512, Sources: 10, Sinks: 10, Density: 2000,
	MinCost: 5, MaxCost: 500, Supply: 1000,
	TSources: 3, TSinks: 3,
	HiCostPct: 20, CapacitatedPct: 80,
	MinCap: 50, MaxCap: 2000,
}

func TestFromSlice_RoundTrip(t *testing.T) {
	t.Parallel()

	v := []int64{512, 10, 10, 2000, 5, 500, 1000, 3, 3, 20, 80, 50, 2000}
	p, err := netgen.FromSlice(v)
	require.NoError(t, err)
	assert.Equal(t, e2eParams, p)
	assert.Equal(t, v, p.Slice())
	assert.Len(t, netgen.FieldNames(), netgen.NumParams)
}

func TestFromSlice_WrongLength(t *testing.T) {
	t.Parallel()

	_, err := netgen.FromSlice([]int64{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, netgen.ErrInvalidParameter))

	var pe *netgen.ParamError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "params", pe.Field)
	assert.Equal(t, int64(3), pe.Value)
}

func TestValidate_Rules(t *testing.T) {
	t.Parallel()

	mod := func(f func(p *netgen.Params)) netgen.Params {
		p := e2eParams
		f(&p)
		return p
	}
	cases := []struct {
		name  string
		p     netgen.Params
		field string
	}{
		{"negative mincost", mod(func(p *netgen.Params) { p.MinCost = -1 }), "mincost"},
		{"too large maxcap", mod(func(p *netgen.Params) { p.MaxCap = netgen.MaxParam + 1 }), "maxcap"},
		{"zero nodes", mod(func(p *netgen.Params) { p.Nodes = 0 }), "nodes"},
		{"zero sources", mod(func(p *netgen.Params) { p.Sources = 0 }), "sources"},
		{"zero sinks", mod(func(p *netgen.Params) { p.Sinks = 0 }), "sinks"},
		{"zero density", mod(func(p *netgen.Params) { p.Density = 0 }), "density"},
		{"too few nodes", mod(func(p *netgen.Params) { p.Nodes = 19 }), "nodes"},
		{"node ceiling", mod(func(p *netgen.Params) { p.Nodes = netgen.MaxNodes + 1 }), "nodes"},
		{"node ceiling at max param", mod(func(p *netgen.Params) { p.Nodes = netgen.MaxParam }), "nodes"},
		{"cost range", mod(func(p *netgen.Params) { p.MinCost = 501 }), "mincost"},
		{"cap range", mod(func(p *netgen.Params) { p.MinCap = 2001 }), "mincap"},
		{"short supply", mod(func(p *netgen.Params) { p.Supply = 9 }), "supply"},
		{"tsources", mod(func(p *netgen.Params) { p.TSources = 11 }), "tsources"},
		{"tsinks", mod(func(p *netgen.Params) { p.TSinks = 11 }), "tsinks"},
		{"hicost", mod(func(p *netgen.Params) { p.HiCostPct = 101 }), "hicost"},
		{"capacitated", mod(func(p *netgen.Params) { p.CapacitatedPct = 101 }), "capacitated"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.p.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, netgen.ErrInvalidParameter))
			var pe *netgen.ParamError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.field, pe.Field)
		})
	}

	require.NoError(t, e2eParams.Validate())
}

func TestValidate_NodeCeilingBeforeAllocation(t *testing.T) {
	t.Parallel()

	p := netgen.Params{Nodes: netgen.MaxParam, Sources: 1, Sinks: 1, Density: 1, MinCost: 1, MaxCost: 1, Supply: 1, MinCap: 1, MaxCap: 1}
	res, err := netgen.Generate(1, p)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, netgen.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "must not exceed")

	p.Nodes = netgen.MaxNodes
	assert.NoError(t, p.Validate())
}

// TestValidate_DensityBelowNodes accepts sparse requests; the skeleton alone
// then determines the arc count.
func TestValidate_DensityBelowNodes(t *testing.T) {
	t.Parallel()

	p := netgen.Params{Nodes: 100, Sources: 1, Sinks: 1, Density: 10, MinCost: 1, MaxCost: 5, Supply: 10, MinCap: 1, MaxCap: 5}
	assert.NoError(t, p.Validate())
}

func TestKind_Classification(t *testing.T) {
	t.Parallel()

	asn := netgen.Params{Nodes: 100, Sources: 50, Sinks: 50, Density: 500, MinCost: 1, MaxCost: 10, Supply: 50, MinCap: 1, MaxCap: 1}
	assert.Equal(t, netgen.Assignment, asn.Kind())

	maxFlow := netgen.Params{Nodes: 100, Sources: 5, Sinks: 6, Density: 500, MinCost: 1, MaxCost: 1, Supply: 50, MinCap: 1, MaxCap: 10}
	assert.Equal(t, netgen.MaxFlow, maxFlow.Kind())

	// unit costs on an assignment layout still classify as assignment
	asnUnit := asn
	asnUnit.MaxCost = 1
	assert.Equal(t, netgen.Assignment, asnUnit.Kind())

	// transshipment nodes break the assignment layout
	notAsn := asn
	notAsn.TSources = 1
	assert.Equal(t, netgen.MinCostFlow, notAsn.Kind())

	notAsn = asn
	notAsn.Supply = 51
	assert.Equal(t, netgen.MinCostFlow, notAsn.Kind())

	assert.Equal(t, netgen.MinCostFlow, e2eParams.Kind())
}

func TestProblemKind_Tokens(t *testing.T) {
	t.Parallel()

	for _, k := range []netgen.ProblemKind{netgen.Assignment, netgen.MaxFlow, netgen.MinCostFlow} {
		got, ok := netgen.KindFromToken(k.Token())
		require.True(t, ok)
		assert.Equal(t, k, got)
		assert.NotEqual(t, "unknown", k.String())
	}
	_, ok := netgen.KindFromToken("sp")
	assert.False(t, ok)
	assert.Equal(t, "asn", netgen.Assignment.Token())
	assert.Equal(t, "max", netgen.MaxFlow.Token())
	assert.Equal(t, "min", netgen.MinCostFlow.Token())
}

func TestPartition_Roles(t *testing.T) {
	t.Parallel()

	pt := e2eParams.Partition()
	assert.Equal(t, netgen.Range{First: 1, Last: 7}, pt.PureSources)
	assert.Equal(t, netgen.Range{First: 8, Last: 10}, pt.TransSources)
	assert.Equal(t, netgen.Range{First: 11, Last: 502}, pt.Interior)
	assert.Equal(t, netgen.Range{First: 503, Last: 505}, pt.TransSinks)
	assert.Equal(t, netgen.Range{First: 506, Last: 512}, pt.PureSinks)
	assert.Equal(t, netgen.Range{First: 8, Last: 512}, pt.Heads())
	assert.Equal(t, netgen.Range{First: 1, Last: 505}, pt.Tails())

	assert.Equal(t, netgen.RolePureSource, pt.Role(1))
	assert.Equal(t, netgen.RoleTransSource, pt.Role(9))
	assert.Equal(t, netgen.RoleInterior, pt.Role(300))
	assert.Equal(t, netgen.RoleTransSink, pt.Role(504))
	assert.Equal(t, netgen.RolePureSink, pt.Role(512))
	assert.Equal(t, netgen.RoleNone, pt.Role(0))
	assert.Equal(t, netgen.RoleNone, pt.Role(513))

	total := pt.PureSources.Len() + pt.TransSources.Len() + pt.Interior.Len() +
		pt.TransSinks.Len() + pt.PureSinks.Len()
	assert.Equal(t, 512, total)

	// no interior nodes
	noInterior := netgen.Params{Nodes: 6, Sources: 3, Sinks: 3}.Partition()
	assert.Equal(t, 0, noInterior.Interior.Len())
}
