// SPDX-License-Identifier: MIT

package mcpserver_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsteps/internal/config"
	"github.com/katalvlaran/linsteps/internal/mcpserver"
)

// connect starts a server on an in-memory transport and returns a client session.
func connect(t *testing.T, cfg config.Config) *mcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	srv := mcpserver.New(cfg, nil, "test")
	go func() { _ = srv.Run(ctx, serverTransport) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

// callTool invokes name and decodes its structured output into T.
func callTool[T any](t *testing.T, session *mcp.ClientSession, name string, args map[string]any) T {
	t.Helper()

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Falsef(t, res.IsError, "%s failed: %+v", name, res.Content)

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))

	return out
}

// callToolError invokes name and requires a tool error.
func callToolError(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) {
	t.Helper()

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Truef(t, res.IsError, "%s should fail", name)
}

func TestListTools(t *testing.T) {
	session := connect(t, config.Default())

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		mcpserver.ToolInverse, mcpserver.ToolRREF, mcpserver.ToolDeterminant, mcpserver.ToolRank,
		mcpserver.ToolMultiply, mcpserver.ToolSolve, mcpserver.ToolCramer, mcpserver.ToolPower,
	}, names)
}

func TestInverseTool(t *testing.T) {
	session := connect(t, config.Default())

	out := callTool[mcpserver.InverseOutput](t, session, mcpserver.ToolInverse, map[string]any{
		"matrix": [][]float64{{1, 2}, {3, 4}},
	})
	assert.True(t, out.Exists)
	assert.Equal(t, "-2", out.Determinant)
	require.NotNil(t, out.Inverse)
	assert.Equal(t, [][]string{{"-2", "1"}, {"3/2", "-1/2"}}, out.Inverse.Rational)
	assert.Equal(t, [][]float64{{-2, 1}, {1.5, -0.5}}, out.Inverse.Decimal)
	require.Len(t, out.Steps, 4)
	assert.Equal(t, "Step 1: Find the Determinant", out.Steps[0].Title)

	singular := callTool[mcpserver.InverseOutput](t, session, mcpserver.ToolInverse, map[string]any{
		"matrix": [][]float64{{1, 2}, {2, 4}},
	})
	assert.False(t, singular.Exists)
	assert.Nil(t, singular.Inverse)
}

func TestInverseTool_Spanish(t *testing.T) {
	session := connect(t, config.Default())

	out := callTool[mcpserver.InverseOutput](t, session, mcpserver.ToolInverse, map[string]any{
		"matrix":   [][]float64{{2}},
		"language": "es",
	})
	assert.Equal(t, "Paso 1: Calcular el determinante", out.Steps[0].Title)
}

func TestRREFAndRankTools(t *testing.T) {
	session := connect(t, config.Default())

	rref := callTool[mcpserver.RREFOutput](t, session, mcpserver.ToolRREF, map[string]any{
		"matrix": [][]float64{{1, 2}, {3, 4}},
	})
	assert.Equal(t, [][]string{{"1", "0"}, {"0", "1"}}, rref.RREF.Rational)
	assert.Equal(t, []int{0, 1}, rref.PivotColumns)
	// 3 top-level steps plus 3 row-operation sub-steps
	require.Len(t, rref.Steps, 6)
	assert.Equal(t, 1, rref.Steps[2].Depth)

	rank := callTool[mcpserver.RankOutput](t, session, mcpserver.ToolRank, map[string]any{
		"matrix": [][]float64{{1, 2}, {2, 4}},
	})
	assert.Equal(t, 1, rank.Rank)
}

func TestDeterminantTool(t *testing.T) {
	session := connect(t, config.Default())

	out := callTool[mcpserver.DeterminantOutput](t, session, mcpserver.ToolDeterminant, map[string]any{
		"matrix": [][]float64{{0.5, 1}, {1.5, 4}},
	})
	assert.Equal(t, "1/2", out.Determinant)
	assert.Equal(t, 0.5, out.Decimal)
	assert.False(t, out.Singular)
}

func TestDeterminantTool_RespectsCap(t *testing.T) {
	cfg := config.Default()
	cfg.MaxCofactorSize = 2
	session := connect(t, cfg)

	callToolError(t, session, mcpserver.ToolDeterminant, map[string]any{
		"matrix": [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	})
}

func TestMultiplyTool(t *testing.T) {
	session := connect(t, config.Default())

	out := callTool[mcpserver.MultiplyOutput](t, session, mcpserver.ToolMultiply, map[string]any{
		"a": [][]float64{{1, 2}, {3, 4}},
		"b": [][]float64{{5, 6}, {7, 8}},
	})
	assert.Equal(t, [][]string{{"19", "22"}, {"43", "50"}}, out.Result.Rational)

	callToolError(t, session, mcpserver.ToolMultiply, map[string]any{
		"a": [][]float64{{1, 2}},
		"b": [][]float64{{1, 2}},
	})
}

func TestSolveAndCramerTools(t *testing.T) {
	session := connect(t, config.Default())
	args := map[string]any{
		"matrix":    [][]float64{{1, 1}, {1, -1}},
		"constants": []float64{3, 1},
	}

	sys := callTool[mcpserver.SystemOutput](t, session, mcpserver.ToolSolve, args)
	assert.True(t, sys.HasSolution)
	assert.False(t, sys.IsInfinite)
	assert.Equal(t, []mcpserver.AssignmentOutput{
		{Variable: "x", Value: "2", Decimal: 2},
		{Variable: "y", Value: "1", Decimal: 1},
	}, sys.Solution)

	cr := callTool[mcpserver.CramerOutput](t, session, mcpserver.ToolCramer, args)
	assert.True(t, cr.HasSolution)
	assert.Equal(t, "-2", cr.Determinant)
	assert.Equal(t, sys.Solution, cr.Solution)

	none := callTool[mcpserver.SystemOutput](t, session, mcpserver.ToolSolve, map[string]any{
		"matrix":    [][]float64{{1, 1}, {2, 2}},
		"constants": []float64{1, 3},
	})
	assert.False(t, none.HasSolution)
	assert.Empty(t, none.Solution)

	callToolError(t, session, mcpserver.ToolSolve, map[string]any{
		"matrix":    [][]float64{{1, 1}, {2, 2}},
		"constants": []float64{1},
	})
}

func TestPowerTool(t *testing.T) {
	session := connect(t, config.Default())

	out := callTool[mcpserver.PowerOutput](t, session, mcpserver.ToolPower, map[string]any{
		"matrix":   [][]float64{{1, 1}, {0, 1}},
		"exponent": 3,
	})
	assert.Equal(t, 3, out.Power)
	assert.Equal(t, [][]string{{"1", "3"}, {"0", "1"}}, out.Result.Rational)

	for _, bad := range []float64{-1, 2.5} {
		callToolError(t, session, mcpserver.ToolPower, map[string]any{
			"matrix":   [][]float64{{1, 1}, {0, 1}},
			"exponent": bad,
		})
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	srv := mcpserver.New(config.Default(), nil, "test")
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Run(ctx, serverTransport) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	cancel()
	select {
	case err := <-serveErr:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}
