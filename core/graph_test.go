package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/drawsim/core"
)

func team(id, country string) core.Team {
	return core.Team{ID: id, Name: "Team " + id, Country: country, Association: "UEFA"}
}

type GraphSuite struct {
	suite.Suite
	a, b, c, d core.Team
	g          *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.a, s.b, s.c, s.d = team("A", "X"), team("B", "Y"), team("C", "X"), team("D", "Y")
	g, err := core.BuildGraph(nil, []core.Game{
		{Home: s.a, Away: s.b},
		{Home: s.c, Away: s.d},
		{Home: s.a, Away: s.c},
		{Home: s.b, Away: s.a}, // return leg
	})
	s.Require().NoError(err)
	s.g = g
}

func (s *GraphSuite) TestHandlesFollowFirstAppearance() {
	require := require.New(s.T())
	require.Equal(4, s.g.Len())
	require.Equal(4, s.g.Size())
	for i, id := range []string{"A", "B", "C", "D"} {
		h, ok := s.g.Handle(id)
		require.True(ok)
		require.Equal(i, h, "handle of %s", id)
		require.Equal(id, s.g.Team(h).ID)
	}
	_, ok := s.g.Handle("Z")
	require.False(ok)
}

func (s *GraphSuite) TestEdgesAndDegrees() {
	require := require.New(s.T())
	require.Equal([][2]int{{0, 1}, {2, 3}, {0, 2}, {1, 0}}, s.g.Edges())
	require.Equal(3, s.g.Degree(0), "A plays B twice and C once")
	require.Equal([]int{0, 2, 3}, s.g.GamesOf(0))
	require.Equal(s.b.ID, s.g.Game(3).Home.ID)

	// copies must not alias internal state
	edges := s.g.Edges()
	edges[0] = [2]int{9, 9}
	require.Equal([2]int{0, 1}, s.g.Edges()[0])
}

func (s *GraphSuite) TestPairs() {
	require := require.New(s.T())
	pairs, err := s.g.Pairs([]core.Pairing{{A: s.a, B: s.d}})
	require.NoError(err)
	require.Equal([][2]int{{0, 3}}, pairs)

	_, err = s.g.Pairs([]core.Pairing{{A: s.a, B: team("Z", "Q")}})
	require.ErrorIs(err, core.ErrInvalidInput)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestBuildGraph_Errors(t *testing.T) {
	a, b := team("A", "X"), team("B", "Y")

	_, err := core.BuildGraph(nil, []core.Game{{Home: a, Away: a}})
	require.ErrorIs(t, err, core.ErrInvalidInput, "self-game")

	_, err = core.BuildGraph([]core.Team{a, b, a}, nil)
	require.ErrorIs(t, err, core.ErrInvalidInput, "duplicate team")

	_, err = core.BuildGraph([]core.Team{a}, []core.Game{{Home: a, Away: b}})
	require.ErrorIs(t, err, core.ErrInvalidInput, "team outside explicit list")

	_, err = core.BuildGraph(nil, []core.Game{{Home: core.Team{}, Away: b}})
	require.True(t, errors.Is(err, core.ErrInvalidInput), "empty ID")
}

func TestBuildGraph_ExplicitTeamOrder(t *testing.T) {
	a, b, c := team("A", "X"), team("B", "Y"), team("C", "Z")
	g, err := core.BuildGraph([]core.Team{c, b, a}, []core.Game{{Home: a, Away: b}})
	require.NoError(t, err)
	require.Equal(t, [][2]int{{2, 1}}, g.Edges())
	require.Equal(t, 0, g.Degree(0), "C is listed but plays no game")
}

// TestGraph_ConcurrentReaders checks that read queries may run alongside
// writers without races.
func TestGraph_ConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	const writers = 50
	var wg sync.WaitGroup
	wg.Add(2 * writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := g.AddGame(core.Game{
				Home: team("H", "X"),
				Away: team(string(rune('a'+i%26))+string(rune('a'+i/26)), "Y"),
			})
			require.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.Teams()
		}()
	}
	wg.Wait()
	require.Equal(t, writers, g.Size())
	h, ok := g.Handle("H")
	require.True(t, ok)
	require.Equal(t, writers, g.Degree(h))
}

func TestTeamString(t *testing.T) {
	require.Equal(t, "Team A", team("A", "X").String())
	require.Equal(t, "B", core.Team{ID: "B"}.String())
	require.True(t, core.Game{Home: team("A", "X"), Away: team("B", "Y")}.Involves("B"))
	require.Equal(t, "Team A-B", core.Game{Home: team("A", "X"), Away: core.Team{ID: "B"}}.String())
}

func TestGraph_Components(t *testing.T) {
	ts := []core.Team{team("A", "X"), team("B", "X"), team("C", "X"), team("D", "X"), team("E", "X")}
	g, err := core.BuildGraph(ts, []core.Game{
		{Home: ts[3], Away: ts[0]},
		{Home: ts[1], Away: ts[2]},
		{Home: ts[0], Away: ts[3]},
	})
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 3}, {1, 2}, {4}}, g.Components())
	require.Empty(t, core.NewGraph().Components())
}
