package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/klaytn-labs/p2psim/internal/chain"
	"github.com/klaytn-labs/p2psim/internal/simlog"
)

var logger = simlog.NewModuleLogger(simlog.ModuleRender)

var (
	edgeColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	nodeColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

// WriteNetworkGraph lays n nodes out on a circle and draws an edge for every
// pair in edges, the gonum.org/v1/plot stand-in for print_graph()'s
// nx.draw(G, with_labels=True) — a circular layout rather than networkx's
// force-directed spring layout, since that placement algorithm itself is
// not part of any grounded dependency.
func WriteNetworkGraph(path string, n int, edges [][2]int) error {
	logger.Debugw("writing network graph figure", "path", path, "nodes", n, "edges", len(edges))
	positions := circularLayout(n)

	p := plot.New()
	p.Title.Text = "peer connectivity graph"

	for _, e := range edges {
		line, err := plotter.NewLine(plotter.XYs{positions[e[0]], positions[e[1]]})
		if err != nil {
			return fmt.Errorf("network graph edge: %w", err)
		}
		line.Color = edgeColor
		p.Add(line)
	}

	nodes := make(plotter.XYs, n)
	copy(nodes, positions)
	scatter, err := plotter.NewScatter(nodes)
	if err != nil {
		return fmt.Errorf("network graph nodes: %w", err)
	}
	scatter.Color = nodeColor
	scatter.Radius = vg.Points(3)
	p.Add(scatter)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// WritePeerTree lays out a peer's accepted block DAG by BFS depth from
// genesis and draws it top-down, the gonum.org/v1/plot stand-in for
// visualize_blockchain()'s nx.draw with a kamada_kawai_layout.
func WritePeerTree(path string, g *BlockGraph) error {
	logger.Debugw("writing peer block tree figure", "path", path, "nodes", len(g.Nodes()))
	nodes := g.Nodes()
	idIndex := make(map[chain.BlockID]int, len(nodes))
	for i, id := range nodes {
		idIndex[id] = i
	}

	childrenOf := make(map[int][]int)
	for _, e := range g.Edges() {
		child, parent := idIndex[e[0]], idIndex[e[1]]
		childrenOf[parent] = append(childrenOf[parent], child)
	}

	depth := make([]int, len(nodes))
	order := make([]int, 0, len(nodes))
	if len(nodes) > 0 {
		queue := []int{0}
		seen := map[int]bool{0: true}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			order = append(order, cur)
			for _, c := range childrenOf[cur] {
				if seen[c] {
					continue
				}
				seen[c] = true
				depth[c] = depth[cur] + 1
				queue = append(queue, c)
			}
		}
	}

	maxDepth := 0
	for _, d := range depth {
		if d > maxDepth {
			maxDepth = d
		}
	}
	levelCount := make([]int, maxDepth+1)
	for _, d := range depth {
		levelCount[d]++
	}
	levelSeen := make([]int, maxDepth+1)

	positions := make(plotter.XYs, len(nodes))
	for _, idx := range order {
		d := depth[idx]
		row := levelSeen[d]
		levelSeen[d]++
		x := 0.5
		if levelCount[d] > 1 {
			x = float64(row) / float64(levelCount[d]-1)
		}
		y := 1.0
		if maxDepth > 0 {
			y = 1.0 - float64(d)/float64(maxDepth)
		}
		positions[idx] = plotter.XY{X: x, Y: y}
	}

	p := plot.New()
	p.Title.Text = "peer block tree"

	for _, e := range g.Edges() {
		child, parent := idIndex[e[0]], idIndex[e[1]]
		line, err := plotter.NewLine(plotter.XYs{positions[child], positions[parent]})
		if err != nil {
			return fmt.Errorf("block tree edge: %w", err)
		}
		line.Color = edgeColor
		p.Add(line)
	}

	scatter, err := plotter.NewScatter(positions)
	if err != nil {
		return fmt.Errorf("block tree nodes: %w", err)
	}
	scatter.Color = nodeColor
	scatter.Radius = vg.Points(3)
	p.Add(scatter)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

func circularLayout(n int) plotter.XYs {
	positions := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		positions[i] = plotter.XY{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return positions
}
