package cluster

import "github.com/DataZooDE/anofox-forecast-sub014/matrix"

// DBSCAN clusters N points from a precomputed symmetric distance matrix.
// Labels are cluster ids starting at 0, or cluster.Noise (-1) for points
// assigned to no cluster. Expansion is a worklist/frontier loop in the
// teacher's BFS style, adapted to walk distance-matrix neighbors instead
// of graph edges: a core point's region is region-queried once, and every
// newly-discovered core point in that region enqueues its own
// region-query rather than recursing.
func DBSCAN(dist *matrix.Dense, eps float64, minPts int) ([]int, error) {
	if dist == nil {
		return nil, invalidParamf("DBSCAN: nil distance matrix")
	}
	rows, cols := dist.Shape()
	if rows != cols {
		return nil, invalidParamf("DBSCAN: distance matrix must be square, got %dx%d", rows, cols)
	}
	if eps <= 0 {
		return nil, invalidParamf("DBSCAN: eps must be > 0, got %v", eps)
	}
	if minPts < 1 {
		return nil, invalidParamf("DBSCAN: minPts must be >= 1, got %d", minPts)
	}
	n := rows

	labels := make([]int, n)
	for i := range labels {
		labels[i] = Noise
	}
	visited := make([]bool, n)

	regionQuery := func(p int) ([]int, error) {
		var neighbors []int
		for q := 0; q < n; q++ {
			if q == p {
				continue
			}
			d, err := dist.At(p, q)
			if err != nil {
				return nil, err
			}
			if d <= eps {
				neighbors = append(neighbors, q)
			}
		}
		return neighbors, nil
	}

	clusterID := 0
	for p := 0; p < n; p++ {
		if visited[p] {
			continue
		}
		visited[p] = true

		neighbors, err := regionQuery(p)
		if err != nil {
			return nil, err
		}
		if len(neighbors)+1 < minPts {
			continue // stays Noise unless later absorbed by another core point's expansion
		}

		labels[p] = clusterID
		frontier := append([]int(nil), neighbors...)
		for len(frontier) > 0 {
			q := frontier[0]
			frontier = frontier[1:]

			if !visited[q] {
				visited[q] = true
				qNeighbors, err := regionQuery(q)
				if err != nil {
					return nil, err
				}
				if len(qNeighbors)+1 >= minPts {
					frontier = append(frontier, qNeighbors...)
				}
			}
			if labels[q] == Noise {
				labels[q] = clusterID
			}
		}
		clusterID++
	}
	return labels, nil
}
