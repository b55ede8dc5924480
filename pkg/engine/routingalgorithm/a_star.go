package routingalgorithm

import (
	"fmt"
	"time"

	"lintang/bearmaps/pkg/datastructure"
	"lintang/bearmaps/pkg/util"

	"k8s.io/klog/v2"
)

// Graph yang bisa di search pakai AStar. Neighbors & EstimatedDistanceToGoal dianggap pure function.
type Graph[V comparable] interface {
	Neighbors(v V) []datastructure.WeightedEdge[V]
	// EstimatedDistanceToGoal harus >= 0. kalau admissible & consistent hasil AStar optimal.
	EstimatedDistanceToGoal(v, goal V) float64
}

type SolverOutcome int

const (
	Solved SolverOutcome = iota
	Unreachable
	TimedOut
)

func (o SolverOutcome) String() string {
	switch o {
	case Solved:
		return "SOLVED"
	case Unreachable:
		return "UNREACHABLE"
	case TimedOut:
		return "TIMED_OUT"
	default:
		return fmt.Sprintf("SolverOutcome(%d)", int(o))
	}
}

type SolverResult[V comparable] struct {
	Outcome SolverOutcome
	// Path start..goal, kosong kalau Outcome bukan Solved.
	Path      []V
	TotalCost float64
	// StatesExplored jumlah ExtractMin.
	StatesExplored int
	Elapsed        time.Duration
}

func (r SolverResult[V]) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// AStar shortest path dari start ke goal. timeout dicek setiap selesai expand satu vertex,
// jadi satu expansion yang lama bisa melewati timeout sebelum dicek.
// https://theory.stanford.edu/~amitp/GameProgramming/ImplementationNotes.html
func AStar[V comparable](g Graph[V], start, goal V, timeout time.Duration) SolverResult[V] {
	startTime := time.Now()

	heap := datastructure.NewMinHeap[V]()
	costSoFar := map[V]float64{start: 0}
	cameFrom := make(map[V]V)

	mustHeap(heap.Insert(datastructure.PriorityQueueNode[V]{Rank: g.EstimatedDistanceToGoal(start, goal), Item: start}))

	explored := 0
	timedOut := false
	for heap.Size() > 0 {
		top, _ := heap.GetMin()
		if top.Item == goal {
			break
		}

		current, _ := heap.ExtractMin()
		explored++

		for _, edge := range g.Neighbors(current.Item) {
			newCost := costSoFar[current.Item] + edge.Weight
			oldCost, ok := costSoFar[edge.To]
			if ok && newCost >= oldCost {
				continue
			}
			costSoFar[edge.To] = newCost
			cameFrom[edge.To] = current.Item

			priority := newCost + g.EstimatedDistanceToGoal(edge.To, goal)
			neighborNode := datastructure.PriorityQueueNode[V]{Rank: priority, Item: edge.To}
			if heap.Contains(edge.To) {
				mustHeap(heap.DecreaseKey(neighborNode))
			} else {
				mustHeap(heap.Insert(neighborNode))
			}
		}

		if time.Since(startTime) >= timeout {
			timedOut = true
			break
		}
	}

	res := SolverResult[V]{
		StatesExplored: explored,
		Path:           []V{},
	}
	switch {
	case heap.Size() == 0:
		res.Outcome = Unreachable
	case timedOut:
		res.Outcome = TimedOut
	default:
		res.Outcome = Solved
		res.Path = resolvePath(cameFrom, start, goal)
		res.TotalCost = costSoFar[goal]
	}
	res.Elapsed = time.Since(startTime)

	if res.Outcome != Solved {
		klog.V(4).InfoS("astar finished without path", "outcome", res.Outcome, "statesExplored", explored, "elapsed", res.Elapsed)
	}
	return res
}

// resolvePath trace cameFrom dari goal balik ke start. chain yang tidak sampai ke start berarti ada bug.
func resolvePath[V comparable](cameFrom map[V]V, start, goal V) []V {
	path := []V{goal}
	curr := goal
	for curr != start {
		prev, ok := cameFrom[curr]
		if !ok || len(path) > len(cameFrom)+1 {
			panic(fmt.Sprintf("astar: predecessor chain from %v does not reach start %v", goal, start))
		}
		path = append(path, prev)
		curr = prev
	}
	util.ReverseG(path)
	return path
}

// mustHeap heap error di dalam solver cuma bisa dari bug di solver sendiri.
func mustHeap(err error) {
	if err != nil {
		panic(fmt.Sprintf("astar: frontier heap: %v", err))
	}
}
