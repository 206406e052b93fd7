package internal

// Algorithms report their progress at fixed checkpoints so that something
// outside the core, typically a debug renderer, can show intermediate state.
// Observing never changes the result, and every slice in a Step is a copy.

type StepKind int

const (
	// One per inserted point during incremental triangulation.
	StepInsertPoint StepKind = iota
	// One per candidate vertex examined during ear clipping.
	StepEarCandidate
	// One per vertex decision during greedy simplification.
	StepGreedyVertex
	// One per span examined during recursive simplification.
	StepSubdivide
)

func (k StepKind) String() string {
	switch k {
	case StepInsertPoint:
		return "insert point"
	case StepEarCandidate:
		return "ear candidate"
	case StepGreedyVertex:
		return "greedy vertex"
	case StepSubdivide:
		return "subdivide"
	}
	return "unknown"
}

// Step is a snapshot of an algorithm at a checkpoint. Which fields are set
// depends on Kind.
type Step struct {
	Kind StepKind

	// The point being inserted, or the vertex being considered.
	Point Vec2

	// Incremental triangulation: the working triangulation before repair, the
	// triangles whose circumcircle contains Point, their circumcircles, the
	// boundary edges that get fanned to Point and the interior edges that are
	// discarded.
	Triangles     []Triangle2
	Bad           []Triangle2
	Circumcircles []Circle
	Boundary      []LineSegment2
	Shared        []LineSegment2

	// Ear clipping: the triangle around the candidate vertex, whether the
	// vertex is convex, whether it was clipped, and the vertices that block
	// it. Triangles holds the ears clipped so far.
	Candidate Triangle2
	Convex    bool
	Accepted  bool
	Blocking  []Vec2

	// Simplification. Greedy steps carry the polyline built so far and the
	// last vertex kept. Recursive steps carry the vertices strictly between
	// the ends of the anchor segment, and the one deviating furthest from it.
	// Kept says whether the vertex was kept, or the span split.
	Polyline  Polyline
	Previous  Vec2
	Tolerance float64
	Anchor    LineSegment2
	Furthest  Vec2
	Deviation float64
	Kept      bool
}

type Observer interface {
	Observe(step Step)
}

type ObserverFunc func(step Step)

func (f ObserverFunc) Observe(step Step) {
	f(step)
}

type noopObserver struct{}

func (noopObserver) Observe(Step) {}

// Fan the step out to every observer. A nil or empty list observes nothing.
type observers []Observer

func (os observers) Observe(step Step) {
	for _, o := range os {
		if o != nil {
			o.Observe(step)
		}
	}
}

// MultiObserver combines several observers into one.
func MultiObserver(list ...Observer) Observer {
	if len(list) == 0 {
		return noopObserver{}
	}
	return observers(list)
}

func orNoop(o Observer) Observer {
	if o == nil {
		return noopObserver{}
	}
	return o
}

// Stepper counts checkpoints and keeps the one numbered Target, counting from
// one. After a run, Last tells how many checkpoints there were, which is what
// a UI needs to bound its step control.
type Stepper struct {
	Target   int
	current  int
	captured *Step
}

func NewStepper(target int) *Stepper {
	return &Stepper{Target: target}
}

func (s *Stepper) Observe(step Step) {
	s.current++
	if s.current == s.Target {
		captured := step
		s.captured = &captured
	}
}

// Captured returns the target step, if the run got that far.
func (s *Stepper) Captured() (Step, bool) {
	if s.captured == nil {
		return Step{}, false
	}
	return *s.captured, true
}

func (s *Stepper) Last() int {
	return s.current
}

// Reset prepares the stepper for another run.
func (s *Stepper) Reset() {
	s.current = 0
	s.captured = nil
}

// StepRecorder keeps every step it sees.
type StepRecorder struct {
	Steps []Step
}

func (r *StepRecorder) Observe(step Step) {
	r.Steps = append(r.Steps, step)
}

func cloneTriangles(triangles []Triangle2) []Triangle2 {
	return append([]Triangle2(nil), triangles...)
}

func cloneSegments(segments []LineSegment2) []LineSegment2 {
	return append([]LineSegment2(nil), segments...)
}

func cloneVecs(vs []Vec2) []Vec2 {
	return append([]Vec2(nil), vs...)
}
