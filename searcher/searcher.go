package searcher

import (
	"context"
	"errors"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher binds an evaluation function to a search configuration. It keeps
// no state between searches other than its metrics collector, so it must not
// be shared by concurrent games.
type Searcher struct {
	method    Method
	depth     int
	iterative bool
	evaluate  game.Evaluate
	metrics   metrics.Collector
}

func WithMethod(method Method) Option {
	return func(s *Searcher) {
		s.method = method
	}
}

// WithDepth sets the depth of fixed-depth searches.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithIterative toggles iterative deepening against the caller's deadline.
func WithIterative(iterative bool) Option {
	return func(s *Searcher) {
		s.iterative = iterative
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		method:    Minimax,
		depth:     meta.SEARCH_DEPTH,
		iterative: true,
		evaluate:  game.ImprovedScore,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Method() Method  { return s.method }
func (s *Searcher) Depth() int      { return s.depth }
func (s *Searcher) Iterative() bool { return s.iterative }

// Search picks a move for the player to move on b before the deadline of ctx.
//
// With iterative deepening, depths 1, 2, 3... are searched until the deadline
// passes or a depth completes without reaching its cutoff anywhere, in which
// case the whole tree has been seen. The result of the deepest completed depth
// wins. If no depth completes, the first legal move is returned. Without
// iterative deepening a single search to the configured depth is run with the
// same fallback.
func (s *Searcher) Search(ctx context.Context, b *game.Board) (Result, metrics.SearchMetric) {
	s.metrics.Start(s.method.String(), s.iterative)

	moves := b.LegalMoves(b.Active())
	if len(moves) == 0 {
		log.Debug().Msgf("%v has no legal moves", b.Active())
		return Result{Move: game.NoMove, Value: b.Utility(b.Active())}, s.metrics.Complete()
	}
	best := Result{Move: moves[0]}

	if !s.iterative {
		if result, _, err := s.search(ctx, b, s.depth); err == nil {
			best = result
		}
		return best, s.metrics.Complete()
	}

	for depth := 1; ; depth++ {
		if ctx.Err() != nil {
			s.metrics.SetTimedOut()
			break
		}
		log.Debug().Int("depth", depth).Msg("deepening-iteratively")
		result, exhausted, err := s.search(ctx, b, depth)
		if err != nil {
			break
		}
		best = result
		if exhausted {
			log.Debug().Int("depth", depth).Msg("game-tree-exhausted")
			break
		}
	}
	log.Debug().Int("depth", best.Depth).Float64("value", best.Value).Stringer("move", best.Move).Msg("best-move")
	return best, s.metrics.Complete()
}

// search runs one search of the configured method. exhausted reports that no
// node was cut off by depth, so deeper searches would return the same result.
func (s *Searcher) search(ctx context.Context, b *game.Board, depth int) (result Result, exhausted bool, err error) {
	r := newRun(ctx, s.evaluate, b, true)
	var move game.Move
	var value float64
	switch s.method {
	case AlphaBeta:
		move, value, err = r.alphaBeta(b, depth, negInf, posInf, true)
	default:
		move, value, err = r.minimax(b, depth, true)
	}

	if err != nil {
		s.metrics.AddNodes(r.nodes)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			s.metrics.SetTimedOut()
			log.Debug().Int("depth", depth).Int("nodes", r.nodes).Msg("search-interrupted")
		} else {
			log.Error().Err(err).Int("depth", depth).Msg("search-failed")
		}
		return Result{Move: game.NoMove, Nodes: r.nodes}, false, err
	}

	s.metrics.AddDepth(depth, r.nodes)
	return Result{Move: move, Value: value, Depth: depth, Nodes: r.nodes}, !r.cutoff, nil
}
