package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/lrucache/internal/application/port"
	"github.com/bnema/lrucache/internal/domain/trace"
	"github.com/bnema/lrucache/internal/logging"
	"github.com/bnema/lrucache/pkg/lru"
)

// Outcome describes what a single operation did to the cache.
type Outcome string

const (
	OutcomeHit      Outcome = "hit"
	OutcomeMiss     Outcome = "miss"
	OutcomeInserted Outcome = "inserted"
	OutcomeUpdated  Outcome = "updated"
	OutcomeRejected Outcome = "rejected"
)

// Eviction is an entry dropped by the cache to make room.
type Eviction struct {
	Key   string
	Value string
}

// Step is the result of applying one trace operation.
type Step struct {
	Op      trace.Op
	Outcome Outcome
	Value   string // value read by a hit
	Evicted []Eviction
	Err     error // set for misses and rejections
}

// ReplayTraceUseCase applies trace operations to a string cache.
//
// It also implements lru.EvictionListener so evictions can be attributed to
// the operation that caused them; register it on the cache it replays into.
type ReplayTraceUseCase struct {
	pending []Eviction
}

var _ lru.EvictionListener[string, string] = (*ReplayTraceUseCase)(nil)

// NewReplayTraceUseCase creates a new ReplayTraceUseCase.
func NewReplayTraceUseCase() *ReplayTraceUseCase {
	return &ReplayTraceUseCase{}
}

// OnEvict records an eviction for the operation being applied.
func (uc *ReplayTraceUseCase) OnEvict(key, value string) {
	uc.pending = append(uc.pending, Eviction{Key: key, Value: value})
}

// ReplayTraceInput contains the cache and the operations to replay.
type ReplayTraceInput struct {
	Cache port.Cache[string, string]
	Ops   []trace.Op
}

// ReplayTraceOutput summarizes a replay.
type ReplayTraceOutput struct {
	Steps     []Step
	Hits      int
	Misses    int
	Inserts   int
	Updates   int
	Rejected  int
	Evictions int
	Order     []string          // most recently used first
	Contents  map[string]string // final cache contents
}

// HitRatio returns hits / (hits + misses), or 0 when nothing was read.
func (o *ReplayTraceOutput) HitRatio() float64 {
	reads := o.Hits + o.Misses
	if reads == 0 {
		return 0
	}
	return float64(o.Hits) / float64(reads)
}

// Execute replays every operation in order. Misses and rejected operations
// are recorded, not returned; an error means the replay stopped early.
func (uc *ReplayTraceUseCase) Execute(ctx context.Context, input ReplayTraceInput) (*ReplayTraceOutput, error) {
	if input.Cache == nil {
		return nil, errors.New("replay trace: cache is required")
	}
	log := logging.FromContext(ctx)

	out := &ReplayTraceOutput{Steps: make([]Step, 0, len(input.Ops))}
	for _, op := range input.Ops {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("replay interrupted before line %d: %w", op.Line, err)
		}

		step, err := uc.Apply(ctx, input.Cache, op)
		if err != nil {
			return nil, err
		}

		switch step.Outcome {
		case OutcomeHit:
			out.Hits++
		case OutcomeMiss:
			out.Misses++
		case OutcomeInserted:
			out.Inserts++
		case OutcomeUpdated:
			out.Updates++
		case OutcomeRejected:
			out.Rejected++
		}
		out.Evictions += len(step.Evicted)
		out.Steps = append(out.Steps, step)
	}

	out.Order = input.Cache.Keys()
	out.Contents = input.Cache.Items()

	log.Info().
		Int("ops", len(input.Ops)).
		Int("hits", out.Hits).
		Int("misses", out.Misses).
		Int("evictions", out.Evictions).
		Msg("trace replayed")

	return out, nil
}

// Apply runs a single operation against cache.
// Only unexpected cache errors are returned; misses and rejections are
// reported through the Step.
func (uc *ReplayTraceUseCase) Apply(ctx context.Context, cache port.Cache[string, string], op trace.Op) (Step, error) {
	log := logging.FromContext(ctx)
	uc.pending = uc.pending[:0]
	step := Step{Op: op}

	switch op.Kind {
	case trace.KindGet:
		value, err := cache.Get(op.Key)
		switch {
		case err == nil:
			step.Outcome = OutcomeHit
			step.Value = value
		case errors.Is(err, lru.ErrNotFound):
			step.Outcome = OutcomeMiss
			step.Err = err
		case errors.Is(err, lru.ErrInvalidArgument):
			step.Outcome = OutcomeRejected
			step.Err = err
		default:
			return Step{}, fmt.Errorf("get %q: %w", op.Key, err)
		}

	case trace.KindPut:
		before := cache.Len()
		if err := cache.Put(op.Key, op.Value); err != nil {
			if !errors.Is(err, lru.ErrInvalidArgument) {
				return Step{}, fmt.Errorf("put %q: %w", op.Key, err)
			}
			step.Outcome = OutcomeRejected
			step.Err = err
			break
		}
		if cache.Len() > before || len(uc.pending) > 0 {
			step.Outcome = OutcomeInserted
		} else {
			step.Outcome = OutcomeUpdated
		}

	default:
		return Step{}, fmt.Errorf("%w: unknown operation %q", trace.ErrInvalidTrace, op.Kind)
	}

	if len(uc.pending) > 0 {
		step.Evicted = append([]Eviction(nil), uc.pending...)
		uc.pending = uc.pending[:0]
	}

	event := log.Debug().
		Int("line", op.Line).
		Str("op", string(op.Kind)).
		Str("key", op.Key).
		Str("outcome", string(step.Outcome))
	for _, ev := range step.Evicted {
		event = event.Str("evicted", ev.Key)
	}
	event.Msg("cache operation")

	return step, nil
}
