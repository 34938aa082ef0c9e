// Package quiz implements the timed multiple-choice quiz state machine.
//
// The engine owns three counters (question pointer, running score,
// remaining seconds) and a phase. Wall-clock time enters through exactly
// one door: Tick, called once per elapsed second by the countdown runner.
// Tests drive Tick directly and never sleep.
package quiz

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/caexamhub/caprep/internal/common"
	"github.com/caexamhub/caprep/internal/logging"
	"github.com/caexamhub/caprep/internal/models"
	"github.com/caexamhub/caprep/internal/toast"
)

// Phase is the quiz lifecycle state.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseInProgress Phase = "in_progress"
	PhaseTimedOut   Phase = "timed_out"
	PhaseCompleted  Phase = "completed"
)

// NoAnswer submits the current question without a selection. It never
// scores, regardless of the question's answer index.
const NoAnswer = -1

// ErrNotFinished is returned by SaveResult outside Completed/TimedOut.
var ErrNotFinished = errors.New("quiz is not finished")

// ResultSaver persists a finished attempt; satisfied by session.Manager.
type ResultSaver interface {
	AppendAttempt(ctx context.Context, score, total int) (*models.QuizAttempt, error)
}

// Snapshot is a consistent copy of the engine state for display.
type Snapshot struct {
	Phase            Phase
	QuestionIndex    int
	Score            int
	RemainingSeconds int
	TotalQuestions   int
}

// Engine runs one quiz attempt at a time. The mutex guards against the
// countdown goroutine and the caller racing on the counters; every phase
// transition out of InProgress cancels the runner, so a stale timer can
// never fire after the attempt ends.
type Engine struct {
	questions []models.Question
	duration  time.Duration
	interval  time.Duration
	saver     ResultSaver
	notifier  toast.Notifier
	log       logging.Logger

	mu        sync.Mutex
	phase     Phase
	index     int
	score     int
	remaining int
	cancel    context.CancelFunc

	onTick   func(remainingSeconds int)
	onFinish func(phase Phase, score int)
}

// Option tweaks engine construction.
type Option func(*Engine)

// WithDuration overrides the default 10-minute attempt duration.
func WithDuration(d time.Duration) Option {
	return func(e *Engine) { e.duration = d }
}

// WithTickInterval overrides the 1-second countdown granularity.
// Shorter intervals are only useful in tests.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) { e.interval = d }
}

func NewEngine(questions []models.Question, saver ResultSaver, notifier toast.Notifier, log logging.Logger, opts ...Option) *Engine {
	e := &Engine{
		questions: questions,
		duration:  10 * time.Minute,
		interval:  time.Second,
		saver:     saver,
		notifier:  notifier,
		log:       log.With("component", "quiz"),
		phase:     PhaseNotStarted,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OnTick registers a display callback invoked after every countdown
// decrement. Set it before Start; it runs outside the engine lock.
func (e *Engine) OnTick(fn func(remainingSeconds int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onTick = fn
}

// OnFinish registers a display callback invoked when the attempt reaches
// Completed or TimedOut. Close does not trigger it.
func (e *Engine) OnFinish(fn func(phase Phase, score int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onFinish = fn
}

// Start begins a fresh attempt: counters reset, countdown armed. Any
// previous runner is cancelled first.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	e.cancelLocked()
	e.phase = PhaseInProgress
	e.index = 0
	e.score = 0
	e.remaining = int(e.duration.Seconds())

	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	interval := e.interval
	e.mu.Unlock()

	e.log.Debug(ctx, "quiz started", "questions", len(e.questions), "seconds", int(e.duration.Seconds()))
	go e.run(runCtx, interval)
}

// Retake re-enters InProgress with fresh counters, independent of the
// prior attempt.
func (e *Engine) Retake(ctx context.Context) {
	e.Start(ctx)
}

func (e *Engine) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !e.Tick() {
				return
			}
		}
	}
}

// Tick decrements the countdown by one second. Reaching zero forces the
// TimedOut transition even mid-question. Returns false once the engine has
// left InProgress, which stops the runner.
func (e *Engine) Tick() bool {
	e.mu.Lock()
	if e.phase != PhaseInProgress {
		e.mu.Unlock()
		return false
	}
	e.remaining--
	remaining := e.remaining
	timedOut := remaining <= 0
	if timedOut {
		e.phase = PhaseTimedOut
		e.cancelLocked()
	}
	score := e.score
	onTick, onFinish := e.onTick, e.onFinish
	e.mu.Unlock()

	if onTick != nil {
		onTick(remaining)
	}
	if timedOut {
		e.log.Debug(context.Background(), "quiz timed out", "score", score)
		if onFinish != nil {
			onFinish(PhaseTimedOut, score)
		}
		return false
	}
	return true
}

// SubmitAnswer scores the current question and advances the pointer.
// choice is an index into the question's options; NoAnswer (or any
// non-matching index) scores nothing. Answering the last question moves
// the engine to Completed. Outside InProgress the call is a no-op.
func (e *Engine) SubmitAnswer(choice int) Snapshot {
	e.mu.Lock()
	if e.phase != PhaseInProgress {
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap
	}

	if choice != NoAnswer && choice == e.questions[e.index].Answer {
		e.score++
	}
	e.index++

	completed := e.index == len(e.questions)
	if completed {
		e.phase = PhaseCompleted
		e.cancelLocked()
	}
	score := e.score
	onFinish := e.onFinish
	snap := e.snapshotLocked()
	e.mu.Unlock()

	if completed {
		e.log.Debug(context.Background(), "quiz completed", "score", score)
		if onFinish != nil {
			onFinish(PhaseCompleted, score)
		}
	}
	return snap
}

// Close abandons the attempt from any state: the countdown is cancelled
// and no result is recorded.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelLocked()
	e.phase = PhaseNotStarted
	e.index = 0
	e.score = 0
	e.remaining = 0
}

// SaveResult persists the finished attempt through the session layer.
// Requires an active session; common.ErrNoSession surfaces via the
// notification sink and nothing is written.
func (e *Engine) SaveResult(ctx context.Context) (*models.QuizAttempt, error) {
	e.mu.Lock()
	phase := e.phase
	score := e.score
	e.mu.Unlock()

	if phase != PhaseCompleted && phase != PhaseTimedOut {
		return nil, ErrNotFinished
	}

	attempt, err := e.saver.AppendAttempt(ctx, score, len(e.questions))
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			e.notifier.Notify("Login to save scores!", toast.SeverityError)
		}
		return nil, err
	}

	e.notifier.Notify("Score saved to dashboard!", toast.SeveritySuccess)
	return attempt, nil
}

// Question returns the question at the current pointer and true while the
// attempt is in progress with questions remaining.
func (e *Engine) Question() (models.Question, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase != PhaseInProgress || e.index >= len(e.questions) {
		return models.Question{}, false
	}
	return e.questions[e.index], true
}

// Snapshot returns a consistent copy of the engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:            e.phase,
		QuestionIndex:    e.index,
		Score:            e.score,
		RemainingSeconds: e.remaining,
		TotalQuestions:   len(e.questions),
	}
}

// cancelLocked stops the countdown runner if one is armed. Callers hold mu.
func (e *Engine) cancelLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}
