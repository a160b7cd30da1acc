package usecase

import (
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const (
	messagePlayerOneWins = "Player 1 Wins!!"
	messagePlayerTwoWins = "Player 2 Wins!!"
	messageDraw          = "DRAW =["
)

// Phase is the step of the session's game-over sequence.
type Phase uint8

const (
	// PhasePlaying accepts clicks.
	PhasePlaying Phase = iota
	// PhaseRevealing keeps the final board on screen before the outcome is shown.
	PhaseRevealing
	// PhaseAnnouncing shows the outcome message until the board is reset.
	PhaseAnnouncing
)

func (that Phase) String() string {
	switch that {
	case PhaseRevealing:
		return "revealing"
	case PhaseAnnouncing:
		return "announcing"
	default:
		return "playing"
	}
}

// GameOverPolicy controls how long a finished game stays on screen.
type GameOverPolicy struct {
	RevealDelay     time.Duration
	MessageDuration time.Duration
}

// DefaultGameOverPolicy matches the classic desktop timings.
func DefaultGameOverPolicy() GameOverPolicy {
	return GameOverPolicy{
		RevealDelay:     250 * time.Millisecond,
		MessageDuration: 2 * time.Second,
	}
}

type gameState interface {
	TryPlace(cell int) entity.PlacementResult
	Reset()
	Board() entity.Board
	CurrentTurn() entity.Player
}

type pointerMapper interface {
	MapToCell(x, y float64) int
}

// Frame is what a shell needs to draw one screen.
type Frame struct {
	Board   entity.Board
	Turn    entity.Player
	Phase   Phase
	Outcome entity.PlacementResult
	Message string
}

// ShowsMessage reports whether the outcome screen replaces the board.
func (that Frame) ShowsMessage() bool {
	return that.Phase == PhaseAnnouncing
}

// GameSession turns pointer events into moves and sequences the end of a game.
// It has a single owner: shells call it from their one event loop.
type GameSession struct {
	logger *slog.Logger

	game   gameState
	mapper pointerMapper
	policy GameOverPolicy
	clock  func() time.Time

	phase        Phase
	phaseStarted time.Time
	outcome      entity.PlacementResult
}

func NewGameSession(logger *slog.Logger, game gameState, mapper pointerMapper, policy GameOverPolicy, clock func() time.Time) *GameSession {
	if clock == nil {
		clock = time.Now
	}

	return &GameSession{
		logger: logger.With("component", "session"),

		game:   game,
		mapper: mapper,
		policy: policy,
		clock:  clock,
	}
}

// PointerUp - handles a released pointer at board pixel coordinates.
//
// Clicks that arrive while a finished game is still on screen are ignored.
func (that *GameSession) PointerUp(x, y float64) entity.PlacementResult {
	log := that.logger.With("method", "PointerUp")

	log.Debug("pointer released", "x", x, "y", y)

	if that.phase != PhasePlaying {
		log.Debug("click ignored, game over sequence running", "phase", that.phase)
		return entity.PlacementResult{Kind: entity.ResultNoOp}
	}

	cell := that.mapper.MapToCell(x, y)
	log.Debug("selected square", "cell", cell)

	turn := that.game.CurrentTurn()
	result := that.game.TryPlace(cell)

	switch result.Kind {
	case entity.ResultWin, entity.ResultDraw:
		that.phase = PhaseRevealing
		that.phaseStarted = that.clock()
		that.outcome = result

		log.Info("game over", "result", result.Kind, "player", turn, "cell", cell)
	case entity.ResultContinue:
		log.Debug("mark placed", "player", turn, "cell", cell)
	case entity.ResultRejected:
		log.Debug("cell already taken", "cell", cell)
	case entity.ResultNoOp:
	}

	return result
}

// Advance - moves the game-over sequence forward to now. It reports whether
// the visible frame changed, so the shell knows to redraw.
func (that *GameSession) Advance(now time.Time) bool {
	changed := false

	if that.phase == PhaseRevealing && !now.Before(that.phaseStarted.Add(that.policy.RevealDelay)) {
		that.phase = PhaseAnnouncing
		that.phaseStarted = that.phaseStarted.Add(that.policy.RevealDelay)
		changed = true
	}

	if that.phase == PhaseAnnouncing && !now.Before(that.phaseStarted.Add(that.policy.MessageDuration)) {
		that.Restart()
		changed = true
	}

	return changed
}

// Tick advances the sequence using the session clock.
func (that *GameSession) Tick() bool {
	return that.Advance(that.clock())
}

// Restart - clears the board and drops any pending game-over sequence.
func (that *GameSession) Restart() {
	that.game.Reset()
	that.phase = PhasePlaying
	that.phaseStarted = time.Time{}
	that.outcome = entity.PlacementResult{}

	that.logger.Info("board reset")
}

func (that *GameSession) Phase() Phase {
	return that.phase
}

// View - snapshot of the current screen.
func (that *GameSession) View() Frame {
	frame := Frame{
		Board: that.game.Board(),
		Turn:  that.game.CurrentTurn(),
		Phase: that.phase,
	}

	if that.phase != PhasePlaying {
		frame.Outcome = that.outcome
	}

	if that.phase == PhaseAnnouncing {
		frame.Message = OutcomeMessage(that.outcome)
	}

	return frame
}

// OutcomeMessage returns the text shown when a game ends, or "" if it has not.
func OutcomeMessage(result entity.PlacementResult) string {
	switch result.Kind {
	case entity.ResultWin:
		if result.Winner == entity.PlayerTwo {
			return messagePlayerTwoWins
		}
		return messagePlayerOneWins
	case entity.ResultDraw:
		return messageDraw
	default:
		return ""
	}
}
