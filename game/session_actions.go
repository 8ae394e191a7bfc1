package game

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/reactor/model"
	"github.com/zyedidia/generic/mapset"
)

func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	players, err := model.NewPlayers(cfg.Players)
	if err != nil {
		return nil, err
	}
	rows, cols := cfg.Grid.Dimensions()
	board, err := model.NewBoard(rows, cols, players)
	if err != nil {
		return nil, err
	}
	log.Infof("NewSession %d players on %dx%d", cfg.Players, rows, cols)
	return NewSessionFromBoard(board), nil
}

// NewSessionFromBoard continues a game on an existing board. Players owning
// cells count as having moved already.
func NewSessionFromBoard(board *model.Board) *Session {
	s := &Session{
		State: GS_NEW,
		Board: board,
		moved: mapset.New[*model.Player](),
	}
	board.AliveOwners().Each(func(p *model.Player) {
		s.moved.Put(p)
	})
	return s
}

func (s *Session) CurrentPlayer() *model.Player {
	return s.Board.CurrentPlayer()
}

// Reaction is the reaction being presented, nil between moves.
func (s *Session) Reaction() *model.Reaction {
	return s.reaction
}

// Turn plays the current player's move at (row, col). Without an Animator
// the whole reaction resolves before Turn returns; with one, waves advance
// from Update and further moves are refused until the last wave is shown.
func (s *Session) Turn(row, col int) MoveResult {
	switch s.State {
	case GS_OVER:
		return MOVE_OVER
	case GS_REACTING:
		log.Debugf("Session.Turn (%d,%d) refused, reaction in progress", row, col)
		return MOVE_LOCKED
	}
	if !s.Board.ValidateMove(row, col) {
		log.Debugf("Session.Turn (%d,%d) invalid for %s", row, col, s.Board.CurrentPlayer())
		return MOVE_INVALID
	}

	s.actor = s.Board.CurrentPlayer()
	s.Stats.Turns++
	log.WithFields(log.Fields{
		"player": s.actor.Name(),
		"row":    row,
		"col":    col,
		"turn":   s.Stats.Turns,
	}).Debug("Session.Turn")

	if !s.Board.PlaceAtom(row, col) {
		s.finishTurn()
		return MOVE_ACCEPTED
	}

	s.Stats.Reactions++
	s.State = GS_REACTING
	s.reaction = s.Board.BeginReaction(row, col)
	call(s.Hooks.OnStart)
	if s.Animator == nil {
		for s.reaction.Next() {
			s.step()
			call(s.Hooks.OnStepComplete)
		}
		s.completeReaction()
		return MOVE_ACCEPTED
	}
	s.advance()
	return MOVE_ACCEPTED
}

// Update drives the Animator, if any, by dt seconds.
func (s *Session) Update(dt float32) {
	if s.Animator != nil {
		s.Animator.Update(dt)
	}
}

func (s *Session) step() {
	call(s.Hooks.OnStepStart)
	s.reaction.Step()
	s.Stats.Waves++
	log.Debugf("Session wave %d: %d moves", s.reaction.Steps(), len(s.reaction.Moves()))
}

// advance shows waves until the Animator defers a completion. Animators that
// call done from inside Schedule are handled by looping here.
func (s *Session) advance() {
	for {
		if !s.reaction.Next() {
			s.completeReaction()
			return
		}
		s.step()
		scheduling, finished := true, false
		s.Animator.Schedule(s.reaction.Moves(), func() {
			call(s.Hooks.OnStepComplete)
			if scheduling {
				finished = true
				return
			}
			s.advance()
		})
		scheduling = false
		if !finished {
			return
		}
	}
}

func (s *Session) completeReaction() {
	halted := s.reaction.Halted()
	if halted {
		s.Stats.Halts++
		log.Warnf("Session reaction halted after %d waves, board cannot settle", s.reaction.Steps())
	}
	s.reaction = nil
	call(s.Hooks.OnComplete)
	if halted {
		s.concede()
		return
	}
	s.finishTurn()
}

// concede ends the game for the actor of a halted reaction. The actor owns
// every occupied cell, so the others are dropped even if they never moved.
func (s *Session) concede() {
	s.moved.Put(s.actor)
	var out []*model.Player
	for _, p := range s.Board.Players() {
		if p != s.actor {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		if err := s.Board.SetPlayers([]*model.Player{s.actor}); err != nil {
			panic(err)
		}
		for _, p := range out {
			log.Infof("Session eliminated %s", p)
		}
		s.Stats.Eliminated = append(s.Stats.Eliminated, out...)
	}
	s.Winner = s.actor
	s.State = GS_OVER
	log.Infof("Session over, %s conquered an unsettled board after %d turns", s.Winner, s.Stats.Turns)
}

// finishTurn drops players that have moved but own nothing anymore, ends the
// game when one player is left and otherwise passes the turn on.
func (s *Session) finishTurn() {
	s.moved.Put(s.actor)
	alive := s.Board.AliveOwners()
	var keep, out []*model.Player
	for _, p := range s.Board.Players() {
		if alive.Has(p) || !s.moved.Has(p) {
			keep = append(keep, p)
		} else {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		if err := s.Board.SetPlayers(keep); err != nil {
			panic(err)
		}
		for _, p := range out {
			log.Infof("Session eliminated %s", p)
		}
		s.Stats.Eliminated = append(s.Stats.Eliminated, out...)
	}
	if len(keep) == 1 {
		s.Winner = keep[0]
		s.State = GS_OVER
		log.Infof("Session over, winner %s after %d turns", s.Winner, s.Stats.Turns)
		return
	}
	s.Board.AdvanceTurn()
	s.State = GS_PLAY
}

func call(f func()) {
	if f != nil {
		f()
	}
}
