package model

import (
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// Player is compared by pointer identity only. Two players with the same
// name and colour are still different players.
type Player struct {
	id    uuid.UUID
	name  string
	color colorful.Color
}

func NewPlayer(name string, color colorful.Color) *Player {
	return &Player{
		id:    uuid.New(),
		name:  name,
		color: color,
	}
}

func (p *Player) ID() uuid.UUID {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Color() colorful.Color {
	return p.color
}

func (p *Player) String() string {
	if p == nil {
		return "-"
	}
	return p.name
}
