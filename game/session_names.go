package game

import "fmt"

func (gs GameState) Name() string {
	switch gs {
	case GS_NEW:
		return "GS_NEW"
	case GS_PLAY:
		return "GS_PLAY"
	case GS_REACTING:
		return "GS_REACTING"
	case GS_OVER:
		return "GS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", gs)
	}
}

func (mr MoveResult) Name() string {
	switch mr {
	case MOVE_ACCEPTED:
		return "ACCEPTED"
	case MOVE_INVALID:
		return "INVALID"
	case MOVE_LOCKED:
		return "LOCKED"
	case MOVE_OVER:
		return "OVER"
	default:
		return "N/A"
	}
}
