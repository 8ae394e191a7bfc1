package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrLayout = errors.New("bad layout")

// ReadLayout builds a board from a text grid, one line per row:
//
//	A1 .  B2
//	.  A3 .
//
// "." is an empty cell, a letter followed by a count places that many atoms
// for players[letter-'A']. Blank lines and lines starting with # are ignored.
func ReadLayout(reader io.Reader, players []*Player) (*Board, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	lines := make([][]string, 0)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.Fields(s)
		if len(lines) > 0 && len(fields) != len(lines[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, expected %d", ErrLayout, lineNo, len(fields), len(lines[0]))
		}
		lines = append(lines, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrLayout)
	}

	b, err := NewBoard(len(lines), len(lines[0]), players)
	if err != nil {
		return nil, err
	}
	for r, fields := range lines {
		for c, token := range fields {
			if token == "." {
				continue
			}
			p, count, err := parseToken(token, players)
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d,%d): %v", ErrLayout, r, c, err)
			}
			cell := b.Matrix[r][c]
			for i := 0; i < count; i++ {
				cell.AddAtom(p)
			}
		}
	}
	return b, nil
}

func parseToken(token string, players []*Player) (*Player, int, error) {
	letter := token[0]
	if letter < 'A' || int(letter-'A') >= len(players) {
		return nil, 0, fmt.Errorf("unknown player %q", letter)
	}
	count, err := strconv.Atoi(token[1:])
	if err != nil {
		return nil, 0, fmt.Errorf("bad count in %q", token)
	}
	if count < 1 {
		return nil, 0, fmt.Errorf("count %d in %q", count, token)
	}
	return players[letter-'A'], count, nil
}

// String writes the board in the format read by ReadLayout, lettering
// owners by their place in the rotation.
func (b *Board) String() string {
	snapshot := b.Snapshot()
	letters := make(map[*Player]byte, len(snapshot.Players))
	for i, p := range snapshot.Players {
		letters[p] = byte('A' + i)
	}
	var sb strings.Builder
	for _, line := range snapshot.Cells {
		for c, view := range line {
			token := "."
			if view.Owner != nil {
				letter, ok := letters[view.Owner]
				if !ok {
					letter = '?'
				}
				token = string(letter) + strconv.Itoa(view.Atoms)
			}
			if c < len(line)-1 {
				fmt.Fprintf(&sb, "%-4s", token)
			} else {
				sb.WriteString(token)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
