package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vchernov/minesweeper-classic/internal/game"
)

// Maps known commands to number of arguments.
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"c": 2,
	"r": 0,
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func validatePosition(g *game.Game, x, y int) error {
	if x < 1 || x > g.Width() || y < 1 || y > g.Height() {
		return fmt.Errorf("cell (%d,%d) is outside the board", x, y)
	}
	return nil
}

// executeCommand applies one line of the wire protocol to a game:
//
//	o x y   open a cell
//	f x y   toggle a flag
//	c x y   chord an open cell
//	r       forfeit the game
//	g       no-op, forces a state reply
func executeCommand(g *game.Game, c string) error {
	parts := strings.Split(c, " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "o":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		if err := validatePosition(g, x, y); err != nil {
			return err
		}
		g.HandleCellClick(x, y)
		return nil
	case "f":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		if err := validatePosition(g, x, y); err != nil {
			return err
		}
		g.ToggleCellMarker(x, y)
		return nil
	case "c":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		if err := validatePosition(g, x, y); err != nil {
			return err
		}
		g.HandleChordReveal(x, y)
		return nil
	case "r":
		g.Forfeit()
		return nil
	}
	return errors.New("invalid command")
}
