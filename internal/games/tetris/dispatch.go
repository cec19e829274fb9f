package tetris

import "github.com/vovakirdan/folio-arcade/internal/core"

// Command is a discrete control symbol accepted by the game.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdRotate
	CmdHardDrop
	CmdTogglePause
)

func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdSoftDrop:
		return "SoftDrop"
	case CmdRotate:
		return "Rotate"
	case CmdHardDrop:
		return "HardDrop"
	case CmdTogglePause:
		return "TogglePause"
	default:
		return "None"
	}
}

// Controller is the set of guarded actions a Dispatcher drives.
// *Engine implements it.
type Controller interface {
	MoveLeft() bool
	MoveRight() bool
	MoveDown() bool
	Rotate() bool
	HardDrop() bool
	TogglePause() bool
}

// Dispatcher routes commands to a Controller. It keeps no game state; every
// command goes through the same guards as timer-driven drops.
type Dispatcher struct {
	target Controller
}

// NewDispatcher creates a dispatcher for target.
func NewDispatcher(target Controller) *Dispatcher {
	return &Dispatcher{target: target}
}

// Dispatch runs cmd and reports whether the controller accepted it.
func (d *Dispatcher) Dispatch(cmd Command) bool {
	switch cmd {
	case CmdMoveLeft:
		return d.target.MoveLeft()
	case CmdMoveRight:
		return d.target.MoveRight()
	case CmdSoftDrop:
		return d.target.MoveDown()
	case CmdRotate:
		return d.target.Rotate()
	case CmdHardDrop:
		return d.target.HardDrop()
	case CmdTogglePause:
		return d.target.TogglePause()
	default:
		return false
	}
}

// CommandFor maps a platform action to a command. Platform actions with no
// in-game meaning (quit, restart, speed) map to CmdNone.
func CommandFor(a core.Action) Command {
	switch a {
	case core.ActionLeft:
		return CmdMoveLeft
	case core.ActionRight:
		return CmdMoveRight
	case core.ActionSoftDrop:
		return CmdSoftDrop
	case core.ActionRotate:
		return CmdRotate
	case core.ActionHardDrop:
		return CmdHardDrop
	case core.ActionPause:
		return CmdTogglePause
	default:
		return CmdNone
	}
}
