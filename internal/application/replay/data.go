package replay

import "github.com/younwookim/shadowgrove/internal/application/system"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	A  bool `json:"a,omitempty"`  // Attack
	Dg bool `json:"dg,omitempty"` // Dodge
	P  bool `json:"p,omitempty"`  // Pause
	C  bool `json:"c,omitempty"`  // Confirm
}

// NewFrameInput packs one tick of input
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		A:  in.Attack,
		Dg: in.Dodge,
		P:  in.Pause,
		C:  in.Confirm,
	}
}

// Input unpacks the recorded tick
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:    fi.L,
		Right:   fi.R,
		Up:      fi.U,
		Down:    fi.D,
		Attack:  fi.A,
		Dodge:   fi.Dg,
		Pause:   fi.P,
		Confirm: fi.C,
	}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	// Outcome is the game state the recorded session ended in
	Outcome string `json:"outcome,omitempty"`
}
