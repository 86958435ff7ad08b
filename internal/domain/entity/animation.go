package entity

// Logical animation names requested by states. Behaviors map them to clips.
const (
	AnimIdle   = "idle"
	AnimWalk   = "walk"
	AnimChase  = "chase"
	AnimAttack = "attack"
	AnimDodge  = "dodge"
	AnimHit    = "hit"
	AnimDeath  = "death"
)

// Clip describes one animation strip. A clip with Next set plays once and
// then continues with Next.
type Clip struct {
	Frames   int
	Interval float64
	Next     string
}

// Animator is the frame cursor of an entity. Rendering reads Clip and Frame.
type Animator struct {
	Name  string
	Clip  string
	Frame int
	Clips map[string]Clip

	elapsed float64
}

// NewAnimator creates an animator over a clip table
func NewAnimator(clips map[string]Clip) Animator {
	return Animator{Clips: clips}
}

// Play switches to clip under the logical name. The cursor resets only when
// the clip changes.
func (a *Animator) Play(name, clip string) {
	a.Name = name
	if a.Clip == clip {
		return
	}
	a.Clip = clip
	a.Restart()
}

// Restart rewinds the current clip
func (a *Animator) Restart() {
	a.Frame = 0
	a.elapsed = 0
}

// Advance steps the cursor by at most one frame
func (a *Animator) Advance(dt float64) {
	c, ok := a.Clips[a.Clip]
	if !ok || c.Frames <= 0 || c.Interval <= 0 {
		return
	}

	a.elapsed += dt
	if a.elapsed < c.Interval {
		return
	}
	a.elapsed = 0
	a.Frame++
	if a.Frame < c.Frames {
		return
	}

	a.Frame = 0
	if c.Next != "" {
		a.Clip = c.Next
	}
}

// TotalFrames returns the frame count of the current clip, 0 if unknown
func (a *Animator) TotalFrames() int {
	c, ok := a.Clips[a.Clip]
	if !ok || c.Frames < 0 {
		return 0
	}
	return c.Frames
}

// Duration returns the play time of one cycle of the current clip
func (a *Animator) Duration() float64 {
	c, ok := a.Clips[a.Clip]
	if !ok || c.Frames <= 0 || c.Interval <= 0 {
		return 0
	}
	return float64(c.Frames) * c.Interval
}

// InTransition reports whether the current clip is a one-shot lead-in
func (a *Animator) InTransition() bool {
	return a.Clips[a.Clip].Next != ""
}
