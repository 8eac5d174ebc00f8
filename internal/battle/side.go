package battle

// Side is per-team state that persists the whole battle.
type Side struct {
	ReflectTurns      int
	LightScreenTurns  int
	SafeguardTurns    int
	MistTurns         int
	SpikesLayers      int
	FollowMeTargetIdx uint8 // 0xFF == none
}

const NoFollowMeTarget uint8 = 0xFF

func NewSide() *Side {
	return &Side{FollowMeTargetIdx: NoFollowMeTarget}
}

func (s *Side) HasReflect() bool      { return s.ReflectTurns > 0 }
func (s *Side) HasLightScreen() bool  { return s.LightScreenTurns > 0 }
func (s *Side) HasSafeguard() bool    { return s.SafeguardTurns > 0 }
func (s *Side) HasMist() bool         { return s.MistTurns > 0 }

// TickScreens decrements every active timer by one at turn-end.
func (s *Side) TickScreens() {
	dec := func(v *int) {
		if *v > 0 {
			*v--
		}
	}
	dec(&s.ReflectTurns)
	dec(&s.LightScreenTurns)
	dec(&s.SafeguardTurns)
	dec(&s.MistTurns)
}
