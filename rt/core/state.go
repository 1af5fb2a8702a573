package core

// SceneState is everything that changes between frames.
type SceneState struct {
	Camera *Camera
	Lamps  []*LampLight

	Presets     []LightPreset
	PresetIndex int

	DirectionalOn bool

	// Elapsed is seconds since the first frame; spinning objects use it.
	Elapsed float32
}

func NewSceneState(camera *Camera, lamps []*LampLight) *SceneState {
	if camera == nil {
		camera = DefaultCamera()
	}
	return &SceneState{
		Camera:        camera,
		Lamps:         lamps,
		Presets:       DefaultPresets,
		DirectionalOn: true,
	}
}

// Preset returns the active preset, or NeutralPreset when none are configured.
func (s *SceneState) Preset() LightPreset {
	if len(s.Presets) == 0 {
		return NeutralPreset
	}
	return s.Presets[s.PresetIndex%len(s.Presets)]
}

// Advance runs one frame: camera movement, then lamp transitions.
func (s *SceneState) Advance(dt float32) {
	s.Elapsed += dt
	s.Camera.Integrate()

	preset := s.Preset()
	for _, lamp := range s.Lamps {
		lamp.Advance(dt, preset)
	}
}

// ToggleLamp switches lamp i and reports its new state. Unknown indices are ignored.
func (s *SceneState) ToggleLamp(i int) (on bool, ok bool) {
	if i < 0 || i >= len(s.Lamps) {
		return false, false
	}
	lamp := s.Lamps[i]
	lamp.Toggle(s.Preset())
	return lamp.On, true
}

func (s *SceneState) ShiftLampColors(offset int) {
	preset := s.Preset()
	for _, lamp := range s.Lamps {
		lamp.ShiftColor(offset, preset)
	}
}

func (s *SceneState) AdjustLampIntensity(delta float32) {
	for _, lamp := range s.Lamps {
		lamp.AdjustIntensity(delta)
	}
}

// CyclePreset moves to the next preset. Timers are untouched; the new
// scaling shows on the next Advance.
func (s *SceneState) CyclePreset() int {
	if len(s.Presets) == 0 {
		return 0
	}
	s.PresetIndex = (s.PresetIndex + 1) % len(s.Presets)
	return s.PresetIndex
}

func (s *SceneState) ToggleDirectional() bool {
	s.DirectionalOn = !s.DirectionalOn
	return s.DirectionalOn
}
