package scene

// Synchronizer makes every slot camera show the master camera's view.
type Synchronizer struct {
	controls *OrbitControls
	master   *Camera
	cameras  []*Camera
}

// NewSynchronizer ties the registry's cameras to controls, which must drive
// the registry's master camera.
func NewSynchronizer(registry *Registry, controls *OrbitControls) *Synchronizer {
	return &Synchronizer{
		controls: controls,
		master:   registry.Master(),
		cameras:  registry.Cameras(),
	}
}

// Sync advances the controls by one damping step, then copies the master's
// position and orientation to every other camera. Aspect ratios and
// projection matrices are left alone. It reports whether the view moved.
func (s *Synchronizer) Sync() bool {
	moved := s.controls.Update()
	s.master.UpdateMatrixWorld()

	for _, c := range s.cameras {
		if c == s.master {
			continue
		}
		c.CopyTransform(s.master)
		c.UpdateMatrixWorld()
	}
	return moved
}
