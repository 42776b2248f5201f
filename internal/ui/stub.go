//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Target, int) *HUD { return nil }

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(...string) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Contains always reports false in the headless build.
func (h *HUD) Contains(int, int, int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}

// Marks mirrors the GUI build's overlay annotations.
type Marks struct {
	SourceX, SourceY int
	ProbeX, ProbeY   int
	ShowProbe        bool
	SelX, SelY       int
	SelRadius        float64
	HasSelection     bool
	Caption          string
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, Marks) {}
