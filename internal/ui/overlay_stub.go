//go:build !ebiten

package ui

import "conway-ca/pkg/sims/life"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(life.Size, int) *Overlay { return &Overlay{} }

// SetVisible is a no-op in headless builds.
func (o *Overlay) SetVisible(bool) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
