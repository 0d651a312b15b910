package eink

import (
	"fmt"
	"log/slog"
)

// Device is a display that accepts finished frames. Panel drivers own
// their lifecycle (init, refresh, sleep); a Device only receives pixels.
type Device interface {
	Display(frame *Bitmap) error
}

// PNGDevice writes each frame to a PNG file, rotated the way a panel
// mounted at Rotation would expect it.
type PNGDevice struct {
	Path     string
	Rotation Orientation
}

// Display implements Device.
func (d *PNGDevice) Display(frame *Bitmap) error {
	out := frame.Rotate(d.Rotation)
	if err := out.SavePNG(d.Path); err != nil {
		return fmt.Errorf("eink: display %s: %w", d.Path, err)
	}
	Logger().Debug("frame displayed",
		slog.String("path", d.Path),
		slog.String("rotation", d.Rotation.String()),
		slog.Int("ink", out.InkCount()))
	return nil
}

// Show exports the canvas frame to dev.
func (c *Canvas) Show(dev Device) error {
	return dev.Display(c.bitmap)
}
