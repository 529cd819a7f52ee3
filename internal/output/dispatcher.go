package output

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"labelstrip/internal/logging"
	"labelstrip/internal/printing"
	"labelstrip/internal/services"
)

// Dispatcher writes composed strip images to disk and optionally forwards
// them to a printer.
type Dispatcher struct {
	logger  *slog.Logger
	printer printing.Printer
}

// New constructs a Dispatcher. A nil logger is replaced with a no-op logger;
// the printer may be nil when printing will never be requested.
func New(logger *slog.Logger, printer printing.Printer) *Dispatcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Dispatcher{logger: logger, printer: printer}
}

// Write encodes the strip as PNG at path, overwriting any existing file.
func (d *Dispatcher) Write(strip image.Image, path string) error {
	if strip == nil {
		return services.Wrap(services.ErrValidation, "output", "write", "nil strip image", nil)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return services.Wrap(services.ErrResource, "output", "write",
				fmt.Sprintf("create directory %q", dir), err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return services.Wrap(services.ErrResource, "output", "write", fmt.Sprintf("create %q", path), err)
	}
	defer file.Close()

	if err := png.Encode(file, strip); err != nil {
		return services.Wrap(services.ErrResource, "output", "write", fmt.Sprintf("encode %q", path), err)
	}
	if err := file.Close(); err != nil {
		return services.Wrap(services.ErrResource, "output", "write", fmt.Sprintf("flush %q", path), err)
	}

	d.logger.Info("strip written", logging.String("path", path))
	return nil
}

// Dispatch writes the strip and, when print is set, forwards the file to the
// printer. A print failure is returned to the caller but never removes the
// already written file, so the user can retry printing by hand.
func (d *Dispatcher) Dispatch(ctx context.Context, strip image.Image, path string, print bool) error {
	if err := d.Write(strip, path); err != nil {
		return err
	}
	if !print {
		return nil
	}
	if d.printer == nil {
		return services.Wrap(services.ErrConfiguration, "output", "dispatch", "no printer configured", nil)
	}
	if err := d.printer.Print(ctx, path); err != nil {
		d.logger.Warn("print failed; strip file retained",
			logging.String("path", path), logging.Error(err))
		return err
	}
	d.logger.Info("strip printed", logging.String("path", path))
	return nil
}
