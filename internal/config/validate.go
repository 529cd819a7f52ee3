package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. Domain is deliberately not
// required here: the CLI resolves it from the --domain flag as well, and
// reports its own configuration error when no source provides one.
func (c *Config) Validate() error {
	if err := c.validateLabels(); err != nil {
		return err
	}
	if err := c.validatePrinter(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLabels() error {
	if c.Labels.TapeHeight <= 0 {
		return errors.New("labels.tape_height must be positive")
	}
	if c.Labels.ElementGap < 0 {
		return errors.New("labels.element_gap must not be negative")
	}
	if c.Labels.LabelGap < 0 {
		return errors.New("labels.label_gap must not be negative")
	}
	if c.Labels.FontSize <= 0 {
		return errors.New("labels.font_size must be positive")
	}
	if c.Labels.FontSize > c.Labels.TapeHeight {
		return fmt.Errorf("labels.font_size %d exceeds tape_height %d", c.Labels.FontSize, c.Labels.TapeHeight)
	}
	if c.Labels.QRModuleSize <= 0 {
		return errors.New("labels.qr_module_size must be positive")
	}
	if c.Labels.LabelsPerRow < 0 {
		return errors.New("labels.labels_per_row must not be negative (0 keeps a single row)")
	}
	return nil
}

func (c *Config) validatePrinter() error {
	if c.Printer.Command == "" {
		return errors.New("printer.command must be set")
	}
	if c.Printer.TimeoutSeconds <= 0 {
		return errors.New("printer.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
