package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeDomain()
	c.normalizeLabels()
	c.normalizePrinter()
	c.normalizeOutput()
	c.normalizeLogging()
}

func (c *Config) normalizeDomain() {
	c.Domain = strings.TrimSpace(c.Domain)
	if c.Domain == "" {
		if value, ok := os.LookupEnv("HOMEBOX_DOMAIN"); ok {
			c.Domain = strings.TrimSpace(value)
		}
	}
	c.Domain = strings.TrimPrefix(strings.TrimPrefix(c.Domain, "https://"), "http://")
	c.Domain = strings.TrimSuffix(c.Domain, "/")
}

func (c *Config) normalizeLabels() {
	c.Labels.ItemPath = strings.Trim(strings.TrimSpace(c.Labels.ItemPath), "/")
	if c.Labels.ItemPath == "" {
		c.Labels.ItemPath = defaultItemPath
	}
}

func (c *Config) normalizePrinter() {
	c.Printer.Command = strings.TrimSpace(c.Printer.Command)
	if c.Printer.Command == "" {
		c.Printer.Command = defaultPrinterCommand
	}
	if c.Printer.TimeoutSeconds <= 0 {
		c.Printer.TimeoutSeconds = defaultPrinterTimeoutSeconds
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Filename = strings.TrimSpace(c.Output.Filename)
	if c.Output.Filename == "" {
		c.Output.Filename = defaultOutputFilename
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
