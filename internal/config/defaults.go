package config

const (
	defaultTapeHeight            = 76
	defaultElementGap            = 6
	defaultLabelGap              = 1
	defaultFontSize              = 32
	defaultQRModuleSize          = 2
	defaultLabelsPerRow          = 0
	defaultItemPath              = "a"
	defaultPrinterCommand        = "ptouch-print"
	defaultPrinterTimeoutSeconds = 60
	defaultOutputFilename        = "asset_labels.png"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults. The label
// geometry matches the 12mm tape profile the tool was tuned for.
func Default() Config {
	return Config{
		Labels: Labels{
			TapeHeight:   defaultTapeHeight,
			ElementGap:   defaultElementGap,
			LabelGap:     defaultLabelGap,
			FontSize:     defaultFontSize,
			QRModuleSize: defaultQRModuleSize,
			QRQuietZone:  true,
			LabelsPerRow: defaultLabelsPerRow,
			ItemPath:     defaultItemPath,
		},
		Printer: Printer{
			Command:        defaultPrinterCommand,
			TimeoutSeconds: defaultPrinterTimeoutSeconds,
		},
		Output: Output{
			Filename: defaultOutputFilename,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
