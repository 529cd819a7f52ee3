package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"labelstrip/internal/assetid"
	"labelstrip/internal/config"
	"labelstrip/internal/logging"
	"labelstrip/internal/output"
	"labelstrip/internal/printing"
	"labelstrip/internal/render"
	"labelstrip/internal/services"
)

type generateOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	start      string
	end        string
	domain     string
	output     string
	print      bool
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	if strings.TrimSpace(opts.start) == "" || strings.TrimSpace(opts.end) == "" {
		return services.Wrap(services.ErrValidation, "cli", "flags", "--start and --end are required", nil)
	}

	cfg, _, _, err := config.Load(opts.configPath)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "cli", "config", "load configuration", err)
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Logging.Format = opts.logFormat
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "cli", "logging", "setup logging", err)
	}
	logger = logger.With(logging.String("run_id", uuid.NewString()))

	// Resolving the domain happens before any ID parsing so a missing domain
	// is reported first.
	domain, err := resolveDomain(opts.domain, cfg)
	if err != nil {
		return err
	}

	ids, err := assetid.Range(opts.start, opts.end)
	if err != nil {
		return err
	}
	logger.Info("expanded asset range",
		logging.String("start", ids[0].String()),
		logging.String("end", ids[len(ids)-1].String()),
		logging.Int("labels", len(ids)))

	renderer, err := render.New(render.Options{
		TapeHeight:   cfg.Labels.TapeHeight,
		ElementGap:   cfg.Labels.ElementGap,
		LabelGap:     cfg.Labels.LabelGap,
		FontSize:     cfg.Labels.FontSize,
		QRModuleSize: cfg.Labels.QRModuleSize,
		QRQuietZone:  cfg.Labels.QRQuietZone,
		LabelsPerRow: cfg.Labels.LabelsPerRow,
	})
	if err != nil {
		return err
	}

	specs := make([]render.Spec, 0, len(ids))
	for _, id := range ids {
		specs = append(specs, render.NewSpec(domain, cfg.Labels.ItemPath, id))
	}

	strip, err := renderer.Strip(specs)
	if err != nil {
		return err
	}

	outputPath := strings.TrimSpace(opts.output)
	if outputPath == "" {
		outputPath = cfg.Output.Filename
	}

	printer := printing.NewCLI(
		printing.WithBinary(cfg.Printer.Command),
		printing.WithTimeout(time.Duration(cfg.PrintTimeout())*time.Second),
	)
	dispatcher := output.New(logger, printer)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := dispatcher.Dispatch(ctx, strip, outputPath, opts.print); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d labels to %s\n", len(ids), outputPath)
	if opts.print {
		fmt.Fprintf(out, "Sent %s to the printer\n", outputPath)
	}
	return nil
}

// resolveDomain picks the inventory domain for payload URLs. The --domain
// flag wins over the config file value, which itself already absorbed the
// HOMEBOX_DOMAIN environment fallback during config load.
func resolveDomain(flagValue string, cfg *config.Config) (string, error) {
	domain := cleanDomain(flagValue)
	if domain == "" {
		domain = cfg.Domain
	}
	if domain == "" {
		return "", services.Wrap(services.ErrConfiguration, "cli", "domain",
			"no inventory domain configured; pass --domain, set HOMEBOX_DOMAIN, or set domain in the config file", nil)
	}
	return domain, nil
}

func cleanDomain(value string) string {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(strings.TrimPrefix(value, "https://"), "http://")
	return strings.TrimSuffix(value, "/")
}
