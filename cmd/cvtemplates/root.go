package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cvtemplates "github.com/goliatone/go-cvtemplates"
	"github.com/goliatone/go-cvtemplates/internal/config"
	"github.com/goliatone/go-cvtemplates/internal/logging"
	"github.com/goliatone/go-cvtemplates/pkg/gallery"
	"github.com/goliatone/go-cvtemplates/pkg/renderers/html"
	"github.com/goliatone/go-cvtemplates/pkg/resume"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	resumePath string

	cfg    config.Config
	logger *slog.Logger
	picker picker
}

func newApp() *app {
	return &app{picker: surveyPicker{}}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "cvtemplates",
		Short:         "Resume template gallery",
		Long:          "cvtemplates renders one resume in 40 visual variants and serves them as a printable gallery.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", os.Getenv(config.EnvPrefix+"CONFIG"), "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")
	flags.StringVar(&a.resumePath, "resume", "", "resume YAML/JSON file or URL replacing the sample")

	root.AddCommand(
		newServeCmd(a),
		newRenderCmd(a),
		newListCmd(a),
		newExportCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("resume") {
		cfg.ResumePath, cfg.ResumeURL = splitResumeFlag(a.resumePath)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func splitResumeFlag(raw string) (path, url string) {
	if _, err := resume.SourceFromURL(raw); err == nil {
		return "", raw
	}
	return raw, ""
}

// gallery builds a gallery from the loaded config, swapping in the external
// resume when one is configured.
func (a *app) gallery(ctx context.Context) (*gallery.Gallery, error) {
	opts := []gallery.Option{
		gallery.WithLogger(a.logger),
		gallery.WithDefaultRenderer(a.cfg.DefaultRenderer),
	}
	if a.cfg.TemplatesDir != "" {
		opts = append(opts, gallery.WithHTMLOptions(html.WithTemplatesDir(a.cfg.TemplatesDir)))
	}

	if a.cfg.HasExternalResume() {
		record, err := a.loadResume(ctx)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gallery.WithResume(record))
	}

	g := gallery.New(opts...)
	if err := g.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func (a *app) loadResume(ctx context.Context) (resume.ResumeRecord, error) {
	loader := cvtemplates.NewLoader(cvtemplates.LoaderOptions{
		AllowHTTP:      a.cfg.AllowHTTP || a.cfg.ResumeURL != "",
		RequestTimeout: a.cfg.HTTPTimeout,
	})

	var src resume.Source
	if a.cfg.ResumeURL != "" {
		s, err := resume.SourceFromURL(a.cfg.ResumeURL)
		if err != nil {
			return resume.ResumeRecord{}, fmt.Errorf("cvtemplates: resume url: %w", err)
		}
		src = s
	} else {
		src = resume.SourceFromFile(a.cfg.ResumePath)
	}

	record, err := cvtemplates.LoadResume(ctx, loader, src)
	if err != nil {
		return resume.ResumeRecord{}, err
	}
	a.logger.Info("external resume loaded",
		slog.String("source", src.Location()),
		slog.String("name", record.Name),
	)
	return record, nil
}
