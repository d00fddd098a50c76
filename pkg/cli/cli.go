package cli

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wildfunctions/recursive_art/pkg/config"
	"github.com/wildfunctions/recursive_art/pkg/engine"
	"github.com/wildfunctions/recursive_art/pkg/logging"
	"github.com/wildfunctions/recursive_art/pkg/pool"
)

// Version is set at build time.
var Version = "dev"

type rootOptions struct {
	configFile string
	dotEnv     bool
}

// NewRootCommand returns the recursive-art command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "recursive-art",
		Short:         "Generate images from random expression trees",
		Long:          "Builds one random expression in x and y per color channel and evaluates it at every pixel.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "path to config file (toml, yaml or json)")
	root.PersistentFlags().BoolVar(&opts.dotEnv, "dotenv", false, "load environment variables from .env file")
	addLogFlags(root.PersistentFlags())
	addGenerateFlags(root.Flags())

	root.AddCommand(newRenderCommand(opts))
	root.AddCommand(newGenConfigCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func addLogFlags(fs *pflag.FlagSet) {
	def := config.Default()
	fs.String("log-level", def.Log.Level, "log level (trace, debug, info, warn, error, none)")
	fs.String("log-file", def.Log.File, "write logs to this file instead of stderr")
}

func addGenerateFlags(fs *pflag.FlagSet) {
	def := engine.DefaultConfig()
	fs.Int("width", def.Width, "image width in pixels")
	fs.Int("height", def.Height, "image height in pixels")
	fs.Int("min-depth", def.MinDepth, "minimum expression depth")
	fs.Int("max-depth", def.MaxDepth, "maximum expression depth")
	fs.String("pool", def.Pool, "node pool ("+strings.Join(pool.Names(), ", ")+")")
	fs.Int64("seed", def.Seed, "random seed (0 = random)")
	fs.Int("count", def.Count, "number of images to generate")
	fs.Int("workers", def.Workers, "number of images generated in parallel")
	fs.String("outdir", def.OutDir, "output directory for generated files")
	fs.String("filename", def.Filename, "filename template ({{timestamp}}, {{index}}, {{seed}}, {{id}})")
	fs.Bool("save-expr", def.SaveExpr, "write channel expressions next to each image")
	fs.String("format", def.Format, "report format (text, json)")
}

// setup loads configuration and configures logging for cmd.
func setup(cmd *cobra.Command, opts *rootOptions) (config.Config, func(), error) {
	if opts.dotEnv {
		if err := godotenv.Load(); err != nil {
			return config.Config{}, nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}
	cfg, err := config.Load(cmd, opts.configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return config.Config{}, nil, err
	}
	if opts.configFile != "" {
		log.Debug().Str("path", opts.configFile).Msg("using config file")
	}
	return cfg, closeLog, nil
}

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	cfg, closeLog, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer closeLog()

	e, err := engine.New(cfg.Config)
	if err != nil {
		return err
	}
	report, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case "json":
		if err := engine.WriteJSONFinal(out, report); err != nil {
			return fmt.Errorf("error writing JSON: %w", err)
		}
	default:
		engine.WriteTextFinal(out, report)
	}
	return nil
}
