package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bastiangx/suggestlog/internal/cli"
	"github.com/bastiangx/suggestlog/internal/logger"
	"github.com/bastiangx/suggestlog/internal/pipeline"
	"github.com/bastiangx/suggestlog/internal/utils"
	"github.com/bastiangx/suggestlog/pkg/config"
	"github.com/bastiangx/suggestlog/pkg/dictionary"
	"github.com/bastiangx/suggestlog/pkg/harvest"
	"github.com/bastiangx/suggestlog/pkg/oracle"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	inputFile      string
	outputFile     string
	inputType      inputTypeFlag
	sentenceColumn string
	configPath     string
	debug          bool
	version        bool
}

func newRootCommand(stderr io.Writer) *cobra.Command {
	opts := &rootOptions{inputType: inputTypeFlag{value: pipeline.InputText}}
	cmd := &cobra.Command{
		Use:           AppName + " -i <input> -o <output> [flags]",
		Short:         "Harvest spelling suggestions for sentences into CSV",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.SetOutput(stderr)
			if opts.debug {
				log.SetLevel(log.DebugLevel)
				log.SetReportTimestamp(true)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.version {
				showVersion(cmd.OutOrStdout())
				return nil
			}
			return runHarvest(cmd, opts, stderr)
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{cmd: c, err: err}
	})

	defaultConfig, err := config.GetDefaultConfigPath()
	if err != nil {
		defaultConfig = "~/.config/suggestlog/config.toml"
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.inputFile, "input-file", "i", "", "File to read sentences from (required)")
	flags.StringVarP(&opts.outputFile, "output-file", "o", "", "CSV file to write (required)")
	flags.VarP(&opts.inputType, "input-type", "t", "How to read the input file")
	flags.StringVarP(&opts.sentenceColumn, "sentence-column", "s", "", "Header name of the sentence column (csv only)")
	flags.BoolVar(&opts.version, "version", false, "Show current version")

	persistent := cmd.PersistentFlags()
	persistent.StringVarP(&opts.configPath, "config", "c", "", fmt.Sprintf("TOML config file (default %s)", defaultConfig))
	persistent.BoolVarP(&opts.debug, "debug", "d", false, "Toggle debug mode")

	cmd.AddCommand(newProbeCommand(opts))
	cmd.AddCommand(newCompileCommand())
	return cmd
}

// validate reports usage mistakes cobra can't catch on its own.
func (o *rootOptions) validate() error {
	switch {
	case o.inputFile == "":
		return errors.New(`required flag "input-file" not set`)
	case o.outputFile == "":
		return errors.New(`required flag "output-file" not set`)
	case o.sentenceColumn != "" && o.inputType.value != pipeline.InputCSV:
		return errors.New("--sentence-column needs --input-type csv")
	}
	return nil
}

func runHarvest(cmd *cobra.Command, opts *rootOptions, stderr io.Writer) error {
	if err := opts.validate(); err != nil {
		return &usageError{cmd: cmd, err: err}
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	h, err := newHarvester(cfg)
	if err != nil {
		return err
	}

	d := pipeline.NewDriver(h)
	d.SentenceColumn = opts.sentenceColumn
	if cfg.Progress.Enabled {
		d.Progress = pipeline.NewProgress(logger.Progress(stderr), cfg.Progress.Every)
	}

	log.Debug("Harvesting", "input", opts.inputFile, "type", opts.inputType.value, "output", opts.outputFile)
	if err := d.Run(opts.inputType.value, opts.inputFile, opts.outputFile); err != nil {
		return fmt.Errorf("harvest failed: %w", err)
	}
	return nil
}

func newProbeCommand(root *rootOptions) *cobra.Command {
	var maxPrefix int
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Type sentences on stdin and see what the oracle suggests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			h, err := newHarvester(cfg)
			if err != nil {
				return err
			}
			return cli.NewInputHandler(h, cmd.OutOrStdout(), maxPrefix).Start(cmd.InOrStdin())
		},
	}
	cmd.Flags().IntVar(&maxPrefix, "prmax", 256, "Maximum prefix length in characters")
	return cmd
}

func newCompileCommand() *cobra.Command {
	var input, output, language string
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile word lists into a msgpack snapshot or a binary chunk",
		Long: "Compile reads a word list file or directory and writes it as a msgpack\n" +
			"snapshot, or as a dict_NNNN.bin chunk when the output ends in .bin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input == "" || output == "" {
				return &usageError{cmd: cmd, err: errors.New(`required flags "input-file" and "output-file" not set`)}
			}
			if language == "" {
				language = oracle.ResolveLanguage()
			}
			return compile(input, output, language)
		},
	}
	cmd.Flags().StringVarP(&input, "input-file", "i", "", "Word list file or directory (required)")
	cmd.Flags().StringVarP(&output, "output-file", "o", "", "Snapshot to write (required)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Language recorded in the snapshot")
	return cmd
}

func compile(input, output, language string) (err error) {
	wl, err := dictionary.Load(input)
	if err != nil {
		return err
	}
	chunk := filepath.Ext(output) == ".bin"
	if chunk && wl.Len() > dictionary.MaxChunkEntries {
		return fmt.Errorf("%s holds %s words, a chunk ranks at most %s: %w", input,
			utils.FormatWithCommas(wl.Len()), utils.FormatWithCommas(dictionary.MaxChunkEntries), dictionary.ErrChunkTooLarge)
	}
	if err := utils.EnsureDir(filepath.Dir(output)); err != nil {
		return err
	}
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if chunk {
		err = dictionary.WriteChunk(file, wl.Entries())
	} else {
		err = dictionary.WriteSnapshot(file, dictionary.NewSnapshot(language, wl))
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	log.Info("Compiled", "words", utils.FormatWithCommas(wl.Len()), "language", language, "output", output)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg, used, err := config.LoadConfigWithPriority(path)
	if err != nil {
		return nil, err
	}
	if used != "" {
		log.Debugf("Using config file: (%s)", utils.AbsPath(used))
	}
	return cfg, nil
}

// newHarvester builds the dictionary oracle described by cfg. A missing
// dictionary leaves the oracle empty.
func newHarvester(cfg *config.Config) (*harvest.Harvester, error) {
	lang := oracle.NormalizeLanguage(cfg.Oracle.Language)
	if lang == "" {
		lang = oracle.ResolveLanguage()
	}

	configDir, err := config.GetConfigDir()
	if err != nil {
		configDir = ""
	}
	resolver, err := utils.NewPathResolver(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize path resolver: %w", err)
	}
	path := resolver.DictionaryPath(cfg.Oracle.DictionaryDir, lang)

	wl, err := dictionary.Load(path)
	switch {
	case errors.Is(err, os.ErrNotExist), errors.Is(err, dictionary.ErrNoDictionary):
		log.Warn("No dictionary found, suggestions will be empty", "language", lang, "path", path)
		wl = dictionary.NewWordList()
	case err != nil:
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	default:
		log.Debug("Loaded dictionary", "language", lang, "path", path, "words", wl.Len())
	}

	o, err := oracle.NewDictionary(lang, wl, cfg.OracleOptions())
	if err != nil {
		return nil, err
	}
	return harvest.New(o), nil
}

func showVersion(w io.Writer) {
	banner := logger.Banner(w)
	banner.Print("")
	banner.Print("[ suggestlog ] Harvests spelling suggestions into CSV")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// exitCode reports err the way its kind calls for and maps it to a status.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "Error: %v\n", uerr.err)
		fmt.Fprint(stderr, uerr.cmd.UsageString())
		return 1
	}
	log.Error(err)
	return 1
}
