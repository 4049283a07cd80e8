// Command tabular inspects and converts delimited tabular files using
// the in-memory and streaming data models.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tabkit/tabular/pkg/config"
	jsonutil "github.com/tabkit/tabular/pkg/json"
	"github.com/tabkit/tabular/pkg/logger"
	"github.com/tabkit/tabular/pkg/tabular"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "tabular",
		Short: "Inspect and convert delimited tabular data",
		Long: `tabular reads delimited files (plain, .gz, or .zst) into tabular data
models: it infers per-column semantic types, previews rows, and converts
files to JSON lines through a memory-bounded streaming model.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "path to a yaml config file")
	flags.Int("header-rows", 1, "number of leading rows merged into column names")
	flags.Bool("skip-empty-rows", true, "drop rows whose cells are all blank")
	flags.Int("chunk-size", config.DefaultChunkSize, "rows per chunk for streaming reads")
	flags.String("delimiter", ",", "field delimiter (single character)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := initViper(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root.AddCommand(versionCmd(), schemaCmd(), headCmd(), convertCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// initViper binds flags and TABULAR_* environment variables. Dashed
// flag names map to underscored env names (header-rows becomes
// TABULAR_HEADER_ROWS).
func initViper(flags *pflag.FlagSet) error {
	viper.SetEnvPrefix("TABULAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return viper.BindPFlags(flags)
}

// loadConfig merges the optional config file with flag and env values.
func loadConfig() (*config.ModelConfig, error) {
	cfg := config.Default()
	if path := viper.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if viper.IsSet("header-rows") {
		cfg.HeaderRows = viper.GetInt("header-rows")
	}
	if viper.IsSet("skip-empty-rows") {
		cfg.SkipEmptyRows = viper.GetBool("skip-empty-rows")
	}
	if viper.IsSet("chunk-size") {
		cfg.ChunkSize = viper.GetInt("chunk-size")
	}
	if viper.IsSet("delimiter") {
		cfg.Delimiter = viper.GetString("delimiter")
	}
	if viper.IsSet("log-level") {
		cfg.Logging.Level = viper.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		Encoding:    cfg.Logging.Encoding,
	}); err != nil {
		return nil, err
	}

	return cfg, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tabular v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// columnSchema is one entry of the schema command's output.
type columnSchema struct {
	Column string `json:"column"`
	Type   string `json:"type"`
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema FILE",
		Short: "Infer and print per-column semantic types as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			model, err := loadModel(args[0], cfg)
			if err != nil {
				return err
			}

			overrides, err := cfg.TypeDefaultOverrides()
			if err != nil {
				return err
			}
			typed := model.Typed(overrides)

			columns := make([]columnSchema, 0, len(model.ColumnNames()))
			for _, name := range model.ColumnNames() {
				t, err := typed.ColumnType(name)
				if err != nil {
					return err
				}
				columns = append(columns, columnSchema{Column: name, Type: t.String()})
			}

			out, err := jsonutil.MarshalIndent(columns, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func headCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "head FILE",
		Short: "Print the first rows as JSON lines",
		Args:  cobra.ExactArgs(1),
	}
	rows := cmd.Flags().IntP("rows", "n", 10, "number of rows to print")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Sync()

		model, err := loadModel(args[0], cfg)
		if err != nil {
			return err
		}

		enc := jsonutil.NewLinesEncoder(cmd.OutOrStdout())
		limit := *rows
		if limit > model.RowCount() {
			limit = model.RowCount()
		}
		for i := 0; i < limit; i++ {
			row, err := model.RowMap(i)
			if err != nil {
				return err
			}
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert FILE",
		Short: "Stream a delimited file to JSON lines",
		Long: `convert pushes FILE through the forward-only streaming model and
emits each data row as a JSON object keyed by column name. Memory use is
bounded by the chunk size regardless of file size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			src, err := newFileChunkSource(args[0], rune(cfg.Delimiter[0]), cfg.ChunkSize)
			if err != nil {
				return err
			}

			model, err := tabular.NewStreamingModel(src,
				tabular.WithHeaderRows(cfg.HeaderRows),
				tabular.WithSkipEmptyRows(cfg.SkipEmptyRows),
				tabular.WithChunkSize(cfg.ChunkSize),
				tabular.WithLogger(logger.Get()),
			)
			if err != nil {
				return err
			}

			enc := jsonutil.NewLinesEncoder(cmd.OutOrStdout())
			count := 0
			for row := range model.RowMaps() {
				if err := enc.Encode(row); err != nil {
					return err
				}
				count++
			}
			if err := model.Err(); err != nil {
				return err
			}

			logger.Get().Info("conversion complete",
				zap.String("file", args[0]),
				zap.Int("rows", count))
			return nil
		},
	}
}

// loadModel materializes a delimited file into an in-memory model.
func loadModel(path string, cfg *config.ModelConfig) (*tabular.Model, error) {
	rows, err := readAllRows(path, rune(cfg.Delimiter[0]))
	if err != nil {
		return nil, err
	}
	return tabular.NewModel(rows,
		tabular.WithHeaderRows(cfg.HeaderRows),
		tabular.WithSkipEmptyRows(cfg.SkipEmptyRows),
		tabular.WithLogger(logger.Get()),
	)
}
