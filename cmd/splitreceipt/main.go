// Command splitreceipt renders CRA audit documentation for a receipt that
// was split into two expense entries. It reads a JSON request file produced
// by the receipt management system and writes a single PDF.
//
// Usage: splitreceipt generate -i request.json [-o out.pdf]
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"splitreceipt"
)

const version = "1.0.0"

var (
	inputPath  string
	outputPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "splitreceipt",
	Short:         "Render split-receipt audit documentation PDFs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the PDF for one split from a JSON request file",
	RunE:  runGenerate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("splitreceipt v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	generateCmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON request file (required)")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output PDF path (default split-receipt-<uuid>.pdf)")
	generateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(generateCmd, versionCmd)
}

// newLogger builds a console logger writing to stderr; the PDF path on
// stdout stays clean for scripting.
func newLogger(level string) *zap.Logger {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stderr), lvl)
	return zap.New(core)
}

func defaultOutputName() string {
	return fmt.Sprintf("split-receipt-%s.pdf", uuid.NewString())
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger(logLevel)
	defer logger.Sync()

	req, err := splitreceipt.LoadRequest(inputPath)
	if err != nil {
		logger.Error("invalid request", zap.Error(err))
		return err
	}

	out := outputPath
	if out == "" {
		out = defaultOutputName()
	}

	path, err := splitreceipt.Generate(req.Original, req.Split, req.OriginalItems, req.SplitItems, out)
	if err != nil {
		logger.Error("PDF generation failed", zap.Error(err))
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		logger.Error("generated file missing", zap.Error(err))
		return err
	}

	logger.Info("PDF generated",
		zap.String("path", path),
		zap.Int64("bytes", info.Size()),
		zap.String("original_receipt", req.Original.ID),
		zap.String("new_receipt", req.Split.ID),
	)
	fmt.Println(path)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
