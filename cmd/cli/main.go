package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/limaJavier/cargolp/internal/handlers"
	"github.com/limaJavier/cargolp/internal/logging"
	"github.com/limaJavier/cargolp/pkg/config"
	"github.com/limaJavier/cargolp/pkg/lp"
	"github.com/limaJavier/cargolp/pkg/model"
)

var (
	v          = config.New()
	configFile string
	inputFile  string
	outFile    string
	cfg        config.Config
	logger     logr.Logger
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cargolp: %v\n", err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cargolp",
		Short:         "Writes the LP model of a cargo-loading instance in lp_solve format",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if cfg, err = config.Load(v, configFile); err != nil {
				return err
			}
			logger, err = logging.New(cfg.Log.Level, cfg.Log.Development)
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to a json or yaml config file")
	flags.String("log-level", "info", `Log level: "debug", "info", "warn" or "error"`)
	lo.Must0(v.BindPFlag("log.level", flags.Lookup("log-level")))

	root.AddCommand(generateCommand(), describeCommand(), serveCommand())
	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

func generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the LP model",
		Long: `Reads an instance and writes its LP model. The instance is read from --file (json, yaml or the
plain "k n" text format, chosen by extension) or, if --file is empty, as plain text from the
Standard Input. Nothing is written if the model cannot be generated.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := readInput(cmd.InOrStdin())
			if err != nil {
				return report(err, "cannot parse input")
			}

			lpModel, err := lp.NewCargoGenerator(generatorOptions()).Generate(input)
			if err != nil {
				return report(err, "cannot generate model")
			}

			if err := writeOutput(cmd.OutOrStdout(), lpModel.Text); err != nil {
				return report(err, "cannot write model")
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Variables: %v\n", lpModel.Variables)
			fmt.Fprintf(cmd.ErrOrStderr(), "Constraints: %v\n", lpModel.Constraints)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&inputFile, "file", "", "Path to the input file; if empty, plain text is read from the Standard Input")
	flags.StringVar(&outFile, "out", "", "Path to the file where the model will be written; if empty, it'll be written into the Standard Output")
	flags.String("naming", "compact", `Variable naming: "compact" (x12) or "delimited" (x_1_2)`)
	flags.Int("precision", 2, "Decimals of the volume coefficients, -1 for the shortest exact representation")
	flags.Int("max-bytes", 0, "Fail if the model would exceed this many bytes, 0 for no limit")
	lo.Must0(v.BindPFlag("naming", flags.Lookup("naming")))
	lo.Must0(v.BindPFlag("precision", flags.Lookup("precision")))
	lo.Must0(v.BindPFlag("maxModelBytes", flags.Lookup("max-bytes")))
	return cmd
}

func describeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the parsed compartments and loads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := readInput(cmd.InOrStdin())
			if err != nil {
				return report(err, "cannot parse input")
			}
			return model.Describe(cmd.OutOrStdout(), input)
		},
	}
	cmd.Flags().StringVar(&inputFile, "file", "", "Path to the input file; if empty, plain text is read from the Standard Input")
	return cmd
}

func serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve model generation over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			h := handlers.NewHandlers(lp.NewCargoGenerator(generatorOptions()), logger)
			server := &http.Server{
				Addr:              cfg.Server.Address,
				Handler:           h.Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "address", cfg.Server.Address)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return report(err, "server stopped")
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return report(err, "cannot shut down server")
			}
			return nil
		},
	}
	cmd.Flags().String("addr", ":8080", "Address to listen on")
	lo.Must0(v.BindPFlag("server.address", cmd.Flags().Lookup("addr")))
	return cmd
}

func generatorOptions() lp.Options {
	options := cfg.GeneratorOptions()
	options.Logger = logger
	return options
}

func readInput(stdin io.Reader) (model.ModelInput, error) {
	if inputFile == "" {
		return model.ReadText(stdin)
	}
	return model.InputFromFile(inputFile)
}

// Writes to a temporary file first so that a failed write never leaves a truncated model behind
func writeOutput(stdout io.Writer, text string) error {
	if outFile == "" {
		_, err := io.WriteString(stdout, text)
		return err
	}

	tmp := outFile + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0666); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, outFile); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func report(err error, msg string) error {
	return fmt.Errorf("%s: %w", msg, err)
}
