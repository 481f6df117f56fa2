// Package main provides the CLI entry point for exsheet-go.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/exsheet-go/pkg/exsheet"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/reader"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/server"
)

var (
	verbose     bool
	outputDir   string
	fileName    string
	noDataLabel string
	minWidth    float64
	maxWidth    float64
	ratio       float64
	listenAddr  string
	pretty      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exsheet",
		Short: "Build Excel workbooks from sheet descriptions",
		Long: `exsheet-go turns YAML or JSON sheet descriptions (title, headers,
data rows, styles) into styled xlsx workbooks with automatic column widths.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().StringVar(&fileName, "file-name", exsheet.DefaultFileName, "File name without extension")
	rootCmd.PersistentFlags().StringVar(&noDataLabel, "no-data-label", exsheet.DefaultNoDataLabel, "Message reported when there is no data")
	rootCmd.PersistentFlags().Float64Var(&minWidth, "min-width", 10, "Minimum automatic column width")
	rootCmd.PersistentFlags().Float64Var(&maxWidth, "max-width", 50, "Maximum automatic column width")
	rootCmd.PersistentFlags().Float64Var(&ratio, "ratio", 1.5, "Length correction ratio for column widths")

	buildCmd := &cobra.Command{
		Use:   "build [sheets.yaml|sheets.json]",
		Short: "Build a workbook from a sheet description file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory for the xlsx file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve workbook downloads over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8080", "HTTP listen address")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print rows, column widths and merged ranges of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(buildCmd, serveCmd, inspectCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func buildOptions() exsheet.Options {
	return exsheet.Options{
		FileName:              fileName,
		NoDataLabel:           noDataLabel,
		MinWidth:              minWidth,
		MaxWidth:              maxWidth,
		LengthCorrectionRatio: ratio,
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	in, err := os.Open(inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file not found: %s", inputPath)
		}
		return err
	}
	defer in.Close()

	sheets, err := models.LoadSheets(in)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", inputPath, err)
	}

	opts := buildOptions()
	opts.Emitter = exsheet.FileEmitter{Dir: outputDir}

	res, err := exsheet.Build(cmd.Context(), sheets, opts)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	if res.NoData {
		fmt.Fprintln(cmd.OutOrStdout(), res.Label)
		return nil
	}
	if !res.Emitted {
		return res.Err()
	}

	log.WithField("file", res.FileName).Infof("wrote %d sheet(s)", len(sheets))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           server.GetRouter(buildOptions()),
		ReadHeaderTimeout: 2 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening for HTTP on: %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("Signalled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	wb, err := reader.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read workbook: %w", err)
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(wb, "", "  ")
	} else {
		data, err = json.Marshal(wb)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
