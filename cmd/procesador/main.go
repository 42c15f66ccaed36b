// Command procesador processes a PDF of concatenated transport orders and
// writes one tabular report PDF per detected order.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	procesador "github.com/aquinode91-creator/procesador-pdf"
	"github.com/aquinode91-creator/procesador-pdf/internal/config"
	"github.com/aquinode91-creator/procesador-pdf/reader"
	"github.com/aquinode91-creator/procesador-pdf/report"
)

const version = "1.0.0"

var (
	cfgFile   string
	outputDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "procesador",
	Short: "Procesador de órdenes de transporte",
	Long: `Procesador extrae las órdenes de transporte y sus facturas de un PDF,
las agrupa por cliente y genera un reporte tabular paginado por orden.`,
	SilenceUsage: true,
}

var procesarCmd = &cobra.Command{
	Use:   "procesar <archivo.pdf>",
	Short: "Procesa un PDF y genera los reportes por orden",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return procesar(args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("procesador v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "archivo de configuración YAML")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "registro detallado")
	procesarCmd.Flags().StringVarP(&outputDir, "salida", "o", "", "directorio de salida (reemplaza la configuración)")
	rootCmd.AddCommand(procesarCmd, versionCmd)
}

func procesar(path string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	logger, err := newLogger(cfg.Verbose || verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	r, err := reader.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	pages, err := r.PageTexts()
	if err != nil {
		return err
	}
	logger.Info("documento leído",
		zap.String("archivo", path),
		zap.Int("páginas", len(pages)),
	)

	// The renderer is created up front so layout measures widths with the
	// same font size the PDF backend will draw with.
	renderer := report.NewRendererWithSize(cfg.FontSize)
	artifact, warnings, err := procesador.FromPages(pages).
		WithMeasure(renderer.Measure()).
		Report()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn(w.String())
	}
	if len(artifact.Reports) == 0 {
		logger.Warn("no se encontraron registros; no se generan reportes")
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creando directorio de salida: %w", err)
	}

	for _, rep := range artifact.Reports {
		for _, g := range rep.Groups {
			logger.Debug("cliente agrupado",
				zap.Int("secuencia", g.Seq),
				zap.String("cliente", g.Key),
				zap.Int("facturas", len(g.Invoices)),
				zap.String("total", report.FormatAmount(g.Total())),
			)
		}
		data, err := renderer.Render(rep)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("orden_%s.pdf", sanitize(rep.Order.OrderNumber))
		dest := filepath.Join(cfg.OutputDir, name)
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("escribiendo %s: %w", dest, err)
		}
		logger.Info("reporte generado",
			zap.String("orden", rep.Order.OrderNumber),
			zap.Int("facturas", rep.Order.InvoiceCount()),
			zap.Int("páginas", len(rep.Pages)),
			zap.String("archivo", dest),
		)
	}
	logger.Info("procesamiento completo",
		zap.String("corrida", artifact.ID.String()),
		zap.Int("órdenes", len(artifact.Reports)),
	)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// sanitize makes an order number safe for use in a filename.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
