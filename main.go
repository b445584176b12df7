package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/c14220110/radiologi-backend/config"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/services"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/tarif"
	"github.com/c14220110/radiologi-backend/internal/routes"
	"github.com/c14220110/radiologi-backend/pkg/logger"
	"github.com/c14220110/radiologi-backend/ws"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "radiologi",
		Short:        "Pencatatan dan rekap tagihan pemeriksaan radiologi",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newTarifCmd())
	rootCmd.AddCommand(newMigrateCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	var (
		port    string
		migrate bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Menjalankan HTTP API dan websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if port != "" {
				cfg.Port = port
			}
			log := logger.New(cfg.LogLevel, os.Stderr)
			slog.SetDefault(log)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			h, err := openStore(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer h.Close()

			if migrate {
				if err := h.Migrator.Migrate(ctx); err != nil {
					return fmt.Errorf("migrasi: %w", err)
				}
				log.Info("Tabel radiology_examinations siap")
			}

			hub := ws.NewHub(log)
			go hub.Run(ctx)

			e := echo.New()
			e.HideBanner = true
			routes.Init(e, routes.Dependencies{
				Config: cfg,
				Store:  h.Store,
				Hub:    hub,
				Log:    log,
				Secret: sesiSecret(cfg, log),
			})

			errCh := make(chan error, 1)
			go func() {
				log.Info("Server berjalan", "port", cfg.Port, "driver", cfg.DBDriver)
				if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("Menghentikan server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Port HTTP (default dari PORT)")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Buat tabel bila belum ada sebelum server berjalan")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		bulan string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Mengekspor data pemeriksaan satu bulan ke file Excel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := services.MonthRange(bulan); err != nil {
				return fmt.Errorf("--bulan %q: %w", bulan, err)
			}

			cfg := config.LoadConfig()
			log := logger.New(cfg.LogLevel, cmd.ErrOrStderr())
			ctx := cmd.Context()

			h, err := openStore(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer h.Close()

			listing := services.NewListing(h.Store, services.ListingOptions{
				Notifier: services.LogNotifier{Log: log},
				Log:      log,
			})
			if _, err := listing.SelectMonth(ctx, bulan); err != nil {
				return err
			}

			// Tulis ke buffer dulu supaya tidak ada file setengah jadi atau file kosong.
			var buf bytes.Buffer
			name, err := listing.ExportCurrentMonth(&buf)
			if err != nil {
				return err
			}
			if out == "" {
				out = name
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("menulis %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d data ditulis ke %s\n", len(listing.Records()), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&bulan, "bulan", "", "Bulan yang diekspor (YYYY-MM)")
	cmd.Flags().StringVar(&out, "out", "", "Path file keluaran (default Data_Pemeriksaan_<Bulan Tahun>.xlsx)")
	_ = cmd.MarkFlagRequired("bulan")
	return cmd
}

func newTarifCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tarif [jenis]",
		Short: "Menampilkan katalog tarif, atau pilihan untuk satu jenis pemeriksaan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jenis := tarif.JenisPemeriksaan()
			if len(args) == 1 {
				if !tarif.Known(args[0]) {
					return fmt.Errorf("jenis pemeriksaan tidak dikenal: %s", args[0])
				}
				jenis = args
			}
			return tulisTarif(cmd.OutOrStdout(), jenis)
		},
	}
}

func tulisTarif(w io.Writer, jenis []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "JENIS PEMERIKSAAN\tTARIF\tJASA DOKTER")
	for _, j := range jenis {
		e := tarif.Lookup(j)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", j, daftarAngka(e.Tarif), daftarAngka(e.Jasa))
	}
	return tw.Flush()
}

func daftarAngka(v []int) string {
	if len(v) == 0 {
		return "bebas"
	}
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ", ")
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Membuat tabel radiology_examinations bila belum ada",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			log := logger.New(cfg.LogLevel, cmd.ErrOrStderr())

			h, err := openStore(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer h.Close()

			if err := h.Migrator.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrasi: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrasi selesai")
			return nil
		},
	}
}

// sesiSecret memakai JWT_SECRET_KEY; bila kosong dibuat acak sehingga token
// sesi tidak berlaku lagi setelah server restart.
func sesiSecret(cfg *config.Config, log *slog.Logger) []byte {
	if cfg.JWTSecret != "" {
		return []byte(cfg.JWTSecret)
	}
	log.Warn("JWT_SECRET_KEY tidak diset, memakai secret acak untuk token sesi")
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Error("gagal membuat secret acak", "error", err)
		return []byte(strconv.FormatInt(time.Now().UnixNano(), 36))
	}
	return secret
}
