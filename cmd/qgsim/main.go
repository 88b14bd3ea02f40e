package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/qgsim/internal/config"
	"github.com/san-kum/qgsim/internal/metrics"
	"github.com/san-kum/qgsim/internal/qg"
)

var (
	configFile string
	preset     string
	evals      int
	seed       int64
	amplitude  float64
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qgsim",
		Short: "multi-layer quasi-geostrophic model core",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time repeated tendency evaluations and report diagnostics",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&evals, "evals", 1000, "number of tendency evaluations")
	benchCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for the initial PV field")
	benchCmd.Flags().Float64Var(&amplitude, "amplitude", 0.1, "initial PV amplitude")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(benchCmd, presetsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return cfg, nil
	}
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.DefaultConfig(), nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	model, err := cfg.Build(nil)
	if err != nil {
		return err
	}

	state := model.NewState()
	if err := model.SetPV(state, randomPV(model, seed, amplitude)); err != nil {
		return err
	}

	sol := copySpectral(state.Qh)
	dst := copySpectral(state.Qh)

	start := time.Now()
	for i := 0; i < evals; i++ {
		model.Tendency(dst, sol, 0, state)
	}
	elapsed := time.Since(start)

	total := metrics.NewTotalEnergy(model)
	total.Observe(state, 0)
	ke, pe := model.Energies(state)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "evals\t%d\n", evals)
	fmt.Fprintf(w, "elapsed\t%s\n", elapsed)
	fmt.Fprintf(w, "per eval\t%s\n", elapsed/time.Duration(evals))
	for jz, e := range ke {
		fmt.Fprintf(w, "KE layer %d\t%.6e\n", jz, e)
	}
	for i, e := range pe {
		fmt.Fprintf(w, "PE interface %d\t%.6e\n", i, e)
	}
	fmt.Fprintf(w, "total energy\t%.6e\n", total.Value())
	return w.Flush()
}

// randomPV builds a deterministic zero-mean PV field for benchmarking.
func randomPV(m *qg.Model, seed int64, amp float64) [][][]float64 {
	rng := rand.New(rand.NewSource(seed))
	g := m.G
	q := make([][][]float64, m.P.Nz)
	for jz := range q {
		q[jz] = g.NewPhysical()
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				q[jz][j][i] = amp * (2*rng.Float64() - 1)
			}
		}
	}
	return q
}

func copySpectral(src [][][]complex128) [][][]complex128 {
	dst := make([][][]complex128, len(src))
	for jz := range src {
		dst[jz] = make([][]complex128, len(src[jz]))
		for j := range src[jz] {
			dst[jz][j] = append([]complex128(nil), src[jz][j]...)
		}
	}
	return dst
}
