package cli

import (
	"encoding/json"
	"fmt"

	"github.com/adoptly/shelter/internal/seed"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with generated pets",
		Run:   runSeed,
	}

	cmd.Flags().IntP("count", "c", 25, "Number of pets to insert")
	cmd.Flags().Int64P("seed", "s", 0, "RNG seed (0 = time-based)")
	cmd.Flags().Bool("fresh", false, "Wipe existing pets first")
	cmd.Flags().BoolP("verbose", "v", false, "Print the effective RNG seed")

	RootCmd.AddCommand(cmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt("count")
	seedVal, _ := cmd.Flags().GetInt64("seed")
	fresh, _ := cmd.Flags().GetBool("fresh")
	verbose, _ := cmd.Flags().GetBool("verbose")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	seeder := seed.New(s, seed.NewSeededRNG(seedVal, verbose))
	summary, err := seeder.Run(cmd.Context(), count, fresh)
	if err != nil {
		exitErr("seed", err)
	}

	b, _ := json.Marshal(summary)
	fmt.Println(string(b))
}
