package cli

import (
	"encoding/json"
	"fmt"

	"github.com/adoptly/shelter/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pets",
		Run:   runList,
	}

	cmd.Flags().StringP("species", "s", "", "Filter by species (exact match)")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	species, _ := cmd.Flags().GetString("species")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	pets, err := s.ListPets(cmd.Context(), store.ListPetsParams{Species: species})
	if err != nil {
		exitErr("list", err)
	}

	b, _ := json.MarshalIndent(pets, "", "  ")
	fmt.Println(string(b))
}
