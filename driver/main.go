package main

import (
	"encoding/json"
	"fmt"
	"os"

	contador "github.com/achyuta116/contador/lib"
	"github.com/spf13/cobra"
)

func main() {
	var (
		target      string
		numRequests int
	)

	cmd := &cobra.Command{
		Use:          "driver",
		Short:        "Fire concurrent increments at a contador server and report latency",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			times, err := contador.IncrementLoad(cmd.Context(), contador.NoRedirectClient(), target, numRequests)
			result, _ := json.MarshalIndent(contador.CalculateMetrics(times), "", "  ")
			fmt.Printf("%d/%d requests\n%s\n", len(times), numRequests, result)
			return err
		},
	}
	cmd.Flags().StringVar(&target, "target", "http://"+contador.DefaultAddr, "server base URL")
	cmd.Flags().IntVar(&numRequests, "requests", 500, "number of concurrent increments")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
