package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discochess/cachekit/internal/trace"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a synthetic trace with Zipf-distributed keys",
	Long: `Generate a reproducible trace of puts and gets whose keys follow a
Zipf distribution. The output is compressed according to its extension
(.zst, .gz, or plain text otherwise).

Examples:
  cachekit gen --ops 100000 --keys 1000 -o workload.txt.zst
  cachekit gen --skew 2 --put-ratio 0.5 --seed 7 -o hot.txt`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

var genConfig = trace.GenerateConfig{
	Ops:      10000,
	Keys:     500,
	Skew:     1.1,
	PutRatio: 0.1,
	Seed:     1,
}

var genOutput string

func init() {
	genCmd.Flags().IntVar(&genConfig.Ops, "ops", genConfig.Ops, "number of operations")
	genCmd.Flags().IntVar(&genConfig.Keys, "keys", genConfig.Keys, "number of distinct keys")
	genCmd.Flags().Float64Var(&genConfig.Skew, "skew", genConfig.Skew, "zipf exponent, greater than 1")
	genCmd.Flags().Float64Var(&genConfig.PutRatio, "put-ratio", genConfig.PutRatio, "fraction of operations that are puts")
	genCmd.Flags().Uint64Var(&genConfig.Seed, "seed", genConfig.Seed, "random seed")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file")
	genCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	ops, err := trace.Generate(genConfig)
	if err != nil {
		return err
	}
	if err := trace.Create(genOutput, ops); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d operations to %s\n", len(ops), genOutput)
	return nil
}
