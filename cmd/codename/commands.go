package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bppdevops/codename/internal/cli"
	"github.com/bppdevops/codename/internal/config"
	"github.com/bppdevops/codename/internal/names"
)

type globalFlags struct {
	configPath string
	policy     string
	seed       int64
}

func rootCmd() *cobra.Command {
	var g globalFlags
	cmd := &cobra.Command{
		Use:           "codename",
		Short:         "Hand out human-readable code names",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default $CODENAME_CONFIG or ./codename.yaml)")
	cmd.PersistentFlags().StringVar(&g.policy, "policy", "", "selection policy: fixed or random")
	cmd.PersistentFlags().Int64Var(&g.seed, "seed", 0, "seed for the random policy")

	cmd.AddCommand(createCmd(&g), listCmd(&g), checkCmd(&g), initCmd(&g))
	return cmd
}

// manager loads the config and applies flag overrides on top.
func (g *globalFlags) manager(cmd *cobra.Command) (*names.NameManager, error) {
	cfg, err := config.Load(config.ResolvePath(g.configPath))
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("policy") {
		cfg.Policy = g.policy
	}
	if cmd.Flags().Changed("seed") {
		seed := g.seed
		cfg.Seed = &seed
	}
	return cfg.Manager()
}

func createCmd(g *globalFlags) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Print new code names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}
			m, err := g.manager(cmd)
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), m.CreateName())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of names to print")
	return cmd
}

func listCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every name in the pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.manager(cmd)
			if err != nil {
				return err
			}
			for _, name := range m.Pool().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func checkCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check NAME",
		Short: "Exit non-zero unless NAME is in the pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.manager(cmd)
			if err != nil {
				return err
			}
			return cli.CheckName(m, args[0])
		},
	}
}

func initCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ResolvePath(g.configPath)
			if err := cli.InitConfigFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}
