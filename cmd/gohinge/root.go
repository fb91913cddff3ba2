/*
 * root.go, part of gohinge.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package main

import (
	"log"

	"github.com/rmera/gohinge/cmd/gohinge/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gohinge",
	Short: "Find rigid blocks and describe the motions between two conformations of a protein",
	Long: `Find rigid blocks and describe the motions between two conformations of a protein.

The input is a JSON file with the sequence and the C-alpha coordinates of the chains
in both conformations ("-" reads it from the standard input). Chains are paired by
their order in the file. Unless --prealign is given, both chains of each pair must already be
co-indexed, with "-" for gaps in the sequences.

Settings can also be given in a config file (--config) or in GOHINGE_* environment
variables, for instance GOHINGE_RIGID_DELTA=3.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.ReadFile(viper.GetViper(), cfgFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	config.SetDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML, TOML or JSON)")
	rootCmd.PersistentFlags().StringP("groups", "g", "", "group file with the block ids of both conformations")
	rootCmd.PersistentFlags().StringP("plot", "p", "", "prefix for PNG plots, none if empty")
	rootCmd.PersistentFlags().Bool("prealign", false, "align the sequences of each pair of chains first")

	viper.BindPFlag("groups", rootCmd.PersistentFlags().Lookup("groups"))
	viper.BindPFlag("plot", rootCmd.PersistentFlags().Lookup("plot"))
	viper.BindPFlag("prealign", rootCmd.PersistentFlags().Lookup("prealign"))
}
