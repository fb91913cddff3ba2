/*
 * config.go, part of gohinge.
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

// Package config is for the settings of the gohinge command, which are unmarshalled
// from Viper (defaults, config file, GOHINGE_* environment variables and flags).
package config

import (
	"fmt"
	"strings"

	"github.com/rmera/gohinge/align"
	"github.com/rmera/gohinge/nma"
	"github.com/rmera/gohinge/rigid"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read as settings.
// GOHINGE_RIGID_DELTA sets rigid.delta, for instance.
const EnvPrefix = "GOHINGE"

// AlignConfig holds the settings of the sequence alignment.
type AlignConfig struct {
	// substitution matrix name
	Matrix string `mapstructure:"matrix"`

	// gap penalties, both must be negative or zero
	GapOpen   int `mapstructure:"gap-open"`
	GapExtend int `mapstructure:"gap-extend"`
}

// RigidConfig holds the settings of the rigid block search.
type RigidConfig struct {
	// largest deviation of an interresidue distance, in A
	Delta float64 `mapstructure:"delta"`

	Refine  bool `mapstructure:"refine"`
	Cluster bool `mapstructure:"cluster"`
	Reverse bool `mapstructure:"reverse"`

	// candidate chains kept per residue
	NTrace int `mapstructure:"ntrace"`

	// smallest block size
	MinBlock int `mapstructure:"min-block"`
}

// MotionConfig holds the settings of the motion analysis.
type MotionConfig struct {
	// block kept fixed in interpolations
	Static int `mapstructure:"static"`

	// number of interpolation steps
	Frames int `mapstructure:"frames"`

	// interpolate as screw motions
	Screw bool `mapstructure:"screw"`

	// superimpose each residue with its own block for the displacements
	PerBlock bool `mapstructure:"per-block"`
}

// ModesConfig holds the settings of the normal mode calculation.
type ModesConfig struct {
	Gamma  float64 `mapstructure:"gamma"`
	Cutoff float64 `mapstructure:"cutoff"`

	// which conformation, 1 or 2
	Conformation int `mapstructure:"conformation"`
}

// Config is the root-level settings struct.
type Config struct {
	// group file to read before, or write after, the operation
	Groups string `mapstructure:"groups"`

	// prefix for the plots, no plots if empty
	Plot string `mapstructure:"plot"`

	// align the sequences of each pair of chains before the operation
	Prealign bool `mapstructure:"prealign"`

	Align  AlignConfig  `mapstructure:"align"`
	Rigid  RigidConfig  `mapstructure:"rigid"`
	Motion MotionConfig `mapstructure:"motion"`
	Modes  ModesConfig  `mapstructure:"modes"`
}

// SetDefaults sets the default values of all settings in v, and makes v read
// the GOHINGE_* environment variables.
func SetDefaults(v *viper.Viper) {
	ao := align.DefaultOptions()
	v.SetDefault("align.matrix", ao.Matrix())
	v.SetDefault("align.gap-open", ao.GapOpen())
	v.SetDefault("align.gap-extend", ao.GapExtend())
	ro := rigid.DefaultOptions()
	v.SetDefault("rigid.delta", ro.Delta())
	v.SetDefault("rigid.refine", ro.Refine())
	v.SetDefault("rigid.cluster", ro.Cluster())
	v.SetDefault("rigid.reverse", ro.Reverse())
	v.SetDefault("rigid.ntrace", ro.NTrace())
	v.SetDefault("rigid.min-block", ro.MinBlock())
	v.SetDefault("motion.static", 1)
	v.SetDefault("motion.frames", 10)
	v.SetDefault("motion.screw", true)
	v.SetDefault("motion.per-block", false)
	no := nma.DefaultOptions()
	v.SetDefault("modes.gamma", no.Gamma())
	v.SetDefault("modes.cutoff", no.Cutoff())
	v.SetDefault("modes.conformation", 1)
	v.SetDefault("groups", "")
	v.SetDefault("plot", "")
	v.SetDefault("prealign", false)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// ReadFile merges the settings in the config file name (any format Viper can read) into v.
// Does nothing if name is empty.
func ReadFile(v *viper.Viper, name string) error {
	if name == "" {
		return nil
	}
	v.SetConfigFile(name)
	if err := v.MergeInConfig(); err != nil {
		return Error{err.Error(), []string{"ReadFile"}, true}
	}
	return nil
}

// NewConfig returns a Config populated from the Viper settings in v.
func NewConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, Error{fmt.Sprintf("unable to decode into struct, %v", err), []string{"NewConfig"}, true}
	}
	if c.Modes.Conformation != 1 && c.Modes.Conformation != 2 {
		return c, Error{fmt.Sprintf("Conformation must be 1 or 2, not %d", c.Modes.Conformation), []string{"NewConfig"}, true}
	}
	return c, nil
}

// AlignOptions returns the alignment options in c.
func (c Config) AlignOptions() *align.Options {
	O := align.DefaultOptions()
	O.Matrix(c.Align.Matrix)
	O.GapOpen(c.Align.GapOpen)
	O.GapExtend(c.Align.GapExtend)
	return O
}

// RigidOptions returns the rigid block search options in c.
func (c Config) RigidOptions() *rigid.Options {
	O := rigid.DefaultOptions()
	O.Delta(c.Rigid.Delta)
	O.Refine(c.Rigid.Refine)
	O.Cluster(c.Rigid.Cluster)
	O.Reverse(c.Rigid.Reverse)
	O.NTrace(c.Rigid.NTrace)
	O.MinBlock(c.Rigid.MinBlock)
	return O
}

// ModesOptions returns the normal mode options in c.
func (c Config) ModesOptions() *nma.Options {
	O := nma.DefaultOptions()
	O.Gamma(c.Modes.Gamma)
	O.Cutoff(c.Modes.Cutoff)
	return O
}

//Errors

// Error is the error type for the config package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.message }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }
