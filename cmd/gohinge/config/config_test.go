/*
 * config_test.go, part of gohinge.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/gohinge/align"
	"github.com/rmera/gohinge/rigid"
	"github.com/spf13/viper"
)

func TestDefaults(Te *testing.T) {
	v := viper.New()
	SetDefaults(v)
	c, err := NewConfig(v)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Rigid.Delta != rigid.DefaultDelta || !c.Rigid.Refine || c.Rigid.NTrace != rigid.DefaultNTrace {
		Te.Errorf("Wrong rigid defaults %+v", c.Rigid)
	}
	if c.Align.Matrix != align.DefaultMatrix || c.Align.GapOpen != align.DefaultGapOpen {
		Te.Errorf("Wrong align defaults %+v", c.Align)
	}
	if c.Motion.Static != 1 || c.Modes.Conformation != 1 {
		Te.Errorf("Wrong defaults %+v %+v", c.Motion, c.Modes)
	}
}

func TestSources(Te *testing.T) {
	Te.Setenv("GOHINGE_RIGID_DELTA", "1.5")
	Te.Setenv("GOHINGE_ALIGN_GAP_OPEN", "-12")
	name := filepath.Join(Te.TempDir(), "gohinge.yaml")
	yaml := "rigid:\n  refine: false\n  min-block: 6\nmodes:\n  gamma: 3\n"
	if err := os.WriteFile(name, []byte(yaml), 0644); err != nil {
		Te.Fatal(err)
	}
	v := viper.New()
	SetDefaults(v)
	if err := ReadFile(v, name); err != nil {
		Te.Fatal(err)
	}
	c, err := NewConfig(v)
	if err != nil {
		Te.Fatal(err)
	}
	ro := c.RigidOptions()
	if ro.Delta() != 1.5 || ro.Refine() || ro.MinBlock() != 6 || !ro.Cluster() {
		Te.Errorf("Wrong rigid options from file and environment: %+v", c.Rigid)
	}
	if ao := c.AlignOptions(); ao.GapOpen() != -12 || ao.GapExtend() != align.DefaultGapExtend {
		Te.Errorf("Wrong gap penalties %d %d", ao.GapOpen(), ao.GapExtend())
	}
	if no := c.ModesOptions(); no.Gamma() != 3 {
		Te.Errorf("Gamma %g, expected 3", no.Gamma())
	}
	if err := ReadFile(v, filepath.Join(Te.TempDir(), "missing.yaml")); err == nil {
		Te.Error("A missing config file should give an error")
	}
}

func TestBadConformation(Te *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("modes.conformation", 3)
	if _, err := NewConfig(v); err == nil {
		Te.Error("Conformation 3 should give an error")
	}
}
