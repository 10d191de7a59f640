/*
 * bbchess - bitboard chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration values for the
// engine core, read from a TOML file the way the teacher's config package
// reads theirs, with sane defaults when the file is absent.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/bbchess/internal/logging"
)

var log = logging.GetLog("config")

// ConfFile is the path to the config file, relative to the working
// directory. Callers may override it before calling Setup.
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings Conf

var initialized = false

// Conf is the top-level decoded configuration document.
type Conf struct {
	Search SearchConfig
	Eval   EvalConfig
	TT     TTConfig
}

// Setup reads ConfFile and overlays it onto the defaults below. A missing
// or malformed file is not fatal - it is logged and the defaults are kept,
// the way the teacher's Setup() does.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Warningf("config file not found or invalid, using defaults (%v)", err)
	}
	initialized = true
}

func defaults() Conf {
	return Conf{
		Search: SearchConfig{
			MaxDepth:            64,
			AspirationWindow:    25,
			AspirationWidenStep: 125,
			SmallDepthThreshold: 4,
			MateScoreMargin:     1000,
		},
		Eval: EvalConfig{
			OpeningPlyThreshold: 6,
			CentralSquareBonus:  20,
			InnerRingBonus:      8,
			AttackBonusFactor:   2,
		},
		TT: TTConfig{
			SizeMb: 64,
		},
	}
}

// String dumps the current settings via reflection, the way the teacher's
// conf.String() does, for diagnostics logging.
func (c *Conf) String() string {
	var b strings.Builder
	dump := func(title string, v interface{}) {
		b.WriteString(title + ":\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			b.WriteString(fmt.Sprintf("%-2d: %-22s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
		}
	}
	dump("Search", &c.Search)
	dump("Eval", &c.Eval)
	dump("TT", &c.TT)
	return b.String()
}
