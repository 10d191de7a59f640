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

// Command bbchess is a small command-line harness over the engine core:
// perft counting for move-generator verification and a one-shot
// best-move search from a given FEN. There is no UCI loop, no game loop
// and no terminal renderer here - those are explicitly out of scope; this
// binary exists to exercise internal/engine the way FrankyGo's own
// cmd/FrankyGo exercises its internals from the command line.
package main

import (
	"flag"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/bbchess/internal/arena"
	"github.com/frankkopp/bbchess/internal/config"
	"github.com/frankkopp/bbchess/internal/engine"
	"github.com/frankkopp/bbchess/internal/movegen"
	"github.com/frankkopp/bbchess/internal/position"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFen, "FEN of the position to operate on")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen and exit")
	maxDepth := flag.Int("maxdepth", 0, "maximum search depth (0 = use config default)")
	moveTimeMs := flag.Int64("movetime", 2000, "search time budget in milliseconds")
	cpuProfile := flag.Bool("cpuprofile", false, "wrap perft/search in a CPU profile")
	versionInfo := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	root, err := engine.ParseFen(*fen)
	if err != nil {
		out.Println("invalid fen:", err)
		return
	}

	if *perftDepth > 0 {
		runPerft(root, *perftDepth)
		return
	}

	runSearch(root, *maxDepth, *moveTimeMs)
}

func runPerft(root *position.Position, depth int) {
	ar := arena.New(1 << 20)
	start := time.Now()
	for d := 1; d <= depth; d++ {
		nodes := movegen.Perft(root, d, ar)
		elapsed := time.Since(start)
		out.Printf("perft(%d) = %d nodes in %s\n", d, nodes, elapsed)
	}
}

func runSearch(root *position.Position, maxDepth int, moveTimeMs int64) {
	e := engine.New()
	child, score, err := e.FindBestMove(root, maxDepth, moveTimeMs)
	if err != nil {
		out.Println("search error:", err)
		return
	}
	out.Printf("bestmove %s score %d\n", engine.FormatFen(&child), score)
}

func printVersionInfo() {
	out.Println("bbchess")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
}
