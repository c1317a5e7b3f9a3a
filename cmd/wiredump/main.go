/*
 * Copyright 2026 wirefmt Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command wiredump decodes an arbitrary wirefmt-encoded blob without a
// schema and prints it as a colored, indented tree — a debug aid for
// inspecting captured wire traffic the same way a thriftgo dump tool
// inspects a captured thrift payload.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"

	"github.com/wirefmt/wirefmt/iobuf"
	"github.com/wirefmt/wirefmt/wire"
)

var log = logging.MustGetLogger("wiredump")

var stderrFormat = logging.MustStringFormatter(
	`%{color}wiredump ▶ %{level:.4s}%{color:reset} %{message}`,
)

func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetFormatter(stderrFormat)
	leveled := logging.AddModuleLevel(backend)
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(leveled)
}

func main() {
	app := &cli.App{
		Name:  "wiredump",
		Usage: "decode and print a wirefmt-encoded blob with no schema required",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable ANSI color in the rendered tree",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log decode diagnostics as each value is read",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "number of consecutive top-level values to decode (0 = until input is exhausted)",
				Value: 1,
			},
		},
		Action: runDump,
	}

	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func runDump(c *cli.Context) error {
	setupLogging(c.Bool("verbose"))

	var in io.Reader = os.Stdin
	if path := c.Args().First(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("opening %s: %v", path, err), 1)
		}
		defer f.Close()
		in = f
	}

	ib := iobuf.NewStreamReader(in)
	r := wire.NewReader(ib, nil)
	p := newPalette(!c.Bool("no-color"))

	count := c.Int("count")
	for i := 0; count == 0 || i < count; i++ {
		node, err := wire.Inspect(r)
		if err != nil {
			if i == 0 {
				return cli.Exit(fmt.Sprintf("decode failed at value %d: %v", i, err), 1)
			}
			log.Warningf("stopped after %d value(s): %v", i, err)
			break
		}
		log.Debugf("decoded value %d with tag %s", i, node.Tag.String())
		renderTree(os.Stdout, node, p)
		if err := ib.Release(nil); err != nil {
			return cli.Exit(fmt.Sprintf("releasing buffer after value %d: %v", i, err), 1)
		}
	}
	return nil
}
