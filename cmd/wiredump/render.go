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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/wirefmt/wirefmt/wire"
)

// palette assigns a color per tag family, the same spirit as kr's
// Cyan/Green/Yellow/Red helpers but keyed off EncodingByte instead of a
// fixed set of status strings.
type palette struct {
	tag   *color.Color
	scal  *color.Color
	bytes *color.Color
	meta  *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		tag:   color.New(color.FgHiCyan),
		scal:  color.New(color.FgHiGreen),
		bytes: color.New(color.FgHiYellow),
		meta:  color.New(color.FgHiMagenta),
	}
	for _, c := range []*color.Color{p.tag, p.scal, p.bytes, p.meta} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// renderTree writes an indented, colored rendering of n to out.
func renderTree(out io.Writer, n *wire.Node, p *palette) {
	renderNode(out, n, p, 0)
}

func renderNode(out io.Writer, n *wire.Node, p *palette, depth int) {
	indent := strings.Repeat("  ", depth)
	tag := p.tag.Sprint(n.Tag.String())

	switch n.Kind {
	case wire.KindScalar:
		fmt.Fprintf(out, "%s%s %s\n", indent, tag, p.scal.Sprintf("%v", n.Scalar))
	case wire.KindNil:
		fmt.Fprintf(out, "%s%s\n", indent, tag)
	case wire.KindBytes:
		fmt.Fprintf(out, "%s%s %s\n", indent, tag, p.bytes.Sprintf("(%d bytes) %q", len(n.Bytes), truncate(n.Scalar)))
	case wire.KindArray:
		fmt.Fprintf(out, "%s%s [%d]\n", indent, tag, len(n.Children))
		for _, c := range n.Children {
			renderNode(out, c, p, depth+1)
		}
	case wire.KindMapEntries:
		fmt.Fprintf(out, "%s%s {%d pairs}\n", indent, tag, len(n.Children)/2)
		for i := 0; i+1 < len(n.Children); i += 2 {
			fmt.Fprintf(out, "%s  key:\n", indent)
			renderNode(out, n.Children[i], p, depth+2)
			fmt.Fprintf(out, "%s  value:\n", indent)
			renderNode(out, n.Children[i+1], p, depth+2)
		}
	case wire.KindStructure:
		fmt.Fprintf(out, "%s%s (%d members)\n", indent, tag, len(n.Children))
		for _, c := range n.Children {
			renderNode(out, c, p, depth+1)
		}
	case wire.KindTable:
		fmt.Fprintf(out, "%s%s %s\n", indent, tag, p.meta.Sprintf("namespace=0x%x entries=%d", n.Meta["namespaceHash"], len(n.Children)))
		for _, c := range n.Children {
			renderNode(out, c, p, depth+1)
		}
	case wire.KindTableEntry:
		fmt.Fprintf(out, "%sentry %s\n", indent, p.meta.Sprintf("id=%v size=%v", n.Meta["id"], n.Meta["payloadSize"]))
		for _, c := range n.Children {
			renderNode(out, c, p, depth+1)
		}
	case wire.KindVariant:
		fmt.Fprintf(out, "%s%s %s\n", indent, tag, p.meta.Sprintf("index=%v", n.Meta["index"]))
		for _, c := range n.Children {
			renderNode(out, c, p, depth+1)
		}
	case wire.KindError:
		fmt.Fprintf(out, "%s%s\n", indent, tag)
		for _, c := range n.Children {
			renderNode(out, c, p, depth+1)
		}
	case wire.KindHandle:
		fmt.Fprintf(out, "%s%s %s\n", indent, tag, p.meta.Sprintf("type=%v ref=%v", n.Meta["handleType"], n.Meta["reference"]))
	default:
		fmt.Fprintf(out, "%s%s <unrendered kind>\n", indent, tag)
	}
}

func truncate(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	const max = 80
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
