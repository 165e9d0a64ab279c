// Package nodelink draws graphs as node-link diagrams with Graphviz.
//
// [ToDOT] writes an undirected DOT graph; [Render] turns it into SVG or PNG
// through the embedded Graphviz library, so no external binary is needed.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Cover: res.Vertices})
//	svg, err := nodelink.Render(ctx, dot, nodelink.FormatSVG)
//
// Cover vertices are filled orange and every edge they cover is drawn bold,
// which makes an incomplete cover obvious at a glance. With Options.Classes
// set, the kernelization classes are coloured instead: tops red, pendant
// yellow, isolated grey.
package nodelink
