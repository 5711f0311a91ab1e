/*
DESCRIPTION
  ppmdiff prints the normalized RMS pixel difference between two PPM
  pixmaps, for judging the visual cost of lossy compression.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements the ppmdiff CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ausocean/imgcomp/image/ppm"
	"github.com/ausocean/imgcomp/image/ppmdiff"
)

const pkg = "ppmdiff: "

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, pkg+"usage: ppmdiff <image1.ppm|-> <image2.ppm|->")
		os.Exit(2)
	}
	path1, path2 := os.Args[1], os.Args[2]
	if path1 == "-" && path2 == "-" {
		fmt.Fprintln(os.Stderr, pkg+"at most one argument may be -")
		os.Exit(2)
	}

	a, err := decodePath(path1)
	if err != nil {
		fmt.Fprintln(os.Stderr, pkg+err.Error())
		os.Exit(1)
	}
	b, err := decodePath(path2)
	if err != nil {
		fmt.Fprintln(os.Stderr, pkg+err.Error())
		os.Exit(1)
	}

	rms, err := ppmdiff.RMS(a, b)
	fmt.Printf("%.4f\n", rms)
	if err != nil {
		// A dimension mismatch is a reported result, not a failure: the
		// RMS of 1.0 has already been printed, so exit cleanly.
		fmt.Fprintln(os.Stderr, pkg+err.Error())
	}
}

func decodePath(path string) (*ppm.Pixmap, error) {
	if path == "-" {
		return ppm.Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ppm.Decode(f)
}
