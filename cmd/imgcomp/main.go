/*
DESCRIPTION
  imgcomp is a command-line lossy image compressor and decompressor,
  operating on PPM pixmaps and this codec's compressed codeword format.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements the imgcomp CLI.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/imgcomp/codec/imgcomp"
	"github.com/ausocean/imgcomp/image/ppm"
	"github.com/ausocean/imgcomp/image/ppmdiff"
	"github.com/ausocean/utils/logging"
)

// Logging configuration.
const (
	logPath      = "imgcomp.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logSuppress  = false
)

const pkg = "imgcomp: "

func main() {
	compress := flag.Bool("c", false, "compress a PPM pixmap to the compressed codeword format")
	decompress := flag.Bool("d", false, "decompress the codeword format back to a PPM pixmap")
	verbose := flag.Bool("v", false, "report round-trip quality against the source after compressing")
	logLevel := flag.String("LogLevel", "info", "logging level: debug, info, warning, error")
	flag.Parse()

	if *compress == *decompress {
		fmt.Fprintln(os.Stderr, pkg+"exactly one of -c or -d must be given")
		os.Exit(2)
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, pkg+"usage: imgcomp (-c|-d) [file]")
		os.Exit(2)
	}
	var inPath string
	if flag.NArg() == 1 {
		inPath = flag.Arg(0)
	}

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	level := logging.Info
	switch *logLevel {
	case "debug":
		level = logging.Debug
	case "warning":
		level = logging.Warning
	case "error":
		level = logging.Error
	}
	log := logging.New(level, fileLog, logSuppress)

	in, err := openInput(inPath)
	if err != nil {
		log.Error("opening input", "error", err.Error())
		fmt.Fprintln(os.Stderr, pkg+err.Error())
		os.Exit(1)
	}
	defer in.Close()

	switch {
	case *compress:
		err = runCompress(in, os.Stdout, log, *verbose)
	case *decompress:
		err = imgcomp.Decompress(in, os.Stdout, log)
	}
	if err != nil {
		log.Error("pipeline failed", "error", err.Error())
		fmt.Fprintln(os.Stderr, pkg+err.Error())
		os.Exit(1)
	}
}

// runCompress compresses src to dst. When verbose is set, it also
// decompresses its own output back in memory and logs the RMS
// difference against the source, so a caller can judge the visual cost
// of the compression without a separate invocation of ppmdiff.
func runCompress(src io.Reader, dst io.Writer, log logging.Logger, verbose bool) error {
	if !verbose {
		return imgcomp.Compress(src, dst, log)
	}

	var srcBuf bytes.Buffer
	if _, err := io.Copy(&srcBuf, src); err != nil {
		return err
	}

	var compressed bytes.Buffer
	if err := imgcomp.Compress(bytes.NewReader(srcBuf.Bytes()), &compressed, log); err != nil {
		return err
	}

	var reconstructed bytes.Buffer
	if err := imgcomp.Decompress(bytes.NewReader(compressed.Bytes()), &reconstructed, log); err != nil {
		return err
	}

	original, err := ppm.Decode(bytes.NewReader(srcBuf.Bytes()))
	if err != nil {
		return err
	}
	roundTripped, err := ppm.Decode(bytes.NewReader(reconstructed.Bytes()))
	if err != nil {
		return err
	}
	rms, err := ppmdiff.RMS(original, roundTripped)
	if err != nil {
		log.Warning("round-trip quality check", "error", err.Error())
	} else {
		log.Info("round-trip quality", "rms", rms)
		fmt.Fprintf(os.Stderr, "round-trip RMS: %.4f\n", rms)
	}

	_, err = dst.Write(compressed.Bytes())
	return err
}

func openInput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdin, nil
	}
	return os.Open(path)
}
