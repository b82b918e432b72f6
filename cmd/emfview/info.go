package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/emf-go/emf"
)

var infoCmd = &cobra.Command{
	Use:   "info <emf-file>",
	Short: "Display EMF file information",
	Long:  `Display general information about an EMF file including bounds, frame, description, and record statistics.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := openFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(output, "EMF File: %s\n", path)
	fmt.Fprintf(output, "Size: %d bytes\n", f.Size())

	hdr, err := f.Header()
	if err != nil {
		fmt.Fprintf(output, "Header: %v\n", err)
	} else {
		fmt.Fprintf(output, "Signature: 0x%08X\n", hdr.Signature)
		fmt.Fprintf(output, "Version: 0x%08X\n", hdr.Version)
		fmt.Fprintf(output, "Bounds: %s\n", hdr.Bounds)
		fmt.Fprintf(output, "Frame: %s\n", hdr.Frame)
		fmt.Fprintf(output, "Device: %s\n", hdr.Device)
		fmt.Fprintf(output, "Millimeters: %s\n", hdr.Millimeters)
		if hdr.HasMicrometers {
			fmt.Fprintf(output, "Micrometers: %s\n", hdr.Micrometers)
		}
		if hdr.Description != "" {
			fmt.Fprintf(output, "Description: %s\n", hdr.Description)
		}
		fmt.Fprintf(output, "Declared Records: %d\n", hdr.Records)
		fmt.Fprintf(output, "Declared Handles: %d\n", hdr.Handles)
		if hdr.OpenGL {
			fmt.Fprintln(output, "OpenGL: yes")
		}
	}

	fmt.Fprintf(output, "Records: %d\n", f.Len())
	fmt.Fprintf(output, "Peak Live Handles: %d\n", f.PeakHandles())

	if h := f.PlusHeader(); h != nil {
		mode := "EMF+ Only"
		if h.Dual() {
			mode = "EMF+ Dual"
		}
		fmt.Fprintf(output, "EMF+: %s, graphics version %d, %dx%d dpi\n", mode, h.GraphicsVersion(), h.DpiX, h.DpiY)
	}

	counts := make(map[emf.Category]int)
	for _, r := range f.Records() {
		counts[r.Category()]++
	}
	for c := emf.CategoryUnknown; c <= emf.CategoryTransform; c++ {
		if n := counts[c]; n > 0 {
			fmt.Fprintf(output, "  %-20s %d\n", c.String()+":", n)
		}
	}

	if err := f.ScanErr(); err != nil {
		fmt.Fprintf(output, "Scan Error: %v\n", err)
	}
	return nil
}
