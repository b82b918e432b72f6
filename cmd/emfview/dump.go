package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/emf-go/emf"
	"github.com/skdltmxn/emf-go/props"
)

var (
	dumpFormat string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <emf-file>",
	Short: "Dump all EMF information",
	Long: `Dump all information from an EMF file in structured format.

Supported formats:
  - text: Human-readable text (default)
  - json: JSON format`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "output format (text, json)")
}

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]

	switch dumpFormat {
	case "json":
		f, err := openFile(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return dumpJSON(f, path)
	case "text":
		return dumpText(path)
	default:
		return fmt.Errorf("unknown format: %s", dumpFormat)
	}
}

type EMFDump struct {
	File      string       `json:"file"`
	Header    *HeaderDump  `json:"header,omitempty"`
	Records   []RecordDump `json:"records"`
	ScanError string       `json:"scan_error,omitempty"`
}

type HeaderDump struct {
	Bounds      string `json:"bounds"`
	Frame       string `json:"frame"`
	Version     uint32 `json:"version"`
	Bytes       uint32 `json:"bytes"`
	Records     uint32 `json:"records"`
	Handles     uint16 `json:"handles"`
	Description string `json:"description,omitempty"`
	EMFPlus     bool   `json:"emf_plus"`
}

type RecordDump struct {
	Index      int         `json:"index"`
	Offset     int64       `json:"offset"`
	Size       uint32      `json:"size"`
	Type       uint32      `json:"type"`
	Name       string      `json:"name"`
	Category   string      `json:"category"`
	Links      []LinkDump  `json:"links,omitempty"`
	Properties *props.Node `json:"properties"`
}

type LinkDump struct {
	Target     int    `json:"target"`
	SourceKind string `json:"source_kind"`
	TargetKind string `json:"target_kind"`
}

func dumpJSON(f *emf.File, path string) error {
	dump := &EMFDump{File: path}

	if hdr, err := f.Header(); err == nil {
		dump.Header = &HeaderDump{
			Bounds:      hdr.Bounds.String(),
			Frame:       hdr.Frame.String(),
			Version:     hdr.Version,
			Bytes:       hdr.Bytes,
			Records:     hdr.Records,
			Handles:     hdr.Handles,
			Description: hdr.Description,
			EMFPlus:     f.PlusHeader() != nil,
		}
	}

	dump.Records = make([]RecordDump, 0, f.Len())
	for _, r := range f.Records() {
		rd := RecordDump{
			Index:      r.Index(),
			Offset:     r.Offset(),
			Size:       r.Size(),
			Type:       uint32(r.Type()),
			Name:       r.Name(),
			Category:   r.Category().String(),
			Properties: r.Properties(),
		}
		for _, l := range r.Links() {
			rd.Links = append(rd.Links, LinkDump{
				Target:     l.Target.Index(),
				SourceKind: l.SourceKind.String(),
				TargetKind: l.TargetKind.String(),
			})
		}
		dump.Records = append(dump.Records, rd)
	}

	if err := f.ScanErr(); err != nil {
		dump.ScanError = err.Error()
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dump)
}

func dumpText(path string) error {
	fmt.Fprintln(output, "=== EMF Information ===")
	if err := runInfo(nil, []string{path}); err != nil {
		return err
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, "=== Records ===")
	recordsCategory, recordsType, recordsLimit, recordsWide = "", "", 0, true
	if err := runRecords(nil, []string{path}); err != nil {
		return err
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, "=== Links ===")
	linksByTarget = false
	if err := runLinks(nil, []string{path}); err != nil {
		return err
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, "=== Properties ===")
	f, err := openFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	showLinks = false
	for i, r := range f.Records() {
		if i > 0 {
			fmt.Fprintln(output)
		}
		printRecordDetail(r)
	}
	return nil
}
