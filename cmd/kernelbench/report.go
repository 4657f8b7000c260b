package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-yaml"
)

func writeReport(w io.Writer, rep *Report, format string) error {
	if format == "yaml" {
		return writeYAML(w, rep)
	}
	return writeTable(w, rep)
}

func writeYAML(w io.Writer, rep *Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func writeTable(w io.Writer, rep *Report) error {
	simd := strings.Join(rep.SIMD, " ")
	if simd == "" {
		simd = "none"
	}
	if _, err := fmt.Fprintf(w, "arch %s, SIMD %s, %d workers\n\n", rep.Arch, simd, rep.Workers); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tSize\tRepeat\tBest\tMean\tns/elem\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t------\t----\t----\t-------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, r := range rep.Results {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%.3f\n",
			r.Kernel,
			r.Size,
			r.Repeat,
			time.Duration(r.BestNS),
			time.Duration(r.MeanNS),
			r.NSPerElement,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

func printList(w io.Writer) error {
	desc := make(map[string]string, len(registry))
	for _, e := range registry {
		desc[e.name] = e.desc
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range kernelNames() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", name, desc[name]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
