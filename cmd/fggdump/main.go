package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	flatgeograph "github.com/cristianob/flatgeographbuf"
)

func main() {
	input := flag.String("input", "", "Path to a .fgg (or plain .fgb) file")
	edges := flag.Bool("edges", false, "Stream and print every edge in the graph section")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: fggdump --input <file.fgg> [--edges]")
		os.Exit(1)
	}

	buf, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	meta, err := flatgeograph.ProbeMetadata(buf)
	if err != nil {
		log.Fatalf("Failed to probe metadata: %v", err)
	}

	fmt.Printf("features: %d\n", meta.Features.FeaturesCount)
	fmt.Printf("geometry type: %s\n", meta.Features.GeometryType)
	if meta.Features.Name != "" {
		fmt.Printf("layer name: %s\n", meta.Features.Name)
	}
	for _, c := range meta.Features.Columns {
		fmt.Printf("  feature column: %s (%s)\n", c.Name, c.Type)
	}

	if meta.Graph == nil {
		fmt.Println("graph section: none")
		return
	}

	fmt.Printf("graph section: %d edges\n", meta.Graph.EdgeCount)
	for _, c := range meta.Graph.EdgeColumns {
		fmt.Printf("  edge column: %s (%s)\n", c.Name, c.Type)
	}

	if !*edges {
		return
	}

	reader, err := flatgeograph.DeserializeGraphEdges(buf)
	if err != nil {
		log.Fatalf("Failed to open graph section: %v", err)
	}

	count := 0
	for {
		e, ok, err := reader.Next()
		if err != nil {
			log.Fatalf("Failed to read edge %d: %v", count, err)
		}
		if !ok {
			break
		}
		fmt.Printf("edge %d: %d -> %d %v\n", count, e.From, e.To, e.Properties)
		count++
	}
	fmt.Printf("streamed %d edges\n", count)
}
