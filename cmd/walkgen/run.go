package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/walkvec/bfs"
	"github.com/katalvlaran/walkvec/config"
	"github.com/katalvlaran/walkvec/export"
	"github.com/katalvlaran/walkvec/graph"
	"github.com/katalvlaran/walkvec/ingest"
	"github.com/katalvlaran/walkvec/walk"
)

// run parses args and executes the pipeline, writing the corpus to out
// when the output path is "-" and logs to logOut.
func run(out, logOut io.Writer, args []string) error {
	cfg, exit, err := parseArgs(args, logOut)
	if err != nil || exit {
		return err
	}
	logger, err := cfg.NewLogger(logOut)
	if err != nil {
		return usageError("%v", err)
	}
	log := logrus.NewEntry(logger).WithField("run_id", uuid.New().String())
	return generate(cfg, out, log)
}

// generate runs ingest, index build, walk generation and export.
func generate(cfg config.Config, out io.Writer, log *logrus.Entry) error {
	start := time.Now()

	edges, err := loadEdges(cfg, log)
	if err != nil {
		return fmt.Errorf("walkgen: load input: %w", err)
	}

	g, err := graph.Build(edges, cfg.GraphOptions()...)
	if err != nil {
		return fmt.Errorf("walkgen: build index: %w", err)
	}
	st := g.Stats()
	log.WithFields(logrus.Fields{
		"nodes":       humanize.Comma(int64(st.Nodes)),
		"edges":       humanize.Comma(int64(st.Edges)),
		"sinks":       humanize.Comma(int64(st.Sinks)),
		"alias_cells": humanize.Comma(int64(st.AliasCells)),
	}).Info("built graph index")
	reportComponents(g, log)
	if st.DuplicateEdges > 0 {
		log.WithField("duplicates", st.DuplicateEdges).Warn("duplicate edges ignored; first occurrence kept")
	}

	wopts, err := cfg.WalkOptions()
	if err != nil {
		return fmt.Errorf("walkgen: %w", err)
	}
	genStart := time.Now()
	m, err := walk.Generate(g, cfg.Walk.Length, cfg.Walk.Repetitions, wopts...)
	if err != nil {
		return fmt.Errorf("walkgen: generate walks: %w", err)
	}
	log.WithFields(logrus.Fields{
		"walks":     humanize.Comma(int64(m.Rows())),
		"truncated": humanize.Comma(int64(m.Truncated())),
		"memory":    humanize.IBytes(uint64(m.Rows()) * uint64(m.Cols()) * 4),
		"elapsed":   time.Since(genStart).String(),
	}).Info("generated walks")

	w, err := openOutput(cfg.Output.Path, out)
	if err != nil {
		return fmt.Errorf("walkgen: %w", err)
	}
	eopts := []export.Option{export.WithLogger(log)}
	if cfg.Output.Names {
		eopts = append(eopts, export.WithNames(g.NodeName))
	}
	switch cfg.Output.Format {
	case config.FormatPairs:
		err = export.WritePairs(w, m, cfg.Output.Window, eopts...)
	default:
		err = export.WriteWalks(w, m, eopts...)
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("walkgen: write %s: %w", cfg.Output.Path, err)
	}

	log.WithFields(logrus.Fields{
		"output":  cfg.Output.Path,
		"format":  cfg.Output.Format,
		"elapsed": time.Since(start).String(),
	}).Info("done")
	return nil
}

// loadEdges generates the synthetic topology when one is configured and
// reads the input files otherwise.
func loadEdges(cfg config.Config, log *logrus.Entry) (graph.EdgeList, error) {
	if cfg.Input.Synthetic != "" {
		l, err := cfg.Synthetic()
		if err == nil {
			log.WithFields(logrus.Fields{
				"topology": cfg.Input.Synthetic,
				"edges":    humanize.Comma(int64(l.Len())),
			}).Info("generated synthetic graph")
		}
		return l, err
	}
	res, err := ingest.Load(cfg.IngestOptions(log))
	if err != nil {
		return graph.EdgeList{}, err
	}
	return res.Edges, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == config.Stdout {
		return nopCloser{stdout}, nil
	}
	return export.Create(path)
}

// reportComponents logs how many weakly connected components g has when
// there is more than one. Failures are logged, not returned.
func reportComponents(g *graph.Graph, log *logrus.Entry) {
	_, sizes, err := bfs.Components(g)
	if err != nil {
		log.WithError(err).Warn("connectivity report skipped")
		return
	}
	if len(sizes) < 2 {
		return
	}
	largest := 0
	for _, sz := range sizes {
		largest = max(largest, sz)
	}
	log.WithFields(logrus.Fields{
		"components": humanize.Comma(int64(len(sizes))),
		"largest":    humanize.Comma(int64(largest)),
	}).Info("graph is disconnected; walks stay inside their start component")
}
