package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	log "github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/emilwest/IBM-model-1/config"
	"github.com/emilwest/IBM-model-1/corpus"
	"github.com/emilwest/IBM-model-1/model"
	"github.com/emilwest/IBM-model-1/report"
)

// Only flags given on the command line override the config file, so the
// values below are read back through flag.Visit.
var (
	configFile  = flag.String("config", "", "YAML configuration file")
	modelType   = flag.String("model", "ibm1", "model type")
	iteration   = flag.Int("iter", 5, "number of iterations, or the cap for a threshold criterion")
	epsilon     = flag.Float64("epsilon", model.DefaultEpsilon, "source words with at most this expected count keep their probabilities")
	topK        = flag.Int("top_k", report.DefaultLimit, "number of translation probabilities shown per iteration")
	convergence = flag.String("convergence", "fixed", "convergence criterion: fixed, likelihood or delta")
	threshold   = flag.Float64("threshold", 1e-4, "threshold of the likelihood and delta criteria")
	encoding    = flag.String("encoding", "utf-8", "character encoding of the corpus files")
	output      = flag.String("output", "", "write the trained translation table to this file")
	resume      = flag.String("resume", "", "start from a table saved with -output instead of uniform probabilities; iteration numbering and -iter continue from the saved run")
)

// flag name -> config key, for flags given on the command line
var flagKeys = map[string]string{
	"model":       "model",
	"iter":        "iterations",
	"epsilon":     "epsilon",
	"top_k":       "top_k",
	"convergence": "convergence.kind",
	"threshold":   "convergence.threshold",
	"encoding":    "corpus.encoding",
	"output":      "output",
	"resume":      "resume",
}

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ibm1 [options] [corpus.sv corpus.en]")
		fmt.Fprintln(os.Stderr, "  Estimates word translation probabilities t(e|f) with IBM Model 1.")
		fmt.Fprintln(os.Stderr, "  Give one source corpus ending in .sv or .swe and one target corpus")
		fmt.Fprintln(os.Stderr, "  ending in .en or .eng, one sentence per line, aligned by line.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()
	defer log.Flush()

	overrides := make(map[string]any)
	flag.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.(flag.Getter).Get()
		}
	})
	cfg, err := config.Load(*configFile, overrides)
	if err != nil {
		log.Exitf("load config: %v", err)
	}

	source, target, usedDefaults, err := corpus.ResolvePaths(flag.Args(), cfg.Corpus.Source, cfg.Corpus.Target)
	if err != nil {
		log.Exitf("%v", err)
	}
	if usedDefaults {
		fmt.Println("No arguments given. Using default corpora.")
		fmt.Println("(You can give two arguments, one corpus ending in .en or .eng\n" +
			"and the other ending in .sv or .swe)")
	}

	runID := uuid.NewString()
	log.Infof("run %s: source %s, target %s", runID, source, target)
	start := time.Now()

	data, err := corpus.Load(source, target, corpus.Options{Encoding: cfg.Corpus.Encoding})
	if err != nil {
		log.Exitf("%v", err)
	}

	ctor, err := model.GetModel(cfg.Model)
	if err != nil {
		log.Exitf("%v", err)
	}
	m := ctor(data, model.Options{Epsilon: cfg.Epsilon, RunID: runID})
	if cfg.Resume != "" {
		if err := m.Load(cfg.Resume); err != nil {
			log.Exitf("resume: %v", err)
		}
	}

	crit, err := model.NewCriterion(cfg.Convergence.Kind, cfg.Convergence.Threshold, cfg.Iterations)
	if err != nil {
		log.Exitf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep := report.New(os.Stdout, data.SourceVocab, data.TargetVocab, cfg.TopK)
	if err := m.Train(ctx, crit, rep.Iteration); err != nil {
		log.Exitf("train: %v", err)
	}
	log.Infof("run %s: %s after %d iterations", runID, m.State(), m.Iteration())

	if cfg.Output != "" {
		if err := m.Save(cfg.Output); err != nil {
			log.Exitf("save table: %v", err)
		}
		log.Infof("translation table written to %s", cfg.Output)
	}

	rep.SystemInfo(time.Since(start), runID)
	if err := rep.Err(); err != nil {
		log.Exitf("write report: %v", err)
	}
}
