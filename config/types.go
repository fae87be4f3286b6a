package config

type Config struct {
	Model       string
	Iterations  int
	Epsilon     float64
	TopK        int `mapstructure:"top_k"`
	Output      string
	Resume      string
	Convergence ConvergenceConfig
	Corpus      CorpusConfig
}

type ConvergenceConfig struct {
	// fixed, likelihood or delta
	Kind      string
	Threshold float64
}

type CorpusConfig struct {
	Source   string
	Target   string
	Encoding string
}
