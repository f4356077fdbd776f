package config

type Config struct {
	MinSupport float64
	Limit      int
	Top        int
	Header     string
}

func (c *Config) Copy() *Config {
	return &Config{
		MinSupport: c.MinSupport,
		Limit:      c.Limit,
		Top:        c.Top,
		Header:     c.Header,
	}
}

// MinSupportCount converts the support fraction into the occurrence
// threshold for a collection of ntxs transactions. The product truncates
// toward zero and the threshold is inclusive.
func (c *Config) MinSupportCount(ntxs int) int {
	return int(c.MinSupport * float64(ntxs))
}
