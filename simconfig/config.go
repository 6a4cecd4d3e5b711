package simconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridflow/topology"
)

// ErrInvalidConfig wraps every configuration failure: unreadable file,
// malformed YAML, or a value outside its admissible range.
var ErrInvalidConfig = errors.New("simconfig: invalid configuration")

// Defaults applied by Load when the file leaves a field unset.
const (
	DefaultSeed      uint64 = 1
	DefaultOutputCSV        = "result.csv"
)

// validate is shared across Load calls; struct tag parsing is cached.
var validate = validator.New()

// Range is a closed [Min, Max] pair in the YAML file.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Interval converts the pair into a topology sampling interval.
func (r Range) Interval() topology.Interval {
	return topology.Interval{Min: r.Min, Max: r.Max}
}

// Sweep groups the demand schedule and iteration tunables. Zero values
// mean "use the solver default".
type Sweep struct {
	StartDemand   float64 `yaml:"startDemand" validate:"gte=0"`
	DemandStep    float64 `yaml:"demandStep" validate:"gte=0"`
	DemandLimit   float64 `yaml:"demandLimit" validate:"gte=0"`
	Tolerance     float64 `yaml:"tolerance" validate:"gte=0"`
	MaxIterations int     `yaml:"maxIterations" validate:"gte=0"`
}

// Config is the full run description.
type Config struct {
	// Geometry.
	Topology       string    `yaml:"topology" validate:"oneof=plane sphere sphere_surface"`
	PlaneMaxCoords []float64 `yaml:"planeMaxCoords" validate:"omitempty,dive,gt=0"`
	SphereR        float64   `yaml:"sphereR" validate:"gte=0"`

	// Population. Random placement draws nConsumers and nBranchPoints
	// uniformly over the geometry; manual placement reads the files.
	// Resources always come from resourcesFile, so a randomly placed
	// network can still use sources of differing voltages.
	NConsumers    int `yaml:"nConsumers" validate:"gte=0"`
	NBranchPoints int `yaml:"nBranchPoints" validate:"gte=0"`
	NResources    int `yaml:"nResources" validate:"gte=0"`

	RandomConsumers  bool   `yaml:"randomConsumers"`
	ManualNetwork    bool   `yaml:"manualNetwork"`
	ConsumersFile    string `yaml:"consumersFile"`
	BranchPointsFile string `yaml:"branchPointsFile"`
	ResourcesFile    string `yaml:"resourcesFile"`
	MatrixFile       string `yaml:"matrixFile"`

	// Connectivity.
	PNoConnection float64 `yaml:"pNoConnection" validate:"gte=0,lte=1"`
	NoConnection  float64 `yaml:"noConnection"`
	Strength      Range   `yaml:"strength"`

	// Conductance policy.
	UseStrength      bool    `yaml:"useStrength"`
	StrengthExponent float64 `yaml:"strengthExponent" validate:"gte=0"`

	Sweep Sweep `yaml:"sweep"`

	// Run plumbing.
	OutputCSV   string `yaml:"outputCSV"`
	Seed        uint64 `yaml:"seed"`
	MetricsAddr string `yaml:"metricsAddr"`
}

// Load reads, defaults and validates the YAML file at path.
// Every failure wraps ErrInvalidConfig.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.OutputCSV == "" {
		c.OutputCSV = DefaultOutputCSV
	}
	if c.StrengthExponent == 0 {
		c.StrengthExponent = 1
	}
}

// check runs the struct tags plus the cross-field rules the tags cannot
// express: file-based modes need their files, random modes need counts,
// and each geometry needs its own parameters.
func (c *Config) check() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	kind, err := topology.ParseKind(c.Topology)
	if err != nil {
		return fmt.Errorf("%w: topology %q", ErrInvalidConfig, c.Topology)
	}
	switch kind {
	case topology.Plane:
		if len(c.PlaneMaxCoords) == 0 {
			return fmt.Errorf("%w: plane topology requires planeMaxCoords", ErrInvalidConfig)
		}
	case topology.Sphere, topology.SphereSurface:
		if c.SphereR <= 0 {
			return fmt.Errorf("%w: %s topology requires sphereR > 0", ErrInvalidConfig, c.Topology)
		}
	}

	if c.ResourcesFile == "" {
		return fmt.Errorf("%w: resourcesFile is required", ErrInvalidConfig)
	}
	if c.RandomConsumers {
		if c.NConsumers < 1 {
			return fmt.Errorf("%w: randomConsumers requires nConsumers >= 1", ErrInvalidConfig)
		}
	} else if c.ConsumersFile == "" {
		return fmt.Errorf("%w: file-based placement requires consumersFile", ErrInvalidConfig)
	}
	if c.ManualNetwork && c.MatrixFile == "" {
		return fmt.Errorf("%w: manualNetwork requires matrixFile", ErrInvalidConfig)
	}
	if !c.ManualNetwork && c.Strength.Min > c.Strength.Max {
		return fmt.Errorf("%w: strength range inverted", ErrInvalidConfig)
	}
	if c.UseStrength && c.StrengthExponent <= 0 {
		return fmt.Errorf("%w: useStrength requires strengthExponent > 0", ErrInvalidConfig)
	}
	if s := c.Sweep; s.DemandLimit > 0 && s.StartDemand > s.DemandLimit {
		return fmt.Errorf("%w: sweep startDemand exceeds demandLimit", ErrInvalidConfig)
	}
	return nil
}

// Space constructs the geometry the config describes, seeded for
// reproducible sampling.
func (c Config) Space() (topology.Space, error) {
	kind, err := topology.ParseKind(c.Topology)
	if err != nil {
		return topology.Space{}, fmt.Errorf("%w: topology %q", ErrInvalidConfig, c.Topology)
	}
	opts := []topology.Option{topology.WithSeed(c.Seed)}
	switch kind {
	case topology.Plane:
		opts = append(opts, topology.WithPlaneExtents(c.PlaneMaxCoords...))
	default:
		opts = append(opts, topology.WithSphereRadius(c.SphereR))
	}
	return topology.NewSpace(kind, opts...)
}
