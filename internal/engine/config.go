package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

// TrackRules decide the branch from calibration levels
type TrackRules struct {
	HighSignalLevel float64 `yaml:"highSignalLevel"` // A level at or above this is a high-signal hit
	HighSignalHits  int     `yaml:"highSignalHits"`  // Hits needed for advanced
	AdvancedAvg     float64 `yaml:"advancedAvg"`
	QuickAvg        float64 `yaml:"quickAvg"`
}

// CrossCheckRules configure the pressure-scenario discount
type CrossCheckRules struct {
	QuestionID string  `yaml:"questionId"`
	MinGap     float64 `yaml:"minGap"`
	Factor     float64 `yaml:"factor"`
}

// Rung is one step of the archetype ladder
type Rung struct {
	Name string `yaml:"name"`
	Min  int    `yaml:"min"`
}

// Guardrails adjust the overall score before the ladder lookup
type Guardrails struct {
	CapAdoptionMax   int `yaml:"capAdoptionMax"`
	CapCraftMax      int `yaml:"capCraftMax"`
	CapScore         int `yaml:"capScore"`
	ReliabilityMin   int `yaml:"reliabilityMin"`
	ReliabilityFloor int `yaml:"reliabilityFloor"`
	AgentsMin        int `yaml:"agentsMin"`
	AgentsRelMin     int `yaml:"agentsReliabilityMin"`
	AgentsFloor      int `yaml:"agentsFloor"`
}

// ExposureRules derive exposure from domain and frequency
type ExposureRules struct {
	DefaultDomain     int     `yaml:"defaultDomain"`
	PerFrequencyLevel float64 `yaml:"perFrequencyLevel"`
}

// Buckets are the lower bounds of the middle and top zones
type Buckets struct {
	ExposureModerate  int `yaml:"exposureModerate"`
	ExposureHigh      int `yaml:"exposureHigh"`
	ReadinessBuilding int `yaml:"readinessBuilding"`
	ReadinessStrong   int `yaml:"readinessStrong"`
}

// SignalRules pick the strengths and the bottleneck
type SignalRules struct {
	StrengthMin       int `yaml:"strengthMin"`
	MaxStrengths      int `yaml:"maxStrengths"`
	SkipAdvancedBelow int `yaml:"skipAdvancedBelow"` // Mean below this skips agents and reliability
	SkipAgentsBelow   int `yaml:"skipAgentsBelow"`
}

// ConfidenceRules map the answered count to the meter
type ConfidenceRules struct {
	High   int `yaml:"high"`
	Medium int `yaml:"medium"`
}

// SentimentRules map sentiment totals to a profile
type SentimentRules struct {
	AnxietyMin        int `yaml:"anxietyMin"`
	AnxiousMotivation int `yaml:"anxiousMotivation"`
	BuilderConfidence int `yaml:"builderConfidence"`
	BuilderMotivation int `yaml:"builderMotivation"`
	SteadyConfidence  int `yaml:"steadyConfidence"`
	CuriousMotivation int `yaml:"curiousMotivation"`
}

// Config holds every tunable constant of the engine
type Config struct {
	Weights          map[model.Axis]float64 `yaml:"weights"`
	ReadinessWeights map[model.Axis]float64 `yaml:"readinessWeights"`
	Track            TrackRules             `yaml:"track"`
	CrossCheck       CrossCheckRules        `yaml:"crossCheck"`
	Ladder           []Rung                 `yaml:"ladder"`
	Guardrails       Guardrails             `yaml:"guardrails"`
	Exposure         ExposureRules          `yaml:"exposure"`
	Buckets          Buckets                `yaml:"buckets"`
	Signals          SignalRules            `yaml:"signals"`
	Confidence       ConfidenceRules        `yaml:"confidence"`
	Sentiment        SentimentRules         `yaml:"sentiment"`
}

// DefaultConfig returns the canonical six-axis tuning
func DefaultConfig() *Config {
	return &Config{
		Weights: map[model.Axis]float64{
			model.AxisAdoption:    0.10,
			model.AxisMindset:     0.15,
			model.AxisCraft:       0.25,
			model.AxisTechDepth:   0.15,
			model.AxisReliability: 0.20,
			model.AxisAgents:      0.15,
		},
		ReadinessWeights: map[model.Axis]float64{
			model.AxisCraft:       0.3,
			model.AxisAdoption:    0.2,
			model.AxisTechDepth:   0.2,
			model.AxisReliability: 0.2,
			model.AxisAgents:      0.1,
		},
		Track: TrackRules{
			HighSignalLevel: 5,
			HighSignalHits:  2,
			AdvancedAvg:     3.5,
			QuickAvg:        1.5,
		},
		CrossCheck: CrossCheckRules{
			QuestionID: "c4_deadline",
			MinGap:     2,
			Factor:     0.85,
		},
		Ladder: []Rung{
			{Name: "observer", Min: 0},
			{Name: "tourist", Min: 21},
			{Name: "explorer", Min: 36},
			{Name: "hacker", Min: 51},
			{Name: "operator", Min: 66},
			{Name: "architect", Min: 81},
		},
		Guardrails: Guardrails{
			CapAdoptionMax:   20,
			CapCraftMax:      20,
			CapScore:         35,
			ReliabilityMin:   70,
			ReliabilityFloor: 66,
			AgentsMin:        75,
			AgentsRelMin:     60,
			AgentsFloor:      81,
		},
		Exposure: ExposureRules{
			DefaultDomain:     55,
			PerFrequencyLevel: 5,
		},
		Buckets: Buckets{
			ExposureModerate:  45,
			ExposureHigh:      75,
			ReadinessBuilding: 40,
			ReadinessStrong:   70,
		},
		Signals: SignalRules{
			StrengthMin:       40,
			MaxStrengths:      3,
			SkipAdvancedBelow: 40,
			SkipAgentsBelow:   60,
		},
		Confidence: ConfidenceRules{High: 10, Medium: 6},
		Sentiment: SentimentRules{
			AnxietyMin:        3,
			AnxiousMotivation: 2,
			BuilderConfidence: 5,
			BuilderMotivation: 6,
			SteadyConfidence:  3,
			CuriousMotivation: 4,
		},
	}
}

const weightTolerance = 1e-6

// Validate checks the invariants the engine relies on
func (c *Config) Validate() error {
	if len(c.Ladder) == 0 {
		return errors.New("archetype ladder is empty")
	}
	if c.Ladder[0].Min != 0 {
		return fmt.Errorf("archetype ladder must start at 0, got %d", c.Ladder[0].Min)
	}
	for i := 1; i < len(c.Ladder); i++ {
		if c.Ladder[i].Min <= c.Ladder[i-1].Min {
			return fmt.Errorf("archetype ladder not ascending at %q", c.Ladder[i].Name)
		}
	}
	var sum float64
	for axis, w := range c.Weights {
		if !knownAxis(axis) {
			return fmt.Errorf("weight for unknown axis %q", axis)
		}
		if w < 0 {
			return fmt.Errorf("negative weight for %s", axis)
		}
		sum += w
	}
	if math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("axis weights sum to %v, want 1", sum)
	}
	if c.CrossCheck.Factor < 0 || c.CrossCheck.Factor > 1 {
		return fmt.Errorf("cross-check factor %v outside [0,1]", c.CrossCheck.Factor)
	}
	return nil
}
