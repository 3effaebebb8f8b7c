package stream

import (
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/animation"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config is the YAML configuration of the streamer.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Strip struct {
		Pixels    int     `yaml:"pixels"`
		FrameRate float64 `yaml:"frameRate"`
	} `yaml:"strip"`
	Api struct {
		Address string `yaml:"address"`
	} `yaml:"api"`
	Scene SceneConfig `yaml:"scene"`
}

// SceneConfig lists the animations played one after another.
type SceneConfig struct {
	Loop       bool              `yaml:"loop"`
	Animations []AnimationConfig `yaml:"animations"`
}

// AnimationConfig describes one step of a scene.
type AnimationConfig struct {
	DurationMs int                       `yaml:"duration"`
	Curve      []float64                 `yaml:"curve"`
	Easing     string                    `yaml:"easing"`
	Properties map[string]PropertyConfig `yaml:"properties"`
	Relative   []string                  `yaml:"relative"`
}

// PropertyConfig is where a property goes and how. Hex sets the target of
// a colour property instead of Args.
type PropertyConfig struct {
	Strategy string    `yaml:"strategy"`
	Args     []float64 `yaml:"args"`
	Hex      string    `yaml:"hex"`
}

// End resolves the property's end descriptor.
func (p PropertyConfig) End() (animation.End, error) {
	end := animation.End{Strategy: p.Strategy, Args: p.Args}
	if end.Strategy == "" {
		end.Strategy = "linear"
	}
	if p.Hex != "" {
		c, err := colorful.Hex(p.Hex)
		if err != nil {
			return end, errors.Wrapf(err, "hex %q", p.Hex)
		}
		end.Args = animation.Value{c.R, c.G, c.B}
	}
	return end, nil
}

// ReadConfig decodes a YAML config and fills in defaults.
func ReadConfig(r io.Reader) (Config, error) {
	var config Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&config); err != nil {
		return config, errors.Wrap(err, "decoding config")
	}

	if config.Strip.Pixels <= 0 {
		config.Strip.Pixels = 500
	}
	if config.Strip.FrameRate <= 0 {
		config.Strip.FrameRate = 30
	}
	if config.Mqtt.Topics.Stream == "" {
		config.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if config.Api.Address == "" {
		config.Api.Address = ":3000"
	}
	return config, nil
}
