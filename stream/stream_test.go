package stream

import (
	"encoding/binary"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/animation"
	"github.com/matt-g-everett/ledtween/curve"
	"github.com/matt-g-everett/ledtween/frame"
	"github.com/matt-g-everett/ledtween/interp"
)

var epoch = time.Date(2020, 12, 24, 18, 0, 0, 0, time.UTC)

const sceneYAML = `
mqtt:
  url: tcp://broker:1883
  topics:
    stream: tree/stream
    control: tree/control
strip:
  pixels: 50
scene:
  animations:
    - duration: 1000
      curve: [0, 1, 0.1, 0.9]
      properties:
        position:
          args: [40]
        colour:
          strategy: hcl
          hex: "#ff0000"
    - duration: 500
      easing: in-out-quad
      properties:
        width:
          strategy: linear
          args: [-10]
      relative: [width]
`

func readScene(t *testing.T, yaml string) Config {
	t.Helper()
	config, err := ReadConfig(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	return config
}

func TestReadConfig(t *testing.T) {
	config := readScene(t, sceneYAML)
	if config.Mqtt.URL != "tcp://broker:1883" || config.Mqtt.Topics.Control != "tree/control" {
		t.Errorf("mqtt config = %+v", config.Mqtt)
	}
	if config.Strip.Pixels != 50 || config.Strip.FrameRate != 30 {
		t.Errorf("strip config = %+v", config.Strip)
	}
	if config.Api.Address != ":3000" {
		t.Errorf("api address = %q", config.Api.Address)
	}
	if len(config.Scene.Animations) != 2 {
		t.Fatalf("%d animations, want 2", len(config.Scene.Animations))
	}
	second := config.Scene.Animations[1]
	if second.DurationMs != 500 || second.Easing != "in-out-quad" || second.Relative[0] != "width" {
		t.Errorf("second animation = %+v", second)
	}

	end, err := config.Scene.Animations[0].Properties["colour"].End()
	if err != nil {
		t.Fatal(err)
	}
	if end.Strategy != "hcl" || len(end.Args) != 3 || end.Args[0] != 1 || end.Args[1] != 0 {
		t.Errorf("colour end = %+v", end)
	}
	end, _ = config.Scene.Animations[0].Properties["position"].End()
	if end.Strategy != "linear" {
		t.Errorf("default strategy = %q, want linear", end.Strategy)
	}

	if _, err := ReadConfig(strings.NewReader("strip: [")); err == nil {
		t.Error("broken YAML decoded without error")
	}
}

func TestExampleConfigBuilds(t *testing.T) {
	f, err := os.Open("../config.example.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	config, err := ReadConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	m := frame.NewManual(epoch)
	if _, err := NewScene(config.Scene, NewStrip(config.Strip.Pixels), m, m); err != nil {
		t.Errorf("example scene: %v", err)
	}
}

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(2)
	f.pixels[0] = colorful.Color{R: 1, G: 0, B: 0.5}
	f.pixels[1] = colorful.Color{R: 2, G: -1, B: 0}

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 8 {
		t.Fatalf("len = %d, want 8", len(data))
	}
	if n := binary.LittleEndian.Uint16(data); n != 2 {
		t.Errorf("pixel count = %d", n)
	}
	want := []byte{255, 0, 128, 255, 0, 0}
	for i, b := range want {
		if data[2+i] != b {
			t.Errorf("data = %v, want pixels %v", data[2:], want)
			break
		}
	}
}

func TestStripRender(t *testing.T) {
	s := NewStrip(30)
	s.SetPosition(10)
	s.SetWidth(8)
	red, _ := colorful.Hex("#ff0000")
	s.SetColour(red)

	f := s.Render()
	if f.Len() != 30 {
		t.Fatalf("Len() = %d", f.Len())
	}
	if !f.Pixel(10).AlmostEqualRgb(red) {
		t.Errorf("centre pixel = %v, want %v", f.Pixel(10), red)
	}
	if f.Pixel(0) != s.Background() || f.Pixel(14) != s.Background() {
		t.Error("pixels outside the spot are not background")
	}
	if f.Pixel(12) == s.Background() || f.Pixel(12).AlmostEqualRgb(red) {
		t.Errorf("pixel at the spot edge = %v, want a blend", f.Pixel(12))
	}

	s.SetWidth(-5)
	if s.Width() != 0 {
		t.Errorf("Width() = %v after a negative width", s.Width())
	}
	if s.Render().Pixel(10) != s.Background() {
		t.Error("zero width spot lit a pixel")
	}
}

func TestSceneAnimatesStrip(t *testing.T) {
	config := readScene(t, sceneYAML)
	m := frame.NewManual(epoch)
	strip := NewStrip(config.Strip.Pixels)
	scene, err := NewScene(config.Scene, strip, m, m)
	if err != nil {
		t.Fatal(err)
	}
	if err := scene.Start(); err != nil {
		t.Fatal(err)
	}

	m.Step()
	if st := scene.Status(); !st.Running || st.Step != 0 || st.Steps != 2 {
		t.Errorf("status = %+v", st)
	}
	if strip.Position() != 0 {
		t.Errorf("position at start = %v", strip.Position())
	}

	m.Advance(1100 * time.Millisecond)
	if strip.Position() != 40 {
		t.Errorf("position after first step = %v, want 40", strip.Position())
	}
	if got := strip.Colour().Hex(); got != "#ff0000" {
		t.Errorf("colour after first step = %s, want #ff0000", got)
	}
	if st := scene.Status(); st.Step != 1 || st.Colour != "#ff0000" || st.Position != 40 {
		t.Errorf("status = %+v", st)
	}

	m.Step()
	m.Advance(600 * time.Millisecond)
	if strip.Width() != 10 {
		t.Errorf("width = %v, want 20-10", strip.Width())
	}
	if scene.Status().Running {
		t.Error("scene still running after its last step")
	}
}

func TestSceneStopAndRestart(t *testing.T) {
	config := readScene(t, sceneYAML)
	m := frame.NewManual(epoch)
	strip := NewStrip(config.Strip.Pixels)
	scene, _ := NewScene(config.Scene, strip, m, m)

	scene.Start()
	m.Advance(100 * time.Millisecond)
	scene.Stop()
	if scene.Status().Running {
		t.Error("scene running after Stop")
	}
	if err := scene.Start(); err != nil {
		t.Errorf("restart: %v", err)
	}
	if err := scene.Start(); err != nil {
		t.Errorf("start while running: %v", err)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", m.Pending())
	}
}

func TestSceneResultDimensionMismatch(t *testing.T) {
	tests := []struct {
		name string
		pc   map[string]PropertyConfig
	}{
		{"background linear", map[string]PropertyConfig{KeyBackground: {Strategy: "linear", Args: []float64{1}}}},
		{"colour steps", map[string]PropertyConfig{KeyColour: {Strategy: "steps", Hex: "#ff0000"}}},
	}
	for _, tt := range tests {
		m := frame.NewManual(epoch)
		strip := NewStrip(10)
		sc := SceneConfig{Animations: []AnimationConfig{{DurationMs: 100, Properties: tt.pc}}}
		scene, err := NewScene(sc, strip, m, m)
		if err != nil {
			t.Fatalf("%s: NewScene: %v", tt.name, err)
		}
		colour, background := strip.Colour(), strip.Background()

		scene.Start()
		m.Advance(10 * time.Millisecond)
		m.Advance(200 * time.Millisecond)

		if !errors.Is(scene.Err(), animation.ErrDimension) {
			t.Errorf("%s: Err() = %v, want ErrDimension", tt.name, scene.Err())
		}
		if strip.Colour() != colour || strip.Background() != background {
			t.Errorf("%s: strip colours changed", tt.name)
		}
		if scene.Status().Running {
			t.Errorf("%s: scene still running", tt.name)
		}
	}
}

func TestSceneConfigErrors(t *testing.T) {
	m := frame.NewManual(epoch)
	tests := []struct {
		name string
		ac   AnimationConfig
		want error
	}{
		{"unknown property", AnimationConfig{DurationMs: 100, Properties: map[string]PropertyConfig{"size": {}}}, ErrUnknownProperty},
		{"unknown easing", AnimationConfig{DurationMs: 100, Easing: "jiggle"}, curve.ErrUnknownEasing},
		{"short curve", AnimationConfig{DurationMs: 100, Curve: []float64{0, 1}}, curve.ErrArity},
		{"unknown strategy", AnimationConfig{DurationMs: 100, Properties: map[string]PropertyConfig{"width": {Strategy: "spin"}}}, interp.ErrUnknownStrategy},
	}
	for _, tt := range tests {
		sc := SceneConfig{Animations: []AnimationConfig{tt.ac}}
		if _, err := NewScene(sc, NewStrip(10), m, m); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}

	bad := SceneConfig{Animations: []AnimationConfig{{DurationMs: 100, Properties: map[string]PropertyConfig{"colour": {Hex: "red"}}}}}
	if _, err := NewScene(bad, NewStrip(10), m, m); err == nil {
		t.Error("bad hex accepted")
	}
}

type fakeToken struct {
	mqtt.Token
}

func (fakeToken) Wait() bool                     { return true }
func (fakeToken) WaitTimeout(time.Duration) bool { return true }
func (fakeToken) Error() error                   { return nil }

type publication struct {
	topic   string
	payload []byte
}

type fakeClient struct {
	mqtt.Client
	published  []publication
	subscribed map[string]mqtt.MessageHandler
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.published = append(c.published, publication{topic, payload.([]byte)})
	return fakeToken{}
}

func (c *fakeClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	if c.subscribed == nil {
		c.subscribed = make(map[string]mqtt.MessageHandler)
	}
	c.subscribed[topic] = callback
	return fakeToken{}
}

type fakeMessage struct {
	mqtt.Message
	topic   string
	payload string
}

func (m fakeMessage) Topic() string   { return m.topic }
func (m fakeMessage) Payload() []byte { return []byte(m.payload) }

func TestStreamerControlAndFrames(t *testing.T) {
	config := readScene(t, sceneYAML)
	loop := frame.NewLoop(config.Strip.FrameRate, frame.NewManual(epoch))
	strip := NewStrip(config.Strip.Pixels)
	scene, err := NewScene(config.Scene, strip, loop, loop)
	if err != nil {
		t.Fatal(err)
	}
	client := &fakeClient{}
	s := NewStreamer(config, client, strip, scene, loop)
	loop.AfterFrame(s.SendFrame)

	s.Subscribe()
	handler, ok := client.subscribed["tree/control"]
	if !ok {
		t.Fatalf("not subscribed to the control topic: %v", client.subscribed)
	}

	handler(client, fakeMessage{topic: "tree/control", payload: `{"command":"start"}`})
	loop.Step()
	if !scene.Status().Running {
		t.Error("start command did not start the scene")
	}
	if len(client.published) != 1 {
		t.Fatalf("%d frames published, want 1", len(client.published))
	}
	p := client.published[0]
	if p.topic != "tree/stream" || len(p.payload) != 2+3*50 {
		t.Errorf("published %d bytes to %s", len(p.payload), p.topic)
	}

	handler(client, fakeMessage{topic: "tree/control", payload: `{"command":"stop"}`})
	handler(client, fakeMessage{topic: "tree/control", payload: `not json`})
	handler(client, fakeMessage{topic: "tree/control", payload: `{"command":"dance"}`})
	loop.Step()
	if scene.Status().Running {
		t.Error("stop command did not stop the scene")
	}
	if len(client.published) != 2 {
		t.Errorf("%d frames published, want 2", len(client.published))
	}
}
