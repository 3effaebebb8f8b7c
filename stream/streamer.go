package stream

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledtween/frame"
)

// ControlMessage is sent on the control topic to start or stop the scene.
type ControlMessage struct {
	Command string `json:"command"`
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	config Config
	client mqtt.Client
	strip  *Strip
	scene  *Scene
	loop   *frame.Loop
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, strip *Strip, scene *Scene, loop *frame.Loop) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.strip = strip
	s.scene = scene
	s.loop = loop
	return s
}

// SendFrame renders the strip and publishes it as binary over MQTT.
func (s *Streamer) SendFrame() {
	f := s.strip.Render()
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 0, false, b)
	if token.WaitTimeout(s.loop.Interval()) && token.Error() != nil {
		log.Printf("Publish failed: %v", token.Error())
	}
}

func (s *Streamer) handleControl(client mqtt.Client, msg mqtt.Message) {
	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Bad control message on %s: %v", msg.Topic(), err)
		return
	}
	log.Printf("Control: %s", message.Command)

	switch message.Command {
	case "start":
		s.loop.Post(func() {
			if err := s.scene.Start(); err != nil {
				log.Printf("Scene start failed: %v", err)
			}
		})
	case "stop":
		s.loop.Post(s.scene.Stop)
	default:
		log.Printf("Unknown command %q", message.Command)
	}
}

// Subscribe listens for control messages, if a control topic is configured.
func (s *Streamer) Subscribe() {
	topic := s.config.Mqtt.Topics.Control
	if topic == "" {
		return
	}
	token := s.client.Subscribe(topic, 0, s.handleControl)
	if token.WaitTimeout(5*time.Second) && token.Error() != nil {
		log.Printf("Subscribe to %s failed: %v", topic, token.Error())
	}
}

// Run starts the scene and streams a frame after every loop frame until ctx
// is done.
func (s *Streamer) Run(ctx context.Context) {
	s.loop.AfterFrame(s.SendFrame)
	s.loop.Post(func() {
		if err := s.scene.Start(); err != nil {
			log.Printf("Scene start failed: %v", err)
		}
	})
	s.loop.Run(ctx)
}
