package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledtween/api"
	"github.com/matt-g-everett/ledtween/frame"
	"github.com/matt-g-everett/ledtween/stream"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Loop     *frame.Loop
	Strip    *stream.Strip
	Scene    *stream.Scene
	Streamer *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	a.Streamer.Subscribe()
}

func (a *app) run(ctx context.Context) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.Streamer.Run(ctx)
	a.Client.Disconnect(250)
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	a.Config, err = stream.ReadConfig(f)
	if err != nil {
		panic(err)
	}
}

func (a *app) buildScene() {
	a.Loop = frame.NewLoop(a.Config.Strip.FrameRate, frame.SystemClock{})
	a.Strip = stream.NewStrip(a.Config.Strip.Pixels)

	scene, err := stream.NewScene(a.Config.Scene, a.Strip, a.Loop, a.Loop)
	if err != nil {
		panic(err)
	}
	a.Scene = scene
}

func (a *app) serveApi() {
	server := api.NewApi(a.Loop, a.Scene)
	if err := server.Serve(a.Config.Api.Address); err != nil {
		log.Printf("API stopped: %v", err)
	}
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %d pixels at %.0f fps, %d animations",
		a.Config.Strip.Pixels, a.Config.Strip.FrameRate, len(a.Config.Scene.Animations))

	a.buildScene()

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("ledtween").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(a.Config, a.Client, a.Strip, a.Scene, a.Loop)

	go a.serveApi()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	a.run(ctx)
}
