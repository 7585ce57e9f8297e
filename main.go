package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/ledanim/api"
	"github.com/matt-g-everett/ledanim/pump"
	"github.com/matt-g-everett/ledanim/stream"
	"github.com/matt-g-everett/ledanim/stream/stripe"
)

type app struct {
	Config stream.Config
	Client mqtt.Client
	Stats  *stream.Stats
}

func newApp() *app {
	a := new(app)
	a.Stats = stream.NewStats()
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}
}

func (a *app) newAnimation() (stream.Animation, error) {
	numPixels := a.Config.Strip.NumPixels
	switch a.Config.Animation.Name {
	case "gradienttrail":
		return stream.NewGradientTrail(stream.RainbowGradient(), numPixels, 180, 30.0, 0.05), nil
	case "twinkle":
		foreColour, _ := colorful.Hex("#808080")
		backColour, _ := colorful.Hex("#000005")
		return stream.NewTwinkle(numPixels, 400, foreColour, backColour), nil
	case "stripes":
		gen := stripe.NewRandomGenerator(nil, 150, 400)
		return stream.NewStripes(gen, numPixels, 30.0), nil
	case "cycle":
		foreColour, _ := colorful.Hex("#808080")
		backColour, _ := colorful.Hex("#000005")
		return stream.NewController([]stream.Animation{
			stream.NewGradientTrail(stream.RainbowGradient(), numPixels, 180, 30.0, 0.05),
			stream.NewTwinkle(numPixels, 400, foreColour, backColour),
		}, 30*time.Second, 5*time.Second)
	}
	return nil, fmt.Errorf("unknown animation %q", a.Config.Animation.Name)
}

// handleOutcome receives the terminal outcome of the run, whichever way
// it ends.
func (a *app) handleOutcome(out pump.Outcome[int]) {
	a.Stats.SetState(out.State)
	switch out.State {
	case pump.Completed:
		log.Printf("Animation complete, %d bytes sent", out.Value)
	case pump.Failed:
		log.Printf("Animation failed: %v", out.Err)
	case pump.Cancelled:
		log.Println("Animation cancelled")
	}
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	anim, err := a.newAnimation()
	if err != nil {
		return err
	}

	src, err := pump.Pace[*stream.Frame](
		stream.NewAnimationSource(anim, a.Config.Animation.Frames), a.Config.Period())
	if err != nil {
		return err
	}

	if a.Config.Animation.SyncToAcks {
		redraw := stream.NewRedrawProvider(a.Client, a.Config.Mqtt.Topics.Ack)
		if err := redraw.Subscribe(); err != nil {
			return err
		}
		defer redraw.Unsubscribe()
		src = pump.Synchronize(src, redraw.Triggers())
	}

	renderer := stream.NewRenderer(a.Client)
	canvas, err := renderer.CreateCanvas(stream.Setup{
		Topic: a.Config.Mqtt.Topics.Stream,
		QOS:   a.Config.Mqtt.QOS,
	})
	if err != nil {
		return err
	}

	// Count every painted frame into the stats the status API reads.
	painter := pump.PainterFunc[*stream.Canvas, *stream.Frame, int](
		func(ctx context.Context, c *stream.Canvas, f *stream.Frame) (int, error) {
			n, err := renderer.Paint(ctx, c, f)
			if err == nil {
				a.Stats.AddFrame(n)
			}
			return n, err
		})

	fold := pump.Fold[int]{Identity: 0, Combine: func(x, y int) int { return x + y }}
	p, err := pump.New(painter, fold,
		pump.WithHandler[*stream.Canvas, *stream.Frame, int](a.handleOutcome))
	if err != nil {
		return err
	}

	a.Stats.SetState(pump.Running)
	p.Run(ctx, src, canvas)
	return nil
}

func (a *app) serveStatus() {
	status := api.NewApi(a.Config.Api.Addr, func() api.Status {
		snap := a.Stats.Snapshot()
		return api.Status{State: snap.State.String(), Frames: snap.Frames, Bytes: snap.Bytes}
	})
	go status.Serve()
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	rand.Seed(time.Now().UTC().UnixNano())

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	if err := a.Config.Validate(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("ledanim").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	if a.Config.Api.Addr != "" {
		a.serveStatus()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.run(ctx); err != nil {
		log.Fatal(err)
	}
}
